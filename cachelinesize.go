package chainmap

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line size of the running CPU.
// It's automatically calculated using the `golang.org/x/sys` package.
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// chainCapOf returns the initial capacity of a collision chain for entries
// of type EntryOf[K, V]: as many entries as fit in one cache line, but never
// fewer than the two entries a promotion needs.
func chainCapOf[K comparable, V any]() int {
	sz := unsafe.Sizeof(EntryOf[K, V]{})
	if sz == 0 {
		return 2
	}
	return max(2, int(CacheLineSize/sz))
}
