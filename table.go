package chainmap

import (
	"fmt"
	"hash/maphash"
	"math/bits"
)

// maxCapacity is the largest power of two representable as an int.
const maxCapacity = 1 << (bits.UintSize - 2)

// Table is a hash table that resolves collisions by separate chaining.
//
// The bucket array always has a power-of-two length of at least 8. Each
// bucket is empty, holds a single entry, or holds a chain of two or more
// entries whose keys collided on that slot. When an insert pushes the load
// factor (size/capacity) above the configured threshold, the array doubles
// and every entry is rehashed before the insert returns.
//
// The zero value is an empty table ready to use; it allocates its 8
// buckets on the first insert.
//
// A Table is not safe for concurrent use. Callers sharing one across
// goroutines must guard it with their own lock.
type Table[K comparable, V any] struct {
	buckets      []bucketOf[K, V]
	size         int
	seed         maphash.Seed // used only by the maphash fallback
	keyHash      hashFunc[K]
	loadFactor   float64
	chainCap     int
	totalGrowths uint32
}

// EntryOf is a key-value pair stored in a Table.
type EntryOf[K comparable, V any] struct {
	Key   K
	Value V
}

type bucketKind uint8

const (
	bucketEmpty bucketKind = iota
	bucketSingle
	bucketChain
)

// bucketOf is one slot of the bucket array. entry is valid when kind is
// bucketSingle; chain is valid, with two or more unique keys, when kind is
// bucketChain.
type bucketOf[K comparable, V any] struct {
	kind  bucketKind
	entry EntryOf[K, V]
	chain []EntryOf[K, V]
}

// DetermineSize returns the smallest power of two that is at least 8 and
// at least requested.
func DetermineSize(requested int) int {
	if requested <= minCapacity {
		return minCapacity
	}
	if requested > maxCapacity {
		panicOverflow(requested)
	}
	return nextPowOf2(requested)
}

func panicOverflow(requested int) {
	panic(fmt.Errorf("%w: cannot hold %d buckets", ErrCapacityOverflow, requested))
}

// New creates an empty Table with a capacity of 8 buckets.
//
// Parameters:
//   - WithPresize option for initial capacity
//   - WithLoadFactor option for the growth threshold
func New[K comparable, V any](options ...func(*MapConfig)) *Table[K, V] {
	cfg := newMapConfig(options)
	return newTable[K, V](&cfg, cfg.initialCapacity(0))
}

// FromEntries creates a Table sized for len(entries) buckets and inserts
// the entries in order. A key that appears more than once keeps the value
// of its last occurrence.
func FromEntries[K comparable, V any](
	entries []EntryOf[K, V],
	options ...func(*MapConfig),
) *Table[K, V] {
	cfg := newMapConfig(options)
	t := newTable[K, V](&cfg, cfg.initialCapacity(len(entries)))
	for i := range entries {
		t.Insert(entries[i].Key, entries[i].Value)
	}
	return t
}

// FromMap creates a Table holding every entry of source.
func FromMap[K comparable, V any](
	source map[K]V,
	options ...func(*MapConfig),
) *Table[K, V] {
	cfg := newMapConfig(options)
	t := newTable[K, V](&cfg, cfg.initialCapacity(len(source)))
	for k, v := range source {
		t.Insert(k, v)
	}
	return t
}

func newTable[K comparable, V any](cfg *MapConfig, capacity int) *Table[K, V] {
	return &Table[K, V]{
		buckets:    make([]bucketOf[K, V], capacity),
		seed:       maphash.MakeSeed(),
		keyHash:    defaultHasher[K](),
		loadFactor: cfg.loadFactor,
		chainCap:   chainCapOf[K, V](),
	}
}

// initSlow gives a zero Table the state New would have produced.
func (t *Table[K, V]) initSlow() {
	*t = *New[K, V]()
}

func (t *Table[K, V]) bucketFor(key K, capacity int) int {
	return bucketIndex(t.keyHash(key, t.seed), capacity)
}

// Insert stores value under key. If the key was already present its value
// is replaced in place and the previous value is returned with loaded set.
func (t *Table[K, V]) Insert(key K, value V) (previous V, loaded bool) {
	if t.buckets == nil {
		t.initSlow()
	}
	b := &t.buckets[t.bucketFor(key, len(t.buckets))]
	previous, loaded = t.place(b, key, value)
	if loaded {
		return previous, true
	}

	t.size++
	for float64(t.size)/float64(len(t.buckets)) > t.loadFactor {
		t.grow()
	}
	return previous, false
}

// place applies the per-bucket insertion rule. It never changes size.
func (t *Table[K, V]) place(b *bucketOf[K, V], key K, value V) (previous V, loaded bool) {
	switch b.kind {
	case bucketEmpty:
		b.kind = bucketSingle
		b.entry = EntryOf[K, V]{Key: key, Value: value}
	case bucketSingle:
		if b.entry.Key == key {
			previous = b.entry.Value
			b.entry.Value = value
			return previous, true
		}
		chain := make([]EntryOf[K, V], 0, t.chainCap)
		chain = append(chain, b.entry, EntryOf[K, V]{Key: key, Value: value})
		b.entry = EntryOf[K, V]{}
		b.kind = bucketChain
		b.chain = chain
	case bucketChain:
		if i := chainIndex(b.chain, key); i >= 0 {
			previous = b.chain[i].Value
			b.chain[i].Value = value
			return previous, true
		}
		b.chain = append(b.chain, EntryOf[K, V]{Key: key, Value: value})
	}
	return previous, false
}

// grow doubles the bucket array and rehashes every entry into it.
func (t *Table[K, V]) grow() {
	newCap := doubleCapacity(len(t.buckets))
	newBuckets := make([]bucketOf[K, V], newCap)
	t.rangeEntries(func(e *EntryOf[K, V]) bool {
		t.place(&newBuckets[t.bucketFor(e.Key, newCap)], e.Key, e.Value)
		return true
	})
	t.buckets = newBuckets
	t.totalGrowths++
}

func doubleCapacity(capacity int) int {
	if capacity >= maxCapacity {
		panic(fmt.Errorf("%w: cannot double %d buckets", ErrCapacityOverflow, capacity))
	}
	return capacity * 2
}

// Lookup returns the value stored under key, if any.
func (t *Table[K, V]) Lookup(key K) (value V, ok bool) {
	if e := t.findEntry(key); e != nil {
		return e.Value, true
	}
	return value, false
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	return t.findEntry(key) != nil
}

func (t *Table[K, V]) findEntry(key K) *EntryOf[K, V] {
	if t.buckets == nil {
		return nil
	}
	b := &t.buckets[t.bucketFor(key, len(t.buckets))]
	switch b.kind {
	case bucketSingle:
		if b.entry.Key == key {
			return &b.entry
		}
	case bucketChain:
		if i := chainIndex(b.chain, key); i >= 0 {
			return &b.chain[i]
		}
	}
	return nil
}

// Delete removes key and returns the value it held. Capacity never shrinks.
func (t *Table[K, V]) Delete(key K) (previous V, loaded bool) {
	if t.buckets == nil {
		return previous, false
	}
	b := &t.buckets[t.bucketFor(key, len(t.buckets))]
	switch b.kind {
	case bucketSingle:
		if b.entry.Key != key {
			return previous, false
		}
		previous = b.entry.Value
		*b = bucketOf[K, V]{}
	case bucketChain:
		i := chainIndex(b.chain, key)
		if i < 0 {
			return previous, false
		}
		previous = b.chain[i].Value
		last := len(b.chain) - 1
		copy(b.chain[i:], b.chain[i+1:])
		clear(b.chain[last:])
		b.chain = b.chain[:last]
		switch len(b.chain) {
		case 0:
			*b = bucketOf[K, V]{}
		case 1:
			*b = bucketOf[K, V]{kind: bucketSingle, entry: b.chain[0]}
		}
	default:
		return previous, false
	}
	t.size--
	return previous, true
}

func chainIndex[K comparable, V any](chain []EntryOf[K, V], key K) int {
	for i := range chain {
		if chain[i].Key == key {
			return i
		}
	}
	return -1
}

// Keys returns a snapshot of the stored keys in unspecified order.
func (t *Table[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.rangeEntries(func(e *EntryOf[K, V]) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// Size returns the number of key-value pairs in the table.
// This is an O(1) operation.
func (t *Table[K, V]) Size() int {
	return t.size
}

// Capacity returns the length of the bucket array. A zero Table reports
// the 8 buckets it will allocate on first insert.
func (t *Table[K, V]) Capacity() int {
	if t.buckets == nil {
		return minCapacity
	}
	return len(t.buckets)
}

// rangeEntries calls yield for every stored entry until yield returns false.
// yield must not modify the table.
func (t *Table[K, V]) rangeEntries(yield func(e *EntryOf[K, V]) bool) {
	for i := range t.buckets {
		b := &t.buckets[i]
		switch b.kind {
		case bucketSingle:
			if !yield(&b.entry) {
				return
			}
		case bucketChain:
			for j := range b.chain {
				if !yield(&b.chain[j]) {
					return
				}
			}
		}
	}
}
