package chainmap

import (
	"hash/maphash"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// hashFunc hashes a key with the per-table seed. Equal keys always
// produce equal hashes for the same seed.
type hashFunc[K comparable] func(key K, seed maphash.Seed) uint64

// hashPrime is the 64-bit Golden Ratio mixing constant.
const hashPrime = 0x9E3779B97F4A7C15

// mixInt is the splitmix64 finalizer. It is a bijection, so distinct
// integer keys never share a hash, and every input bit reaches the low
// bits the bucket mask keeps.
func mixInt(x uint64) uint64 {
	x += hashPrime
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// defaultHasher returns the built-in hash for K. Integer keys go through
// mixInt; strings use xxhash and ignore the seed, so a string hashes the
// same in every table; everything else goes through the runtime's
// comparable hash with the per-table seed.
func defaultHasher[K comparable]() hashFunc[K] {
	switch any(*new(K)).(type) {
	case int:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(any(key).(int))) }
	case uint:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(any(key).(uint))) }
	case uintptr:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(any(key).(uintptr))) }
	case int64:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(any(key).(int64))) }
	case uint64:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(any(key).(uint64)) }
	case int32:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(uint32(any(key).(int32)))) }
	case uint32:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(any(key).(uint32))) }
	case int16:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(uint16(any(key).(int16)))) }
	case uint16:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(any(key).(uint16))) }
	case int8:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(uint8(any(key).(int8)))) }
	case uint8:
		return func(key K, _ maphash.Seed) uint64 { return mixInt(uint64(any(key).(uint8))) }
	case string:
		return func(key K, _ maphash.Seed) uint64 { return xxhash.Sum64String(any(key).(string)) }
	default:
		return func(key K, seed maphash.Seed) uint64 { return maphash.Comparable(seed, key) }
	}
}

// bucketIndex maps a hash onto a bucket array of the given capacity.
// capacity is a power of two, so masking equals hash mod capacity.
func bucketIndex(hash uint64, capacity int) int {
	return int(hash & uint64(capacity-1))
}

// nextPowOf2 calculates the smallest power of 2 that is greater than or equal to n.
func nextPowOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
