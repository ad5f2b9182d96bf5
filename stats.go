package chainmap

import (
	"fmt"
	"strings"
)

// Stats returns statistics for the Table. It's an O(N) operation,
// so it should be used only for diagnostics or debugging purposes.
func (t *Table[K, V]) Stats() *MapStats {
	stats := &MapStats{
		Capacity:     t.Capacity(),
		Size:         t.size,
		LoadFactor:   float64(t.size) / float64(t.Capacity()),
		TotalGrowths: t.totalGrowths,
	}
	if t.buckets == nil {
		stats.EmptyBuckets = stats.Capacity
		return stats
	}
	for i := range t.buckets {
		b := &t.buckets[i]
		switch b.kind {
		case bucketEmpty:
			stats.EmptyBuckets++
		case bucketSingle:
			stats.SingleBuckets++
			stats.Entries++
			stats.MaxChainLen = max(stats.MaxChainLen, 1)
		case bucketChain:
			stats.ChainBuckets++
			stats.Entries += len(b.chain)
			stats.MaxChainLen = max(stats.MaxChainLen, len(b.chain))
		}
	}
	return stats
}

// MapStats is Table statistics.
//
// Warning: table statistics are intended to be used for diagnostic
// purposes, not for production code. This means that breaking changes
// may be introduced into this struct even between minor releases.
type MapStats struct {
	// Capacity is the length of the bucket array.
	Capacity int
	// Size is the number of entries according to the table's counter.
	Size int
	// Entries is the number of entries counted by walking every bucket.
	// It always equals Size.
	Entries int
	// LoadFactor is Size divided by Capacity.
	LoadFactor float64
	// EmptyBuckets is the number of buckets that hold no entries.
	EmptyBuckets int
	// SingleBuckets is the number of buckets holding exactly one entry.
	SingleBuckets int
	// ChainBuckets is the number of buckets holding a collision chain.
	ChainBuckets int
	// MaxChainLen is the largest number of entries in one bucket.
	MaxChainLen int
	// TotalGrowths is the number of times the bucket array doubled.
	TotalGrowths uint32
}

// ToString returns string representation of table stats.
func (s *MapStats) ToString() string {
	var sb strings.Builder
	sb.WriteString("MapStats{\n")
	sb.WriteString(fmt.Sprintf("Capacity:      %d\n", s.Capacity))
	sb.WriteString(fmt.Sprintf("Size:          %d\n", s.Size))
	sb.WriteString(fmt.Sprintf("Entries:       %d\n", s.Entries))
	sb.WriteString(fmt.Sprintf("LoadFactor:    %.3f\n", s.LoadFactor))
	sb.WriteString(fmt.Sprintf("EmptyBuckets:  %d\n", s.EmptyBuckets))
	sb.WriteString(fmt.Sprintf("SingleBuckets: %d\n", s.SingleBuckets))
	sb.WriteString(fmt.Sprintf("ChainBuckets:  %d\n", s.ChainBuckets))
	sb.WriteString(fmt.Sprintf("MaxChainLen:   %d\n", s.MaxChainLen))
	sb.WriteString(fmt.Sprintf("TotalGrowths:  %d\n", s.TotalGrowths))
	sb.WriteString("}\n")
	return sb.String()
}
