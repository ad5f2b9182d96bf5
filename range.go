package chainmap

import (
	"iter"
	"math"
)

// Range calls yield for each key and value in the table until yield
// returns false. Order is unspecified. yield must not modify the table.
func (t *Table[K, V]) Range(yield func(key K, value V) bool) {
	t.rangeEntries(func(e *EntryOf[K, V]) bool {
		return yield(e.Key, e.Value)
	})
}

// All returns an iterator over the key-value pairs of the table.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return t.Range
}

// Values returns an iterator over the values of the table.
func (t *Table[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		t.rangeEntries(func(e *EntryOf[K, V]) bool {
			return yield(e.Value)
		})
	}
}

// ToMap collect all entries and return a map[K]V
func (t *Table[K, V]) ToMap() map[K]V {
	return t.ToMapWithLimit(-1)
}

// ToMapWithLimit collect up to limit entries into a map[K]V, limit < 0 is no limit
func (t *Table[K, V]) ToMapWithLimit(limit int) map[K]V {
	if limit == 0 {
		return map[K]V{}
	}
	if limit < 0 {
		limit = math.MaxInt
	}
	a := make(map[K]V, min(t.size, limit))
	t.rangeEntries(func(e *EntryOf[K, V]) bool {
		a[e.Key] = e.Value
		limit--
		return limit > 0
	})
	return a
}
