package chainmap

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Range(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 1000; i++ {
		m.Insert(i, i+1)
	}
	seen := 0
	m.Range(func(k, v int) bool {
		assert.Equal(t, k+1, v)
		seen++
		return true
	})
	assert.Equal(t, 1000, seen)

	seen = 0
	m.Range(func(int, int) bool {
		seen++
		return seen < 10
	})
	assert.Equal(t, 10, seen)
}

func TestTable_Iterators(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}
	m := FromMap(src)

	assert.Equal(t, src, maps.Collect(m.All()))

	values := slices.Sorted(m.Values())
	assert.Equal(t, []int{1, 2, 3, 4}, values)

	keys := m.Keys()
	slices.Sort(keys)
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)

	for range m.All() {
		break
	}
}

func TestTable_ToMapWithLimit(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 50; i++ {
		m.Insert(i, i)
	}
	assert.Empty(t, m.ToMapWithLimit(0))
	assert.Len(t, m.ToMapWithLimit(10), 10)
	assert.Len(t, m.ToMapWithLimit(-1), 50)
	assert.Len(t, m.ToMapWithLimit(100), 50)

	got := m.ToMapWithLimit(5)
	for k, v := range got {
		require.Equal(t, k, v)
	}
}
