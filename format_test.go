package chainmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_String(t *testing.T) {
	m := FromEntries([]EntryOf[string, int]{{"b", 2}, {"a", 1}})
	assert.Equal(t, "Table[a:1 b:2]", m.String())
	assert.Equal(t, "Table[a:1 b:2]", fmt.Sprint(m))
	assert.Equal(t, "Table[]", New[int, int]().String())
}

func TestTable_JSON(t *testing.T) {
	m := FromEntries([]EntryOf[string, int]{{"x", 1}, {"y", 2}})
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1,"y":2}`, string(data))

	var decoded Table[string, int]
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Size())
	assert.Equal(t, 8, decoded.Capacity())
	v, ok := decoded.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	existing := FromEntries([]EntryOf[string, int]{{"x", 100}, {"z", 3}})
	require.NoError(t, existing.UnmarshalJSON(data))
	assert.Equal(t, map[string]int{"x": 1, "y": 2, "z": 3}, existing.ToMap())

	assert.Error(t, existing.UnmarshalJSON([]byte(`[1,2]`)))
}

func TestSetDefaultJSONMarshal(t *testing.T) {
	errCodec := errors.New("codec")
	calls := 0
	SetDefaultJSONMarshal(
		func(v any) ([]byte, error) {
			calls++
			return json.Marshal(v)
		},
		func(data []byte, v any) error {
			calls++
			return errCodec
		},
	)
	defer SetDefaultJSONMarshal(nil, nil)

	m := FromEntries([]EntryOf[string, int]{{"k", 1}})
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"k":1}`, string(data))

	err = m.UnmarshalJSON(data)
	assert.ErrorIs(t, err, errCodec)
	assert.Equal(t, 2, calls)
}
