package chainmap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// String implement the formatting output interface fmt.Stringer
func (t *Table[K, V]) String() string {
	const limit = 1024
	return strings.Replace(fmt.Sprint(t.ToMapWithLimit(limit)), "map[", "Table[", 1)
}

var (
	jsonMarshal   func(v any) ([]byte, error)
	jsonUnmarshal func(data []byte, v any) error
)

// SetDefaultJSONMarshal sets the default JSON serialization and deserialization functions.
// If not set, the standard library is used by default.
func SetDefaultJSONMarshal(marshal func(v any) ([]byte, error), unmarshal func(data []byte, v any) error) {
	jsonMarshal, jsonUnmarshal = marshal, unmarshal
}

// MarshalJSON encodes the table as a JSON object.
func (t *Table[K, V]) MarshalJSON() ([]byte, error) {
	if jsonMarshal != nil {
		return jsonMarshal(t.ToMap())
	}
	return json.Marshal(t.ToMap())
}

// UnmarshalJSON inserts every entry of a JSON object into the table.
// Keys already present are overwritten.
func (t *Table[K, V]) UnmarshalJSON(data []byte) error {
	var a map[K]V
	if jsonUnmarshal != nil {
		if err := jsonUnmarshal(data, &a); err != nil {
			return fmt.Errorf("chainmap: decode json: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &a); err != nil {
			return fmt.Errorf("chainmap: decode json: %w", err)
		}
	}
	for k, v := range a {
		t.Insert(k, v)
	}
	return nil
}
