package bimap

import (
	"bytes"
	"encoding/json"
	"fmt"
)

var (
	_ json.Marshaler   = (*Map[int, int])(nil)
	_ json.Unmarshaler = (*Map[int, int])(nil)

	nullBytes = []byte("null")
)

// MarshalJSON encodes the map as an array of {"left": ..., "right": ...} objects, in the order of the left store.
func (m *Map[L, R]) MarshalJSON() ([]byte, error) {
	pairs := make([]Pair[L, R], 0, m.Len())
	for left, right := range m.Left() {
		pairs = append(pairs, Pair[L, R]{Left: left, Right: right})
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON decodes an array of pairs produced by [Map.MarshalJSON] and inserts them with [Map.Insert], so later pairs win on conflicts.
// Existing pairs are kept. Nothing is inserted if the input can't be decoded.
func (m *Map[L, R]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, nullBytes) {
		return nil
	}
	var pairs []Pair[L, R]
	if err := json.Unmarshal(b, &pairs); err != nil {
		return fmt.Errorf("failed to decode bimap pairs: %w", err)
	}
	m.init()
	for _, p := range pairs {
		m.Insert(p.Left, p.Right)
	}
	return nil
}
