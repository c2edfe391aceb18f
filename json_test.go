package bimap

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMap_MarshalJSON(t *testing.T) {
	m := NewOrdered[int, string]()
	m.Insert(2, "b")
	m.Insert(1, "a")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"left":1,"right":"a"},{"left":2,"right":"b"}]`, string(data))

	empty, err := json.Marshal(new(Map[int, string]))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}

func TestMap_UnmarshalJSON(t *testing.T) {
	var m Map[int, string]
	require.NoError(t, json.Unmarshal([]byte(`[{"left":1,"right":"a"},{"left":2,"right":"a"}]`), &m))
	assert.Equal(t, map[int]string{2: "a"}, collect(&m), "Later pairs should win")
	require.NoError(t, m.Verify())

	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Equal(t, 1, m.Len())

	err := json.Unmarshal([]byte(`[{"left":"not a number","right":"b"}]`), &m)
	assert.Error(t, err)
	assert.Equal(t, map[int]string{2: "a"}, collect(&m), "A bad document shouldn't insert anything")
}

func TestMap_JSONRoundTrip(t *testing.T) {
	m := New[string, int]()
	m.Insert("x", 1)
	m.Insert("y", 2)
	data, err := json.Marshal(m)
	require.NoError(t, err)

	decoded := NewOrdered[string, int]()
	require.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, collect(m), collect(decoded))
}
