package main

import (
	"bytes"
	"github.com/saylorsolutions/bimap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReadPairs(t *testing.T) {
	input := `
# comment
a = 1
b=2

c=3
a=3
`
	var logs bytes.Buffer
	m := bimap.New[string, string]()
	require.NoError(t, readPairs(strings.NewReader(input), m, slog.New(slog.NewTextHandler(&logs, nil))))

	// The last line displaced both (a, 1) and (c, 3).
	assert.Equal(t, 2, m.Len())
	right, ok := m.GetLeft("a")
	assert.True(t, ok)
	assert.Equal(t, "3", right)
	left, ok := m.GetRight("2")
	assert.True(t, ok)
	assert.Equal(t, "b", left)
	assert.False(t, m.ContainsLeft("c"))
	assert.Contains(t, logs.String(), "line=7")
	assert.NoError(t, m.Verify())
}

func TestReadPairs_Repeated(t *testing.T) {
	var logs bytes.Buffer
	m := bimap.New[string, string]()
	require.NoError(t, readPairs(strings.NewReader("a=1\na=1\n"), m, slog.New(slog.NewTextHandler(&logs, nil))))
	assert.Equal(t, 1, m.Len())
	assert.Empty(t, logs.String(), "Repeating an identical pair shouldn't warn")
}

func TestReadPairs_Syntax(t *testing.T) {
	tests := map[string]string{
		"Missing equals": "a=1\nb\n",
		"Empty left":     "=1",
		"Empty right":    "a= ",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			err := readPairs(strings.NewReader(input), bimap.New[string, string](), discardLogger())
			assert.ErrorIs(t, err, ErrPairSyntax)
		})
	}
}

func TestSaveLoadPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt")
	pairs := []bimap.Pair[string, string]{
		{Left: "a", Right: "1"},
		{Left: "b", Right: "2"},
	}
	require.NoError(t, savePairs(path, pairs))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\n", string(data))

	m := bimap.NewOrdered[string, string]()
	require.NoError(t, loadPairs(path, m, discardLogger()))
	var loaded []bimap.Pair[string, string]
	for left, right := range m.Left() {
		loaded = append(loaded, bimap.Pair[string, string]{Left: left, Right: right})
	}
	assert.Equal(t, pairs, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "Temp files should not be left behind")
}

func TestLoadPairs_Missing(t *testing.T) {
	m := bimap.New[string, string]()
	assert.NoError(t, loadPairs(filepath.Join(t.TempDir(), "nope.txt"), m, discardLogger()))
	assert.True(t, m.IsEmpty())
}

func TestValidatePair(t *testing.T) {
	assert.NoError(t, validatePair("k", "b=c"))
	assert.NoError(t, validatePair("a b", "#1"))

	tests := map[string][2]string{
		"Equals in left":  {"a=b", "c"},
		"Leading space":   {" k", "v"},
		"Trailing space":  {"k", "v\t"},
		"Empty left":      {"", "2"},
		"Empty right":     {"x", ""},
		"Newline":         {"a\nb", "c"},
		"Comment left":    {"#k", "v"},
		"Too long a line": {strings.Repeat("x", maxLineLength/2), strings.Repeat("y", maxLineLength/2)},
	}
	for name, pair := range tests {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, validatePair(pair[0], pair[1]), ErrPairSyntax)
		})
	}
}

func TestReadPairs_LongLine(t *testing.T) {
	long := strings.Repeat("x", maxLineLength-2)
	m := bimap.New[string, string]()
	require.NoError(t, readPairs(strings.NewReader("k="+long+"\n"), m, discardLogger()))
	right, ok := m.GetLeft("k")
	assert.True(t, ok)
	assert.Equal(t, long, right)
}

func TestSavePairs_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.txt")
	err := savePairs(path, []bimap.Pair[string, string]{
		{Left: "a", Right: "1"},
		{Left: "b=c", Right: "2"},
	})
	assert.ErrorIs(t, err, ErrPairSyntax)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Empty(t, entries, "Nothing should be written for an invalid pair")
}
