package env

import (
	"github.com/stretchr/testify/assert"
	"log/slog"
	"testing"
)

func TestVal(t *testing.T) {
	const key = "TEST_VAL"

	tests := []struct {
		name     string
		value    string
		expected string
		unset    bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: "default",
		},
		{
			name:     "Empty",
			value:    "",
			expected: "default",
		},
		{
			name:     "Trimmed",
			value:    "\n\t pairs.txt \t\n",
			expected: "pairs.txt",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			assert.Equal(t, tc.expected, Val(key, "default"))
		})
	}
}

func TestBool(t *testing.T) {
	const key = "TEST_BOOL"

	tests := map[string]struct {
		value      string
		defaultVal bool
		expected   bool
	}{
		"Yes":      {value: "YES", expected: true},
		"On":       {value: "on", expected: true},
		"Off":      {value: "off", defaultVal: true, expected: false},
		"Zero":     {value: "0", defaultVal: true, expected: false},
		"Garbage":  {value: "maybe", defaultVal: true, expected: true},
		"Blank":    {value: "  ", defaultVal: true, expected: true},
		"No match": {value: "2", expected: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(key, tc.value)
			assert.Equal(t, tc.expected, Bool(key, tc.defaultVal))
		})
	}
}

func TestLevel(t *testing.T) {
	const key = "TEST_LEVEL"

	t.Setenv(key, "debug")
	assert.Equal(t, slog.LevelDebug, Level(key, slog.LevelInfo))

	t.Setenv(key, "WARN+1")
	assert.Equal(t, slog.LevelWarn+1, Level(key, slog.LevelInfo))

	t.Setenv(key, "loud")
	assert.Equal(t, slog.LevelInfo, Level(key, slog.LevelInfo))

	assert.Equal(t, slog.LevelError, Level("TEST_LEVEL_UNSET", slog.LevelError))
}
