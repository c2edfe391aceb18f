// Package env reads configuration from environment variables, falling back to defaults when a variable is unset, empty, or invalid.
package env

import (
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty after trimming, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse] compared case-insensitive.
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(Val(key, ""))
	switch {
	case len(sval) == 0:
		return defaultVal
	case slices.Contains(DefaultTrue, sval):
		return true
	case slices.Contains(DefaultFalse, sval):
		return false
	default:
		return defaultVal
	}
}

// Level interprets an environment variable as a [slog.Level] name like "debug" or "warn+2".
// The defaultVal will be returned if the variable isn't set, is empty, or isn't a valid level.
func Level(key string, defaultVal slog.Level) slog.Level {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(sval)); err != nil {
		return defaultVal
	}
	return level
}
