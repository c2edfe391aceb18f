package main

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runIn(t *testing.T, file string, args ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if len(args) > 0 {
		args = append([]string{args[0], "-f", file}, args[1:]...)
	}
	code := run(args, &stdout, &stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func testFile(t *testing.T) string {
	t.Setenv(envOrdered, "")
	t.Setenv(envLogLevel, "")
	return filepath.Join(t.TempDir(), "pairs.txt")
}

func TestRun_PutList(t *testing.T) {
	file := testFile(t)
	require.Equal(t, 0, runIn(t, file, "put", "b", "2").code)
	require.Equal(t, 0, runIn(t, file, "put", "a", "1").code)

	res := runIn(t, file, "list")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "a\t1\nb\t2\n", res.stdout)

	res = runIn(t, file, "list", "--offset", "1", "--limit", "1")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "b\t2\n", res.stdout)

	res = runIn(t, file, "ls", "--by-right")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "a\t1\nb\t2\n", res.stdout)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "a=1\nb=2\n", string(data))
}

func TestRun_PutReplaces(t *testing.T) {
	file := testFile(t)
	require.NoError(t, os.WriteFile(file, []byte("a=1\nb=2\n"), 0600))

	res := runIn(t, file, "put", "a", "2")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "replaced (a, 1)")
	assert.Contains(t, res.stderr, "replaced (b, 2)")

	res = runIn(t, file, "list")
	assert.Equal(t, "a\t2\n", res.stdout)
}

func TestRun_PutStrict(t *testing.T) {
	file := testFile(t)
	require.NoError(t, os.WriteFile(file, []byte("a=1\n"), 0600))

	res := runIn(t, file, "put", "--strict", "b", "1")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "right value exists")

	assert.Equal(t, 0, runIn(t, file, "put", "--strict", "b", "2").code)
	assert.Equal(t, "a\t1\nb\t2\n", runIn(t, file, "list").stdout)
}

func TestRun_Lookup(t *testing.T) {
	file := testFile(t)
	require.NoError(t, os.WriteFile(file, []byte("a=1\n"), 0600))

	res := runIn(t, file, "left", "a")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "1\n", res.stdout)

	res = runIn(t, file, "r", "1")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "a\n", res.stdout)

	res = runIn(t, file, "left", "z")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not found")
}

func TestRun_Remove(t *testing.T) {
	file := testFile(t)
	require.NoError(t, os.WriteFile(file, []byte("a=1\nb=2\nc=3\n"), 0600))

	assert.Equal(t, 0, runIn(t, file, "rm-left", "a").code)
	assert.Equal(t, 0, runIn(t, file, "rm-right", "3").code)
	assert.Equal(t, 1, runIn(t, file, "rm-right", "3").code)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "b=2\n", string(data))
}

func TestRun_Range(t *testing.T) {
	file := testFile(t)
	require.NoError(t, os.WriteFile(file, []byte("a=4\nb=3\nc=2\nd=1\n"), 0600))

	res := runIn(t, file, "range", "b", "d")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "b\t3\nc\t2\n", res.stdout)

	res = runIn(t, file, "range", "--by-right", "1", "3")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "d\t1\nc\t2\n", res.stdout)

	res = runIn(t, file, "range", "--ordered=false", "b", "d")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not ordered")
}

func TestRun_Unordered(t *testing.T) {
	file := testFile(t)
	t.Setenv(envOrdered, "false")
	require.NoError(t, os.WriteFile(file, []byte("c=1\na=3\nb=2\n"), 0600))

	assert.Equal(t, "a\t3\nb\t2\nc\t1\n", runIn(t, file, "list").stdout)
	assert.Equal(t, "c\t1\nb\t2\na\t3\n", runIn(t, file, "list", "--by-right").stdout)
}

func TestRun_Check(t *testing.T) {
	file := testFile(t)
	require.NoError(t, os.WriteFile(file, []byte("a=1\nb=2\n"), 0600))

	res := runIn(t, file, "check")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "ok: 2 pairs\n", res.stdout)

	require.NoError(t, os.WriteFile(file, []byte("a=1\nbroken\n"), 0600))
	res = runIn(t, file, "check")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "line 2")
}

func TestRun_Usage(t *testing.T) {
	file := testFile(t)

	res := runIn(t, file)
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "COMMANDS")

	res = runIn(t, file, "frobnicate")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "unknown command")

	res = runIn(t, file, "put", "a")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.stderr, "LEFT RIGHT")

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "rm-left")
	assert.Empty(t, stdout.String())

	res = runIn(t, file, "put", "-h")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "--strict")
	_, err := os.Stat(file)
	assert.ErrorIs(t, err, os.ErrNotExist, "Printing usage should not touch the file")
}

func TestRun_PutRejectsUnreadable(t *testing.T) {
	tests := map[string]struct {
		left, right string
	}{
		"Equals in left":     {"a=b", "c"},
		"Leading space":      {" k", "v"},
		"Trailing space":     {"k", "v "},
		"Empty left":         {"", "2"},
		"Empty right":        {"x", ""},
		"Newline":            {"a\nb", "c"},
		"Carriage return":    {"a", "b\r"},
		"Comment left":       {"#k", "v"},
		"Longer than a line": {"k", strings.Repeat("x", maxLineLength)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			file := testFile(t)
			require.NoError(t, os.WriteFile(file, []byte("a=1\n"), 0600))

			res := runIn(t, file, "put", tc.left, tc.right)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.stderr, "invalid pair line")

			data, err := os.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, "a=1\n", string(data))

			res = runIn(t, file, "list")
			assert.Equal(t, 0, res.code)
			assert.Equal(t, "a\t1\n", res.stdout)
		})
	}
}

func TestRun_PutEqualsInRight(t *testing.T) {
	file := testFile(t)
	require.Equal(t, 0, runIn(t, file, "put", "k", "b=c").code)

	res := runIn(t, file, "left", "k")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "b=c\n", res.stdout)

	res = runIn(t, file, "list")
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "k\tb=c\n", res.stdout)
}

func TestRun_LogLevel(t *testing.T) {
	file := testFile(t)
	require.NoError(t, os.WriteFile(file, []byte("a=1\n"), 0600))

	res := runIn(t, file, "list", "--log-level", "debug")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stderr, "Loaded pairs")

	res = runIn(t, file, "list")
	assert.Empty(t, res.stderr)

	res = runIn(t, file, "list", "--log-level", "chatty")
	assert.Equal(t, 2, res.code)
}
