package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/saylorsolutions/bimap"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// maxLineLength bounds a single 'left=right' line, for both reading and writing.
const maxLineLength = 1 << 20

var ErrPairSyntax = errors.New("invalid pair line")

// validatePair returns an error wrapping [ErrPairSyntax] if the pair can't be written as a line that [readPairs] reads back unchanged.
// A right value may contain '=', since only the first one separates the values.
func validatePair(left, right string) error {
	switch {
	case len(left) == 0 || len(right) == 0:
		return fmt.Errorf("%w: empty left or right value", ErrPairSyntax)
	case strings.TrimSpace(left) != left || strings.TrimSpace(right) != right:
		return fmt.Errorf("%w: values can't start or end with whitespace", ErrPairSyntax)
	case strings.ContainsAny(left, "\r\n") || strings.ContainsAny(right, "\r\n"):
		return fmt.Errorf("%w: values can't contain line breaks", ErrPairSyntax)
	case strings.Contains(left, "="):
		return fmt.Errorf("%w: left value '%s' can't contain '='", ErrPairSyntax, left)
	case strings.HasPrefix(left, "#"):
		return fmt.Errorf("%w: left value '%s' can't start with '#'", ErrPairSyntax, left)
	case len(left)+len(right)+1 > maxLineLength:
		return fmt.Errorf("%w: line would be longer than %d bytes", ErrPairSyntax, maxLineLength)
	}
	return nil
}

// readPairs parses 'left=right' lines into m, skipping blank lines and '#' comments.
// Lines are inserted in order, so later lines win on conflicts, and each conflict is logged as a warning.
func readPairs(r io.Reader, m *bimap.Map[string, string], log *slog.Logger) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength+1)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		left, right, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("%w: line %d: missing '='", ErrPairSyntax, lineNum)
		}
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if len(left) == 0 || len(right) == 0 {
			return fmt.Errorf("%w: line %d: empty left or right value", ErrPairSyntax, lineNum)
		}
		if ow := m.Insert(left, right); ow.Count() > 0 && !ow.Same() {
			log.Warn("Pair line replaced earlier pairs", "line", lineNum, "left", left, "right", right, "replaced", ow.Pairs())
		}
	}
	return scanner.Err()
}

// loadPairs reads the pair file at path into m.
// A missing file is treated as an empty one, so the first 'put' can create it.
func loadPairs(path string, m *bimap.Map[string, string], log *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug("Pair file doesn't exist yet", "file", path)
			return nil
		}
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	if err := readPairs(f, m, log); err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	log.Debug("Loaded pairs", "file", path, "count", m.Len())
	return nil
}

func writePairs(w io.Writer, pairs []bimap.Pair[string, string]) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if err := validatePair(p.Left, p.Right); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s=%s\n", p.Left, p.Right); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// savePairs writes pairs to a temp file next to path, and renames it over path when complete.
func savePairs(path string, pairs []bimap.Pair[string, string]) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = writePairs(tmp, pairs); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
