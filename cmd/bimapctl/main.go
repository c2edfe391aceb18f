// Command bimapctl manages a file of one-to-one pairs, written as 'left=right' lines.
// Lookups work in both directions, and any change that would break the one-to-one mapping replaces the conflicting pairs.
package main

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/bimap/cli"
	"io"
	"os"
)

const description = `Manages a file of one-to-one pairs, written as 'left=right' lines.

USAGE:
  bimapctl COMMAND [FLAGS...] [ARGS...]`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes a command and returns the process exit code.
// Usage errors exit with 2, and other failures with 1.
func run(args []string, stdout, stderr io.Writer) int {
	set := newApp(stdout, stderr).commands()
	if set.RespondUsage(args, description) {
		return 0
	}
	err := set.Exec(args)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, cli.ErrUnknownCommand):
		_, _ = fmt.Fprintf(stderr, "error: %v\n\n%s", err, set.UsageString(description))
		return 2
	case errors.Is(err, &cli.UsageError{}):
		// The command has already printed the error with its usage.
		return 2
	default:
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
}
