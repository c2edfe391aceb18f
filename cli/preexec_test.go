package cli

import (
	"errors"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"io"
	"testing"
)

func TestCommandSet_AddPreExec(t *testing.T) {
	var preExecRuns int
	tlc := NewCommandSet("base")
	tlc.Printer().Redirect(io.Discard)
	testCmd := tlc.AddCommand("test", "Runs the test sub-command").Does(func(flags *flag.FlagSet, out *Printer) error {
		return nil
	})
	testCmd.AddCommand("two", "Runs the test two sub-command").Does(func(flags *flag.FlagSet, out *Printer) error {
		return nil
	})
	// Registered after the commands, and still applies to them.
	tlc.AddPreExec(func() error {
		preExecRuns++
		return nil
	})

	assert.NoError(t, tlc.Exec([]string{"test"}))
	assert.Equal(t, 1, preExecRuns, "Pre-exec should be run once here")
	assert.NoError(t, tlc.Exec([]string{"test", "two"}))
	assert.Equal(t, 2, preExecRuns, "Pre-exec should be run again, and only before running 'two'")
	assert.NoError(t, tlc.Exec([]string{"test", "-h"}))
	assert.Equal(t, 2, preExecRuns, "Pre-exec should not run when only printing usage")

	assert.Panics(t, func() {
		tlc.AddPreExec(nil)
	})
}

func TestCommandSet_AddPreExec_Error(t *testing.T) {
	errSetup := errors.New("setup failed")
	executed := false
	tlc := NewCommandSet("base")
	tlc.Printer().Redirect(io.Discard)
	tlc.AddPreExec(func() error {
		return errSetup
	})
	tlc.AddCommand("test", "Runs the test sub-command").Does(func(flags *flag.FlagSet, out *Printer) error {
		executed = true
		return nil
	})

	assert.ErrorIs(t, tlc.Exec([]string{"test"}), errSetup)
	assert.False(t, executed)
}
