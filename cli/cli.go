package cli

import (
	"errors"
	"fmt"
	flag "github.com/spf13/pflag"
	"io"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	HelpPatterns      = []string{"--help", "-h"} // HelpPatterns is a slice of flags that should trigger the output of usage information with the top-level [CommandSet].

	keyCleansePattern = regexp.MustCompile(`\s`)
)

// CommandFunc is a function that may be executed within a [Command].
// Positional arguments are available from flags.Args().
type CommandFunc = func(flags *flag.FlagSet, printer *Printer) error

// Command is an executable function in a CLI.
// It should be linked to a [CommandSet] to establish a tree of commands available to the user.
type Command struct {
	CommandSet
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	parent     string
	shortUsage string
	usage      string
	aliases    []string
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func newCommand(key, parent, shortUsage string, printer *Printer, hooks *preExecHooks) *Command {
	key = cleanseKey(key)
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	// Parse errors are reported through the Printer along with usage, not by pflag.
	fs.SetOutput(io.Discard)
	cmd := &Command{
		CommandSet: CommandSet{printer: printer, hooks: hooks},
		flags:      fs,
		key:        key,
		parent:     parent,
		shortUsage: shortUsage,
	}
	if len(parent) > 0 {
		cmd.CommandSet.parent = strings.Join([]string{parent, key}, " ")
	} else {
		cmd.CommandSet.parent = key
	}
	cmd.Does(func(_ *flag.FlagSet, out *Printer) error {
		out.Print(cmd.UsageString())
		return nil
	})
	return cmd
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// Parent retrieves the parent [Command] name.
func (c *Command) Parent() string {
	return c.parent
}

// CommandPath returns the reference chain for this [Command].
func (c *Command) CommandPath() string {
	return c.CommandSet.parent
}

// Flags returns the [flag.FlagSet] for this [Command].
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Usage allows specifying a usage line for the [Command] that will be output when a [HelpPatterns] flag is passed, or a [UsageError] is returned.
// Parent command references will be prepended to this string.
//
// The short description, flag usages, and sub-command usages will be output along with this line.
func (c *Command) Usage(format string, args ...any) *Command {
	text := fmt.Sprintf(format, args...)
	if len(c.Parent()) > 0 && len(text) > 0 {
		text = c.Parent() + " " + text
	}
	c.usage = text
	return c
}

// UsageString renders the full usage information for this [Command].
func (c *Command) UsageString() string {
	var buf strings.Builder
	buf.WriteString(c.shortUsage + "\n")
	if len(c.usage) > 0 {
		buf.WriteString("\nUSAGE:\n  " + c.usage + "\n")
	}
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(c.flags.FlagUsages())
	if len(c.commands) > 0 {
		buf.WriteString("\nCOMMANDS\n")
		buf.WriteString(c.CommandUsages())
	}
	return buf.String()
}

// Exec executes the command with given arguments, parsing flags.
//
// A [UsageError], either from flag parsing or returned by the [CommandFunc], is printed along with usage information before it's returned.
func (c *Command) Exec(args []string) error {
	if len(c.commands) > 0 {
		if err := c.CommandSet.Exec(args); !errors.Is(err, ErrUnknownCommand) {
			return err
		}
	}
	err := c.run(args)
	if errors.Is(err, &UsageError{}) {
		c.Printer().Printf("%v\n\n%s", err, c.UsageString())
	}
	return err
}

func (c *Command) run(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		return NewUsageError("%w", err)
	}
	if MustGet(c.flags.GetBool("help")) {
		c.Printer().Print(c.UsageString())
		return nil
	}
	if err := c.hooks.run(); err != nil {
		return err
	}
	return c.exec(c.flags, c.Printer())
}

// CommandSet is a group of [Command].
type CommandSet struct {
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
	hooks    *preExecHooks
	parent   string
}

// NewCommandSet is used to set up a top level [CommandSet] as the root of a CLI's command structure.
//
// Note: the parent(s) passed to this function will be used to populate sub-command usage information.
// So they should only contain the commands used to invoke this [CommandSet].
func NewCommandSet(parent ...string) *CommandSet {
	return &CommandSet{printer: NewPrinter(), hooks: new(preExecHooks), parent: strings.Join(parent, " ")}
}

// Parent retrieves the parent [CommandSet] name.
func (s *CommandSet) Parent() string {
	return s.parent
}

// AddCommand adds a sub-command to this [CommandSet].
// The key parameter will be cleansed to remove spaces, and normalize to lower-case.
// Aliases may be added as a way to support shorter variants of the same [Command].
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	key = cleanseKey(key)
	cmd := newCommand(key, s.parent, shortUsage, s.Printer(), s.preExecHooks())
	if s.commands == nil {
		s.commands = map[string]*Command{}
	}
	s.commands[key] = cmd
	var cleansed []string
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		if s.aliases == nil {
			s.aliases = map[string]*Command{}
		}
		s.aliases[alias] = cmd
		cleansed = append(cleansed, alias)
	}
	slices.Sort(cleansed)
	cmd.aliases = cleansed
	return cmd
}

// Printer returns the cached [Printer] for this [CommandSet].
// It's shared with every [Command] added to the set, so redirecting it redirects all of them.
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

func (s *CommandSet) preExecHooks() *preExecHooks {
	if s.hooks == nil {
		s.hooks = new(preExecHooks)
	}
	return s.hooks
}

// Exec executes this [CommandSet].
// It's expected that the first 1+ arguments include the key/alias for a sub-command.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no arguments", ErrUnknownCommand)
	}
	key := strings.ToLower(args[0])
	cmd, ok := s.commands[key]
	if !ok {
		cmd, ok = s.aliases[key]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		}
	}
	return cmd.Exec(args[1:])
}

// RespondUsage will print usage information with the [Printer] if one of [HelpPatterns] is given as the first argument.
// If usage information was printed, then true will be returned.
func (s *CommandSet) RespondUsage(args []string, format string, vals ...any) bool {
	if len(args) == 0 || !slices.Contains(HelpPatterns, args[0]) {
		return false
	}
	s.Printer().Print(s.UsageString(format, vals...))
	return true
}

// UsageString renders usage information for this [CommandSet], with an optional description before the command list.
func (s *CommandSet) UsageString(format string, vals ...any) string {
	text := fmt.Sprintf(format, vals...)
	if len(text) > 0 {
		text = strings.TrimSuffix("\n\n"+text, "\n")
	}
	return fmt.Sprintf(`%s%s

COMMANDS:
%s`, s.parent, text, s.CommandUsages())
}

// CommandUsages returns a string including the usage information for sub-commands in this [CommandSet].
//
// The sub-command keys will be sorted alphabetically before output.
func (s *CommandSet) CommandUsages() string {
	keys := make([]string, 0, len(s.commands))
	for key := range s.commands {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	withAliases := make([]string, len(keys))
	maxLen := 0
	for i, key := range keys {
		withAliases[i] = strings.Join(append([]string{key}, s.commands[key].aliases...), ", ")
		maxLen = max(maxLen, len(withAliases[i]))
	}
	var buf strings.Builder
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for i, key := range keys {
		buf.WriteString(fmt.Sprintf(fmtStr, withAliases[i], s.commands[key].shortUsage))
	}
	return buf.String()
}
