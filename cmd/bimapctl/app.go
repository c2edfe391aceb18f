package main

import (
	"cmp"
	"errors"
	"fmt"
	"github.com/saylorsolutions/bimap"
	"github.com/saylorsolutions/bimap/cli"
	"github.com/saylorsolutions/bimap/env"
	"github.com/saylorsolutions/bimap/iterx"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
	"io"
	"log/slog"
	"os"
	"slices"
	"text/tabwriter"
)

const (
	envFile     = "BIMAPCTL_FILE"
	envOrdered  = "BIMAPCTL_ORDERED"
	envLogLevel = "BIMAPCTL_LOG_LEVEL"
)

var ErrNotFound = errors.New("not found")

// levelValue adapts a [slog.Level] to a pflag value.
type levelValue struct {
	level *slog.Level
}

func (v levelValue) String() string {
	if v.level == nil {
		return slog.LevelWarn.String()
	}
	return v.level.String()
}

func (v levelValue) Set(s string) error {
	return v.level.UnmarshalText([]byte(s))
}

func (v levelValue) Type() string {
	return "level"
}

type app struct {
	stdout   io.Writer
	stderr   io.Writer
	file     string
	ordered  bool
	level    slog.Level
	log      *slog.Logger
	pairs    *bimap.Map[string, string]
	terminal bool
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{
		stdout: stdout,
		stderr: stderr,
	}
	if f, ok := stdout.(*os.File); ok {
		a.terminal = term.IsTerminal(int(f.Fd()))
	}
	return a
}

func (a *app) commonFlags(fs *flag.FlagSet) {
	fs.StringVarP(&a.file, "file", "f", env.Val(envFile, "pairs.txt"), "Pair file to operate on (env "+envFile+")")
	fs.BoolVar(&a.ordered, "ordered", env.Bool(envOrdered, true), "Use ordered stores, required for 'range' (env "+envOrdered+")")
	a.level = env.Level(envLogLevel, slog.LevelWarn)
	fs.Var(levelValue{&a.level}, "log-level", "Minimum level of diagnostics written to stderr (env "+envLogLevel+")")
}

func (a *app) commands() *cli.CommandSet {
	set := cli.NewCommandSet("bimapctl")
	set.Printer().Redirect(a.stderr)
	set.AddPreExec(a.load)

	list := set.AddCommand("list", "Lists all pairs, in order of left values by default", "ls").
		Usage("list [FLAGS...]").
		Does(a.list)
	a.commonFlags(list.Flags())
	list.Flags().Bool("by-right", false, "Order by right values instead")
	list.Flags().Int("offset", 0, "Skips this many pairs before printing")
	list.Flags().Int("limit", 0, "Prints at most this many pairs, or all pairs if 0")

	left := set.AddCommand("left", "Prints the right value paired with a left value", "l").
		Usage("left [FLAGS...] KEY").
		Does(a.lookupLeft)
	a.commonFlags(left.Flags())

	right := set.AddCommand("right", "Prints the left value paired with a right value", "r").
		Usage("right [FLAGS...] VALUE").
		Does(a.lookupRight)
	a.commonFlags(right.Flags())

	put := set.AddCommand("put", "Adds a pair, replacing any pair that shares either value", "set").
		Usage("put [FLAGS...] LEFT RIGHT").
		Does(a.put)
	a.commonFlags(put.Flags())
	put.Flags().Bool("strict", false, "Fail instead of replacing conflicting pairs")

	rmLeft := set.AddCommand("rm-left", "Removes the pair with the given left value").
		Usage("rm-left [FLAGS...] KEY").
		Does(a.removeLeft)
	a.commonFlags(rmLeft.Flags())

	rmRight := set.AddCommand("rm-right", "Removes the pair with the given right value").
		Usage("rm-right [FLAGS...] VALUE").
		Does(a.removeRight)
	a.commonFlags(rmRight.Flags())

	ranged := set.AddCommand("range", "Lists pairs with left values in [FROM, TO)").
		Usage("range [FLAGS...] FROM TO").
		Does(a.listRange)
	a.commonFlags(ranged.Flags())
	ranged.Flags().Bool("by-right", false, "Select and order by right values instead")

	check := set.AddCommand("check", "Verifies that the pair file loads into a consistent map").
		Usage("check [FLAGS...]").
		Does(a.check)
	a.commonFlags(check.Flags())
	return set
}

// load reads the pair file into a new map, configured from the parsed flags.
// It runs before every command.
func (a *app) load() error {
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: a.level}))
	opts := []bimap.Option[string, string]{bimap.WithLogger[string, string](a.log)}
	if a.ordered {
		a.pairs = bimap.NewOrdered(opts...)
	} else {
		a.pairs = bimap.NewSwiss(0, opts...)
	}
	return loadPairs(a.file, a.pairs, a.log)
}

// save writes all pairs in order of left values.
func (a *app) save() error {
	pairs := a.sorted(a.pairs.Left(), false)
	if err := savePairs(a.file, pairs); err != nil {
		return fmt.Errorf("failed to save %s: %w", a.file, err)
	}
	a.log.Debug("Saved pairs", "file", a.file, "count", len(pairs))
	return nil
}

// sorted collects pairs, sorting them when the stores don't already yield them in order.
func (a *app) sorted(pairs iterx.Pairs[string, string], byRight bool) []bimap.Pair[string, string] {
	var result []bimap.Pair[string, string]
	for left, right := range pairs {
		result = append(result, bimap.Pair[string, string]{Left: left, Right: right})
	}
	if !a.ordered {
		slices.SortFunc(result, func(x, y bimap.Pair[string, string]) int {
			if byRight {
				return cmp.Compare(x.Right, y.Right)
			}
			return cmp.Compare(x.Left, y.Left)
		})
	}
	return result
}

func (a *app) printPairs(pairs []bimap.Pair[string, string]) error {
	if !a.terminal {
		for _, p := range pairs {
			if _, err := fmt.Fprintf(a.stdout, "%s\t%s\n", p.Left, p.Right); err != nil {
				return err
			}
		}
		return nil
	}
	tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "LEFT\tRIGHT")
	for _, p := range pairs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.Left, p.Right)
	}
	return tw.Flush()
}

func (a *app) list(flags *flag.FlagSet, _ *cli.Printer) error {
	if err := cli.ExactArgs(flags.Args()); err != nil {
		return err
	}
	byRight := cli.MustGet(flags.GetBool("by-right"))
	offset := cli.MustGet(flags.GetInt("offset"))
	limit := cli.MustGet(flags.GetInt("limit"))
	var pairs []bimap.Pair[string, string]
	if byRight {
		pairs = a.sorted(a.pairs.Right(), true)
	} else {
		pairs = a.sorted(a.pairs.Left(), false)
	}
	page := iterx.Select(pairs).Offset(offset)
	if limit > 0 {
		page = page.Limit(limit)
	}
	return a.printPairs(page.Slice())
}

func (a *app) lookupLeft(flags *flag.FlagSet, _ *cli.Printer) error {
	var left string
	if err := cli.ExactArgs(flags.Args(), &left); err != nil {
		return err
	}
	right, ok := a.pairs.GetLeft(left)
	if !ok {
		return fmt.Errorf("left value '%s': %w", left, ErrNotFound)
	}
	_, err := fmt.Fprintln(a.stdout, right)
	return err
}

func (a *app) lookupRight(flags *flag.FlagSet, _ *cli.Printer) error {
	var right string
	if err := cli.ExactArgs(flags.Args(), &right); err != nil {
		return err
	}
	left, ok := a.pairs.GetRight(right)
	if !ok {
		return fmt.Errorf("right value '%s': %w", right, ErrNotFound)
	}
	_, err := fmt.Fprintln(a.stdout, left)
	return err
}

func (a *app) put(flags *flag.FlagSet, out *cli.Printer) error {
	var left, right string
	if err := cli.ExactArgs(flags.Args(), &left, &right); err != nil {
		return err
	}
	// Values must read back unchanged from the pair file.
	if err := validatePair(left, right); err != nil {
		return cli.NewUsageError("%w", err)
	}
	if cli.MustGet(flags.GetBool("strict")) {
		if err := a.pairs.TryInsert(left, right); err != nil {
			return err
		}
		return a.save()
	}
	ow := a.pairs.Insert(left, right)
	if ow.Same() {
		a.log.Info("Pair already present", "left", left, "right", right)
		return nil
	}
	for _, p := range ow.Pairs() {
		out.Printf("replaced %s\n", p)
	}
	return a.save()
}

func (a *app) removeLeft(flags *flag.FlagSet, _ *cli.Printer) error {
	var left string
	if err := cli.ExactArgs(flags.Args(), &left); err != nil {
		return err
	}
	if _, ok := a.pairs.RemoveLeft(left); !ok {
		return fmt.Errorf("left value '%s': %w", left, ErrNotFound)
	}
	return a.save()
}

func (a *app) removeRight(flags *flag.FlagSet, _ *cli.Printer) error {
	var right string
	if err := cli.ExactArgs(flags.Args(), &right); err != nil {
		return err
	}
	if _, ok := a.pairs.RemoveRight(right); !ok {
		return fmt.Errorf("right value '%s': %w", right, ErrNotFound)
	}
	return a.save()
}

func (a *app) listRange(flags *flag.FlagSet, _ *cli.Printer) error {
	var from, to string
	if err := cli.ExactArgs(flags.Args(), &from, &to); err != nil {
		return err
	}
	var (
		pairs iterx.Pairs[string, string]
		err   error
	)
	if cli.MustGet(flags.GetBool("by-right")) {
		pairs, err = a.pairs.RightRange(from, to)
	} else {
		pairs, err = a.pairs.LeftRange(from, to)
	}
	if err != nil {
		return fmt.Errorf("range requires --ordered: %w", err)
	}
	return a.printPairs(a.sorted(pairs, false))
}

func (a *app) check(flags *flag.FlagSet, _ *cli.Printer) error {
	if err := cli.ExactArgs(flags.Args()); err != nil {
		return err
	}
	if err := a.pairs.Verify(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.stdout, "ok: %d pairs\n", a.pairs.Len())
	return err
}
