package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"proofbench/internal/evaluate"
	"proofbench/internal/profile"
	"proofbench/internal/report"
	"proofbench/internal/tui"
)

// command describes a CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	long  string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "list",
		short: "List the profiles under comparison",
		usage: "proofbench list [--profiles <file>]",
		long: `List the names of all registered profiles in insertion order.

With --profiles, definitions are loaded from a YAML file instead of the
built-in comparison set.
`,
		run: runList,
	},
	{
		name:  "evaluate",
		short: "Evaluate a single profile",
		usage: "proofbench evaluate [--profiles <file>] [--format text|json|yaml] <name>",
		long: `Evaluate one profile and render its snapshot: the four raw dimensions,
the composite quality index, the evaluation timestamp, and the metadata
hash. The hash is reproducible — it covers the profile fields and the
index, never the timestamp.
`,
		run: runEvaluate,
	},
	{
		name:  "report",
		short: "Evaluate every profile and render a report",
		usage: "proofbench report [--profiles <file>] [--format text|json|yaml]",
		long: `Evaluate every registered profile in insertion order and render the
full comparison report.
`,
		run: runReport,
	},
	{
		name:  "browse",
		short: "Browse evaluations interactively",
		usage: "proofbench browse [--profiles <file>]",
		long: `Open an interactive table of all evaluated profiles. Arrow keys select
a row; the selected profile's description and full metadata hash are
shown below the table. Quit with q.
`,
		run: runBrowse,
	},
}

// logger is set in main; command runs log failures and run summaries here.
var logger = zap.NewNop()

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "proofbench — comparative scoring for cryptographic architectures\n\n")
	fmt.Fprintf(w, "Usage:\n  proofbench <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'proofbench help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s", cmd.usage, cmd.long)
			return
		}
	}
	fmt.Fprintf(w, "proofbench: unknown command %q\n\nRun 'proofbench help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)
		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}
		return nil
	}
	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}
	return fmt.Errorf("unknown command %q\n\nRun 'proofbench help' for usage.", args[0])
}

// ---------------------------------------------------------------------------
// Shared flag handling
// ---------------------------------------------------------------------------

// runFlags parses the flags shared by all subcommands and returns the flag
// set so callers can read positional arguments.
func runFlags(name string, args []string, withFormat bool) (fs *flag.FlagSet, profilesPath *string, format *string, err error) {
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	profilesPath = fs.String("profiles", "", "YAML file of profile definitions (default: built-in set)")
	if withFormat {
		format = fs.String("format", "text", "output format: text, json, or yaml")
	}
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	return fs, profilesPath, format, nil
}

// loadRegistry builds the registry from a definitions file, or from the
// built-in comparison set when path is empty. A validation failure here
// aborts the whole run — profiles are never silently skipped.
func loadRegistry(path string) (*profile.Registry, error) {
	defs := profile.DefaultDefinitions()
	if path != "" {
		var err error
		defs, err = profile.LoadDefinitions(path)
		if err != nil {
			return nil, err
		}
	}
	reg, err := profile.NewRegistry(defs)
	if err != nil {
		return nil, fmt.Errorf("register profiles: %w", err)
	}
	return reg, nil
}

// ---------------------------------------------------------------------------
// list
// ---------------------------------------------------------------------------

func runList(args []string) error {
	_, profilesPath, _, err := runFlags("list", args, false)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(*profilesPath)
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		fmt.Println(name)
	}
	return nil
}

// ---------------------------------------------------------------------------
// evaluate
// ---------------------------------------------------------------------------

func runEvaluate(args []string) error {
	fs, profilesPath, format, err := runFlags("evaluate", args, true)
	if err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: proofbench evaluate [flags] <name>")
	}
	name := fs.Arg(0)

	f, err := report.ParseFormat(*format)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(*profilesPath)
	if err != nil {
		return err
	}
	p, ok := reg.Get(name)
	if !ok {
		return fmt.Errorf("unknown profile %q (run 'proofbench list' for names)", name)
	}

	out, err := report.RenderOne(evaluate.Evaluate(p), f)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// ---------------------------------------------------------------------------
// report
// ---------------------------------------------------------------------------

func runReport(args []string) error {
	_, profilesPath, format, err := runFlags("report", args, true)
	if err != nil {
		return err
	}
	f, err := report.ParseFormat(*format)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(*profilesPath)
	if err != nil {
		return err
	}

	run := report.NewRun(reg)
	out, err := run.Render(f)
	if err != nil {
		return err
	}
	fmt.Print(out)
	logger.Info("evaluation run complete",
		zap.String("run_id", run.RunID),
		zap.Int("profiles", reg.Len()))
	return nil
}

// ---------------------------------------------------------------------------
// browse
// ---------------------------------------------------------------------------

func runBrowse(args []string) error {
	_, profilesPath, _, err := runFlags("browse", args, false)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(*profilesPath)
	if err != nil {
		return err
	}

	snapshots := make([]evaluate.Snapshot, 0, reg.Len())
	for p := range reg.All() {
		snapshots = append(snapshots, evaluate.Evaluate(p))
	}
	if _, err := tea.NewProgram(tui.New(snapshots)).Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

func main() {
	l, err := zap.NewProduction()
	if err == nil {
		logger = l
		defer logger.Sync()
	}
	if err := dispatch(os.Args[1:]); err != nil {
		logger.Error("run failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "proofbench: %v\n", err)
		os.Exit(1)
	}
}
