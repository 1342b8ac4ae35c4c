// Package cli implements the wordchain command-line interface.
//
// The root command reads whitespace-separated words from the files named
// as arguments (or stdin) and prints them in chain order, each word one
// character edit away from the next. When no chain exists it prints
// "No solution is possible." and still exits with status 0.
//
// # Commands
//
//   - wordchain [files]: solve and print the chain
//   - verify: check that a given word sequence is a valid chain
//   - graph: print the one-edit-apart graph as Graphviz DOT, or SVG
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging to stderr via
// charmbracelet/log. Loggers are passed through context.Context.
//
// # Configuration
//
// Defaults for --max-words, --format and --verbose may come from a TOML
// file (see internal/config); flags given on the command line win.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordchain/internal/config"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app carries the I/O streams and the settings shared by all commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	format     string
	maxWords   int
}

// Execute runs the wordchain CLI on the process streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree reading from stdin and writing
// results to stdout and logs and errors to stderr.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "wordchain [files...]",
		Short: "Order words so that each is one edit away from the next",
		Long: `wordchain reads whitespace-separated words and prints them in an order
where every word differs from the next by exactly one inserted, deleted or
substituted character. Words are read from the named files, or from stdin.`,
		Args:              cobra.ArbitraryArgs,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSolve,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("wordchain %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&a.configPath, "config", "", "path to a TOML config file (default $"+config.EnvConfig+" or the user config dir)")
	pf.IntVar(&a.maxWords, "max-words", 0, "largest word list to attempt (default from config, 24)")

	root.Flags().StringVarP(&a.format, "format", "f", "", "output format: plain, json, yaml, pretty (default plain)")

	root.AddCommand(a.newVerifyCmd())
	root.AddCommand(a.newGraphCmd())

	return root
}

// setup loads the config file, lets explicit flags override it and
// attaches a logger to the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if !flags.Changed("verbose") {
		a.verbose = cfg.Verbose
	}
	if !flags.Changed("max-words") {
		a.maxWords = cfg.MaxWords
	}
	if a.format == "" {
		a.format = cfg.Format
	}

	level := log.InfoLevel
	if a.verbose {
		level = log.DebugLevel
	}
	logger := newLogger(a.stderr, level)
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}
	cmd.SetContext(withLogger(cmd.Context(), logger))
	return nil
}
