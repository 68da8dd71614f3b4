// Package main is the entry point for the snarkyed viewer.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/snarkyed/internal/app"
	"github.com/dshills/snarkyed/internal/config"
	"github.com/dshills/snarkyed/internal/engine"
	"github.com/dshills/snarkyed/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

// defaultDumpRows is the frame height printed when stdout is not a terminal.
const defaultDumpRows = 24

// options holds the command line flags.
type options struct {
	configPath string
	logLevel   string
	logFile    string
	pageStep   int
	dump       int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := fang.Execute(ctx, newRootCmd(),
		fang.WithVersion(version),
		fang.WithCommit(commit),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, "Error:", err)
		}),
	); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "snarkyed [flags] file",
		Short: "Terminal text viewer",
		Long: `snarkyed opens a text file in a scrolling terminal view.

Move with the arrow keys or h/j/k/l, page with PgUp/PgDn or Ctrl-B/Ctrl-F,
and type :<line> to jump. :q, Ctrl-C or Ctrl-Q quits.`,
		Example: `  # View a file
  snarkyed notes.txt

  # Print the first 40 lines without a terminal UI
  snarkyed --dump 40 notes.txt

  # Trace navigation to a log file
  snarkyed --log-level debug --log-file /tmp/snarkyed.log notes.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.OutOrStdout(), cfg, opts.dump, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", config.DefaultPath(), "Path to configuration file")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flags.IntVar(&opts.pageStep, "page-step", config.DefaultPageStep, "Lines moved by a page scroll")
	flags.IntVar(&opts.dump, "dump", 0, "Print the first frame of N rows and exit")

	return cmd
}

// resolveConfig loads the config file and environment, then applies the
// flags the user set explicitly.
func resolveConfig(cmd *cobra.Command, opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}
	if flags.Changed("page-step") {
		cfg.Editor.PageStep = opts.pageStep
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, out io.Writer, cfg *config.Config, dump int, path string) error {
	logger, closer, err := app.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	e, err := engine.Open(path,
		engine.WithPageStep(cfg.Editor.PageStep),
		engine.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	if dump == 0 && !isTerminal(out) {
		dump = defaultDumpRows
	}
	if dump > 0 {
		return app.Dump(out, e, dump)
	}

	t, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	return app.New(e, t, app.Options{
		LineHeight: cfg.Editor.LineHeight,
		TabWidth:   cfg.Editor.TabWidth,
		Logger:     logger,
	}).Run(ctx)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
