package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rxprobe/rxprobe/internal/config"
	"github.com/rxprobe/rxprobe/internal/engine"
	"github.com/rxprobe/rxprobe/internal/logging"
	"github.com/rxprobe/rxprobe/internal/oracle"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagFlavor  string
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "rxprobe [file...]",
	Short: "Line-oriented regex oracle for conformance harnesses",
	Long: `Rxprobe answers regex compilation and matching queries over a line
protocol, one verdict line per input line, flushed immediately.

A line is compiled as a pattern when no pattern is pending; while a
pattern is pending, a line prefixed TEST: is matched against it at the
start of the string, and any other line resets the session. Verdicts
are "success", "test good", or the engine's diagnostic escaped onto a
single line.

Input is read from stdin, or from the named files in order.

Example:
  printf 'a+\nTEST:aaa\n' | rxprobe
  rxprobe --flavor pcre queries.txt`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runOracle,
	SilenceUsage: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("rxprobe version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&flagFlavor, "flavor", "f", "", "Regex flavor: go or pcre (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default .rxprobe.yaml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runOracle(cmd *cobra.Command, args []string) error {
	eng, err := setup()
	if err != nil {
		return err
	}

	in, cleanup, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signalContext(cmd)
	defer stop()

	return oracle.NewLoop(eng, in, cmd.OutOrStdout()).Run(ctx)
}

// setup resolves config and flags into a ready engine, initialising
// logging on the way. Flags win over the config file.
func setup() (engine.Engine, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagFlavor != "" {
		cfg.Flavor = flagFlavor
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if err := logging.Init(cfg.LogLevel); err != nil {
		return nil, err
	}
	return engine.Lookup(cfg.Flavor)
}

// openInput returns a reader over the named files in order, or the
// command's stdin when no files are given. The cleanup function closes
// any opened files.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return cmd.InOrStdin(), func() {}, nil
	}

	files := make([]*os.File, 0, len(args))
	cleanup := func() {
		for _, f := range files {
			f.Close()
		}
	}

	readers := make([]io.Reader, 0, len(args))
	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to open input file: %w", err)
		}
		files = append(files, f)
		readers = append(readers, f)
	}
	return io.MultiReader(readers...), cleanup, nil
}

// signalContext derives a context cancelled by SIGINT or SIGTERM, so
// an interrupted loop exits cleanly with no error output.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
