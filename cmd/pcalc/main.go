package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pcalc/internal/config"
)

var (
	// Global flags
	verbose bool

	// Effective configuration, loaded in PersistentPreRunE.
	cfg *config.Config

	// Logger writes to stderr so stdout stays a clean data channel.
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pcalc",
	Short: "Basic math operations for Unix pipes",
	Long: `pcalc applies one math operation per invocation to newline-delimited
numbers read from stdin, writing one result per line to stdout.

Most commands stream: each input value is transformed and emitted
immediately. Commands prefixed with 'r' (and min/max/mean/median/mode)
reduce the whole input to a single value; for instance 'pcalc add 3'
adds 3 to every value while 'pcalc radd' adds all values together.

Blank input lines are skipped. Any other line must be a number.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = buildLogger(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// buildLogger constructs the stderr logger from config; --verbose forces
// debug level.
func buildLogger(lc config.LoggingConfig) (*zap.Logger, error) {
	var zc zap.Config
	if lc.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.AddCommand(
		addCmd, subCmd, mulCmd, divCmd, powCmd,
		modCmd, roundCmd, ceilCmd, floorCmd, absCmd,
		raddCmd, rsubCmd, rmulCmd, rdivCmd, rmodCmd, rpowCmd,
		minCmd, maxCmd, meanCmd, medianCmd, modeCmd,
		evalCmd,
	)
}

// protectNegativeArgs inserts a "--" before the first argument that is a
// negative number, so that constants like -3 are not mistaken for flags.
// Arguments after an explicit "--" are left alone.
func protectNegativeArgs(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if len(a) > 1 && a[0] == '-' && (a[1] >= '0' && a[1] <= '9' || a[1] == '.') {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			out = append(out, args[i:]...)
			return out
		}
	}
	return args
}

func main() {
	// A downstream consumer closing the pipe early is normal in shell
	// pipelines. Disarming SIGPIPE turns those writes into EPIPE errors,
	// which the run loop swallows for a clean zero exit.
	signal.Ignore(syscall.SIGPIPE)

	rootCmd.SetArgs(protectNegativeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pcalc: %v\n", err)
		os.Exit(1)
	}
}
