package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0-dev" // Overridden at build time via -ldflags

	flagFix     bool
	flagVerbose bool
	flagJSON    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "openclaw-doctor",
	Short: "Diagnose, validate, and auto-fix OpenClaw installations",
	Long: `OpenClaw Doctor - Diagnose, validate, and auto-fix OpenClaw AI assistant installations.

Running with no arguments executes every health check and prints a styled
report. Use --fix to attempt automatic remedies, --json for machine-readable
output, and 'check <name>' to run a single check.

Exit codes:
  0 - no failed checks (warnings do not affect the exit code)
  1 - at least one failed check, or an invocation error`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.Context(), nil)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagFix, "fix", "f", false, "attempt to automatically fix issues")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "show detailed output")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "output results as JSON")
}

// newLogger builds the diagnostics logger. Probe results go to stdout; the
// logger only carries runner tracing on stderr.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
