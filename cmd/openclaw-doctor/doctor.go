package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/Okediya/openclaw-doctor/internal/check"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run all OpenClaw health checks",
	Long: `Run every OpenClaw health check and print a report.

This is the same as invoking openclaw-doctor with no arguments; it exists so
scripts can name the operation explicitly.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.Context(), nil)
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// runDoctor executes the named checks (all when names is nil) and renders
// the report. The process exits through the report's exit code so warnings
// never fail the invocation.
func runDoctor(ctx context.Context, names []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	env := check.NewEnv(newLogger(), flagVerbose)
	runner := check.NewRunner(env, version, flagFix)

	report, err := runner.Run(ctx, names)
	if err != nil {
		return err
	}

	if flagJSON {
		if err := report.OutputJSON(os.Stdout); err != nil {
			return err
		}
	} else {
		report.OutputText(os.Stdout, flagVerbose)
	}

	if code := report.ExitCode(); code != 0 {
		os.Exit(code)
	}
	return nil
}
