package main

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <name> [name...]",
	Short: "Run one or more named checks",
	Long: `Run only the named checks instead of the full suite.

Names accept aliases, e.g. 'node' for nodejs, 'keys' for api-keys and 'net'
for network. Use 'list-checks' to see every identifier.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.Context(), args)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
