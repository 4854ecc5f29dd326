package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Okediya/openclaw-doctor/internal/check"
)

var listChecksCmd = &cobra.Command{
	Use:   "list-checks",
	Short: "List every available check without running any",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		fmt.Println(cyan("Available checks:"))
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, p := range check.NewRegistry().Probes() {
			fmt.Fprintf(tw, "  %s\t%s\n", p.ID(), p.Description())
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listChecksCmd)
}
