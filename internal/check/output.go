package check

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// OutputJSON writes the report as an indented JSON document.
func (r *Report) OutputJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// OutputText writes the styled multi-line summary. Details are included
// only in verbose mode.
func (r *Report) OutputText(w io.Writer, verbose bool) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	fmt.Fprintln(w)
	fmt.Fprintln(w, cyan("OpenClaw Doctor - diagnosing your OpenClaw installation"))
	fmt.Fprintln(w, gray("══════════════════════════════════════════"))
	fmt.Fprintf(w, "%s %s\n", gray("Timestamp:"), r.Timestamp.Format(time.RFC3339))
	if r.Version != "" {
		fmt.Fprintf(w, "%s %s\n", gray("Version:"), r.Version)
	}
	fmt.Fprintln(w)

	total := len(r.Checks)
	for i, res := range r.Checks {
		var icon string
		var paint func(a ...interface{}) string
		switch res.Status {
		case StatusPass:
			icon = "✓"
			paint = green
		case StatusWarn:
			icon = "!"
			paint = yellow
		default:
			icon = "✗"
			paint = red
		}

		fmt.Fprintf(w, "[%d/%d] %-12s %s %s\n", i+1, total, res.Name+"...", paint(icon), paint(res.Message))
		if verbose && res.Details != "" {
			fmt.Fprintf(w, "      %s\n", gray(res.Details))
		}
		if res.Status != StatusPass && len(res.Suggestions) > 0 {
			for _, s := range res.Suggestions {
				fmt.Fprintf(w, "      %s %s\n", gray("•"), s)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, gray("══════════════════════════════════════════"))
	fmt.Fprintf(w, "%s %s %d  %s %d  %s %d\n",
		cyan("Summary:"),
		green("passed"), r.Summary.Passed,
		yellow("warnings"), r.Summary.Warnings,
		red("failed"), r.Summary.Failed,
	)

	if r.Summary.Failed > 0 {
		fmt.Fprintln(w, red("Overall: FAIL (critical issues detected)"))
	} else if r.Summary.Warnings > 0 {
		fmt.Fprintln(w, yellow("Overall: WARN (operational with warnings)"))
	} else {
		fmt.Fprintln(w, green("Overall: PASS (installation looks healthy)"))
	}
	if r.Summary.Failed > 0 || r.Summary.Warnings > 0 {
		fmt.Fprintln(w, gray("To attempt automatic fixes, run: openclaw-doctor --fix"))
	}
	fmt.Fprintln(w)
}
