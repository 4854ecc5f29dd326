package check

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Okediya/openclaw-doctor/internal/logscan"
)

const (
	// maxLogAge bounds how far back the probe looks.
	maxLogAge = 24 * time.Hour
	// maxLogFiles caps how many recent files are scanned per run.
	maxLogFiles = 5
	// maxIssuesShown caps the categories listed in the result details.
	maxIssuesShown = 5
)

// LogsProbe scans recent log files for known failure patterns and explains
// them in plain language.
type LogsProbe struct{}

func (p *LogsProbe) ID() string          { return "logs" }
func (p *LogsProbe) Name() string        { return "Logs" }
func (p *LogsProbe) Description() string { return "Parses logs for errors with explanations" }

func (p *LogsProbe) Run(ctx context.Context, env *Env) Result {
	logDir := ""
	for _, dir := range env.Dirs.LogDirCandidates() {
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			logDir = dir
			break
		}
	}
	if logDir == "" {
		return Result{
			Name:    p.Name(),
			Status:  StatusPass,
			Message: "No log directory found (OK if OpenClaw is new)",
			Details: "Logs will appear under " + env.Dirs.LogDirCandidates()[0] + " after using OpenClaw",
		}
	}

	files := logscan.RecentLogFiles(logDir, maxLogAge, maxLogFiles)
	if len(files) == 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusPass,
			Message: "No recent logs found",
			Details: fmt.Sprintf("Checked %s for logs from the last %dh", logDir, int(maxLogAge.Hours())),
		}
	}

	var scanned logscan.Result
	for _, f := range files {
		if err := logscan.ScanFile(f, &scanned); err != nil {
			env.Log.Debug().Str("file", f).Err(err).Msg("skipping unreadable log file")
		}
	}

	if len(scanned.Matches) == 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusPass,
			Message: fmt.Sprintf("No errors in recent logs (%d files checked)", len(files)),
			Details: "Log directory: " + logDir,
		}
	}

	categories := scanned.Categories()
	var details, suggestions []string
	for i, m := range categories {
		if i < maxIssuesShown {
			details = append(details, fmt.Sprintf("%s: %s", m.Rule.Message, m.Rule.Explanation))
		}
		if i < 3 {
			suggestions = append(suggestions, m.Rule.Suggestion)
		}
	}
	if env.Verbose {
		details = append(details, fmt.Sprintf("Matched lines: %d", scanned.LinesMatched))
		for _, m := range scanned.Matches {
			details = append(details, fmt.Sprintf("[%s] %s", m.File, m.Line))
		}
	}

	status := StatusWarn
	if scanned.HasErrors() {
		status = StatusFail
	}
	return Result{
		Name:        p.Name(),
		Status:      status,
		Message:     fmt.Sprintf("Found %d issue(s) in logs", len(categories)),
		Details:     strings.Join(details, "\n"),
		Suggestions: suggestions,
	}
}
