package check

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Okediya/openclaw-doctor/internal/clawhome"
)

// FoldersProbe checks the application directory structure.
type FoldersProbe struct{}

func (p *FoldersProbe) ID() string          { return "folders" }
func (p *FoldersProbe) Name() string        { return "Folders" }
func (p *FoldersProbe) Description() string { return "Checks OpenClaw directory structure" }

func (p *FoldersProbe) Run(ctx context.Context, env *Env) Result {
	home := env.Dirs.Existing()
	if home == "" {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: "OpenClaw home directory not found",
			Details: "Expected " + env.Dirs.Home + " or " + env.Dirs.Fallback,
			Fixable: true,
			Suggestions: []string{
				"Run 'openclaw init' to create the directory structure",
				"Or rerun with --fix to create " + env.Dirs.Home,
			},
		}
	}

	var missing, found, unwritable []string
	if !clawhome.Writable(home) {
		unwritable = append(unwritable, home)
	}
	for _, name := range clawhome.ExpectedDirs {
		dir := filepath.Join(home, name)
		st, err := os.Stat(dir)
		if err != nil || !st.IsDir() {
			missing = append(missing, name)
			continue
		}
		found = append(found, name)
		if !clawhome.Writable(dir) {
			unwritable = append(unwritable, dir)
		}
	}

	if len(unwritable) > 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusFail,
			Message: fmt.Sprintf("Permission issues in %d path(s)", len(unwritable)),
			Details: "Not writable: " + strings.Join(unwritable, ", "),
			Suggestions: []string{
				"Fix permissions with: chmod 755 " + home,
				"Ensure your user owns the directory",
			},
		}
	}

	details := "Home: " + home
	if len(found) > 0 {
		details += "\nDirs: " + strings.Join(found, ", ")
	}

	if len(missing) > 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: fmt.Sprintf("OpenClaw structure incomplete (%d missing)", len(missing)),
			Details: details + "\nMissing: " + strings.Join(missing, ", "),
			Fixable: true,
			Suggestions: []string{
				"Rerun with --fix to create: " + strings.Join(missing, ", "),
			},
		}
	}

	return Result{
		Name:    p.Name(),
		Status:  StatusPass,
		Message: "OpenClaw folder structure OK",
		Details: details,
	}
}

// Fix creates the home directory and any missing subdirectories. MkdirAll
// makes the operation idempotent.
func (p *FoldersProbe) Fix(ctx context.Context, env *Env) error {
	home := env.Dirs.Existing()
	if home == "" {
		home = env.Dirs.Home
	}
	for _, name := range clawhome.ExpectedDirs {
		dir := filepath.Join(home, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
