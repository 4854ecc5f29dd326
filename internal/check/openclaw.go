package check

import (
	"context"
	"fmt"
	"strings"
)

// OpenClawProbe checks the OpenClaw CLI itself is installed and reports its
// version and home directory.
type OpenClawProbe struct{}

func (p *OpenClawProbe) ID() string          { return "openclaw" }
func (p *OpenClawProbe) Name() string        { return "OpenClaw" }
func (p *OpenClawProbe) Description() string { return "Checks OpenClaw CLI installation" }

func (p *OpenClawProbe) Run(ctx context.Context, env *Env) Result {
	path := lookPath("openclaw", "oc", "claw")
	if path == "" {
		return Result{
			Name:    p.Name(),
			Status:  StatusFail,
			Message: "OpenClaw CLI is not installed",
			Suggestions: []string{
				"Run the OpenClaw installer: curl -fsSL https://openclawd.ai/install.sh | bash",
				"Or visit: https://github.com/openclaw/openclaw",
			},
		}
	}

	out, err := runCommand(ctx, path, "--version")
	if err != nil {
		return Result{
			Name:        p.Name(),
			Status:      StatusWarn,
			Message:     "OpenClaw found but version could not be determined",
			Details:     "Path: " + path,
			Suggestions: []string{"Try running 'openclaw --version' manually"},
		}
	}
	version := strings.TrimSpace(strings.TrimPrefix(out, "openclaw"))
	version = strings.TrimPrefix(version, "v")

	details := "Path: " + path
	if home := env.Dirs.Existing(); home != "" {
		details += "\nHome: " + home
	}

	return Result{
		Name:    p.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("OpenClaw v%s installed", version),
		Details: details,
	}
}
