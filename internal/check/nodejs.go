package check

import (
	"context"
	"fmt"
	"regexp"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// minNodeVersion is the minimum Node.js release OpenClaw supports.
var minNodeVersion = semver.MustParse("18.0.0")

var nodeVersionRe = regexp.MustCompile(`v?(\d+\.\d+\.\d+)`)

// NodeJSProbe verifies Node.js is installed and recent enough.
type NodeJSProbe struct{}

func (p *NodeJSProbe) ID() string          { return "nodejs" }
func (p *NodeJSProbe) Name() string        { return "Node.js" }
func (p *NodeJSProbe) Description() string { return "Verifies Node.js >= 18.x is installed" }

func (p *NodeJSProbe) Run(ctx context.Context, env *Env) Result {
	path := lookPath("node")
	if path == "" {
		return Result{
			Name:        p.Name(),
			Status:      StatusFail,
			Message:     "Node.js is not installed",
			Details:     "OpenClaw requires Node.js >= 18.x",
			Suggestions: nodeInstallSuggestions(),
		}
	}

	out, err := runCommand(ctx, "node", "--version")
	if err != nil {
		return Result{
			Name:        p.Name(),
			Status:      StatusWarn,
			Message:     "Node.js found but version could not be determined",
			Details:     fmt.Sprintf("Path: %s\n%s", path, out),
			Suggestions: []string{"Try running 'node --version' manually"},
		}
	}

	m := nodeVersionRe.FindStringSubmatch(out)
	if m == nil {
		return Result{
			Name:        p.Name(),
			Status:      StatusWarn,
			Message:     "Node.js found but version could not be determined",
			Details:     fmt.Sprintf("Path: %s\nOutput: %s", path, out),
			Suggestions: []string{"Try running 'node --version' manually"},
		}
	}
	ver, err := semver.NewVersion(m[1])
	if err != nil {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: "Node.js found but version could not be determined",
			Details: fmt.Sprintf("Path: %s\nOutput: %s", path, out),
		}
	}

	if ver.LessThan(minNodeVersion) {
		return Result{
			Name:        p.Name(),
			Status:      StatusFail,
			Message:     fmt.Sprintf("Node.js v%s is below minimum v%s", ver, minNodeVersion),
			Suggestions: nodeInstallSuggestions(),
		}
	}

	return Result{
		Name:    p.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Node.js v%s installed", ver),
		Details: "Path: " + path,
	}
}

func nodeInstallSuggestions() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"Install via Homebrew: brew install node",
			"Or use nvm: curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/v0.39.0/install.sh | bash",
			"Then: nvm install 20",
		}
	case "windows":
		return []string{
			"Download from: https://nodejs.org/en/download/",
			"Or use winget: winget install OpenJS.NodeJS.LTS",
		}
	default:
		return []string{
			"Install via nvm: curl -o- https://raw.githubusercontent.com/nvm-sh/nvm/v0.39.0/install.sh | bash",
			"Then: nvm install 20",
			"Or via package manager (Ubuntu): sudo apt install nodejs npm",
		}
	}
}
