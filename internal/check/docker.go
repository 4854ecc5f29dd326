package check

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

// DockerProbe validates the optional Docker setup. Docker is only needed
// for server deployments, so absence is a warning rather than a failure.
type DockerProbe struct{}

func (p *DockerProbe) ID() string          { return "docker" }
func (p *DockerProbe) Name() string        { return "Docker" }
func (p *DockerProbe) Description() string { return "Validates Docker & Compose setup (optional)" }

func (p *DockerProbe) Run(ctx context.Context, env *Env) Result {
	if lookPath("docker") == "" {
		return Result{
			Name:        p.Name(),
			Status:      StatusWarn,
			Message:     "Docker is not installed (optional for desktop use)",
			Details:     "Docker is only required for server deployments",
			Suggestions: dockerInstallSuggestions(),
		}
	}

	version := ""
	if out, err := runCommand(ctx, "docker", "--version"); err == nil {
		// "Docker version 24.0.7, build afdd53b"
		version = strings.TrimSpace(strings.TrimPrefix(strings.SplitN(out, ",", 2)[0], "Docker version"))
	}

	if _, err := runCommand(ctx, "docker", "info"); err != nil {
		msg := "Docker installed but not running"
		if version != "" {
			msg = fmt.Sprintf("Docker %s installed but not running", version)
		}
		return Result{
			Name:        p.Name(),
			Status:      StatusWarn,
			Message:     msg,
			Fixable:     true,
			Suggestions: []string{"Start Docker Desktop or the Docker daemon"},
		}
	}

	details := "Docker " + version
	if out, err := runCommand(ctx, "docker", "compose", "version", "--short"); err == nil {
		details += ", Compose " + strings.TrimPrefix(out, "v")
	} else if out, err := runCommand(ctx, "docker-compose", "--version"); err == nil {
		details += ", " + strings.SplitN(out, ",", 2)[0]
	} else {
		details += " (Compose not found)"
	}

	return Result{
		Name:    p.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Docker %s running", version),
		Details: details,
	}
}

// Fix attempts to start the Docker daemon. Safe to rerun: starting an
// already-running daemon is a no-op.
func (p *DockerProbe) Fix(ctx context.Context, env *Env) error {
	if lookPath("docker") == "" {
		return fmt.Errorf("docker is not installed; install it first")
	}
	switch runtime.GOOS {
	case "darwin":
		if _, err := runCommand(ctx, "open", "-a", "Docker"); err != nil {
			return fmt.Errorf("start Docker Desktop: %w", err)
		}
		return nil
	case "linux":
		if out, err := runCommand(ctx, "sudo", "systemctl", "start", "docker"); err != nil {
			return fmt.Errorf("systemctl start docker: %w (%s)", err, out)
		}
		return nil
	default:
		return fmt.Errorf("start Docker Desktop manually on %s", runtime.GOOS)
	}
}

func dockerInstallSuggestions() []string {
	switch runtime.GOOS {
	case "darwin":
		return []string{
			"Install Docker Desktop: https://www.docker.com/products/docker-desktop/",
			"Or via Homebrew: brew install --cask docker",
		}
	case "windows":
		return []string{
			"Install Docker Desktop: https://www.docker.com/products/docker-desktop/",
			"Or via winget: winget install Docker.DockerDesktop",
		}
	default:
		return []string{
			"Install Docker: https://docs.docker.com/engine/install/",
			"For Ubuntu: sudo apt install docker.io docker-compose-v2",
			"Then: sudo systemctl enable --now docker",
		}
	}
}
