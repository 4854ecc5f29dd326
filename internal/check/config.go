package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/Okediya/openclaw-doctor/internal/clawhome"
)

// ConfigProbe locates and validates the OpenClaw configuration file.
type ConfigProbe struct{}

func (p *ConfigProbe) ID() string          { return "config" }
func (p *ConfigProbe) Name() string        { return "Config" }
func (p *ConfigProbe) Description() string { return "Validates OpenClaw configuration" }

func (p *ConfigProbe) Run(ctx context.Context, env *Env) Result {
	path := env.Dirs.FindConfig()
	if path == "" {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: "No OpenClaw config file found",
			Details: "Looked for " + strings.Join(env.Dirs.ConfigCandidates(), ", "),
			Fixable: true,
			Suggestions: []string{
				"Rerun with --fix to create a default config",
				"Or run 'openclaw init' to configure interactively",
			},
		}
	}

	cfg, err := clawhome.LoadConfig(path)
	if err != nil {
		// A file that exists but cannot be parsed is never auto-fixed:
		// overwriting it could destroy the user's settings.
		return Result{
			Name:    p.Name(),
			Status:  StatusFail,
			Message: "Config file has syntax errors",
			Details: err.Error(),
			Suggestions: []string{
				"Fix the syntax errors in: " + path,
				"Use a YAML/JSON validator to check the file",
			},
		}
	}

	if cfg.Empty() {
		return Result{
			Name:        p.Name(),
			Status:      StatusWarn,
			Message:     "Config file is empty",
			Details:     "Path: " + path,
			Fixable:     true,
			Suggestions: []string{"Add configuration to the file or run 'openclaw init'"},
		}
	}

	if missing := cfg.MissingRequired(); len(missing) > 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: "Config missing fields: " + strings.Join(missing, ", "),
			Details: "Path: " + path,
			Suggestions: []string{
				"Add the following to your config: " + strings.Join(missing, ", "),
				"Run 'openclaw init' to reconfigure",
			},
		}
	}

	return Result{
		Name:    p.Name(),
		Status:  StatusPass,
		Message: "Configuration valid",
		Details: "Path: " + path,
	}
}

// Fix writes a default config when none exists. An existing file, even an
// empty one it would otherwise improve, is only replaced when empty.
func (p *ConfigProbe) Fix(ctx context.Context, env *Env) error {
	path := env.Dirs.FindConfig()
	if path == "" {
		written, err := env.Dirs.WriteDefaultConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Stdout, "Created default config at %s\n", written)
		return nil
	}

	cfg, err := clawhome.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("config has syntax errors, not overwriting: %w", err)
	}
	if !cfg.Empty() {
		return nil
	}
	if err := cfg.WriteDefaults(); err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "Populated empty config at %s\n", path)
	return nil
}
