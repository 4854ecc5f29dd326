package check

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Okediya/openclaw-doctor/internal/clawhome"
)

// Known provider API key environment variables, in display priority order.
var providerEnvKeys = []string{
	"ANTHROPIC_API_KEY",
	"OPENAI_API_KEY",
	"GOOGLE_API_KEY",
	"GOOGLE_GENERATIVE_AI_API_KEY",
	"GROQ_API_KEY",
	"OPENROUTER_API_KEY",
}

// Format patterns for basic validation. Only shape is checked, never
// validity against the provider.
var keyPatterns = map[string]*regexp.Regexp{
	"ANTHROPIC_API_KEY": regexp.MustCompile(`^sk-ant-[a-zA-Z0-9\-_]{40,}$`),
	"OPENAI_API_KEY":    regexp.MustCompile(`^sk-[a-zA-Z0-9]{40,}$`),
	"GOOGLE_API_KEY":    regexp.MustCompile(`^AIza[a-zA-Z0-9\-_]{35}$`),
	"GROQ_API_KEY":      regexp.MustCompile(`^gsk_[a-zA-Z0-9]{50,}$`),
}

// APIKeysProbe checks that at least one AI provider key is configured,
// consulting the OS environment, .env files, and the config file in that
// order. Key values are never printed.
type APIKeysProbe struct{}

func (p *APIKeysProbe) ID() string          { return "api-keys" }
func (p *APIKeysProbe) Name() string        { return "API Keys" }
func (p *APIKeysProbe) Description() string { return "Checks AI provider keys configured" }

func (p *APIKeysProbe) Run(ctx context.Context, env *Env) Result {
	var found, invalid []string
	for _, key := range providerEnvKeys {
		value := env.EnvVars.Get(key)
		if value == "" {
			continue
		}
		if pat, ok := keyPatterns[key]; ok && !pat.MatchString(value) {
			invalid = append(invalid, key)
			continue
		}
		if env.EnvVars.InFile(key) {
			found = append(found, maskKeyName(key)+" (in .env)")
		} else {
			found = append(found, maskKeyName(key))
		}
	}

	if cfgPath := env.Dirs.FindConfig(); cfgPath != "" {
		if cfg, err := clawhome.LoadConfig(cfgPath); err == nil {
			for _, field := range cfg.APIKeyFields() {
				found = append(found, field+" (in config)")
			}
		}
	}

	if len(invalid) > 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: "Some API keys appear invalid: " + strings.Join(invalid, ", "),
			Details: "Keys may be malformed or using an old format",
			Suggestions: []string{
				"Verify your API keys are correct",
				"Get new keys from your AI provider's dashboard",
			},
		}
	}

	if len(found) == 0 {
		return Result{
			Name:    p.Name(),
			Status:  StatusWarn,
			Message: "No AI provider API keys found",
			Details: "OpenClaw requires at least one AI provider API key",
			Fixable: true,
			Suggestions: []string{
				"Set environment variable: export ANTHROPIC_API_KEY=your_key",
				"Or rerun with --fix to store a key in " + env.Dirs.EnvFileCandidates()[0],
				"Get API keys from https://console.anthropic.com/ or https://platform.openai.com/",
			},
		}
	}

	return Result{
		Name:    p.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("API keys configured (%d found)", len(found)),
		Details: "Found: " + strings.Join(found, ", "),
	}
}

// Fix prompts for a provider key and appends it to the first env-file
// candidate. Rerunning is safe: an already-present key is left alone.
func (p *APIKeysProbe) Fix(ctx context.Context, env *Env) error {
	target := env.Dirs.EnvFileCandidates()[0]

	fmt.Fprintln(env.Stdout, "Enter a provider API key to store in "+target)
	key, err := promptSelect(env, "Provider", providerEnvKeys[:3])
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "%s value (input is stored, not validated): ", key)
	value, err := env.ReadLine()
	if err != nil {
		return fmt.Errorf("read key value: %w", err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("no key entered")
	}
	if err := clawhome.AppendEnvKey(target, key, value); err != nil {
		return err
	}
	// The probe layers OS env over file values, so make the new key visible
	// to the re-run without requiring a fresh process.
	env.EnvVars = env.Dirs.LoadEnv()
	fmt.Fprintf(env.Stdout, "Stored %s in %s\n", key, target)
	return nil
}

// maskKeyName turns ANTHROPIC_API_KEY into "Anthropic" for display.
func maskKeyName(key string) string {
	name := strings.TrimSuffix(key, "_API_KEY")
	words := strings.Split(strings.ToLower(name), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
