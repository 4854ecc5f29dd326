package check

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearProviderKeys blanks every provider variable in the OS environment so
// the host machine's keys don't leak into assertions.
func clearProviderKeys(t *testing.T) {
	t.Helper()
	for _, key := range providerEnvKeys {
		t.Setenv(key, "")
	}
}

func TestAPIKeysProbeNoneFound(t *testing.T) {
	clearProviderKeys(t)
	env := probeEnv(t)

	res := (&APIKeysProbe{}).Run(context.Background(), env)
	assert.Equal(t, StatusWarn, res.Status)
	assert.True(t, res.Fixable)
	assert.Contains(t, res.Message, "No AI provider API keys found")
}

func TestAPIKeysProbeKeyInEnvFile(t *testing.T) {
	clearProviderKeys(t)
	env := probeEnv(t)
	require.NoError(t, os.MkdirAll(env.Dirs.Home, 0o755))
	key := "sk-ant-" + strings.Repeat("a", 48)
	require.NoError(t, os.WriteFile(filepath.Join(env.Dirs.Home, ".env"), []byte("ANTHROPIC_API_KEY="+key+"\n"), 0o600))
	env.EnvVars = env.Dirs.LoadEnv()

	res := (&APIKeysProbe{}).Run(context.Background(), env)
	assert.Equal(t, StatusPass, res.Status)
	assert.Contains(t, res.Details, "Anthropic (in .env)")
	assert.NotContains(t, res.Details, key, "key values must never be printed")
}

func TestAPIKeysProbeKeyInOSEnv(t *testing.T) {
	clearProviderKeys(t)
	t.Setenv("GROQ_API_KEY", "gsk_"+strings.Repeat("b", 52))
	env := probeEnv(t)

	res := (&APIKeysProbe{}).Run(context.Background(), env)
	assert.Equal(t, StatusPass, res.Status)
	assert.Contains(t, res.Details, "Groq")
	assert.NotContains(t, res.Details, "(in .env)")
}

func TestAPIKeysProbeMalformedKey(t *testing.T) {
	clearProviderKeys(t)
	t.Setenv("OPENAI_API_KEY", "not-a-real-key")
	env := probeEnv(t)

	res := (&APIKeysProbe{}).Run(context.Background(), env)
	assert.Equal(t, StatusWarn, res.Status)
	assert.False(t, res.Fixable)
	assert.Contains(t, res.Message, "OPENAI_API_KEY")
	assert.NotContains(t, res.Message, "not-a-real-key")
}

func TestAPIKeysProbeKeyInConfig(t *testing.T) {
	clearProviderKeys(t)
	env := probeEnv(t)
	require.NoError(t, os.MkdirAll(env.Dirs.Home, 0o755))
	cfg := "provider: anthropic\nanthropic:\n  api_key: sk-ant-test\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.Dirs.Home, "config.yaml"), []byte(cfg), 0o644))

	res := (&APIKeysProbe{}).Run(context.Background(), env)
	assert.Equal(t, StatusPass, res.Status)
	assert.Contains(t, res.Details, "anthropic.api_key (in config)")
}

func TestAPIKeysProbeFixStoresKeyThenPasses(t *testing.T) {
	clearProviderKeys(t)
	env := probeEnv(t)
	key := "sk-ant-" + strings.Repeat("c", 48)
	env.Stdin = strings.NewReader("1\n" + key + "\n")
	env.Stdout = &bytes.Buffer{}

	probe := &APIKeysProbe{}
	require.NoError(t, probe.Fix(context.Background(), env))

	target := env.Dirs.EnvFileCandidates()[0]
	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ANTHROPIC_API_KEY="+key)

	res := probe.Run(context.Background(), env)
	assert.Equal(t, StatusPass, res.Status, res.Message)
}

func TestAPIKeysProbeFixRejectsEmptyValue(t *testing.T) {
	clearProviderKeys(t)
	env := probeEnv(t)
	env.Stdin = strings.NewReader("1\n\n")
	env.Stdout = &bytes.Buffer{}

	err := (&APIKeysProbe{}).Fix(context.Background(), env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no key entered")
}

func TestMaskKeyName(t *testing.T) {
	assert.Equal(t, "Anthropic", maskKeyName("ANTHROPIC_API_KEY"))
	assert.Equal(t, "Google Generative Ai", maskKeyName("GOOGLE_GENERATIVE_AI_API_KEY"))
}
