package clawhome

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvReadsFirstCandidate(t *testing.T) {
	home := t.TempDir()
	d := Dirs{Home: home, Fallback: t.TempDir()}
	writeFile(t, filepath.Join(home, ".env"), "ANTHROPIC_API_KEY=sk-ant-test123\n")

	env := d.LoadEnv()
	assert.Equal(t, filepath.Join(home, ".env"), env.FilePath)
	assert.True(t, env.InFile("ANTHROPIC_API_KEY"))
	assert.Equal(t, "sk-ant-test123", env.Get("ANTHROPIC_API_KEY"))
}

func TestLoadEnvMissingFiles(t *testing.T) {
	d := Dirs{Home: filepath.Join(t.TempDir(), "none"), Fallback: filepath.Join(t.TempDir(), "none")}
	env := d.LoadEnv()
	assert.Equal(t, "", env.FilePath)
	assert.False(t, env.InFile("ANYTHING"))
}

func TestGetPrefersOSEnvironment(t *testing.T) {
	t.Setenv("OPENCLAW_DOCTOR_TEST_KEY", "from-os")
	env := &EnvSource{fileVars: map[string]string{"OPENCLAW_DOCTOR_TEST_KEY": "from-file"}}
	assert.Equal(t, "from-os", env.Get("OPENCLAW_DOCTOR_TEST_KEY"))
}

func TestAppendEnvKeyCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".openclaw", ".env")
	require.NoError(t, AppendEnvKey(path, "OPENAI_API_KEY", "sk-test"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "OPENAI_API_KEY=sk-test\n", string(raw))
}

func TestAppendEnvKeySkipsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "OPENAI_API_KEY=original\n")

	require.NoError(t, AppendEnvKey(path, "OPENAI_API_KEY", "replacement"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "OPENAI_API_KEY=original\n", string(raw))
}

func TestAppendEnvKeyAppendsNewKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	writeFile(t, path, "OPENAI_API_KEY=first\n")

	require.NoError(t, AppendEnvKey(path, "GROQ_API_KEY", "gsk_second"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "OPENAI_API_KEY=first\nGROQ_API_KEY=gsk_second\n", string(raw))
}
