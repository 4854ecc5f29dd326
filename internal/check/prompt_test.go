package check

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptEnv(input string) *Env {
	env := testEnv()
	env.Stdin = strings.NewReader(input)
	env.Stdout = &bytes.Buffer{}
	return env
}

func TestPromptSelect(t *testing.T) {
	got, err := promptSelect(promptEnv("2\n"), "Provider", []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestPromptSelectDefaultsToFirst(t *testing.T) {
	got, err := promptSelect(promptEnv("\n"), "Provider", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestPromptSelectRejectsOutOfRange(t *testing.T) {
	_, err := promptSelect(promptEnv("7\n"), "Provider", []string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid selection")
}

func TestPromptSelectRejectsNonNumeric(t *testing.T) {
	_, err := promptSelect(promptEnv("nope\n"), "Provider", []string{"a"})
	require.Error(t, err)
}

func TestReadLineSharedAcrossCalls(t *testing.T) {
	env := promptEnv("first\nsecond\n")

	one, err := env.ReadLine()
	require.NoError(t, err)
	two, err := env.ReadLine()
	require.NoError(t, err)

	assert.Equal(t, "first", one)
	assert.Equal(t, "second", two)
}
