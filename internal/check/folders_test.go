package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Okediya/openclaw-doctor/internal/clawhome"
)

func TestFoldersProbeMissingHomeThenFixed(t *testing.T) {
	env := probeEnv(t)
	probe := &FoldersProbe{}

	res := probe.Run(context.Background(), env)
	assert.Equal(t, StatusWarn, res.Status)
	assert.True(t, res.Fixable)
	assert.Contains(t, res.Message, "not found")

	require.NoError(t, probe.Fix(context.Background(), env))

	res = probe.Run(context.Background(), env)
	assert.Equal(t, StatusPass, res.Status, res.Message)
	for _, name := range clawhome.ExpectedDirs {
		st, err := os.Stat(filepath.Join(env.Dirs.Home, name))
		require.NoError(t, err, "expected %s to exist", name)
		assert.True(t, st.IsDir())
	}
}

func TestFoldersProbeIncompleteStructure(t *testing.T) {
	env := probeEnv(t)
	require.NoError(t, os.MkdirAll(filepath.Join(env.Dirs.Home, "skills"), 0o755))

	res := (&FoldersProbe{}).Run(context.Background(), env)
	assert.Equal(t, StatusWarn, res.Status)
	assert.True(t, res.Fixable)
	assert.Contains(t, res.Message, "incomplete")
	assert.Contains(t, res.Details, "channels")
	assert.Contains(t, res.Details, "workspaces")
	assert.Contains(t, res.Details, "logs")
}

func TestFoldersProbeComplete(t *testing.T) {
	env := probeEnv(t)
	for _, name := range clawhome.ExpectedDirs {
		require.NoError(t, os.MkdirAll(filepath.Join(env.Dirs.Home, name), 0o755))
	}

	res := (&FoldersProbe{}).Run(context.Background(), env)
	assert.Equal(t, StatusPass, res.Status)
	assert.Contains(t, res.Details, env.Dirs.Home)
}

func TestFoldersProbeFixIdempotent(t *testing.T) {
	env := probeEnv(t)
	probe := &FoldersProbe{}
	require.NoError(t, probe.Fix(context.Background(), env))
	require.NoError(t, probe.Fix(context.Background(), env))
	assert.Equal(t, StatusPass, probe.Run(context.Background(), env).Status)
}
