package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContainer(t *testing.T, projectConfig string) *Container {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	projectDir := t.TempDir()
	if projectConfig != "" {
		path := filepath.Join(projectDir, domain.ProjectConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte(projectConfig), 0o600))
	}

	c, err := New(projectDir, Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew_Paths(t *testing.T) {
	c := newTestContainer(t, "")

	assert.Equal(t, domain.StorePath(c.Config.DataDir), c.Config.StorePath)
	assert.Equal(t, domain.NewDefaultConfig().Stats, c.AppConfig.Stats)

	// The database is not created until a use case needs it.
	_, err := os.Stat(c.Config.StorePath)
	assert.True(t, os.IsNotExist(err))
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	projectDir := t.TempDir()
	path := filepath.Join(projectDir, domain.ProjectConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"chatty\""), 0o600))

	_, err := New(projectDir, Options{DataDir: t.TempDir()})

	require.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestContainer_HistoryPath(t *testing.T) {
	c := newTestContainer(t, "[history]\npath = \"export.yaml\"\n")

	path, err := c.HistoryPath("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(c.Config.ProjectDir, "export.yaml"), path)

	path, err = c.HistoryPath("other.json")
	require.NoError(t, err)
	assert.Equal(t, "other.json", path)

	empty := newTestContainer(t, "")
	_, err = empty.HistoryPath("")
	require.ErrorIs(t, err, domain.ErrNoHistory)
}

func TestContainer_AssembleOptions(t *testing.T) {
	c := newTestContainer(t, "[stats]\nsplit_interval = \"2h\"\n")

	opts, err := c.AssembleOptions()

	require.NoError(t, err)
	assert.NotNil(t, opts.IsWorkDay)
	assert.Equal(t, "2h0m0s", opts.SplitInterval.String())
}

func TestContainer_RunsRoundTrip(t *testing.T) {
	c := newTestContainer(t, "")
	ctx := context.Background()

	require.NoError(t, c.Reports.SaveRun(ctx, &domain.Run{ID: "r1", CreatedAt: c.Clock.Now()}))

	out, err := c.ListRunsUseCase().Execute(ctx, usecase.ListRunsInput{})
	require.NoError(t, err)
	require.Len(t, out.Runs, 1)
	assert.Equal(t, "r1", out.Runs[0].ID)
	assert.FileExists(t, c.Config.StorePath)
}
