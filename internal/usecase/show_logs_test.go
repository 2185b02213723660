package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/leadtime/internal/domain"
)

const sampleLog = `[2020-01-21 12:00:00] [INFO] [global] [stats] computed 3 items from history.yaml
[2020-01-21 12:00:00] [WARN] [JIRA-2] [assemble] missing reference: status 42
[2020-01-21 12:00:01] [WARN] [JIRA-3] [assemble] missing reference: status 43
[2020-01-21 12:00:02] [INFO] [global] [stats] saved run run-1 with 3 items
`

func writeLog(t *testing.T) string {
	t.Helper()
	dataDir := t.TempDir()
	path := domain.LogPath(dataDir)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o640))
	return dataDir
}

func TestShowLogs_Execute(t *testing.T) {
	dataDir := writeLog(t)
	uc := NewShowLogs(dataDir)

	t.Run("all lines", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ShowLogsInput{})
		require.NoError(t, err)
		assert.Equal(t, sampleLog, out.Content)
		assert.Equal(t, domain.LogPath(dataDir), out.LogPath)
	})

	t.Run("last lines", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ShowLogsInput{Lines: 1})
		require.NoError(t, err)
		assert.Equal(t, "[2020-01-21 12:00:02] [INFO] [global] [stats] saved run run-1 with 3 items\n", out.Content)
	})

	t.Run("item filter", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ShowLogsInput{Item: "JIRA-2"})
		require.NoError(t, err)
		assert.Equal(t, "[2020-01-21 12:00:00] [WARN] [JIRA-2] [assemble] missing reference: status 42\n", out.Content)
	})

	t.Run("item without entries", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ShowLogsInput{Item: "JIRA-9"})
		require.NoError(t, err)
		assert.Empty(t, out.Content)
	})

	t.Run("negative lines", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ShowLogsInput{Lines: -1})
		require.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestShowLogs_Execute_NoFile(t *testing.T) {
	uc := NewShowLogs(t.TempDir())

	_, err := uc.Execute(context.Background(), ShowLogsInput{})

	require.ErrorIs(t, err, domain.ErrNoLogs)
}
