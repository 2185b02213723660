package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/leadtime/internal/app"
	"github.com/runoshun/leadtime/internal/domain"
)

const testHistory = `
statuses:
  - {id: "1", name: Open}
  - {id: "3", name: In Progress}
  - {id: "6", name: Done, category: done}
items:
  - key: PROJ-2
    title: Parser
    creator: john
    parent: PROJ-1
    created: 2020-01-01T12:00:00Z
    status: "6"
    changes:
      - {at: 2020-01-03T12:00:00Z, field: status, from: "1", to: "3", actor: john}
      - {at: 2020-01-15T12:00:00Z, field: status, from: "3", to: "6", actor: john}
  - key: PROJ-1
    title: Epic
    created: 2020-01-01T09:00:00Z
    status: "1"
`

// newTestContainer creates an app.Container over a project directory holding
// a history file and projectConfig. Global config and data directories are
// isolated in temp directories.
func newTestContainer(t *testing.T, projectConfig string) *app.Container {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	projectDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "history.yaml"), []byte(testHistory), 0o644))
	if projectConfig != "" {
		path := filepath.Join(projectDir, domain.ProjectConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte(projectConfig), 0o600))
	}

	c, err := app.New(projectDir, app.Options{DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// newHistoryContainer creates a container whose config points at the test history.
func newHistoryContainer(t *testing.T) *app.Container {
	t.Helper()
	return newTestContainer(t, "[history]\npath = \"history.yaml\"\n")
}

// execute runs cmd with args and returns stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
