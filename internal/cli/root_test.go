package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_NoArgs_ShowsHelp(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	out, _, err := execute(root)

	require.NoError(t, err)
	assert.Contains(t, out, "Report Commands:")
	assert.Contains(t, out, "Setup Commands:")
	assert.Contains(t, out, "stats")
	assert.Contains(t, out, "browse")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")

	out, _, err := execute(root, "--version")

	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3")
}

func TestNewRootCommand_AcceptsGlobalFlags(t *testing.T) {
	c := newHistoryContainer(t)
	root := NewRootCommand(c, "dev")

	_, _, err := execute(root, "--verbose", "--data-dir", t.TempDir(), "days", "2020-01-06", "2020-01-10")

	require.NoError(t, err)
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	c := newTestContainer(t, "[log]\nlevel = \"info\"\ncolour = true\n")
	root := NewRootCommand(c, "dev")

	_, errOut, err := execute(root, "days", "2020-01-06", "2020-01-06")

	require.NoError(t, err)
	assert.Contains(t, errOut, "Warning: unknown key in [log]: colour")
}
