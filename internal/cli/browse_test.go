package cli

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/tui"
)

// mockLaunchTUI replaces launchTUIFunc and records the last call.
func mockLaunchTUI(t *testing.T) (*string, *tui.LoadFunc) {
	t.Helper()

	originalFunc := launchTUIFunc
	t.Cleanup(func() { launchTUIFunc = originalFunc })

	var title string
	var load tui.LoadFunc
	launchTUIFunc = func(gotTitle string, gotLoad tui.LoadFunc) error {
		title = gotTitle
		load = gotLoad
		return nil
	}
	return &title, &load
}

func TestBrowseCommand_History(t *testing.T) {
	title, load := mockLaunchTUI(t)
	c := newHistoryContainer(t)

	_, _, err := execute(newBrowseCommand(c))

	require.NoError(t, err)
	assert.Contains(t, *title, "history.yaml")
	require.NotNil(t, *load)

	reports, err := (*load)(context.Background())
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestBrowseCommand_Run(t *testing.T) {
	title, load := mockLaunchTUI(t)
	c := newHistoryContainer(t)

	_, errOut, err := execute(newStatsCommand(c), "--save")
	require.NoError(t, err)
	id := regexp.MustCompile(`Saved run (\S+)`).FindStringSubmatch(errOut)[1]

	_, _, err = execute(newBrowseCommand(c), "--run", id)

	require.NoError(t, err)
	assert.Equal(t, "run "+id, *title)
	reports, err := (*load)(context.Background())
	require.NoError(t, err)
	assert.Len(t, reports, 2)
}

func TestBrowseCommand_UnknownRun(t *testing.T) {
	_, load := mockLaunchTUI(t)
	c := newHistoryContainer(t)

	_, _, err := execute(newBrowseCommand(c), "--run", "missing")
	require.NoError(t, err)

	_, err = (*load)(context.Background())
	require.ErrorIs(t, err, domain.ErrRunNotFound)
}

func TestBrowseCommand_ConflictingFlags(t *testing.T) {
	_, _ = mockLaunchTUI(t)
	c := newHistoryContainer(t)

	_, _, err := execute(newBrowseCommand(c), "--run", "x", "--history", "h.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be used together")
}
