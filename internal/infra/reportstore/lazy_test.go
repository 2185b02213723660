package reportstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", domain.StoreFileName)
	store := NewLazy(path)
	defer func() { _ = store.Close() }()

	// Nothing is created until the store is used.
	assert.False(t, store.Opened())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, store.SaveRun(context.Background(), sampleRun("r1", time.Now())))
	assert.True(t, store.Opened())
	assert.FileExists(t, path)

	runs, err := store.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run, err := store.GetRun(context.Background(), "r1")
	require.NoError(t, err)
	assert.Len(t, run.Items, 2)
}

func TestLazyStore_OpenError(t *testing.T) {
	// A regular file where the directory should be.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	store := NewLazy(filepath.Join(blocker, domain.StoreFileName))

	_, err := store.ListRuns(context.Background(), 0)
	require.Error(t, err)
	// The error sticks.
	_, err = store.GetRun(context.Background(), "x")
	require.Error(t, err)
	assert.NoError(t, store.Close())
}
