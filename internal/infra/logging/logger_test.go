package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func readLog(t *testing.T, dataDir string) string {
	t.Helper()
	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	return string(content)
}

func TestLogger_Info(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("PROJ-1", "assemble", "test message")

	// Assert
	content := readLog(t, dataDir)
	assert.Contains(t, content, "[INFO]")
	assert.Contains(t, content, "[PROJ-1]")
	assert.Contains(t, content, "[assemble]")
	assert.Contains(t, content, "test message")
}

func TestLogger_GlobalEntry(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("", "stats", "global message")

	content := readLog(t, dataDir)
	assert.Contains(t, content, "[global]")
	assert.Contains(t, content, "global message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("PROJ-1", "assemble", "debug message")
	logger.Info("PROJ-1", "assemble", "info message")
	logger.Warn("PROJ-1", "assemble", "warn message")
	logger.Error("PROJ-1", "assemble", "error message")

	content := readLog(t, dataDir)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "warn message")
	assert.Contains(t, content, "error message")
}

func TestLogger_DisabledWhenEmptyDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic or create files.
	logger.Info("PROJ-1", "assemble", "test message")
	logger.Error("PROJ-1", "assemble", "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC) }
	defer func() { _ = logger.Close() }()

	logger.Warn("PROJ-42", "assemble", `missing status "7"`)

	lines := strings.Split(strings.TrimSpace(readLog(t, dataDir)), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, `[2025-12-30 09:32:51] [WARN] [PROJ-42] [assemble] missing status "7"`, lines[0])
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("", "stats", strings.Repeat("x", i+1))
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(readLog(t, dataDir)), "\n")
	assert.Len(t, lines, 20)
}

func TestLogger_Close(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)

	logger.Info("PROJ-1", "assemble", "test message")

	require.NoError(t, logger.Close())
	assert.FileExists(t, domain.LogPath(dataDir))
	// Closing twice is fine.
	assert.NoError(t, logger.Close())
}

func TestLogger_CreateLogsDir(t *testing.T) {
	dataDir := t.TempDir()
	logsDir := filepath.Join(dataDir, "logs")

	_, err := os.Stat(logsDir)
	assert.True(t, os.IsNotExist(err))

	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()
	logger.Info("PROJ-1", "assemble", "test message")

	stat, err := os.Stat(logsDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestLogger_ConsoleMirror(t *testing.T) {
	var buf strings.Builder
	console := NewConsole(&buf, slog.LevelWarn)
	logger := New("", slog.LevelInfo).WithConsole(console)

	logger.Info("PROJ-1", "assemble", "quiet message")
	logger.Warn("PROJ-1", "assemble", "loud message")

	out := buf.String()
	assert.NotContains(t, out, "quiet message")
	assert.Contains(t, out, "loud message")
	assert.Contains(t, out, "PROJ-1")
	assert.Contains(t, out, "assemble")
}
