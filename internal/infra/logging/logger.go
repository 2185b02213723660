// Package logging provides file-based logging for leadtime.
// Entries go to a single file under the data directory (logs/leadtime.log).
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/runoshun/leadtime/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled entries to the leadtime log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file    *os.File
	console *charmLog.Logger // Optional styled stderr sink
	now     func() time.Time
	dataDir string
	mu      sync.Mutex
	level   slog.Level
}

// New creates a new Logger that writes below dataDir.
// If dataDir is empty, logging is disabled (returns a no-op logger).
func New(dataDir string, level slog.Level) *Logger {
	return &Logger{
		dataDir: dataDir,
		level:   level,
		now:     time.Now,
	}
}

// NewConsole creates a styled console sink that receives entries at level
// and above.
func NewConsole(w io.Writer, level slog.Level) *charmLog.Logger {
	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:           charmLog.Level(level),
		Prefix:          domain.AppDirName,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Formatter:       charmLog.TextFormatter,
	})
}

// WithConsole mirrors every entry to console. A nil console disables mirroring.
func (l *Logger) WithConsole(console *charmLog.Logger) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.console = console
	return l
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFile opens or returns the log file. Callers hold l.mu.
func (l *Logger) ensureFile() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	path := domain.LogPath(l.dataDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [PROJ-1] [category] message
func formatLog(t time.Time, level slog.Level, item, category, msg string) string {
	if item == "" {
		item = "global"
	}
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		item,
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, item, category, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.console != nil {
		l.mirror(level, item, category, msg)
	}

	if l.dataDir == "" {
		return // File logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(l.now(), level, item, category, msg)
	if f, err := l.ensureFile(); err == nil {
		_, _ = io.WriteString(f, entry)
	}
}

// mirror writes one entry to the console sink, which applies its own level.
func (l *Logger) mirror(level slog.Level, item, category, msg string) {
	keyvals := []any{"category", category}
	if item != "" {
		keyvals = append(keyvals, "item", item)
	}
	switch level {
	case slog.LevelDebug:
		l.console.Debug(msg, keyvals...)
	case slog.LevelWarn:
		l.console.Warn(msg, keyvals...)
	case slog.LevelError:
		l.console.Error(msg, keyvals...)
	default:
		l.console.Info(msg, keyvals...)
	}
}

// Info logs an info message. An empty item logs as global.
func (l *Logger) Info(item, category, msg string) {
	l.log(slog.LevelInfo, item, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(item, category, msg string) {
	l.log(slog.LevelDebug, item, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(item, category, msg string) {
	l.log(slog.LevelWarn, item, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(item, category, msg string) {
	l.log(slog.LevelError, item, category, msg)
}
