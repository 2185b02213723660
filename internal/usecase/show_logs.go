package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/leadtime/internal/domain"
)

// ShowLogsInput contains the parameters for showing the log file.
type ShowLogsInput struct {
	Item  string // Only entries tagged with this item key (empty = all)
	Lines int    // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing the log file.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Selected log lines
}

// ShowLogs is the use case for viewing the log file.
type ShowLogs struct {
	dataDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(dataDir string) *ShowLogs {
	return &ShowLogs{dataDir: dataDir}
}

// Execute reads the log file and returns the selected lines.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	if in.Lines < 0 {
		return nil, fmt.Errorf("lines must not be negative: %w", domain.ErrInvalidArgument)
	}

	logPath := domain.LogPath(uc.dataDir)

	content, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", logPath, domain.ErrNoLogs)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	if in.Item != "" {
		tag := "] [" + in.Item + "] ["
		filtered := lines[:0]
		for _, line := range lines {
			if strings.Contains(line, tag) {
				filtered = append(filtered, line)
			}
		}
		lines = filtered
	}

	// If lines is specified, get only the last N lines
	if in.Lines > 0 && len(lines) > in.Lines {
		lines = lines[len(lines)-in.Lines:]
	}

	result := strings.Join(lines, "\n")
	if result != "" {
		result += "\n"
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: result,
	}, nil
}
