package domain

import (
	"context"
	"time"
)

// HistorySource provides the change history to compute statistics from.
type HistorySource interface {
	// Load reads statuses, fix versions and raw items.
	Load(ctx context.Context) (*History, error)
}

// ReportStore persists computed runs.
type ReportStore interface {
	// SaveRun stores a run. The run must carry an ID.
	SaveRun(ctx context.Context, run *Run) error

	// ListRuns returns the most recent runs first. A limit <= 0 returns all runs.
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)

	// GetRun retrieves a run with all of its item reports.
	// Returns ErrRunNotFound if no run has the given ID.
	GetRun(ctx context.Context, id string) (*Run, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (project + global).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping the
	// sources named in opts.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects configuration sources to skip.
type LoadConfigOptions struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitProjectConfig creates a project config file with the default template.
	InitProjectConfig(cfg *Config) error

	// InitGlobalConfig creates a global config file with the default template.
	InitGlobalConfig(cfg *Config) error
}

// Logger writes diagnostics. An empty item logs without an item tag.
type Logger interface {
	Debug(item, category, msg string)
	Info(item, category, msg string)
	Warn(item, category, msg string)
	Error(item, category, msg string)
}

// IDGenerator creates identifiers for new runs.
type IDGenerator interface {
	NewID() string
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
