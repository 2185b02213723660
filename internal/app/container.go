// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/infra/config"
	"github.com/runoshun/leadtime/internal/infra/historyfile"
	"github.com/runoshun/leadtime/internal/infra/logging"
	"github.com/runoshun/leadtime/internal/infra/reportstore"
	"github.com/runoshun/leadtime/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	ProjectDir string // Directory searched for .leadtime.toml
	DataDir    string // Logs and the default report database
	StorePath  string // Report database
}

// Options adjusts how the container is built.
type Options struct {
	DataDir string    // Overrides the XDG data directory
	Console io.Writer // Receives log entries when Verbose is set
	Verbose bool
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Clock         domain.Clock
	IDs           domain.IDGenerator
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Reports       domain.ReportStore

	// AppConfig is the merged configuration loaded at startup.
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container for the project in dir.
func New(dir string, opts Options) (*Container, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve project directory: %w", err)
	}

	configLoader := config.NewLoader(absDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = defaultDataDir()
	}
	storePath := appConfig.Store.Path
	if storePath == "" {
		storePath = domain.StorePath(dataDir)
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	logger := logging.New(dataDir, level)
	if opts.Verbose && opts.Console != nil {
		logger.WithConsole(logging.NewConsole(opts.Console, level))
	}
	for _, w := range appConfig.Warnings {
		logger.Warn("", "config", w)
	}

	store := reportstore.NewLazy(storePath)

	return &Container{
		Clock:         domain.RealClock{},
		IDs:           reportstore.UUIDGenerator{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(absDir),
		Reports:       store,
		AppConfig:     appConfig,
		closers:       []io.Closer{store, logger},
		Config: Config{
			ProjectDir: absDir,
			DataDir:    dataDir,
			StorePath:  storePath,
		},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, reports domain.ReportStore, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Clock:     clock,
		IDs:       reportstore.UUIDGenerator{},
		Logger:    logger,
		Reports:   reports,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// defaultDataDir returns $XDG_DATA_HOME/leadtime or ~/.local/share/leadtime.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, domain.AppDirName)
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var errs []error
	for _, cl := range c.closers {
		errs = append(errs, cl.Close())
	}
	return errors.Join(errs...)
}

// HistoryPath returns path, or the configured history file when path is empty.
func (c *Container) HistoryPath(path string) (string, error) {
	if path == "" {
		path = c.AppConfig.History.Path
	}
	if path == "" {
		return "", fmt.Errorf("pass --history or set [history] path: %w", domain.ErrNoHistory)
	}
	return path, nil
}

// HistorySource returns the source for the history file at path.
func (c *Container) HistorySource(path string) (*historyfile.Source, error) {
	resolved, err := c.HistoryPath(path)
	if err != nil {
		return nil, err
	}
	return historyfile.New(resolved), nil
}

// Calendar builds the working-day calendar from the configuration.
// Holidays are interpreted in the local time zone.
func (c *Container) Calendar() (*domain.Calendar, error) {
	return c.AppConfig.BuildCalendar(time.Local)
}

// AssembleOptions returns the computation options from the configuration.
func (c *Container) AssembleOptions() (domain.AssembleOptions, error) {
	cal, err := c.Calendar()
	if err != nil {
		return domain.AssembleOptions{}, err
	}
	return c.AppConfig.AssembleOptions(cal), nil
}

// UseCase factory methods

// ComputeStatsUseCase returns a new ComputeStats use case reading source.
func (c *Container) ComputeStatsUseCase(source domain.HistorySource) *usecase.ComputeStats {
	return usecase.NewComputeStats(source, c.Reports, c.IDs, c.Clock, c.Logger)
}

// ShowItemUseCase returns a new ShowItem use case reading source.
func (c *Container) ShowItemUseCase(source domain.HistorySource) *usecase.ShowItem {
	return usecase.NewShowItem(source, c.Clock, c.Logger)
}

// CountDaysUseCase returns a new CountDays use case.
func (c *Container) CountDaysUseCase() *usecase.CountDays {
	return usecase.NewCountDays()
}

// ListRunsUseCase returns a new ListRuns use case.
func (c *Container) ListRunsUseCase() *usecase.ListRuns {
	return usecase.NewListRuns(c.Reports)
}

// ShowRunUseCase returns a new ShowRun use case.
func (c *Container) ShowRunUseCase() *usecase.ShowRun {
	return usecase.NewShowRun(c.Reports)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Config.DataDir)
}
