// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/leadtime/internal/domain"
)

// InitConfigInput contains the input for the InitConfig use case.
// Empty seed values keep the defaults.
type InitConfigInput struct {
	HistoryPath string   // Seeds [history] path
	Weekend     []string // Seeds [calendar] weekend
	Holidays    []string // Seeds [calendar] holidays, YYYY-MM-DD
	Global      bool     // If true, initialize global config; otherwise project config
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Config *domain.Config // Values written to the file
	Path   string         // Path to the created config file
}

// InitConfig writes a commented config file seeded from the defaults.
type InitConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *InitConfig {
	return &InitConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute builds the config from the defaults and the seed values, validates
// it and writes it. Existing files are never overwritten.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	// Broken config files must not prevent writing a fresh one.
	cfg, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
		IgnoreGlobal:  true,
		IgnoreProject: true,
	})
	if err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if in.HistoryPath != "" {
		cfg.History.Path = in.HistoryPath
	}
	if len(in.Weekend) > 0 {
		cfg.Calendar.Weekend = in.Weekend
	}
	if len(in.Holidays) > 0 {
		cfg.Calendar.Holidays = in.Holidays
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	info := uc.configManager.GetProjectConfigInfo()
	write := uc.configManager.InitProjectConfig
	if in.Global {
		info = uc.configManager.GetGlobalConfigInfo()
		write = uc.configManager.InitGlobalConfig
	}
	if err := write(cfg); err != nil {
		return nil, err
	}

	return &InitConfigOutput{Config: cfg, Path: info.Path}, nil
}
