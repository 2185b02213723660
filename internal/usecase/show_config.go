package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/leadtime/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	IgnoreGlobal  bool // Omit the global config file
	IgnoreProject bool // Omit the project config file
	Template      bool // Render the commented file template from the defaults instead
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config    // Merged configuration
	GlobalConfig    domain.ConfigInfo // Global config file info
	ProjectConfig   domain.ConfigInfo // Project config file info
	Template        string            // Set only when Template was requested
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
	}
}

// Execute retrieves configuration file information and the merged config.
// With Template set, every file source is ignored so a broken file never
// blocks the template.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	if in.Template {
		in.IgnoreGlobal, in.IgnoreProject = true, true
	}
	cfg, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
		IgnoreGlobal:  in.IgnoreGlobal,
		IgnoreProject: in.IgnoreProject,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	out := &ShowConfigOutput{EffectiveConfig: cfg}
	if in.Template {
		out.Template = domain.RenderConfigTemplate(cfg)
		return out, nil
	}
	if !in.IgnoreGlobal {
		out.GlobalConfig = uc.configManager.GetGlobalConfigInfo()
	}
	if !in.IgnoreProject {
		out.ProjectConfig = uc.configManager.GetProjectConfigInfo()
	}
	return out, nil
}
