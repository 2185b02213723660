package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/leadtime/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectDir    string // Directory holding .leadtime.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/leadtime)
}

// NewManager creates a new Manager.
func NewManager(projectDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectDir, globalConfDir string) *Manager {
	return &Manager{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// GetProjectConfigInfo returns information about the project config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.getConfigInfo(filepath.Join(m.projectDir, domain.ProjectConfigFileName))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitProjectConfig creates a project config file with default template.
func (m *Manager) InitProjectConfig(cfg *domain.Config) error {
	return m.initConfig(filepath.Join(m.projectDir, domain.ProjectConfigFileName), cfg)
}

// InitGlobalConfig creates a global config file with default template.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	return m.initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName), cfg)
}

func (m *Manager) initConfig(path string, cfg *domain.Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, domain.ErrConfigExists)
	}

	content := domain.RenderConfigTemplate(cfg)

	return os.WriteFile(path, []byte(content), 0o600)
}
