package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetProjectConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		projectDir := t.TempDir()
		configContent := "[log]\nlevel = \"warn\""
		err := os.WriteFile(filepath.Join(projectDir, domain.ProjectConfigFileName), []byte(configContent), 0o644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir(projectDir, "")
		info := manager.GetProjectConfigInfo()

		assert.Equal(t, filepath.Join(projectDir, domain.ProjectConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		projectDir := t.TempDir()

		manager := NewManagerWithGlobalDir(projectDir, "")
		info := manager.GetProjectConfigInfo()

		assert.Equal(t, filepath.Join(projectDir, domain.ProjectConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})
}

func TestManager_GetGlobalConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		err := os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte(configContent), 0o644)
		require.NoError(t, err)

		manager := NewManagerWithGlobalDir("", globalDir)
		info := manager.GetGlobalConfigInfo()

		assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns empty info without a global directory", func(t *testing.T) {
		manager := NewManagerWithGlobalDir(t.TempDir(), "")
		info := manager.GetGlobalConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitProjectConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		projectDir := t.TempDir()
		manager := NewManagerWithGlobalDir(projectDir, "")

		err := manager.InitProjectConfig(domain.NewDefaultConfig())
		require.NoError(t, err)

		path := filepath.Join(projectDir, domain.ProjectConfigFileName)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "[calendar]")
		assert.Contains(t, string(content), "[stats]")

		stat, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), stat.Mode().Perm())
	})

	t.Run("generated file loads back", func(t *testing.T) {
		projectDir := t.TempDir()
		manager := NewManagerWithGlobalDir(projectDir, "")
		require.NoError(t, manager.InitProjectConfig(domain.NewDefaultConfig()))

		cfg, err := NewLoaderWithGlobalDir(projectDir, "").Load()

		require.NoError(t, err)
		assert.Empty(t, cfg.Warnings)
		assert.Equal(t, domain.NewDefaultConfig().Stats.SplitInterval, cfg.Stats.SplitInterval)
	})

	t.Run("returns error when file exists", func(t *testing.T) {
		projectDir := t.TempDir()
		path := filepath.Join(projectDir, domain.ProjectConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte("existing"), 0o644))

		manager := NewManagerWithGlobalDir(projectDir, "")
		err := manager.InitProjectConfig(domain.NewDefaultConfig())

		assert.ErrorIs(t, err, domain.ErrConfigExists)
		content, _ := os.ReadFile(path)
		assert.Equal(t, "existing", string(content))
	})
}

func TestManager_InitGlobalConfig(t *testing.T) {
	t.Run("creates config file and directory", func(t *testing.T) {
		globalDir := filepath.Join(t.TempDir(), "nested", "leadtime")
		manager := NewManagerWithGlobalDir("", globalDir)

		err := manager.InitGlobalConfig(domain.NewDefaultConfig())
		require.NoError(t, err)

		assert.FileExists(t, filepath.Join(globalDir, domain.ConfigFileName))
	})

	t.Run("returns error when file exists", func(t *testing.T) {
		globalDir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, domain.ConfigFileName), []byte("x"), 0o644))

		manager := NewManagerWithGlobalDir("", globalDir)
		err := manager.InitGlobalConfig(domain.NewDefaultConfig())

		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("returns error without a global directory", func(t *testing.T) {
		manager := NewManagerWithGlobalDir("", "")
		err := manager.InitGlobalConfig(domain.NewDefaultConfig())
		assert.Error(t, err)
	})
}
