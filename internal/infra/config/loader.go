// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/leadtime/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectDir    string // Directory holding .leadtime.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/leadtime)
}

// NewLoader creates a new Loader.
func NewLoader(projectDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectDir, globalConfDir string) *Loader {
	return &Loader{
		projectDir:    projectDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (project + global).
// Project config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	return l.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions returns the merged configuration with options to ignore sources.
func (l *Loader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	var global, project *domain.Config
	var err error

	if !opts.IgnoreGlobal {
		global, err = l.LoadGlobal()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if !opts.IgnoreProject {
		project, err = l.LoadProject()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	// Merge: default <- global <- project (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	return l.loadFile(filepath.Join(l.projectDir, domain.ProjectConfigFileName))
}

// loadFile loads a configuration from a file. Relative paths inside the
// file are resolved against its directory.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg, err := convertRawToDomainConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	cfg.History.Path = resolvePath(dir, cfg.History.Path)
	cfg.Store.Path = resolvePath(dir, cfg.Store.Path)
	return cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) (*domain.Config, error) {
	res := &domain.Config{
		Statuses: make(map[string]domain.StatusCategory),
	}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "calendar":
			for k, v := range m {
				switch k {
				case "weekend":
					days, err := stringList("calendar.weekend", v)
					if err != nil {
						return nil, err
					}
					res.Calendar.Weekend = days
				case "holidays":
					days, err := stringList("calendar.holidays", v)
					if err != nil {
						return nil, err
					}
					res.Calendar.Holidays = days
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [calendar]: %s", k))
				}
			}
		case "stats":
			for k, v := range m {
				switch k {
				case "split_interval":
					d, err := duration("stats.split_interval", v)
					if err != nil {
						return nil, err
					}
					res.Stats.SplitInterval = d
					res.Stats.SplitIntervalSet = true
				case "resolution_tolerance":
					d, err := duration("stats.resolution_tolerance", v)
					if err != nil {
						return nil, err
					}
					res.Stats.ResolutionTolerance = d
					res.Stats.ToleranceSet = true
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [stats]: %s", k))
				}
			}
		case "statuses":
			for name, v := range m {
				s, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("statuses.%q: expected a category name: %w", name, domain.ErrInvalidArgument)
				}
				c, err := domain.ParseCategory(s)
				if err != nil {
					return nil, fmt.Errorf("statuses.%q: %w", name, err)
				}
				res.Statuses[domain.NormalizeStatusName(name)] = c
			}
		case "history":
			for k, v := range m {
				switch k {
				case "path":
					if s, ok := v.(string); ok {
						res.History.Path = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [history]: %s", k))
				}
			}
		case "store":
			for k, v := range m {
				switch k {
				case "path":
					if s, ok := v.(string); ok {
						res.Store.Path = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res, nil
}

func stringList(key string, v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a list of strings: %w", key, domain.ErrInvalidArgument)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s: expected a list of strings: %w", key, domain.ErrInvalidArgument)
		}
		out = append(out, s)
	}
	return out, nil
}

func duration(key string, v any) (time.Duration, error) {
	s, ok := v.(string)
	if !ok {
		return 0, fmt.Errorf("%s: expected a duration string: %w", key, domain.ErrInvalidArgument)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %v: %w", key, err, domain.ErrInvalidArgument)
	}
	return d, nil
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Calendar: base.Calendar,
		History:  base.History,
		Store:    base.Store,
		Log:      base.Log,
		Stats:    base.Stats,
		Statuses: make(map[string]domain.StatusCategory, len(base.Statuses)+len(override.Statuses)),
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	for name, c := range base.Statuses {
		result.Statuses[name] = c
	}
	for name, c := range override.Statuses {
		result.Statuses[name] = c
	}

	// Lists replace rather than append, so a project can clear holidays.
	if override.Calendar.Weekend != nil {
		result.Calendar.Weekend = override.Calendar.Weekend
	}
	if override.Calendar.Holidays != nil {
		result.Calendar.Holidays = override.Calendar.Holidays
	}
	if override.Stats.SplitIntervalSet {
		result.Stats.SplitInterval = override.Stats.SplitInterval
		result.Stats.SplitIntervalSet = true
	}
	if override.Stats.ToleranceSet {
		result.Stats.ResolutionTolerance = override.Stats.ResolutionTolerance
		result.Stats.ToleranceSet = true
	}
	if override.History.Path != "" {
		result.History.Path = override.History.Path
	}
	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
