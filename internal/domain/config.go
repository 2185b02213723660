package domain

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Default configuration values.
const (
	DefaultSplitInterval       = time.Hour
	DefaultResolutionTolerance = 5 * time.Minute
	DefaultLogLevel            = "info"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Statuses map[string]StatusCategory // [statuses] lowercase name -> category
	Warnings []string                  // Unknown keys found while loading
	Calendar CalendarConfig            // [calendar]
	History  HistoryConfig             // [history]
	Store    StoreConfig               // [store]
	Log      LogConfig                 // [log]
	Stats    StatsConfig               // [stats]
}

// CalendarConfig holds working-day settings from [calendar] section.
type CalendarConfig struct {
	Weekend  []string // Weekday names
	Holidays []string // YYYY-MM-DD
}

// StatsConfig holds computation settings from [stats] section.
// Fields are ordered to minimize memory padding.
type StatsConfig struct {
	SplitInterval       time.Duration
	ResolutionTolerance time.Duration
	SplitIntervalSet    bool // True if split_interval was explicitly set
	ToleranceSet        bool // True if resolution_tolerance was explicitly set
}

// HistoryConfig holds input settings from [history] section.
type HistoryConfig struct {
	Path string // Change history file
}

// StoreConfig holds report database settings from [store] section.
type StoreConfig struct {
	Path string // SQLite file (empty = data directory)
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	weekend := make([]string, 0, 2)
	for _, d := range DefaultWeekend() {
		weekend = append(weekend, strings.ToLower(d.String()))
	}
	return &Config{
		Statuses: make(map[string]StatusCategory),
		Calendar: CalendarConfig{Weekend: weekend},
		Stats: StatsConfig{
			SplitInterval:       DefaultSplitInterval,
			ResolutionTolerance: DefaultResolutionTolerance,
		},
		Log: LogConfig{Level: DefaultLogLevel},
	}
}

// Validate checks every value that can be checked without touching the disk.
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.BuildCalendar(time.Local); err != nil {
		errs = append(errs, err)
	}
	if c.Stats.SplitInterval < 0 {
		errs = append(errs, fmt.Errorf("stats.split_interval must not be negative: %w", ErrInvalidArgument))
	}
	if c.Stats.ResolutionTolerance < 0 {
		errs = append(errs, fmt.Errorf("stats.resolution_tolerance must not be negative: %w", ErrInvalidArgument))
	}
	for name, category := range c.Statuses {
		if !category.IsValid() {
			errs = append(errs, fmt.Errorf("statuses.%q: unknown category %q: %w", name, category, ErrInvalidArgument))
		}
	}
	if !slices.Contains(LogLevels(), c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q: %w", c.Log.Level, ErrInvalidArgument))
	}
	return errors.Join(errs...)
}

// LogLevels returns the accepted log level names.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// BuildCalendar parses the calendar section. Holidays are dates in loc.
func (c *Config) BuildCalendar(loc *time.Location) (*Calendar, error) {
	weekend := make([]time.Weekday, 0, len(c.Calendar.Weekend))
	for _, name := range c.Calendar.Weekend {
		d, err := ParseWeekday(name)
		if err != nil {
			return nil, fmt.Errorf("calendar.weekend: %w", err)
		}
		weekend = append(weekend, d)
	}
	holidays := make([]time.Time, 0, len(c.Calendar.Holidays))
	for _, s := range c.Calendar.Holidays {
		h, err := ParseDate(s, loc)
		if err != nil {
			return nil, fmt.Errorf("calendar.holidays: %w", err)
		}
		holidays = append(holidays, h)
	}
	return NewCalendar(weekend, holidays), nil
}

// AssembleOptions returns the computation options for cal.
func (c *Config) AssembleOptions(cal *Calendar) AssembleOptions {
	return AssembleOptions{
		IsWorkDay:           cal.Predicate(),
		SplitInterval:       c.Stats.SplitInterval,
		ResolutionTolerance: c.Stats.ResolutionTolerance,
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	SplitInterval       string
	ResolutionTolerance string
	LogLevel            string
	HistoryPath         string
	Weekend             []string
	Holidays            []string
}

// RenderConfigTemplate renders the commented config file written by
// `config init`, filled with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		SplitInterval:       cfg.Stats.SplitInterval.String(),
		ResolutionTolerance: cfg.Stats.ResolutionTolerance.String(),
		LogLevel:            cfg.Log.Level,
		HistoryPath:         cfg.History.Path,
		Weekend:             cfg.Calendar.Weekend,
		Holidays:            cfg.Calendar.Holidays,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}

// SortedStatusOverrides returns the [statuses] names in order.
func (c *Config) SortedStatusOverrides() []string {
	return slices.Sorted(maps.Keys(c.Statuses))
}
