// Package testutil provides test doubles for the domain ports.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/runoshun/leadtime/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockHistorySource is a test double for domain.HistorySource.
type MockHistorySource struct {
	History   *domain.History
	LoadErr   error
	LoadCalls int
}

// Ensure MockHistorySource implements domain.HistorySource interface.
var _ domain.HistorySource = (*MockHistorySource)(nil)

// Load returns the configured history.
func (m *MockHistorySource) Load(_ context.Context) (*domain.History, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.History == nil {
		return &domain.History{}, nil
	}
	return m.History, nil
}

// MockReportStore is an in-memory domain.ReportStore.
// Fields are ordered to minimize memory padding.
type MockReportStore struct {
	Runs    map[string]*domain.Run
	SaveErr error
	ListErr error
	GetErr  error
}

// Ensure MockReportStore implements domain.ReportStore interface.
var _ domain.ReportStore = (*MockReportStore)(nil)

// NewMockReportStore creates a new MockReportStore with an initialized map.
func NewMockReportStore() *MockReportStore {
	return &MockReportStore{Runs: make(map[string]*domain.Run)}
}

// SaveRun stores the run in memory.
func (m *MockReportStore) SaveRun(_ context.Context, run *domain.Run) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Runs[run.ID] = run
	return nil
}

// ListRuns returns summaries, newest first.
func (m *MockReportStore) ListRuns(_ context.Context, limit int) ([]domain.RunSummary, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.RunSummary, 0, len(m.Runs))
	for _, r := range m.Runs {
		out = append(out, r.Summary())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetRun returns the stored run.
func (m *MockReportStore) GetRun(_ context.Context, id string) (*domain.Run, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	r, ok := m.Runs[id]
	if !ok {
		return nil, fmt.Errorf("run %s: %w", id, domain.ErrRunNotFound)
	}
	return r, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config       *domain.Config
	GlobalConfig *domain.Config
	LoadErr      error
	LastOptions  domain.LoadConfigOptions
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// NewMockConfigLoader creates a loader returning the default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{Config: domain.NewDefaultConfig()}
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured global config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.GlobalConfig == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.GlobalConfig, nil
}

// LoadWithOptions records the options and returns the configured config.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOptions = opts
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	Written           *domain.Config // Config passed to the last Init call
	InitProjectCalled bool
	InitGlobalCalled  bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ProjectConfigInfo: domain.ConfigInfo{
			Path:   "/work/.leadtime.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/leadtime/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call and returns configured error.
func (m *MockConfigManager) InitProjectConfig(cfg *domain.Config) error {
	m.InitProjectCalled = true
	m.Written = cfg
	return m.InitProjectErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	m.InitGlobalCalled = true
	m.Written = cfg
	return m.InitGlobalErr
}

// LogEntry is one message captured by MockLogger.
type LogEntry struct {
	Level    string
	Item     string
	Category string
	Msg      string
}

// MockLogger records log calls.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level, item, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Item: item, Category: category, Msg: msg})
}

// Debug records a debug message.
func (m *MockLogger) Debug(item, category, msg string) { m.record("DEBUG", item, category, msg) }

// Info records an info message.
func (m *MockLogger) Info(item, category, msg string) { m.record("INFO", item, category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(item, category, msg string) { m.record("WARN", item, category, msg) }

// Error records an error message.
func (m *MockLogger) Error(item, category, msg string) { m.record("ERROR", item, category, msg) }

// ByLevel returns the entries logged at level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockIDGenerator returns sequential ids.
type MockIDGenerator struct {
	Prefix string
	next   int
}

// Ensure MockIDGenerator implements domain.IDGenerator interface.
var _ domain.IDGenerator = (*MockIDGenerator)(nil)

// NewID returns the next id.
func (m *MockIDGenerator) NewID() string {
	m.next++
	prefix := m.Prefix
	if prefix == "" {
		prefix = "run"
	}
	return fmt.Sprintf("%s-%d", prefix, m.next)
}
