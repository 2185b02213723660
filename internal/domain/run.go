package domain

import "time"

// Run is one saved statistics computation.
type Run struct {
	CreatedAt time.Time    `json:"createdAt" yaml:"created_at"`
	ID        string       `json:"id" yaml:"id"`
	Source    string       `json:"source" yaml:"source"` // History file the run was computed from
	Items     []ItemReport `json:"items" yaml:"items"`
}

// RunSummary is the list view of a run.
type RunSummary struct {
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	ID        string    `json:"id" yaml:"id"`
	Source    string    `json:"source" yaml:"source"`
	ItemCount int       `json:"itemCount" yaml:"item_count"`
}

// Summary returns the list view of r.
func (r *Run) Summary() RunSummary {
	return RunSummary{
		CreatedAt: r.CreatedAt,
		ID:        r.ID,
		Source:    r.Source,
		ItemCount: len(r.Items),
	}
}

// FindItem returns the report for key.
func (r *Run) FindItem(key string) (*ItemReport, error) {
	for i := range r.Items {
		if r.Items[i].Key == key {
			return &r.Items[i], nil
		}
	}
	return nil, ErrItemNotFound
}

// ItemReport is the flattened, serializable result for one item.
// Fields are ordered to minimize memory padding.
type ItemReport struct {
	Created       time.Time       `json:"created" yaml:"created"`
	StartedAt     time.Time       `json:"started" yaml:"started"`
	FinishedAt    *time.Time      `json:"finished,omitempty" yaml:"finished,omitempty"`
	LeadTime      *int            `json:"leadTime,omitempty" yaml:"lead_time,omitempty"`
	CycleTime     *int            `json:"cycleTime,omitempty" yaml:"cycle_time,omitempty"`
	Key           string          `json:"key" yaml:"key"`
	Title         string          `json:"title" yaml:"title"`
	Type          string          `json:"type,omitempty" yaml:"type,omitempty"`
	Status        string          `json:"status" yaml:"status"`
	Category      StatusCategory  `json:"category" yaml:"category"`
	Parent        string          `json:"parent,omitempty" yaml:"parent,omitempty"`
	FixVersion    string          `json:"fixVersion,omitempty" yaml:"fix_version,omitempty"`
	Categories    []DurationEntry `json:"categories" yaml:"categories"`
	Actors        []DurationEntry `json:"actors,omitempty" yaml:"actors,omitempty"`
	Warnings      []string        `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	DaysEstimated float64         `json:"daysEstimated,omitempty" yaml:"days_estimated,omitempty"`
}

// DurationEntry is a named duration. Days is derived for display.
type DurationEntry struct {
	Name     string        `json:"name" yaml:"name"`
	Duration time.Duration `json:"-" yaml:"-"`
	Days     float64       `json:"days" yaml:"days"`
}

// NewDurationEntry creates an entry with Days derived from d.
func NewDurationEntry(name string, d time.Duration) DurationEntry {
	return DurationEntry{Name: name, Duration: d, Days: d.Hours() / 24}
}

// NewItemReport flattens item.
func NewItemReport(item *WorkItem) ItemReport {
	r := ItemReport{
		Created:       item.Created,
		StartedAt:     item.StartedAt,
		FinishedAt:    item.FinishedAt,
		LeadTime:      item.LeadTime,
		CycleTime:     item.CycleTime,
		Key:           item.Key,
		Title:         item.Title,
		Type:          item.Type,
		Status:        item.CurrentStatus.Name,
		Category:      item.CurrentStatus.Category,
		Parent:        item.ParentKey,
		DaysEstimated: item.DaysEstimated,
	}
	if item.FixVersion != nil {
		r.FixVersion = item.FixVersion.Name
	}
	if item.Ledger != nil {
		for c, d := range item.Ledger.Categories() {
			r.Categories = append(r.Categories, NewDurationEntry(string(c), d))
		}
		for name, d := range item.Ledger.Actors() {
			r.Actors = append(r.Actors, NewDurationEntry(name, d))
		}
	}
	for _, w := range item.Warnings {
		r.Warnings = append(r.Warnings, w.Error())
	}
	return r
}

// CategoryDuration returns the duration recorded for c.
func (r *ItemReport) CategoryDuration(c StatusCategory) time.Duration {
	for _, e := range r.Categories {
		if e.Name == string(c) {
			return e.Duration
		}
	}
	return 0
}

// HasWarnings returns true if any reference could not be resolved.
func (r *ItemReport) HasWarnings() bool {
	return len(r.Warnings) > 0
}
