// Package domain contains core business entities and interfaces.
package domain

import "time"

// RawItem is one item as read from a change history, before any computation.
// Fields are ordered to minimize memory padding.
type RawItem struct {
	Created         time.Time     `json:"created" yaml:"created"`
	ResolutionDate  *time.Time    `json:"resolutionDate,omitempty" yaml:"resolution_date,omitempty"`
	ID              string        `json:"id" yaml:"id"`
	Key             string        `json:"key" yaml:"key"`
	Title           string        `json:"title" yaml:"title"`
	Type            string        `json:"type,omitempty" yaml:"type,omitempty"`
	Priority        string        `json:"priority,omitempty" yaml:"priority,omitempty"`
	Creator         string        `json:"creator,omitempty" yaml:"creator,omitempty"`
	ParentKey       string        `json:"parent,omitempty" yaml:"parent,omitempty"`
	StatusID        string        `json:"status" yaml:"status"`
	Components      []string      `json:"components,omitempty" yaml:"components,omitempty"`
	FixVersionIDs   []string      `json:"fixVersions,omitempty" yaml:"fix_versions,omitempty"`
	Events          []ChangeEvent `json:"changes,omitempty" yaml:"changes,omitempty"`
	EstimateSeconds int64         `json:"estimateSeconds,omitempty" yaml:"estimate_seconds,omitempty"`
}

// History is the full input of a statistics run.
type History struct {
	Statuses    []Status     `json:"statuses" yaml:"statuses"`
	FixVersions []FixVersion `json:"fixVersions,omitempty" yaml:"fix_versions,omitempty"`
	Items       []RawItem    `json:"items" yaml:"items"`
}

// WorkItem is an item with its derived timings.
// Fields are ordered to minimize memory padding.
type WorkItem struct {
	Created        time.Time
	StartedAt      time.Time
	FinishedAt     *time.Time      // Nil until the item is done
	ResolutionDate *time.Time      // As reported by the tracker
	FixVersion     *FixVersion     // Earliest release, nil if none
	Parent         *WorkItem       // Resolved by ItemCollection.Link
	LeadTime       *int            // Business days from start to finish
	CycleTime      *int            // Business days from creation to release
	Ledger         *DurationLedger // Category and actor durations
	CurrentStatus  Status
	ID             string
	Key            string
	Title          string
	Type           string
	Priority       string
	Creator        string
	ParentKey      string
	Components     []string
	Changes        []Snapshot // Raw snapshots, before refinement
	Warnings       []error    // Unresolved references; never fatal
	DaysEstimated  float64    // Original estimate in 8h days
}

// IsDone returns true if the current status is in the done category.
func (w *WorkItem) IsDone() bool {
	return w.CurrentStatus.Category == CategoryDone
}

// ReleaseDate returns the release date of the fix version, if any.
func (w *WorkItem) ReleaseDate() *time.Time {
	if w.FixVersion == nil {
		return nil
	}
	return w.FixVersion.ReleaseDate
}

// EstimateDays converts an estimate in seconds to 8-hour days,
// dropping partial hours.
func EstimateDays(seconds int64) float64 {
	hours := seconds / 3600
	return float64(hours) / 8
}
