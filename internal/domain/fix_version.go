package domain

import (
	"sort"
	"time"
)

// FixVersion is a release an item is scheduled for.
type FixVersion struct {
	ReleaseDate *time.Time `json:"releaseDate,omitempty" yaml:"release_date,omitempty"`
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
}

// EarliestRelease picks the version an item ships with: the earliest
// release date wins, ties go to the lowest id, and undated versions come last.
// Returns nil for an empty slice.
func EarliestRelease(versions []FixVersion) *FixVersion {
	if len(versions) == 0 {
		return nil
	}
	sorted := make([]FixVersion, len(versions))
	copy(sorted, versions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].ReleaseDate, sorted[j].ReleaseDate
		switch {
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		case a != nil && b != nil && !a.Equal(*b):
			return a.Before(*b)
		}
		return compareIDs(sorted[i].ID, sorted[j].ID) < 0
	})
	return &sorted[0]
}
