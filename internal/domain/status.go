package domain

import (
	"fmt"
	"strings"
)

// Status is a workflow state of the issue tracker.
type Status struct {
	ID       string         `json:"id" yaml:"id"`
	Name     string         `json:"name" yaml:"name"`
	Category StatusCategory `json:"category,omitempty" yaml:"category,omitempty"`
}

// GuessCategoryFromName maps well-known workflow status names to a category.
// Unknown names are assumed to be in progress.
func GuessCategoryFromName(name string) StatusCategory {
	name = strings.ToLower(strings.TrimSpace(name))

	switch name {
	case "open", "todo", "to do", "backlog", "approved", "ready to transfer":
		return CategoryNew
	case "done", "rejected", "beta", "closed":
		return CategoryDone
	case "blocked", "dev done", "merge back":
		return CategoryOnHold
	}
	if strings.HasPrefix(name, "ready to ") {
		return CategoryOnHold
	}
	return CategoryInProgress
}

// StatusTable resolves status ids to statuses.
type StatusTable struct {
	byID map[string]Status
}

// NewStatusTable builds a table from the given statuses.
// Categories are resolved in order: overrides keyed by lowercase name, the
// category carried by the status itself, then the name-based guess.
func NewStatusTable(statuses []Status, overrides map[string]StatusCategory) *StatusTable {
	table := &StatusTable{byID: make(map[string]Status, len(statuses))}
	for _, s := range statuses {
		if c, ok := overrides[NormalizeStatusName(s.Name)]; ok {
			s.Category = c
		} else if !s.Category.IsValid() {
			s.Category = GuessCategoryFromName(s.Name)
		}
		table.byID[s.ID] = s
	}
	return table
}

// NormalizeStatusName returns the key used for status overrides.
func NormalizeStatusName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup returns the status with the given id.
func (t *StatusTable) Lookup(id string) (Status, error) {
	s, ok := t.byID[strings.TrimSpace(id)]
	if !ok {
		return Status{}, fmt.Errorf("status %q: %w", id, ErrMissingReference)
	}
	return s, nil
}
