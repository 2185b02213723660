// Package tui provides the terminal report browser for leadtime.
package tui

import "github.com/runoshun/leadtime/internal/domain"

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // Table navigation
	ModeDetail             // Table plus detail pane for the selected item
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// SortMode represents the row ordering of the report table.
type SortMode int

const (
	SortByKey   SortMode = iota // Natural key order
	SortByLead                  // Longest lead time first
	SortByCycle                 // Longest cycle time first
)

// String returns the string representation of the sort mode.
func (s SortMode) String() string {
	switch s {
	case SortByKey:
		return "key"
	case SortByLead:
		return "lead"
	case SortByCycle:
		return "cycle"
	default:
		return "unknown"
	}
}

// Next returns the next sort mode in the cycle.
func (s SortMode) Next() SortMode {
	switch s {
	case SortByKey:
		return SortByLead
	case SortByLead:
		return SortByCycle
	default:
		return SortByKey
	}
}

// nextCategoryFilter cycles through no filter and then every category.
func nextCategoryFilter(c domain.StatusCategory) domain.StatusCategory {
	all := domain.AllCategories()
	if c == "" {
		return all[0]
	}
	for i, cat := range all {
		if cat == c && i+1 < len(all) {
			return all[i+1]
		}
	}
	return ""
}
