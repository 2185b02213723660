package domain

import (
	"fmt"
	"strings"
)

// StatusCategory groups statuses into the four buckets durations are tracked in.
// The zero value means the category is unknown.
type StatusCategory string

const (
	CategoryNew        StatusCategory = "new"         // Not started
	CategoryInProgress StatusCategory = "in_progress" // Actively worked on
	CategoryOnHold     StatusCategory = "on_hold"     // Blocked or flagged
	CategoryDone       StatusCategory = "done"        // Terminal
)

// AllCategories returns all categories in declaration order.
func AllCategories() []StatusCategory {
	return []StatusCategory{
		CategoryNew,
		CategoryInProgress,
		CategoryOnHold,
		CategoryDone,
	}
}

// IsValid returns true if the category is one of the known values.
func (c StatusCategory) IsValid() bool {
	switch c {
	case CategoryNew, CategoryInProgress, CategoryOnHold, CategoryDone:
		return true
	default:
		return false
	}
}

// IsSet returns false for the zero value.
func (c StatusCategory) IsSet() bool {
	return c != ""
}

// Display returns a human-readable representation of the category.
func (c StatusCategory) Display() string {
	switch c {
	case CategoryNew:
		return "New"
	case CategoryInProgress:
		return "In Progress"
	case CategoryOnHold:
		return "On Hold"
	case CategoryDone:
		return "Done"
	case "":
		return "Unknown"
	default:
		return string(c)
	}
}

// ParseCategory parses a category name. Spaces and dashes are accepted in
// place of underscores, so "In Progress" parses as CategoryInProgress.
func ParseCategory(s string) (StatusCategory, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)
	c := StatusCategory(normalized)
	if !c.IsValid() {
		return "", fmt.Errorf("unknown status category %q: %w", s, ErrInvalidArgument)
	}
	return c, nil
}
