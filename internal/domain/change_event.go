package domain

import (
	"strings"
	"time"
)

// Change fields that affect durations.
const (
	FieldStatus  = "status"
	FieldFlagged = "flagged"
)

// ChangeEvent is one field change recorded by the issue tracker.
type ChangeEvent struct {
	At    time.Time `json:"at" yaml:"at"`
	Field string    `json:"field" yaml:"field"`
	From  string    `json:"from,omitempty" yaml:"from,omitempty"`
	To    string    `json:"to,omitempty" yaml:"to,omitempty"`
	Actor string    `json:"actor,omitempty" yaml:"actor,omitempty"`
}

// Kind returns the normalized field name.
func (e ChangeEvent) Kind() string {
	return strings.ToLower(strings.TrimSpace(e.Field))
}

// IsTracked returns true for the fields that produce snapshots.
func (e ChangeEvent) IsTracked() bool {
	switch e.Kind() {
	case FieldStatus, FieldFlagged:
		return true
	default:
		return false
	}
}

// FlagTransition returns the flag value after the event, or nil when the
// event does not toggle the flag.
func (e ChangeEvent) FlagTransition() *bool {
	from := strings.TrimSpace(e.From) != ""
	to := strings.TrimSpace(e.To) != ""
	switch {
	case !from && to:
		flagged := true
		return &flagged
	case from && !to:
		flagged := false
		return &flagged
	default:
		return nil
	}
}
