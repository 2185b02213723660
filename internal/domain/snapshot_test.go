package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	statusOpen     = Status{ID: "1", Name: "Open", Category: CategoryNew}
	statusTodo     = Status{ID: "2", Name: "Todo", Category: CategoryNew}
	statusWork     = Status{ID: "3", Name: "Work", Category: CategoryInProgress}
	statusDone     = Status{ID: "4", Name: "Done", Category: CategoryDone}
	statusRejected = Status{ID: "5", Name: "Rejected", Category: CategoryDone}
	statusBlocked  = Status{ID: "6", Name: "Blocked", Category: CategoryOnHold}
)

func TestSnapshot_EffectiveCategory(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		expected StatusCategory
	}{
		{"new", Snapshot{Status: statusOpen}, CategoryNew},
		{"in progress", Snapshot{Status: statusWork}, CategoryInProgress},
		{"flagged in progress", Snapshot{Status: statusWork, Flagged: true}, CategoryOnHold},
		{"flagged new", Snapshot{Status: statusTodo, Flagged: true}, CategoryOnHold},
		{"done wins over flag", Snapshot{Status: statusDone, Flagged: true}, CategoryDone},
		{"on hold status", Snapshot{Status: statusBlocked}, CategoryOnHold},
		{"unresolved status", Snapshot{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.snapshot.EffectiveCategory())
		})
	}
}

func TestSnapshot_HasChanged(t *testing.T) {
	tests := []struct {
		name     string
		prev     Snapshot
		next     Snapshot
		expected bool
	}{
		{"same", Snapshot{Status: statusWork, Actor: "a"}, Snapshot{Status: statusWork, Actor: "a"}, false},
		{"same category other status", Snapshot{Status: statusOpen, Actor: "a"}, Snapshot{Status: statusTodo, Actor: "a"}, false},
		{"category", Snapshot{Status: statusTodo, Actor: "a"}, Snapshot{Status: statusWork, Actor: "a"}, true},
		{"actor", Snapshot{Status: statusWork, Actor: "a"}, Snapshot{Status: statusWork, Actor: "b"}, true},
		{"flag", Snapshot{Status: statusWork, Actor: "a"}, Snapshot{Status: statusWork, Actor: "a", Flagged: true}, true},
		{"done to done with new actor", Snapshot{Status: statusRejected, Actor: "a"}, Snapshot{Status: statusDone, Actor: "b"}, false},
		{"done to done flagged", Snapshot{Status: statusDone}, Snapshot{Status: statusDone, Flagged: true}, false},
		{"reopened", Snapshot{Status: statusDone, Actor: "a"}, Snapshot{Status: statusTodo, Actor: "a"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.prev.HasChanged(tt.next))
		})
	}
}

func TestSnapshot_Apply(t *testing.T) {
	start := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	base := Snapshot{At: start, Status: statusTodo, Actor: "john"}
	flagged := true

	// Status change
	next := base.Apply(SnapshotDelta{At: start.Add(time.Hour), Status: &statusWork, Actor: "jane"})
	assert.Equal(t, statusWork, next.Status)
	assert.Equal(t, "jane", next.Actor)
	assert.False(t, next.Flagged)
	assert.True(t, next.At.Equal(start.Add(time.Hour)))

	// Flag change keeps status
	next = next.Apply(SnapshotDelta{At: start.Add(2 * time.Hour), Flagged: &flagged, Actor: "mike"})
	assert.Equal(t, statusWork, next.Status)
	assert.True(t, next.Flagged)
	assert.Equal(t, "mike", next.Actor)

	// No-op delta still moves time and actor
	next = next.Apply(SnapshotDelta{At: start.Add(3 * time.Hour), Actor: "jane"})
	assert.Equal(t, statusWork, next.Status)
	assert.True(t, next.Flagged)
	assert.Equal(t, "jane", next.Actor)

	// The original is untouched
	assert.Equal(t, statusTodo, base.Status)
	assert.Equal(t, "john", base.Actor)
}

func TestSnapshot_WithTime(t *testing.T) {
	start := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	s := Snapshot{At: start, Status: statusWork, Actor: "john", Flagged: true}

	clone := s.WithTime(start.Add(time.Hour))

	assert.True(t, s.Time().Equal(start))
	assert.True(t, clone.Time().Equal(start.Add(time.Hour)))
	assert.Equal(t, s.Status, clone.Status)
	assert.Equal(t, s.Actor, clone.Actor)
	assert.Equal(t, s.Flagged, clone.Flagged)
}

func TestChangeEvent_FlagTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		expected *bool
	}{
		{"set", "", "Impediment", boolPtr(true)},
		{"cleared", "Impediment", "", boolPtr(false)},
		{"blank to blank", "", "  ", nil},
		{"value to value", "Impediment", "Other", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := ChangeEvent{Field: "Flagged", From: tt.from, To: tt.to}
			assert.Equal(t, tt.expected, e.FlagTransition())
		})
	}
}

func TestChangeEvent_IsTracked(t *testing.T) {
	assert.True(t, ChangeEvent{Field: "Status"}.IsTracked())
	assert.True(t, ChangeEvent{Field: "flagged"}.IsTracked())
	assert.False(t, ChangeEvent{Field: "assignee"}.IsTracked())
	assert.False(t, ChangeEvent{Field: "resolution"}.IsTracked())
}

func boolPtr(b bool) *bool { return &b }
