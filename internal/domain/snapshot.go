package domain

import (
	"fmt"
	"time"
)

// Snapshot is the state of an item at one instant.
// Snapshots are values; every change produces a new one.
type Snapshot struct {
	At      time.Time `json:"at" yaml:"at"`
	Status  Status    `json:"status" yaml:"status"`
	Actor   string    `json:"actor" yaml:"actor"`
	Flagged bool      `json:"flagged" yaml:"flagged"`
}

// SnapshotDelta describes one recorded change. Nil fields are left unchanged.
type SnapshotDelta struct {
	At      time.Time
	Status  *Status
	Flagged *bool
	Actor   string
}

// Time implements timeline.Timestamped.
func (s Snapshot) Time() time.Time {
	return s.At
}

// WithTime implements timeline.Timestamped.
func (s Snapshot) WithTime(at time.Time) Snapshot {
	s.At = at
	return s
}

// EffectiveCategory is the category time is attributed to.
// Done wins over the flag; a flagged item is otherwise on hold.
func (s Snapshot) EffectiveCategory() StatusCategory {
	switch {
	case s.Status.Category == CategoryDone:
		return CategoryDone
	case s.Flagged:
		return CategoryOnHold
	default:
		return s.Status.Category
	}
}

// HasChanged reports whether moving from s to other is a meaningful change.
// Once done, an item stays unchanged whatever else happens to it.
func (s Snapshot) HasChanged(other Snapshot) bool {
	current, next := s.EffectiveCategory(), other.EffectiveCategory()
	if current == CategoryDone && next == CategoryDone {
		return false
	}
	return current != next || s.Actor != other.Actor
}

// Apply returns the snapshot that results from d.
func (s Snapshot) Apply(d SnapshotDelta) Snapshot {
	next := s
	next.At = d.At
	next.Actor = d.Actor
	if d.Status != nil {
		next.Status = *d.Status
	}
	if d.Flagged != nil {
		next.Flagged = *d.Flagged
	}
	return next
}

func (s Snapshot) String() string {
	flag := ""
	if s.Flagged {
		flag = " (flagged)"
	}
	return fmt.Sprintf("%s %s %s%s", s.At.Format(time.DateTime), s.EffectiveCategory().Display(), s.Actor, flag)
}
