package domain

import (
	"iter"
	"maps"
	"slices"
	"time"
)

// WorkDayPredicate reports whether the calendar date of t is a working day.
type WorkDayPredicate func(t time.Time) bool

// EveryDay treats every date as a working day.
func EveryDay(time.Time) bool {
	return true
}

// DurationLedger accumulates elapsed time per category and per actor.
type DurationLedger struct {
	categories map[StatusCategory]time.Duration
	actors     map[string]time.Duration
}

// NewDurationLedger returns a ledger with every category at zero.
func NewDurationLedger() *DurationLedger {
	l := &DurationLedger{
		categories: make(map[StatusCategory]time.Duration, 4),
		actors:     make(map[string]time.Duration),
	}
	for _, c := range AllCategories() {
		l.categories[c] = 0
	}
	return l
}

// Accumulate attributes the time between prev and next to prev's category,
// and to prev's actor while in progress. Unknown categories accrue nothing.
func (l *DurationLedger) Accumulate(prev, next Snapshot) {
	category := prev.EffectiveCategory()
	if !category.IsValid() {
		return
	}
	elapsed := next.At.Sub(prev.At)
	l.categories[category] += elapsed

	if category == CategoryInProgress && prev.Actor != "" {
		l.actors[prev.Actor] += elapsed
	}
}

// Category returns the time spent in c.
func (l *DurationLedger) Category(c StatusCategory) time.Duration {
	return l.categories[c]
}

// Actor returns the in-progress time attributed to name.
func (l *DurationLedger) Actor(name string) time.Duration {
	return l.actors[name]
}

// Categories yields every category in declaration order.
func (l *DurationLedger) Categories() iter.Seq2[StatusCategory, time.Duration] {
	return func(yield func(StatusCategory, time.Duration) bool) {
		for _, c := range AllCategories() {
			if !yield(c, l.categories[c]) {
				return
			}
		}
	}
}

// Actors yields the actors with in-progress time, sorted by name.
func (l *DurationLedger) Actors() iter.Seq2[string, time.Duration] {
	return func(yield func(string, time.Duration) bool) {
		for _, name := range slices.Sorted(maps.Keys(l.actors)) {
			if !yield(name, l.actors[name]) {
				return
			}
		}
	}
}

// Total returns the sum over all categories.
func (l *DurationLedger) Total() time.Duration {
	var total time.Duration
	for _, d := range l.categories {
		total += d
	}
	return total
}

// RelevantTransition returns the filter applied to refined snapshot pairs:
// a pair counts if something changed or it ends on a working day.
func RelevantTransition(isWorkDay WorkDayPredicate) func(prev, next Snapshot) bool {
	return func(prev, next Snapshot) bool {
		return prev.HasChanged(next) || isWorkDay(next.At)
	}
}
