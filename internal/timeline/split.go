package timeline

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

// Timestamped is a value that carries an instant and can be copied onto
// another instant. WithTime must not modify the receiver.
type Timestamped[T any] interface {
	Time() time.Time
	WithTime(at time.Time) T
}

// Split refines items by inserting copies of each element at every interval
// boundary that falls strictly between it and its successor. The original
// elements are kept; at equal instants a boundary copy precedes the real
// successor. An interval of zero disables refinement.
//
// Items must be ordered by time. Ordering and the interval are validated
// before the sequence is returned, so iteration never fails.
func Split[T Timestamped[T]](items []T, interval time.Duration) (iter.Seq[T], error) {
	if interval < 0 {
		return nil, fmt.Errorf("split: negative interval %s: %w", interval, ErrInvalidArgument)
	}
	for i := 1; i < len(items); i++ {
		prev, next := items[i-1].Time(), items[i].Time()
		if prev.After(next) {
			return nil, fmt.Errorf("split: element %d (%s) is after element %d (%s): %w",
				i-1, prev.Format(time.RFC3339), i, next.Format(time.RFC3339), ErrInvalidArgument)
		}
	}

	return func(yield func(T) bool) {
		if len(items) == 0 {
			return
		}
		pairs, _ := LagAll(slices.Values(items))
		for previous, next := range pairs {
			if !yield(previous) {
				return
			}
			for at := range boundaries(previous.Time(), next.Time(), interval) {
				if !yield(previous.WithTime(at)) {
					return
				}
			}
		}
		yield(items[len(items)-1])
	}, nil
}

// Between returns start, every interval boundary strictly between start and
// end, and end. When start equals end the result holds a single instant.
func Between(start, end time.Time, interval time.Duration) ([]time.Time, error) {
	if interval < 0 {
		return nil, fmt.Errorf("between: negative interval %s: %w", interval, ErrInvalidArgument)
	}
	if start.After(end) {
		return nil, fmt.Errorf("between: start %s is after end %s: %w",
			start.Format(time.RFC3339), end.Format(time.RFC3339), ErrInvalidArgument)
	}

	instants := []time.Time{start}
	for at := range boundaries(start, end, interval) {
		instants = append(instants, at)
	}
	if end.After(start) {
		instants = append(instants, end)
	}
	return instants, nil
}

// boundaries yields the aligned instants strictly after start and strictly
// before end.
func boundaries(start, end time.Time, interval time.Duration) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if interval <= 0 {
			return
		}
		for at := NextBoundary(start, interval); at.Before(end); at = at.Add(interval) {
			if !yield(at) {
				return
			}
		}
	}
}

// NextBoundary returns the first instant strictly after t that is a whole
// multiple of interval on t's wall clock, so a 24h interval lands on local
// midnight. Interval must be positive.
func NextBoundary(t time.Time, interval time.Duration) time.Time {
	_, offset := t.Zone()
	shift := time.Duration(offset) * time.Second
	wall := t.Add(shift)
	return wall.Truncate(interval).Add(interval).Add(-shift)
}
