package timeline

import (
	"fmt"
	"slices"
	"time"
)

// Day is a nominal 24h interval. Calendar days differ from it across DST.
const Day = 24 * time.Hour

// CountDays returns the number of business days from start to end, inclusive
// of the start day. Both instants are truncated to their calendar date; only
// day-to-day steps that leave a work day are counted.
func CountDays(start, end time.Time, isWorkDay func(time.Time) bool) (int, error) {
	if isWorkDay == nil {
		return 0, fmt.Errorf("count days: nil work-day predicate: %w", ErrInvalidArgument)
	}
	if start.After(end) {
		return 0, fmt.Errorf("count days: start %s is after end %s: %w",
			start.Format(time.DateOnly), end.Format(time.DateOnly), ErrInvalidArgument)
	}

	days := calendarDays(Date(start), Date(end))
	steps, err := Lag(slices.Values(days), func(previous, _ time.Time) bool {
		return isWorkDay(previous)
	})
	if err != nil {
		return 0, fmt.Errorf("count days: %w", err)
	}

	// Count steps, not elapsed time: a calendar day is 23h or 25h across DST.
	count := 1
	for range steps {
		count++
	}
	return count, nil
}

// calendarDays lists the local midnights from first to last inclusive.
// Dates advance with AddDate so a DST change never shifts them off midnight.
func calendarDays(first, last time.Time) []time.Time {
	days := []time.Time{first}
	for d := first.AddDate(0, 0, 1); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Date truncates t to midnight of its calendar date in t's location.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
