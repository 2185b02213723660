package domain

import (
	"fmt"
	"strings"
	"time"
)

// Calendar decides which dates are working days.
type Calendar struct {
	weekend  map[time.Weekday]bool
	holidays map[string]struct{}
}

// DefaultWeekend is Saturday and Sunday.
func DefaultWeekend() []time.Weekday {
	return []time.Weekday{time.Saturday, time.Sunday}
}

// NewCalendar creates a calendar with the given weekend days and holidays.
// Holidays are matched on their calendar date only.
func NewCalendar(weekend []time.Weekday, holidays []time.Time) *Calendar {
	c := &Calendar{
		weekend:  make(map[time.Weekday]bool, len(weekend)),
		holidays: make(map[string]struct{}, len(holidays)),
	}
	for _, d := range weekend {
		c.weekend[d] = true
	}
	for _, h := range holidays {
		c.holidays[h.Format(time.DateOnly)] = struct{}{}
	}
	return c
}

// IsWorkDay returns true unless t falls on a weekend day or a holiday.
// The date is read in t's own location.
func (c *Calendar) IsWorkDay(t time.Time) bool {
	if c.weekend[t.Weekday()] {
		return false
	}
	_, holiday := c.holidays[t.Format(time.DateOnly)]
	return !holiday
}

// Predicate returns IsWorkDay as a WorkDayPredicate.
func (c *Calendar) Predicate() WorkDayPredicate {
	return c.IsWorkDay
}

// ParseWeekday parses an English weekday name or its three-letter abbreviation.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q: %w", s, ErrInvalidArgument)
}

// ParseDate parses a YYYY-MM-DD date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, ErrInvalidArgument)
	}
	return t, nil
}
