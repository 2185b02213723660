package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/timeline"
)

// CountDaysInput contains the parameters for counting business days.
type CountDaysInput struct {
	Start     time.Time
	End       time.Time
	IsWorkDay domain.WorkDayPredicate
}

// CountDaysOutput contains the result of counting business days.
type CountDaysOutput struct {
	Days         int // Business days, start day included
	CalendarDays int // Calendar days, start day included
}

// CountDays is the use case for counting business days between two dates.
type CountDays struct{}

// NewCountDays creates a new CountDays use case.
func NewCountDays() *CountDays {
	return &CountDays{}
}

// Execute counts the business days from Start to End.
func (uc *CountDays) Execute(_ context.Context, in CountDaysInput) (*CountDaysOutput, error) {
	days, err := timeline.CountDays(in.Start, in.End, in.IsWorkDay)
	if err != nil {
		return nil, fmt.Errorf("count business days: %w", err)
	}
	calendarDays, err := timeline.CountDays(in.Start, in.End, domain.EveryDay)
	if err != nil {
		return nil, fmt.Errorf("count calendar days: %w", err)
	}
	return &CountDaysOutput{Days: days, CalendarDays: calendarDays}, nil
}
