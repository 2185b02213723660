package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/leadtime/internal/domain"
)

// ListRunsInput contains the parameters for listing saved runs.
type ListRunsInput struct {
	Limit int // Maximum number of runs (0 = all)
}

// ListRunsOutput contains the result of listing saved runs.
type ListRunsOutput struct {
	Runs []domain.RunSummary // Newest first
}

// ListRuns is the use case for listing saved runs.
type ListRuns struct {
	store domain.ReportStore
}

// NewListRuns creates a new ListRuns use case.
func NewListRuns(store domain.ReportStore) *ListRuns {
	return &ListRuns{store: store}
}

// Execute lists the saved runs.
func (uc *ListRuns) Execute(ctx context.Context, in ListRunsInput) (*ListRunsOutput, error) {
	if in.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative: %w", domain.ErrInvalidArgument)
	}
	runs, err := uc.store.ListRuns(ctx, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return &ListRunsOutput{Runs: runs}, nil
}
