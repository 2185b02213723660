package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/leadtime/internal/domain"
)

// ShowRunInput contains the parameters for showing a saved run.
type ShowRunInput struct {
	ID string // Run ID (required)
}

// ShowRunOutput contains the result of showing a saved run.
type ShowRunOutput struct {
	Run *domain.Run
}

// ShowRun is the use case for displaying a saved run.
type ShowRun struct {
	store domain.ReportStore
}

// NewShowRun creates a new ShowRun use case.
func NewShowRun(store domain.ReportStore) *ShowRun {
	return &ShowRun{store: store}
}

// Execute retrieves the run.
func (uc *ShowRun) Execute(ctx context.Context, in ShowRunInput) (*ShowRunOutput, error) {
	if in.ID == "" {
		return nil, fmt.Errorf("run id is required: %w", domain.ErrInvalidArgument)
	}
	run, err := uc.store.GetRun(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return &ShowRunOutput{Run: run}, nil
}
