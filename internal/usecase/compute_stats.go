package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/usecase/shared"
)

// ComputeStatsInput contains the parameters for computing statistics.
// Fields are ordered to minimize memory padding.
type ComputeStatsInput struct {
	StatusOverrides map[string]domain.StatusCategory // [statuses] overrides
	Source          string                           // History file, recorded on saved runs
	Keys            []string                         // Restrict to these item keys (empty = all)
	Options         domain.AssembleOptions           // Calendar and interval settings
	Max             int                              // Maximum number of items (0 = no limit)
	Save            bool                             // Persist the run
}

// ComputeStatsOutput contains the result of computing statistics.
type ComputeStatsOutput struct {
	Items   *domain.ItemCollection // Assembled items, linked to their parents
	Reports []domain.ItemReport    // Items flattened in key order
	RunID   string                 // Set when the run was saved
}

// ComputeStats is the use case for computing lead times and durations.
type ComputeStats struct {
	history domain.HistorySource
	store   domain.ReportStore
	ids     domain.IDGenerator
	clock   domain.Clock
	logger  domain.Logger
}

// NewComputeStats creates a new ComputeStats use case.
func NewComputeStats(
	history domain.HistorySource,
	store domain.ReportStore,
	ids domain.IDGenerator,
	clock domain.Clock,
	logger domain.Logger,
) *ComputeStats {
	return &ComputeStats{
		history: history,
		store:   store,
		ids:     ids,
		clock:   clock,
		logger:  logger,
	}
}

// Execute loads the history, assembles every selected item and optionally
// saves the run.
func (uc *ComputeStats) Execute(ctx context.Context, in ComputeStatsInput) (*ComputeStatsOutput, error) {
	if in.Max < 0 {
		return nil, fmt.Errorf("max must not be negative: %w", domain.ErrInvalidArgument)
	}

	history, err := uc.history.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	var keys []string
	if len(in.Keys) > 0 {
		keys = in.Keys
	}
	items, err := shared.AssembleItems(ctx, history, shared.AssembleRequest{
		Clock:           uc.clock,
		Logger:          uc.logger,
		StatusOverrides: in.StatusOverrides,
		Keys:            keys,
		Options:         in.Options,
		Max:             in.Max,
	})
	if err != nil {
		return nil, fmt.Errorf("assemble items: %w", err)
	}

	for _, key := range keys {
		if _, err := items.Get(key); err != nil && in.Max == 0 {
			return nil, err
		}
	}

	reports := make([]domain.ItemReport, 0, items.Len())
	for item := range items.All() {
		reports = append(reports, domain.NewItemReport(item))
	}

	out := &ComputeStatsOutput{Items: items, Reports: reports}

	if in.Save {
		run := &domain.Run{
			ID:        uc.ids.NewID(),
			CreatedAt: uc.clock.Now(),
			Source:    in.Source,
			Items:     reports,
		}
		if err := uc.store.SaveRun(ctx, run); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
		out.RunID = run.ID
		uc.logger.Info("", "stats", fmt.Sprintf("saved run %s with %d items", run.ID, len(reports)))
	}

	uc.logger.Info("", "stats", fmt.Sprintf("computed %d items from %s", items.Len(), in.Source))
	return out, nil
}
