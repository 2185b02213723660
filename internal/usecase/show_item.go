package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/usecase/shared"
)

// ShowItemInput contains the parameters for showing one item.
type ShowItemInput struct {
	StatusOverrides map[string]domain.StatusCategory
	Key             string // Item key (required)
	Options         domain.AssembleOptions
}

// ShowItemOutput contains the result of showing one item.
type ShowItemOutput struct {
	Item     *domain.WorkItem    // The item, with Parent linked when present in the history
	Report   domain.ItemReport   // Flattened view of Item
	Children []domain.ItemReport // Direct children in key order
}

// ShowItem is the use case for displaying one item and its snapshots.
type ShowItem struct {
	history domain.HistorySource
	clock   domain.Clock
	logger  domain.Logger
}

// NewShowItem creates a new ShowItem use case.
func NewShowItem(history domain.HistorySource, clock domain.Clock, logger domain.Logger) *ShowItem {
	return &ShowItem{
		history: history,
		clock:   clock,
		logger:  logger,
	}
}

// Execute assembles the requested item with its parent and direct children.
func (uc *ShowItem) Execute(ctx context.Context, in ShowItemInput) (*ShowItemOutput, error) {
	if in.Key == "" {
		return nil, fmt.Errorf("item key is required: %w", domain.ErrInvalidArgument)
	}

	history, err := uc.history.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	raw, err := shared.FindRaw(history, in.Key)
	if err != nil {
		return nil, err
	}
	keys := []string{raw.Key}
	if raw.ParentKey != "" {
		keys = append(keys, raw.ParentKey)
	}
	for i := range history.Items {
		if history.Items[i].ParentKey == raw.Key {
			keys = append(keys, history.Items[i].Key)
		}
	}

	items, err := shared.AssembleItems(ctx, history, shared.AssembleRequest{
		Clock:           uc.clock,
		Logger:          uc.logger,
		StatusOverrides: in.StatusOverrides,
		Keys:            keys,
		Options:         in.Options,
	})
	if err != nil {
		return nil, fmt.Errorf("assemble items: %w", err)
	}

	item, err := items.Get(in.Key)
	if err != nil {
		return nil, err
	}
	out := &ShowItemOutput{Item: item, Report: domain.NewItemReport(item)}
	for _, child := range items.Children(item.Key) {
		out.Children = append(out.Children, domain.NewItemReport(child))
	}
	return out, nil
}
