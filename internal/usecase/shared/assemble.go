// Package shared provides shared utilities for use cases.
package shared

import (
	"context"
	"fmt"
	"slices"

	"github.com/runoshun/leadtime/internal/domain"
)

// AssembleRequest selects and configures the items to assemble.
// Fields are ordered to minimize memory padding.
type AssembleRequest struct {
	Clock           domain.Clock
	Logger          domain.Logger
	StatusOverrides map[string]domain.StatusCategory
	Keys            []string // Only these keys (nil = all)
	Options         domain.AssembleOptions
	Max             int // Stop after this many items (0 = no limit)
}

// AssembleItems assembles the selected raw items of history into a linked
// collection. Unresolved references are logged as warnings. Cancellation is
// checked between items.
func AssembleItems(ctx context.Context, history *domain.History, req AssembleRequest) (*domain.ItemCollection, error) {
	statuses := domain.NewStatusTable(history.Statuses, req.StatusOverrides)
	assembler := domain.NewAssembler(statuses, history.FixVersions, req.Clock, req.Options)
	items := domain.NewItemCollection()

	for _, raw := range history.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if req.Keys != nil && !slices.Contains(req.Keys, raw.Key) {
			continue
		}
		if req.Max > 0 && items.Len() >= req.Max {
			break
		}

		item, err := assembler.Assemble(raw)
		if err != nil {
			return nil, err
		}
		for _, w := range item.Warnings {
			logWarn(req.Logger, item.Key, w)
		}
		if err := items.Add(item); err != nil {
			return nil, err
		}
	}

	items.Link()
	return items, nil
}

// FindRaw returns the raw item with key.
func FindRaw(history *domain.History, key string) (*domain.RawItem, error) {
	for i := range history.Items {
		if history.Items[i].Key == key {
			return &history.Items[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %w", key, domain.ErrItemNotFound)
}

func logWarn(logger domain.Logger, key string, err error) {
	if logger == nil {
		return
	}
	logger.Warn(key, "assemble", err.Error())
}
