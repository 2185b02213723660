package shared

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/leadtime/internal/domain"
	"github.com/runoshun/leadtime/internal/testutil"
)

func sampleHistory() *domain.History {
	day := func(d int) time.Time { return time.Date(2020, 1, d, 10, 0, 0, 0, time.UTC) }
	return &domain.History{
		Statuses: []domain.Status{{ID: "1", Name: "Open"}, {ID: "2", Name: "In Progress"}},
		Items: []domain.RawItem{
			{Key: "PROJ-2", ParentKey: "PROJ-1", Created: day(2), StatusID: "2", Events: []domain.ChangeEvent{
				{At: day(3), Field: domain.FieldStatus, From: "1", To: "2", Actor: "ann"},
				{At: day(4), Field: domain.FieldStatus, From: "2", To: "99", Actor: "ann"},
			}},
			{Key: "PROJ-1", Created: day(1), StatusID: "1"},
			{Key: "PROJ-3", Created: day(1), StatusID: "1"},
		},
	}
}

func sampleRequest() AssembleRequest {
	opts := domain.DefaultAssembleOptions()
	opts.IsWorkDay = domain.EveryDay
	return AssembleRequest{
		Clock:   &testutil.MockClock{NowTime: time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)},
		Logger:  &testutil.MockLogger{},
		Options: opts,
	}
}

func TestAssembleItems_All(t *testing.T) {
	req := sampleRequest()

	items, err := AssembleItems(context.Background(), sampleHistory(), req)

	require.NoError(t, err)
	assert.Equal(t, 3, items.Len())
	child, err := items.Get("PROJ-2")
	require.NoError(t, err)
	require.NotNil(t, child.Parent)
	assert.Equal(t, "PROJ-1", child.Parent.Key)

	warnings := req.Logger.(*testutil.MockLogger).ByLevel("WARN")
	require.NotEmpty(t, warnings)
	assert.Equal(t, "PROJ-2", warnings[0].Item)
	assert.Equal(t, "assemble", warnings[0].Category)
}

func TestAssembleItems_KeysAndMax(t *testing.T) {
	req := sampleRequest()
	req.Keys = []string{"PROJ-3"}

	items, err := AssembleItems(context.Background(), sampleHistory(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, items.Len())

	req = sampleRequest()
	req.Max = 2
	items, err = AssembleItems(context.Background(), sampleHistory(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, items.Len())
	_, err = items.Get("PROJ-3")
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestAssembleItems_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AssembleItems(ctx, sampleHistory(), sampleRequest())

	require.ErrorIs(t, err, context.Canceled)
}

func TestFindRaw(t *testing.T) {
	raw, err := FindRaw(sampleHistory(), "PROJ-1")
	require.NoError(t, err)
	assert.Equal(t, "PROJ-1", raw.Key)

	_, err = FindRaw(sampleHistory(), "PROJ-9")
	require.ErrorIs(t, err, domain.ErrItemNotFound)
}
