package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/runoshun/leadtime/internal/timeline"
)

// AssembleOptions configures how durations and day counts are derived.
type AssembleOptions struct {
	IsWorkDay           WorkDayPredicate
	SplitInterval       time.Duration // Refinement granularity; 0 disables
	ResolutionTolerance time.Duration // Max trusted gap between done and resolution
}

// DefaultAssembleOptions counts Monday to Friday as working days.
func DefaultAssembleOptions() AssembleOptions {
	return AssembleOptions{
		IsWorkDay:           NewCalendar(DefaultWeekend(), nil).Predicate(),
		SplitInterval:       DefaultSplitInterval,
		ResolutionTolerance: DefaultResolutionTolerance,
	}
}

// Assembler turns raw items into work items with derived timings.
type Assembler struct {
	statuses *StatusTable
	versions map[string]FixVersion
	clock    Clock
	opts     AssembleOptions
}

// NewAssembler creates an Assembler resolving references against statuses
// and versions. The clock closes the last open interval of every item.
func NewAssembler(statuses *StatusTable, versions []FixVersion, clock Clock, opts AssembleOptions) *Assembler {
	byID := make(map[string]FixVersion, len(versions))
	for _, v := range versions {
		byID[v.ID] = v
	}
	return &Assembler{
		statuses: statuses,
		versions: byID,
		clock:    clock,
		opts:     opts,
	}
}

// Assemble builds the work item for raw. Unresolved status and version ids
// are recorded in WorkItem.Warnings. Errors are returned only for malformed
// input such as a change recorded before the item was created.
func (a *Assembler) Assemble(raw RawItem) (*WorkItem, error) {
	if a.opts.IsWorkDay == nil {
		return nil, fmt.Errorf("assemble %s: nil work-day predicate: %w", raw.Key, ErrInvalidArgument)
	}

	item := &WorkItem{
		ID:             raw.ID,
		Key:            raw.Key,
		Title:          raw.Title,
		Type:           raw.Type,
		Priority:       raw.Priority,
		Creator:        raw.Creator,
		ParentKey:      raw.ParentKey,
		Components:     raw.Components,
		Created:        raw.Created,
		ResolutionDate: raw.ResolutionDate,
		DaysEstimated:  EstimateDays(raw.EstimateSeconds),
	}

	current, err := a.statuses.Lookup(raw.StatusID)
	if err != nil {
		item.Warnings = append(item.Warnings, fmt.Errorf("current status: %w", err))
	}
	item.CurrentStatus = current
	item.FixVersion = a.fixVersion(raw.FixVersionIDs, item)

	item.Changes = a.snapshots(raw, item)
	item.StartedAt = startedAt(item)
	item.FinishedAt = a.finishedAt(item)

	if item.LeadTime, err = a.leadTime(item); err != nil {
		return nil, fmt.Errorf("assemble %s: lead time: %w", raw.Key, err)
	}
	if item.CycleTime, err = a.cycleTime(item); err != nil {
		return nil, fmt.Errorf("assemble %s: cycle time: %w", raw.Key, err)
	}
	if item.Ledger, err = a.ledger(item.Changes); err != nil {
		return nil, fmt.Errorf("assemble %s: %w", raw.Key, err)
	}

	return item, nil
}

func (a *Assembler) fixVersion(ids []string, item *WorkItem) *FixVersion {
	found := make([]FixVersion, 0, len(ids))
	for _, id := range ids {
		v, ok := a.versions[id]
		if !ok {
			item.Warnings = append(item.Warnings, fmt.Errorf("fix version %q: %w", id, ErrMissingReference))
			continue
		}
		found = append(found, v)
	}
	return EarliestRelease(found)
}

// snapshots replays the tracked events on top of the initial state and closes
// the sequence at the current time.
func (a *Assembler) snapshots(raw RawItem, item *WorkItem) []Snapshot {
	events := make([]ChangeEvent, 0, len(raw.Events))
	for _, e := range raw.Events {
		if e.IsTracked() {
			events = append(events, e)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.Before(events[j].At)
	})

	snapshot := Snapshot{
		At:     raw.Created,
		Status: a.firstStatus(events, item.CurrentStatus),
		Actor:  raw.Creator,
	}
	out := make([]Snapshot, 0, len(events)+2)
	out = append(out, snapshot)

	for _, e := range events {
		delta := SnapshotDelta{At: e.At, Actor: e.Actor}
		switch e.Kind() {
		case FieldStatus:
			s, err := a.statuses.Lookup(e.To)
			if err != nil {
				item.Warnings = append(item.Warnings,
					fmt.Errorf("change at %s: %w", e.At.Format(time.DateTime), err))
			} else {
				delta.Status = &s
			}
		case FieldFlagged:
			delta.Flagged = e.FlagTransition()
		}
		snapshot = snapshot.Apply(delta)
		out = append(out, snapshot)
	}

	end := a.clock.Now()
	if end.Before(snapshot.At) {
		end = snapshot.At
	}
	return append(out, snapshot.WithTime(end))
}

// firstStatus is the "from" side of the first status change that resolves.
// Items that never changed status start in their current status.
func (a *Assembler) firstStatus(events []ChangeEvent, current Status) Status {
	for _, e := range events {
		if e.Kind() != FieldStatus {
			continue
		}
		if s, err := a.statuses.Lookup(e.From); err == nil {
			return s
		}
	}
	return current
}

func startedAt(item *WorkItem) time.Time {
	for _, s := range item.Changes {
		if s.EffectiveCategory() == CategoryInProgress {
			return s.At
		}
	}
	return item.Created
}

// finishedAt is the start of the trailing run of done snapshots, reconciled
// with the tracker's resolution date.
func (a *Assembler) finishedAt(item *WorkItem) *time.Time {
	if !item.IsDone() {
		return nil
	}

	runStart := -1
	for i := len(item.Changes) - 1; i >= 0; i-- {
		if item.Changes[i].EffectiveCategory() == CategoryDone {
			runStart = i
		} else if runStart >= 0 {
			break
		}
	}

	resolution := item.ResolutionDate
	if runStart < 0 {
		return copyTime(resolution)
	}
	doneAt := item.Changes[runStart].At
	if resolution == nil {
		return &doneAt
	}

	gap := doneAt.Sub(*resolution)
	if gap < 0 {
		gap = -gap
	}
	// A large gap means one of the two clocks is out of sync; the tracker wins.
	if gap > a.opts.ResolutionTolerance {
		return copyTime(resolution)
	}
	if doneAt.Before(*resolution) {
		return &doneAt
	}
	return copyTime(resolution)
}

func (a *Assembler) leadTime(item *WorkItem) (*int, error) {
	if item.FinishedAt == nil {
		return nil, nil
	}
	return a.countDays(item.StartedAt, *item.FinishedAt)
}

func (a *Assembler) cycleTime(item *WorkItem) (*int, error) {
	release := item.ReleaseDate()
	if !item.IsDone() || release == nil {
		return nil, nil
	}
	return a.countDays(item.Created, *release)
}

// countDays counts business days between the calendar dates of start and
// end, or returns nil when end's date precedes start's.
func (a *Assembler) countDays(start, end time.Time) (*int, error) {
	startDate, endDate := timeline.Date(start), timeline.Date(end)
	if endDate.Before(startDate) {
		return nil, nil
	}
	days, err := timeline.CountDays(startDate, endDate, a.opts.IsWorkDay)
	if err != nil {
		return nil, err
	}
	return &days, nil
}

func (a *Assembler) ledger(changes []Snapshot) (*DurationLedger, error) {
	refined, err := timeline.Split(changes, a.opts.SplitInterval)
	if err != nil {
		return nil, fmt.Errorf("refine snapshots: %w", err)
	}
	pairs, err := timeline.Lag(refined, RelevantTransition(a.opts.IsWorkDay))
	if err != nil {
		return nil, fmt.Errorf("pair snapshots: %w", err)
	}

	ledger := NewDurationLedger()
	for prev, next := range pairs {
		ledger.Accumulate(prev, next)
	}
	return ledger, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
