package reportstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/runoshun/leadtime/internal/domain"
)

// Ensure Store implements domain.ReportStore interface.
var _ domain.ReportStore = (*Store)(nil)

// timeLayout keeps UTC timestamps lexically ordered.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const (
	kindCategory = "category"
	kindActor    = "actor"
)

// Store implements domain.ReportStore on SQLite.
type Store struct {
	db *sql.DB
}

// New creates a Store on an opened database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores the run and all of its item reports in one transaction.
func (s *Store) SaveRun(ctx context.Context, run *domain.Run) error {
	if run == nil || run.ID == "" {
		return fmt.Errorf("run id is required: %w", domain.ErrInvalidArgument)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, source) VALUES (?, ?, ?)`,
		run.ID, formatTime(run.CreatedAt), run.Source,
	); err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	for i := range run.Items {
		if err := insertItem(ctx, tx, run.ID, i, &run.Items[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func insertItem(ctx context.Context, tx *sql.Tx, runID string, position int, item *domain.ItemReport) error {
	warnings, err := json.Marshal(nonNil(item.Warnings))
	if err != nil {
		return fmt.Errorf("encoding warnings: %w", err)
	}

	var finished sql.NullString
	if item.FinishedAt != nil {
		finished = sql.NullString{String: formatTime(*item.FinishedAt), Valid: true}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO run_items (run_id, key, position, title, type, status, category, parent, fix_version,
			created, started, finished, lead_time, cycle_time, days_estimated, warnings)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, item.Key, position, item.Title, item.Type, item.Status, string(item.Category), item.Parent,
		item.FixVersion, formatTime(item.Created), formatTime(item.StartedAt), finished,
		nullInt(item.LeadTime), nullInt(item.CycleTime), item.DaysEstimated, string(warnings),
	); err != nil {
		return fmt.Errorf("inserting item %s: %w", item.Key, err)
	}

	for kind, entries := range map[string][]domain.DurationEntry{
		kindCategory: item.Categories,
		kindActor:    item.Actors,
	} {
		for i, e := range entries {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO run_durations (run_id, item_key, kind, position, name, nanos) VALUES (?, ?, ?, ?, ?, ?)`,
				runID, item.Key, kind, i, e.Name, int64(e.Duration),
			); err != nil {
				return fmt.Errorf("inserting %s duration for %s: %w", kind, item.Key, err)
			}
		}
	}
	return nil
}

// ListRuns returns run summaries, newest first. A limit of zero lists all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.created_at, r.source, COUNT(i.key)
		FROM runs r LEFT JOIN run_items i ON i.run_id = r.id
		GROUP BY r.id
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []domain.RunSummary
	for rows.Next() {
		var summary domain.RunSummary
		var createdAt string
		if err := rows.Scan(&summary.ID, &createdAt, &summary.Source, &summary.ItemCount); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if summary.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, rows.Err()
}

// GetRun loads a run with its item reports.
func (s *Store) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	run := &domain.Run{ID: id}
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT created_at, source FROM runs WHERE id = ?`, id,
	).Scan(&createdAt, &run.Source)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run %s: %w", id, domain.ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading run: %w", err)
	}
	if run.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}

	if run.Items, err = s.loadItems(ctx, id); err != nil {
		return nil, err
	}
	if err := s.loadDurations(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Store) loadItems(ctx context.Context, runID string) ([]domain.ItemReport, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key, title, type, status, category, parent, fix_version, created, started, finished,
			lead_time, cycle_time, days_estimated, warnings
		FROM run_items WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []domain.ItemReport
	for rows.Next() {
		var (
			item                       domain.ItemReport
			category, created, started string
			warnings                   string
			finished                   sql.NullString
			leadTime, cycleTime        sql.NullInt64
		)
		if err := rows.Scan(&item.Key, &item.Title, &item.Type, &item.Status, &category, &item.Parent,
			&item.FixVersion, &created, &started, &finished, &leadTime, &cycleTime,
			&item.DaysEstimated, &warnings,
		); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		item.Category = domain.StatusCategory(category)
		if item.Created, err = parseTime(created); err != nil {
			return nil, err
		}
		if item.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if finished.Valid {
			t, err := parseTime(finished.String)
			if err != nil {
				return nil, err
			}
			item.FinishedAt = &t
		}
		item.LeadTime = intPtr(leadTime)
		item.CycleTime = intPtr(cycleTime)
		if err := json.Unmarshal([]byte(warnings), &item.Warnings); err != nil {
			return nil, fmt.Errorf("decoding warnings of %s: %w", item.Key, err)
		}
		if len(item.Warnings) == 0 {
			item.Warnings = nil
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *Store) loadDurations(ctx context.Context, run *domain.Run) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_key, kind, name, nanos FROM run_durations
		WHERE run_id = ? ORDER BY item_key, kind, position`, run.ID)
	if err != nil {
		return fmt.Errorf("listing durations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byKey := make(map[string]*domain.ItemReport, len(run.Items))
	for i := range run.Items {
		byKey[run.Items[i].Key] = &run.Items[i]
	}

	for rows.Next() {
		var key, kind, name string
		var nanos int64
		if err := rows.Scan(&key, &kind, &name, &nanos); err != nil {
			return fmt.Errorf("scanning duration: %w", err)
		}
		item, ok := byKey[key]
		if !ok {
			continue
		}
		entry := domain.NewDurationEntry(name, time.Duration(nanos))
		if kind == kindActor {
			item.Actors = append(item.Actors, entry)
		} else {
			item.Categories = append(item.Categories, entry)
		}
	}
	return rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing stored time %q: %w", s, err)
	}
	return t, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
