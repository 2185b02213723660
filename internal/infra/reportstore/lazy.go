package reportstore

import (
	"context"
	"sync"

	"github.com/runoshun/leadtime/internal/domain"
)

// Ensure LazyStore implements domain.ReportStore interface.
var _ domain.ReportStore = (*LazyStore)(nil)

// LazyStore opens the database on first use, so commands that never touch
// saved runs do not create the database file.
type LazyStore struct {
	err   error
	store *Store
	path  string
	once  sync.Once
}

// NewLazy creates a LazyStore for the database at path.
func NewLazy(path string) *LazyStore {
	return &LazyStore{path: path}
}

func (l *LazyStore) open() (*Store, error) {
	l.once.Do(func() {
		db, err := Open(l.path)
		if err != nil {
			l.err = err
			return
		}
		l.store = New(db)
	})
	return l.store, l.err
}

// Opened reports whether the database has been opened.
func (l *LazyStore) Opened() bool {
	return l.store != nil
}

// SaveRun opens the database if needed and saves the run.
func (l *LazyStore) SaveRun(ctx context.Context, run *domain.Run) error {
	s, err := l.open()
	if err != nil {
		return err
	}
	return s.SaveRun(ctx, run)
}

// ListRuns opens the database if needed and lists runs.
func (l *LazyStore) ListRuns(ctx context.Context, limit int) ([]domain.RunSummary, error) {
	s, err := l.open()
	if err != nil {
		return nil, err
	}
	return s.ListRuns(ctx, limit)
}

// GetRun opens the database if needed and loads the run.
func (l *LazyStore) GetRun(ctx context.Context, id string) (*domain.Run, error) {
	s, err := l.open()
	if err != nil {
		return nil, err
	}
	return s.GetRun(ctx, id)
}

// Close closes the database if it was opened.
func (l *LazyStore) Close() error {
	if l.store == nil {
		return nil
	}
	return l.store.Close()
}
