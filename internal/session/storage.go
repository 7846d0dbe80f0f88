package session

import (
	"context"
	"sync"

	"sigtab/domain/core"
	"sigtab/domain/sig"
	"sigtab/domain/table"
	"sigtab/ports"
)

// Session is one editing session: a single consistent in-memory table plus
// the confidence level selected for it. The engine itself has no locking or
// ordering guarantees, so all mutations go through the owning Storage, which
// serializes them.
type Session struct {
	ID        core.SessionID
	Table     *table.Table
	Level     sig.ConfidenceLevel
	CreatedAt core.Timestamp
}

// Storage owns the live editing sessions. It serializes table mutations per
// session store, keeping one writer at a time, and recomputes significance
// results on demand; nothing stale is ever cached.
type Storage struct {
	mu        sync.Mutex
	sessions  map[core.SessionID]*Session
	annotator ports.Annotator
}

// NewStorage creates a session store backed by the given annotator.
func NewStorage(annotator ports.Annotator) *Storage {
	return &Storage{
		sessions:  make(map[core.SessionID]*Session),
		annotator: annotator,
	}
}

// Create starts a new session with the given number of starter columns and
// rows. Columns get their positional letters as default titles.
func (s *Storage) Create(columns, rows int) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := table.New(rows)
	for i := 0; i < columns; i++ {
		t.AddColumn(table.ColumnID(i).Letter())
	}

	sess := &Session{
		ID:        core.SessionID(core.NewID()),
		Table:     t,
		Level:     sig.Confidence95,
		CreatedAt: core.Now(),
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given ID.
func (s *Storage) Get(id core.SessionID) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id)
}

// Delete removes a session.
func (s *Storage) Delete(id core.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return core.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// AddColumn appends a column to the session's table and returns its identity.
func (s *Storage) AddColumn(id core.SessionID, title string) (table.ColumnID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return 0, err
	}
	return sess.Table.AddColumn(title), nil
}

// RemoveColumn removes a column; remaining columns relabel by position.
func (s *Storage) RemoveColumn(id core.SessionID, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	return sess.Table.RemoveColumn(col)
}

// SetCell writes a cell value in the session's table.
func (s *Storage) SetCell(id core.SessionID, col, row int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	return sess.Table.SetCell(col, row, value)
}

// SetSampleSize updates a column's sample size.
func (s *Storage) SetSampleSize(id core.SessionID, col, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	return sess.Table.SetSampleSize(col, n)
}

// SetConfidenceLevel selects the confidence level used by Recompute.
func (s *Storage) SetConfidenceLevel(id core.SessionID, level sig.ConfidenceLevel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return err
	}
	if !level.Valid() {
		return core.ErrInvalidConfidence
	}
	sess.Level = level
	return nil
}

// Recompute runs the annotator over the session's current table state.
func (s *Storage) Recompute(ctx context.Context, id core.SessionID) (*sig.TableResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}
	return s.annotator.Annotate(ctx, sess.Table, sess.Level)
}

func (s *Storage) get(id core.SessionID) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return sess, nil
}
