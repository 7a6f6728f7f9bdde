package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequence numbers events across every event table, so a query run can be
// ordered against the lesson action that caused it. Per-table ids cannot.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

const sequenceDDL = `CREATE TABLE IF NOT EXISTS event_sequence (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	last INTEGER NOT NULL
)`

func openSequence(ctx context.Context, db *sql.DB) (*sequence, error) {
	if _, err := db.ExecContext(ctx, sequenceDDL); err != nil {
		return nil, fmt.Errorf("create event_sequence: %w", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO event_sequence (id, last) VALUES (1, 0)`); err != nil {
		return nil, fmt.Errorf("seed event_sequence: %w", err)
	}
	return &sequence{db: db}, nil
}

// next returns 1, 2, 3... across restarts.
func (s *sequence) next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	err := s.db.QueryRowContext(ctx,
		`UPDATE event_sequence SET last = last + 1 WHERE id = 1 RETURNING last`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next event sequence: %w", err)
	}
	return n, nil
}
