package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out the global sequence shared by every event
// table. Each event type lives in its own ent-managed table, and
// per-table auto-increment cannot order a decompose request against the
// pipeline event that recorded its stage as degraded. One counter over
// all tables gives that cross-type order, and the audit log stays
// append-only because sequences are never reissued.
//
// The counter lives outside ent in a one-row table. The RETURNING
// clause makes each increment atomic at the database level; the mutex
// serializes callers within the process.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter ensures the one-row counter table exists, seeded
// at zero so the first sequence handed out is 1.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS event_seq (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			seq INTEGER NOT NULL DEFAULT 0
		)`,
		`INSERT OR IGNORE INTO event_seq (id, seq) VALUES (1, 0)`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return nil, fmt.Errorf("init sequence table: %w", err)
		}
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE event_seq SET seq = seq + 1 WHERE id = 1 RETURNING seq`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
