package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/convolab/lessonsmith/ent"

	// SQLite driver in pure Go, so builds stay CGO-free.
	_ "modernc.org/sqlite"
)

// Store owns the SQLite handle, the ent client, and the shared sequence
// counter behind the audit log.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open connects to the SQLite database at dsn, applies the session
// pragmas, seeds the sequence counter, and migrates the event tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}
	seq, err := newSequenceCounter(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client exposes the ent client for direct entity queries.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB exposes the raw handle. The sequence counter and tests use it.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the ent client and the handle beneath it.
func (s *Store) Close() error {
	return s.client.Close()
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// applyPragmas sets WAL journaling and the timeouts a single-writer CLI
// workload needs.
func applyPragmas(db *sql.DB) error {
	for _, p := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database location: LESSONSMITH_DB wins,
// then $XDG_DATA_HOME/lessonsmith/lessonsmith.db, then the same path
// under ~/.local/share. The parent directory is created along the way.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LESSONSMITH_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	path := filepath.Join(dataHome, "lessonsmith", "lessonsmith.db")
	return path, EnsureDir(path)
}

// EnsureDir makes sure the parent directory of path exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
