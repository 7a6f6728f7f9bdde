// Package store persists tutorial activity in SQLite through ent.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/nrqlkit/nrqltutor/ent"

	_ "modernc.org/sqlite"
)

var pragmas = []string{
	"journal_mode = WAL",
	"busy_timeout = 5000",
	"foreign_keys = ON",
	"synchronous = NORMAL",
}

// Store is an open tutorial database.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequence
}

// Open opens the SQLite database named by dsn and migrates it to the
// current schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	for _, p := range pragmas {
		if _, err := db.Exec("PRAGMA " + p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}

	ctx := context.Background()
	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	seq, err := openSequence(ctx, db)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

func (s *Store) BookmarkRepo() BookmarkRepo {
	return &bookmarkRepo{client: s.client, keep: bookmarksKept}
}

// DefaultDBPath is $NRQLTUTOR_DB, or nrqltutor.db under the XDG data
// directory. The parent directory is created.
func DefaultDBPath() (string, error) {
	p := os.Getenv("NRQLTUTOR_DB")
	if p == "" {
		dir := os.Getenv("XDG_DATA_HOME")
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("locate home directory: %w", err)
			}
			dir = filepath.Join(home, ".local", "share")
		}
		p = filepath.Join(dir, "nrqltutor", "nrqltutor.db")
	}
	return p, EnsureDir(p)
}

// EnsureDir creates the directory that will hold path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
