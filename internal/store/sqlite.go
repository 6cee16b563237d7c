package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const blobSchema = `
CREATE TABLE IF NOT EXISTS blobs (
	user       TEXT NOT NULL,
	name       TEXT NOT NULL,
	data       BLOB NOT NULL,
	updated_at TEXT NOT NULL,
	PRIMARY KEY (user, name)
);`

// SQLiteStore keeps every blob in a single table of a SQLite database.
// Documents stay byte-identical to their filesystem counterparts; only the
// container differs.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath and
// ensures the blobs table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite database %s: %w", dbPath, err)
	}

	if _, err := db.Exec(blobSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating blobs table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Read returns the blob for (user, name), or ErrNotFound.
func (s *SQLiteStore) Read(ctx context.Context, user, name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM blobs WHERE user = ? AND name = ?`, user, name,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, user, name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading blob %s/%s: %w", user, name, err)
	}

	return data, nil
}

// Write upserts the blob for (user, name). The row replacement is a single
// statement, so readers never see a partial document.
func (s *SQLiteStore) Write(ctx context.Context, user, name string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blobs (user, name, data, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (user, name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		user, name, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("writing blob %s/%s: %w", user, name, err)
	}

	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
