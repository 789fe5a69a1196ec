// Package sqliteblob stores the ledger snapshot in a single-row SQLite
// table. The contract is the same as jsonblob: one named key, whole-blob
// overwrite. SQLite's transactional rename-free writes make it the better
// fit on filesystems where atomic rename is unreliable.
package sqliteblob

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const snapshotKey = "ledger"

// Store persists the snapshot in a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Single logical writer; a second connection would only contend.
	db.SetMaxOpenConns(1)

	const schema = `CREATE TABLE IF NOT EXISTS snapshots (
		key  TEXT PRIMARY KEY,
		data BLOB NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshots table: %w", err)
	}

	return &Store{db: db}, nil
}

// Read returns the stored snapshot, or (nil, nil) if none has been written.
func (s *Store) Read() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM snapshots WHERE key = ?`, snapshotKey).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot row: %w", err)
	}
	return data, nil
}

// Write replaces the snapshot in a single upsert statement.
func (s *Store) Write(data []byte) error {
	const upsert = `INSERT INTO snapshots (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data`
	if _, err := s.db.Exec(upsert, snapshotKey, data); err != nil {
		return fmt.Errorf("writing snapshot row: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
