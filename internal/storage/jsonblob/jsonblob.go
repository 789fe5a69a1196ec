// Package jsonblob stores the ledger snapshot as a single JSON file.
package jsonblob

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the snapshot at a fixed file path.
type Store struct {
	path string
}

// New creates a Store writing to path. The file is created on first Write.
func New(path string) *Store {
	return &Store{path: path}
}

// Read returns the stored snapshot, or (nil, nil) if no file exists yet.
func (s *Store) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading ledger file: %w", err)
	}
	return data, nil
}

// Write replaces the snapshot using a temp-file-then-rename so a crashed
// write never leaves a truncated file behind.
func (s *Store) Write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing ledger temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing ledger file: %w", err)
	}
	return nil
}

// Close is a no-op; the Store holds no open handles between calls.
func (s *Store) Close() error { return nil }
