// Package msgsource supplies (sourceId, body) message pairs to the sync
// orchestrator. The core never talks to notification hardware itself; it
// only consumes dump files in this shape, dropped into an inbox directory
// by an external collaborator.
package msgsource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Message is one notification as delivered by the external source.
type Message struct {
	SourceID string // stable identity of the originating message
	Body     string // raw notification text
}

// Header is the expected CSV header of a message dump.
const Header = "source_id,body"

const (
	numFields   = 2
	colSourceID = 0
	colBody     = 1
)

// FileInfo describes a dump file in the inbox directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// ReadMessages reads a message dump. Rows with an empty source_id are
// skipped: without an identity there is nothing to dedup on.
func ReadMessages(r io.Reader) ([]Message, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading message dump: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var msgs []Message
	for _, rec := range records[1:] {
		if rec[colSourceID] == "" {
			continue
		}
		msgs = append(msgs, Message{
			SourceID: rec[colSourceID],
			Body:     rec[colBody],
		})
	}
	return msgs, nil
}

// ReadFile reads a message dump from disk.
func ReadFile(path string) ([]Message, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening message dump: %w", err)
	}
	defer f.Close()

	msgs, err := ReadMessages(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return msgs, nil
}

// Scan returns the CSV dump files waiting in dir. A missing or unreadable
// directory yields no files: the ledger then runs in manual-entry-only mode.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) || os.IsPermission(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading inbox dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a dump from dir to dir/processed/ so a rerun does not
// rescan it. Rescanning would still be harmless, dedup makes it a no-op.
func MarkProcessed(dir, fileName string) error {
	dstDir := filepath.Join(dir, "processed")
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	src := filepath.Join(dir, fileName)
	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
