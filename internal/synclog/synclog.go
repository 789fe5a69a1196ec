// Package synclog keeps an append-only CSV record of sync runs under the
// data directory, one row per run.
package synclog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in sync-log.csv.
type Entry struct {
	Timestamp   time.Time
	Source      string // what triggered the run: a dump file name or "cli"
	Scanned     int
	Admitted    int
	Duplicates  int
	Unparseable int
}

// Header is the CSV header for sync-log.csv.
const Header = "timestamp,source,scanned,admitted,duplicates,unparseable"

const (
	numFields      = 6
	logFile        = "sync-log.csv"
	colTimestamp   = 0
	colSource      = 1
	colScanned     = 2
	colAdmitted    = 3
	colDuplicates  = 4
	colUnparseable = 5
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colSource] = e.Source
	row[colScanned] = strconv.Itoa(e.Scanned)
	row[colAdmitted] = strconv.Itoa(e.Admitted)
	row[colDuplicates] = strconv.Itoa(e.Duplicates)
	row[colUnparseable] = strconv.Itoa(e.Unparseable)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	counts := make([]int, 4)
	for i, col := range []int{colScanned, colAdmitted, colDuplicates, colUnparseable} {
		n, err := strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
		counts[i] = n
	}

	return Entry{
		Timestamp:   ts,
		Source:      record[colSource],
		Scanned:     counts[0],
		Admitted:    counts[1],
		Duplicates:  counts[2],
		Unparseable: counts[3],
	}, nil
}

// Append writes entries to <dataDir>/sync-log.csv, creating the file and
// header if needed.
func Append(dataDir string, entries []Entry) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening sync log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dataDir>/sync-log.csv, or nil if the file
// does not exist.
func Read(dataDir string) ([]Entry, error) {
	path := filepath.Join(dataDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening sync log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading sync log CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
