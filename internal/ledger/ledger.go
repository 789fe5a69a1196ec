// Package ledger holds the authoritative transaction list: an in-memory
// ordered slice (most recent first) backed by an injected persistence port.
// Every mutation persists before returning unless explicitly marked silent;
// callers of a silent batch own the final flush.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/id"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/storage"
)

// ErrDuplicateID is returned when an insertion would reuse an existing ID.
var ErrDuplicateID = errors.New("duplicate transaction id")

// ErrNegativeAmount is returned for entries with a negative amount.
var ErrNegativeAmount = errors.New("negative amount")

// Store is the single source of truth for the ledger. Construct one per
// process with New and pass it by reference to every consumer.
type Store struct {
	mu   sync.Mutex
	txns []model.Transaction
	byID map[string]bool
	blob storage.Blob
	log  zerolog.Logger
}

// New creates an empty Store persisting through blob. Call Load before use.
func New(blob storage.Blob, log zerolog.Logger) *Store {
	return &Store{
		byID: make(map[string]bool),
		blob: blob,
		log:  log,
	}
}

// Load reads the durable snapshot into memory. Absent data yields an empty
// ledger; a corrupt blob is logged and also yields an empty ledger rather
// than failing startup. Entries violating ledger invariants are dropped.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.blob.Read()
	if err != nil {
		s.log.Warn().Err(err).Msg("ledger read failed, starting empty")
		s.txns = nil
		s.byID = make(map[string]bool)
		return nil
	}

	txns, err := Unmarshal(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("ledger blob corrupt, starting empty")
		s.txns = nil
		s.byID = make(map[string]bool)
		return nil
	}

	if verrs := Validate(txns); len(verrs) > 0 {
		txns = dropInvalid(txns)
		for _, ve := range verrs {
			s.log.Warn().Str("id", ve.ID).Str("reason", ve.Description).Msg("dropping invalid ledger entry")
		}
	}

	s.txns = txns
	s.byID = make(map[string]bool, len(txns))
	for _, t := range txns {
		s.byID[t.ID] = true
	}
	return nil
}

// dropInvalid removes the later occurrence of each flagged entry, keeping
// the first so duplicate IDs resolve in favor of the oldest record.
func dropInvalid(txns []model.Transaction) []model.Transaction {
	kept := txns[:0]
	seen := make(map[string]bool, len(txns))
	for _, t := range txns {
		if t.ID == "" || seen[t.ID] || t.Amount.IsNegative() {
			continue
		}
		seen[t.ID] = true
		kept = append(kept, t)
	}
	return kept
}

// SaveAll persists the full in-memory state. Used by callers closing out a
// silent batch; ordinary mutations flush on their own.
func (s *Store) SaveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Store) saveLocked() error {
	data, err := Marshal(s.txns)
	if err != nil {
		return err
	}
	if err := s.blob.Write(data); err != nil {
		// In-memory state stays authoritative; the next successful
		// save reconciles.
		return fmt.Errorf("persisting ledger: %w", err)
	}
	s.log.Debug().Int("count", len(s.txns)).Msg("ledger saved")
	return nil
}

// InsertFront adds t as the most recent entry. A duplicate ID is rejected
// with ErrDuplicateID, never overwritten. When silent is true the durable
// save is skipped; the caller must SaveAll at the end of its batch.
func (s *Store) InsertFront(t model.Transaction, silent bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		return ValidationError{ID: t.ID, Description: "empty ID"}
	}
	if s.byID[t.ID] {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, t.Amount.String())
	}

	s.txns = append([]model.Transaction{t}, s.txns...)
	s.byID[t.ID] = true

	if silent {
		return nil
	}
	return s.saveLocked()
}

// RemoveByID deletes the matching entry and persists before returning.
// Removing an absent ID is a no-op, not an error, so retries are safe.
func (s *Store) RemoveByID(txID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.byID[txID] {
		return nil
	}

	kept := s.txns[:0]
	for _, t := range s.txns {
		if t.ID != txID {
			kept = append(kept, t)
		}
	}
	s.txns = kept
	delete(s.byID, txID)

	return s.saveLocked()
}

// EntryParams holds the fields for a manually entered transaction.
type EntryParams struct {
	Amount   decimal.Decimal
	Merchant string
	Category model.Category
	Method   string
	Date     time.Time
	IsCredit bool
}

// AddEntry creates a manual transaction with a freshly generated ID,
// inserts it and persists immediately. Manual entries bypass dedup: every
// call admits a new transaction.
func (s *Store) AddEntry(p EntryParams) (model.Transaction, error) {
	if p.Amount.IsNegative() {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrNegativeAmount, p.Amount.String())
	}

	date := p.Date
	if date.IsZero() {
		date = time.Now()
	}
	category := p.Category
	if !category.Valid() {
		category = model.CategoryOther
	}

	t := model.Transaction{
		ID:       id.NewEntryID(time.Now()),
		Amount:   p.Amount,
		Merchant: model.TitleMerchant(p.Merchant),
		Category: category,
		Method:   p.Method,
		Date:     date,
		IsCredit: p.IsCredit,
	}

	if err := s.InsertFront(t, false); err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// Contains reports whether an ID is already present. This is the dedup
// lookup used by the ingest engine.
func (s *Store) Contains(txID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[txID]
}

// Transactions returns a snapshot copy in ledger order (most recent first).
// Derived views recompute from this; they never mutate it.
func (s *Store) Transactions() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.txns)
}
