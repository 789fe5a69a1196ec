// Package ingest mediates between the message parser and the ledger,
// enforcing at-most-once admission per source message identity.
package ingest

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/parser"
)

// Defaults assigned to admitted candidates by direction.
const (
	debitMethod  = "UPI"
	creditMethod = "Bank"
)

// Engine admits parser candidates into the ledger under the dedup rule.
type Engine struct {
	store *ledger.Store
	log   zerolog.Logger
}

// New creates an Engine writing into store.
func New(store *ledger.Store, log zerolog.Logger) *Engine {
	return &Engine{store: store, log: log}
}

// Ingest admits cand under sourceID. If a transaction with that ID already
// exists the call is an idempotent no-op and admitted is false; replaying a
// message history or double-delivering a notification is therefore safe.
// When silent is true the individual admission skips the durable save; the
// caller owns a single flush at the end of its batch.
func (e *Engine) Ingest(cand parser.Candidate, sourceID string, silent bool) (admitted bool, err error) {
	if sourceID == "" {
		return false, fmt.Errorf("empty source id")
	}
	if e.store.Contains(sourceID) {
		return false, nil
	}

	t := model.Transaction{
		ID:       sourceID,
		Amount:   cand.Amount,
		Merchant: cand.Merchant,
		Category: categoryFor(cand),
		Method:   methodFor(cand),
		Date:     time.Now(),
		IsCredit: cand.IsCredit,
	}

	if err := e.store.InsertFront(t, silent); err != nil {
		// Lost the race between Contains and InsertFront: still a
		// duplicate, still not an error.
		if errors.Is(err, ledger.ErrDuplicateID) {
			return false, nil
		}
		return false, err
	}

	e.log.Debug().Str("id", sourceID).Str("merchant", t.Merchant).Bool("credit", t.IsCredit).Msg("candidate admitted")
	return true, nil
}

func categoryFor(cand parser.Candidate) model.Category {
	if cand.IsCredit {
		return model.CategoryIncome
	}
	return model.CategoryOther
}

func methodFor(cand parser.Candidate) string {
	if cand.IsCredit {
		return creditMethod
	}
	return debitMethod
}
