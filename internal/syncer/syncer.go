// Package syncer drives the parser and ingest engine across a historical
// batch of messages, then commits the ledger once.
package syncer

import (
	"github.com/rs/zerolog"

	"github.com/khata-dev/khata/internal/ingest"
	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/msgsource"
	"github.com/khata-dev/khata/internal/parser"
)

// Report summarizes one sync run.
type Report struct {
	Scanned     int
	Admitted    int
	Duplicates  int
	Unparseable int
}

// Syncer replays message history into the ledger.
type Syncer struct {
	store  *ledger.Store
	engine *ingest.Engine
	log    zerolog.Logger
}

// New creates a Syncer over store and engine.
func New(store *ledger.Store, engine *ingest.Engine, log zerolog.Logger) *Syncer {
	return &Syncer{store: store, engine: engine, log: log}
}

// SyncHistory ingests each message silently, then performs exactly one
// durable save for the whole batch. Dedup by source identity makes the
// operation idempotent: replaying the same history never creates
// duplicates, so no ordering guarantee is required from the source.
func (s *Syncer) SyncHistory(msgs []msgsource.Message) (Report, error) {
	var rep Report

	for _, msg := range msgs {
		rep.Scanned++

		cand, ok := parser.Parse(msg.Body)
		if !ok {
			rep.Unparseable++
			continue
		}

		admitted, err := s.engine.Ingest(cand, msg.SourceID, true)
		if err != nil {
			return rep, err
		}
		if admitted {
			rep.Admitted++
		} else {
			rep.Duplicates++
		}
	}

	if err := s.store.SaveAll(); err != nil {
		return rep, err
	}

	s.log.Info().
		Int("scanned", rep.Scanned).
		Int("admitted", rep.Admitted).
		Int("duplicates", rep.Duplicates).
		Int("unparseable", rep.Unparseable).
		Msg("history sync complete")
	return rep, nil
}
