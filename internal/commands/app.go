package commands

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/khata-dev/khata/internal/config"
	"github.com/khata-dev/khata/internal/ingest"
	"github.com/khata-dev/khata/internal/ledger"
	"github.com/khata-dev/khata/internal/logging"
	"github.com/khata-dev/khata/internal/storage"
	"github.com/khata-dev/khata/internal/storage/jsonblob"
	"github.com/khata-dev/khata/internal/storage/sqliteblob"
	"github.com/khata-dev/khata/internal/syncer"
)

// Data-directory layout.
const (
	configFile     = "khata.yaml"
	jsonLedgerFile = "ledger.json"
	sqliteFile     = "ledger.db"
	inboxDir       = "inbox"
)

// app bundles the wired-up core for one command invocation. The store is
// constructed once here and handed by reference to everything that needs
// it; nothing looks it up ambiently.
type app struct {
	dataDir string
	cfg     *config.Config
	log     zerolog.Logger
	store   *ledger.Store
	blob    storage.Blob
}

func openApp(dataDir string) (*app, error) {
	cfg, err := config.Load(filepath.Join(dataDir, configFile))
	if err != nil {
		return nil, err
	}

	log := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	var blob storage.Blob
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		b, err := sqliteblob.Open(filepath.Join(dataDir, sqliteFile))
		if err != nil {
			return nil, err
		}
		blob = b
	default:
		blob = jsonblob.New(filepath.Join(dataDir, jsonLedgerFile))
	}
	blob = storage.WithRetry(blob, log)

	store := ledger.New(blob, log)
	if err := store.Load(); err != nil {
		blob.Close()
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	return &app{
		dataDir: dataDir,
		cfg:     cfg,
		log:     log,
		store:   store,
		blob:    blob,
	}, nil
}

func (a *app) close() error {
	return a.blob.Close()
}

func (a *app) newSyncer() *syncer.Syncer {
	engine := ingest.New(a.store, a.log)
	return syncer.New(a.store, engine, a.log)
}

func (a *app) inboxPath() string {
	return filepath.Join(a.dataDir, inboxDir)
}
