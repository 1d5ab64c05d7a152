// Package storage opens the ledger store selected by configuration.
package storage

import (
	"context"
	"fmt"

	"github.com/susu3304/cajachica/internal/config"
	"github.com/susu3304/cajachica/internal/db"
	"github.com/susu3304/cajachica/internal/ledger"
	applog "github.com/susu3304/cajachica/internal/log"
	"github.com/susu3304/cajachica/internal/storage/firebase"
	"github.com/susu3304/cajachica/internal/storage/memory"
	"github.com/susu3304/cajachica/internal/storage/sqlite"
)

// Open returns the configured store and a cleanup func that releases it.
func Open(ctx context.Context, cfg *config.Config, logger *applog.Logger) (ledger.Store, func() error, error) {
	log := logger.WithComponent(applog.ComponentStorage).With(applog.FieldBackend, cfg.LedgerBackend)
	noop := func() error { return nil }

	switch cfg.LedgerBackend {
	case config.BackendFirebase:
		store, err := firebase.NewStore(ctx, cfg.FirebaseDatabaseURL, cfg.FirebaseCredentialsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open firebase store: %w", err)
		}
		log.Info("ledger store ready", "database_url", cfg.FirebaseDatabaseURL)
		return store, noop, nil

	case config.BackendPostgres:
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres store: %w", err)
		}
		if err := database.RunMigrations(ctx); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("run postgres migrations: %w", err)
		}
		log.Info("ledger store ready")
		return database, func() error {
			database.Close()
			return nil
		}, nil

	case config.BackendSQLite:
		store, err := sqlite.NewStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		log.Info("ledger store ready", "path", cfg.SQLiteDBPath)
		return store, store.Close, nil

	case config.BackendMemory:
		log.Warn("using in-memory ledger store, contents are lost on restart")
		return memory.NewStore(), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown ledger backend %q", cfg.LedgerBackend)
	}
}
