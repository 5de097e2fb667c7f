package store

import (
	"context"
	"fmt"

	"github.com/twinlab/healthsync/internal/config"
	"github.com/twinlab/healthsync/internal/logger"
)

// Storages groups all client-side storage repositories into a single value
// that can be passed around the service layer. Currently it holds only
// [PreferenceStore]; additional repositories can be added here as the
// feature set grows.
type Storages struct {
	// Preferences is the SQLite-backed durable key-value store shared by
	// the foreground app and the background runner.
	Preferences PreferenceStore
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     preference repository.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Preferences: NewPreferenceRepository(db, logger),
	}, nil
}
