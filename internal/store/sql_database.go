package store

import (
	"database/sql"

	"github.com/twinlab/healthsync/internal/logger"
	"github.com/twinlab/healthsync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
