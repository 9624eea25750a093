package store

import (
	"database/sql"

	"github.com/unidesk/challan-desk/internal/logger"
	"github.com/unidesk/challan-desk/migrations"
)

// DB wraps the raw connection so repositories share one logger-aware
// handle and the migration entry point.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
