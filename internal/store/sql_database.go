package store

import (
	"database/sql"

	"github.com/MKhiriev/geo-snap/internal/logger"
	"github.com/MKhiriev/geo-snap/migrations"
)

// DB wraps the single *sql.DB handle shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending schema migrations on this handle.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
