package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/geo-snap/internal/config"
	"github.com/MKhiriev/geo-snap/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// around the service layer.
type Storages struct {
	// Users is the repository for account records.
	Users UserRepository
	// Photos is the repository for photo records and per-user listings.
	Photos PhotoRepository
	// Favorites is the repository backing the favorite toggle.
	Favorites FavoriteRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error wrapping [ErrInitialization] if the database connection
// cannot be established or if migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite connection error: %w", ErrInitialization, err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("%w: migration failed: %w", ErrInitialization, err)
	}

	return &Storages{
		Users:     NewUserRepository(db, logger),
		Photos:    NewPhotoRepository(db, logger),
		Favorites: NewFavoriteRepository(db, logger),
		db:        db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
