// Package migrations owns the database schema. Migrations are embedded SQL
// files applied in order by goose at startup, before any repository is
// constructed. They are forward-only: columns are never dropped or renamed,
// so an installation created under an older schema is always upgraded
// additively and never loses user data.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending schema migrations to db.
//
// goose records applied versions in its own bookkeeping table, so calling
// Migrate on an up-to-date database is a no-op. Any failure is wrapped and
// must be treated as fatal by the caller: repositories may not touch a
// database whose schema state is unknown.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
