package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies every pending schema migration for the given driver.
// The DDL is dialect-specific, so each driver has its own migration
// directory: "postgres" for pgx and "sqlite" for sqlite3.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	var dialect, dir string
	switch driver {
	case "pgx":
		dialect, dir = "pgx", "postgres"
	case "sqlite3":
		dialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unknown driver %q", driver)
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
