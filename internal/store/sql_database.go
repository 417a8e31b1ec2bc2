package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bio-link/internal/config"
	"github.com/MKhiriev/go-bio-link/internal/logger"
	"github.com/MKhiriev/go-bio-link/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// DB wraps the raw database handle together with the driver name, which is
// needed to pick the right migration dialect and error classification.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// NewConnect opens a database connection for the configured driver.
// Supported drivers: "pgx" (PostgreSQL) and "sqlite3" (self-hosted mode).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate applies all pending schema migrations for the connected driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isUniqueViolation reports whether err is a unique-constraint violation in
// either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
