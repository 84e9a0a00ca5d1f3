// Package migrations embeds the SQL schema migrations of the invoicer
// database and applies them with goose.
//
// Migrations are forward-only and idempotent: goose records applied versions
// in its version table, so running Migrate on every process start is safe.
// The base-table migration uses CREATE TABLE IF NOT EXISTS, which lets goose
// adopt a database that predates version tracking without touching its rows;
// the profile-column migration then brings such a database up to the current
// schema additively (pre-existing rows read the new columns back as NULL).
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Dialect selects the migration directory and goose dialect for a backend.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// migrationDirs maps each dialect to its embedded migration directory.
var migrationDirs = map[Dialect]string{
	DialectSQLite:   "sqlite",
	DialectPostgres: "postgres",
}

// Migrate applies all pending migrations for the given dialect to db.
func Migrate(db *sql.DB, dialect Dialect) error {
	dir, ok := migrationDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unknown dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
