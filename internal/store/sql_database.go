package store

import (
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/migrations"
)

// DB bundles an open database handle with everything the repositories need
// to stay backend-agnostic: a squirrel statement builder configured with the
// backend's placeholder format, an error classificator for driver-specific
// constraint errors, and the migration dialect.
type DB struct {
	*sql.DB

	dialect            migrations.Dialect
	sq                 squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for this backend.
// It is safe to call on every process start.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// IsUniqueViolation reports whether err is the backend's unique-constraint
// violation (e.g. a duplicate email on signup).
func (db *DB) IsUniqueViolation(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.IsUniqueViolation(err)
}
