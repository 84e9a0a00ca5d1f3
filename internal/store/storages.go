package store

import (
	"context"
	"strings"

	"github.com/invoicerd/invoicer/internal/config"
	"github.com/invoicerd/invoicer/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	InvoiceRepository InvoiceRepository
	SessionRepository SessionRepository

	db *DB
}

// NewStorages opens the database backend selected by the DSN, applies all
// pending schema migrations, and wires the repositories.
//
// A DSN starting with postgres:// or postgresql:// opens PostgreSQL via pgx;
// anything else is treated as the path of a SQLite database file.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Msg("schema migration failed")
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		InvoiceRepository: NewInvoiceRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
