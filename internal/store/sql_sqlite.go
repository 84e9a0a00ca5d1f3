package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"

	"github.com/invoicerd/invoicer/internal/config"
	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/migrations"
)

// sqlitePragmas is applied to every new SQLite connection. WAL allows reads
// concurrent with the single writer, busy_timeout papers over short lock
// contention, and foreign_keys enforces the invoice/user references.
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
}

// NewConnectSQLite opens (creating if necessary) the SQLite database file
// named by cfg.DSN and returns a ready-to-use [DB].
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// SQLite has file-level single-writer semantics; a pool of one
	// connection avoids SQLITE_BUSY on concurrent writes.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	for _, pragma := range sqlitePragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			conn.Close()
			log.Err(err).Str("func", "NewConnectSQLite").Str("pragma", pragma).Msg("error applying pragma")
			return nil, fmt.Errorf("error applying pragma %q: %w", pragma, err)
		}
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectSQLite,
		sq:                 squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		errorClassificator: sqliteErrorClassificator{},
		logger:             log,
	}

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		// if not found - create
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

// sqliteErrorClassificator maps mattn/go-sqlite3 driver errors onto the
// backend-neutral categories the repositories understand.
type sqliteErrorClassificator struct{}

func (sqliteErrorClassificator) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
