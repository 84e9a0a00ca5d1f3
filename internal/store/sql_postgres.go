package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/invoicerd/invoicer/internal/config"
	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/migrations"
)

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver and returns a ready-to-use [DB]. Used when the configured DSN is a
// postgres:// URI instead of a SQLite file path.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		dialect:            migrations.DialectPostgres,
		sq:                 squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		errorClassificator: postgresErrorClassificator{},
		logger:             log,
	}

	return db, nil
}

// postgresErrorClassificator maps pgx driver errors onto the backend-neutral
// categories the repositories understand, using SQLSTATE codes.
type postgresErrorClassificator struct{}

func (postgresErrorClassificator) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == pgerrcode.UniqueViolation
}
