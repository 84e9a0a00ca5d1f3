package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// Session rows are the server-side half of the cookie-carried opaque ids.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession stores a new session row.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Insert("sessions").
		Columns("id", "user_id", "created_at", "expires_at").
		Values(session.SessionID, session.UserID, session.CreatedAt, session.ExpiresAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*sessionRepository.CreateSession").
			Int64("user_id", session.UserID).
			Msg("failed to insert session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSession returns the session with the given id or [ErrSessionNotFound].
func (r *sessionRepository) GetSession(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Select("id", "user_id", "created_at", "expires_at").
		From("sessions").
		Where(squirrel.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&session.SessionID, &session.UserID, &session.CreatedAt, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.GetSession").Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return session, nil
}

// DeleteSession removes the session with the given id. Removing an unknown
// id is a no-op, which keeps logout idempotent.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Delete("sessions").
		Where(squirrel.Eq{"id": sessionID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions purges every session whose fixed expiry is at or
// before now and reports the number of purged rows.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Delete("sessions").
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("failed to purge sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}
