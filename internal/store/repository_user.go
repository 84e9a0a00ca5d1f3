package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/invoicerd/invoicer/internal/logger"
	"github.com/invoicerd/invoicer/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with the server-assigned UserID.
//
// The INSERT carries a RETURNING clause so the caller receives the canonical
// database representation of the newly created account.
//
// Error handling:
//   - A unique-constraint violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Insert("users").
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix("RETURNING id, email, password_hash").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("email", email).Msg("error: inserting user")

		if r.db.IsUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByEmail retrieves a user record whose email matches the one
// provided.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

// GetUserByID retrieves a user record by its primary key.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "id", userID)
}

func (r *userRepository) findUser(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sq.
		Select("id", "email", "password_hash", "company_name", "company_address", "logo_url").
		From("users").
		Where(squirrel.Eq{column: value}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan found user from db
	if err := row.Scan(
		&foundUser.UserID,
		&foundUser.Email,
		&foundUser.PasswordHash,
		&foundUser.CompanyName,
		&foundUser.CompanyAddress,
		&foundUser.LogoURL,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.findUser").Str("column", column).Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}
