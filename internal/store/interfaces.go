package store

import (
	"context"
	"time"

	"github.com/invoicerd/invoicer/models"
)

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with the
	// server-assigned UserID. Returns [ErrEmailAlreadyExists] when the
	// email is already taken.
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)

	// FindUserByEmail returns the account with the given email or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetUserByID returns the account with the given id or
	// [ErrNoUserWasFound].
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
}

// InvoiceRepository reads and replaces a user's single current invoice.
type InvoiceRepository interface {
	// GetInvoiceRows returns the left-outer join of the user's invoice with
	// its line items, ordered by item id. The slice is empty when the user
	// has no invoice; an invoice without items yields exactly one row whose
	// item fields are nil.
	GetInvoiceRows(ctx context.Context, userID int64) ([]models.InvoiceRow, error)

	// ReplaceInvoice atomically deletes any invoice (and its items) owned
	// by userID and inserts the given invoice with its items. Either every
	// statement commits or none does. Returns the new invoice id.
	ReplaceInvoice(ctx context.Context, userID int64, invoice models.Invoice, items []models.InvoiceItem) (int64, error)
}

// SessionRepository persists the server-side session bindings behind the
// cookie-carried opaque identifiers.
type SessionRepository interface {
	// CreateSession stores a new session row.
	CreateSession(ctx context.Context, session models.Session) error

	// GetSession returns the session with the given id or
	// [ErrSessionNotFound].
	GetSession(ctx context.Context, sessionID string) (models.Session, error)

	// DeleteSession removes the session with the given id. Deleting a
	// session that does not exist is not an error.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteExpiredSessions removes every session whose expiry is at or
	// before now and reports how many rows were purged.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator translates driver-specific errors into backend-neutral
// categories so repositories stay portable across SQLite and PostgreSQL.
type ErrorClassificator interface {
	IsUniqueViolation(err error) bool
}
