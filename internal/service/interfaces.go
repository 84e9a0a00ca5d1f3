package service

import (
	"context"

	"github.com/invoicerd/invoicer/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)

	CreateSession(ctx context.Context, userID int64) (models.Session, error)
	ResolveSession(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type InvoiceService interface {
	// GetInvoice returns the user's invoice joined with its line items,
	// one row per item. An invoice without items yields a single row with
	// nil item fields; a user without an invoice yields an empty slice.
	GetInvoice(ctx context.Context, userID int64) ([]models.InvoiceRow, error)

	// SaveInvoice replaces the user's invoice with the submitted one and
	// returns the id of the newly stored invoice.
	SaveInvoice(ctx context.Context, userID int64, request models.SaveInvoiceRequest) (int64, error)
}
