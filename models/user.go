package models

import "database/sql"

// User represents an account record used for authentication.
// PasswordHash must always hold a bcrypt digest, never the plaintext.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the account.
	// Stored as received; no case normalisation is applied.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password.
	// Never serialised.
	PasswordHash string `json:"-"`

	// CompanyName, CompanyAddress and LogoURL are optional profile
	// columns added by a schema migration; rows created before the
	// migration read back as NULL.
	CompanyName    sql.NullString `json:"-"`
	CompanyAddress sql.NullString `json:"-"`
	LogoURL        sql.NullString `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
