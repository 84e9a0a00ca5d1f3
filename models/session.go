package models

import "time"

// Session is the server-side binding between a cookie-carried opaque
// identifier and a user account. The identifier is a random UUID; nothing
// about the user can be derived from it.
type Session struct {
	// SessionID is the opaque identifier stored in the client cookie.
	SessionID string `json:"-"`

	// UserID is the account the session is bound to.
	UserID int64 `json:"-"`

	// ExpiresAt is the fixed expiry instant; the session is invalid after
	// this time regardless of activity.
	ExpiresAt time.Time `json:"-"`

	// CreatedAt is the instant the session was issued.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session's fixed expiry has passed at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
