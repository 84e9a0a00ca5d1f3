package utils

import "github.com/google/uuid"

// NewUUID returns a random version-4 UUID string. Used for session and trace
// identifiers; the randomness source makes the values unguessable, which is
// what makes a session id safe to hand to a browser.
func NewUUID() string {
	return uuid.NewString()
}
