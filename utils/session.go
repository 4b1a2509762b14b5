package utils

import "github.com/google/uuid"

// NewGuestSessionID returns an identifier for a client without a session.
func NewGuestSessionID() string {
	return uuid.NewString()
}
