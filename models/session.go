package models

import "time"

// Session is a server-side login session identified by an opaque token.
//
// A user may hold many concurrent sessions. A session is removed on logout
// or lazily, when a lookup finds it past ExpiresAt.
type Session struct {
	// ID is the session token: 64 lowercase hex characters
	// (32 bytes from a cryptographically secure source).
	ID string `json:"session_id"`

	// UserID references the owning user.
	UserID int64 `json:"user_id"`

	// ExpiresAt is the expiry moment of the session.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the moment the session was issued.
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the session is no longer valid at now.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
