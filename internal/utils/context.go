// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// session token generation, HTTP response writing and HTTP client initialization.
package utils

import (
	"context"

	"github.com/MKhiriev/activity-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the context.
var UserCtxKey = contextKey("user")

// SessionIDCtxKey is the key used to store the session token the request
// was authenticated with.
var SessionIDCtxKey = contextKey("sessionID")

// WithUser returns a copy of ctx carrying the authenticated user and the
// session token that resolved to it.
func WithUser(ctx context.Context, user models.User, sessionID string) context.Context {
	ctx = context.WithValue(ctx, UserCtxKey, user)
	return context.WithValue(ctx, SessionIDCtxKey, sessionID)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns ok == false if the value is missing or has an unexpected type.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetUserIDFromContext retrieves the authenticated user's identifier.
//
// Example usage:
//
//	userID, ok := utils.GetUserIDFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	user, ok := GetUserFromContext(ctx)
	if !ok || user.ID == 0 {
		return 0, false
	}
	return user.ID, true
}

// GetSessionIDFromContext retrieves the session token stored by WithUser.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}
