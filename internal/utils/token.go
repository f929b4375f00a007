package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// SessionTokenBytes is the amount of entropy in a session token.
const SessionTokenBytes = 32

// GenerateSessionToken returns a new opaque session token encoded as
// lowercase hex (64 characters).
func GenerateSessionToken() (string, error) {
	buf := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
