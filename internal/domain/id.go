// Package domain id.go contains functions to generate, parse, and validate secret IDs.
package domain

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// idLen is the length of a padding-free base64url encoding of 16 random bytes.
const idLen = 22

// SecretID is the canonical identifier for a stored secret.
// It is a 128-bit random value (a UUIDv4's bytes) encoded as 22 characters of
// padding-free, URL-safe base64.
type SecretID string

// NewID generates a new cryptographically random SecretID.
func NewID() (SecretID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return SecretID(base64.RawURLEncoding.EncodeToString(u[:])), nil
}

// ParseID validates s and returns it as a SecretID. It enforces:
// - length == 22
// - only base64url alphabet characters [A-Za-z0-9_-]
// Returns ErrInvalidID on failure.
func ParseID(s string) (SecretID, error) {
	if !isValidID(s) {
		return "", ErrInvalidID
	}
	return SecretID(s), nil
}

// String returns the string form of the SecretID.
func (id SecretID) String() string { return string(id) }

// Valid reports whether the ID satisfies the same rules as ParseID.
func (id SecretID) Valid() bool { return isValidID(string(id)) }

// isValidID performs validation without allocating errors.
func isValidID(s string) bool {
	if len(s) != idLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return true
}
