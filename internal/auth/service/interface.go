// Package service provides authentication-related services for token signing
// and password hashing.
package service

import (
	"time"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
)

// Claims holds the identity decoded from a verified access token.
type Claims struct {
	// Subject is the authenticated principal's username.
	Subject string
	// Role is the role claim embedded at issue time.
	Role authDomain.Role
}

// TokenCodec encodes and decodes signed access tokens. Implementations are
// pure: no I/O, no shared mutable state, safe for concurrent use.
type TokenCodec interface {
	// Issue produces a signed token for the subject and role, issued at now and
	// expiring at now plus the codec's fixed TTL. Returns the compact token and
	// its expiry.
	Issue(subject string, role authDomain.Role, now time.Time) (token string, expiresAt time.Time, err error)

	// Verify validates the token's signature and expiry relative to now and
	// returns the embedded claims. Signature mismatch, malformed structure, and
	// expiry all return authDomain.ErrInvalidToken; callers cannot distinguish
	// them.
	Verify(token string, now time.Time) (*Claims, error)
}

// SecretService handles password hashing and verification.
type SecretService interface {
	// HashSecret hashes a plain text password.
	HashSecret(plainSecret string) (hashedSecret string, err error)

	// CompareSecret performs a constant-time comparison between a plain password
	// and its stored hash.
	CompareSecret(plainSecret string, hashedSecret string) bool
}
