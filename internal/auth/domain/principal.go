// Package domain defines authentication and authorization domain models.
//
// It provides principal-based authentication with role-based authorization.
// Principals authenticate with a username and password and carry a single role
// that gates access to API operations.
package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Role is a tag granted to a principal that gates access to operations.
type Role string

const (
	// AdminRole grants full access, including catalog mutations.
	AdminRole Role = "ADMIN"

	// UserRole grants read access to the catalog.
	UserRole Role = "USER"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == AdminRole || r == UserRole
}

// Principal represents an account capable of being authenticated.
// The password is stored only as an Argon2id hash; the plain secret is never
// persisted or logged.
type Principal struct {
	ID           uuid.UUID // Unique identifier (UUIDv7)
	Username     string    // Unique, case-sensitive login identifier
	PasswordHash string    //nolint:gosec // hashed password (not plaintext)
	Role         Role      // Single role tag (ADMIN or USER)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAnyRole reports whether the principal's role is in the required set.
// An empty required set means the operation is open to any authenticated
// principal.
func (p *Principal) HasAnyRole(required ...Role) bool {
	if len(required) == 0 {
		return true
	}
	return slices.Contains(required, p.Role)
}
