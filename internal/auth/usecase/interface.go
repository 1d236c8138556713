// Package usecase defines business logic interfaces for authentication and authorization operations.
package usecase

import (
	"context"
	"time"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
)

// PrincipalRepository defines persistence operations for principals.
// Implementations must support transaction-aware operations via context propagation.
// This core treats principals as read-only; creation happens through an
// out-of-band seeding command.
type PrincipalRepository interface {
	// Create stores a new principal. Used only by the seeding command.
	// Returns ErrPrincipalAlreadyExists on duplicate username.
	Create(ctx context.Context, principal *authDomain.Principal) error

	// GetByUsername retrieves a principal by its unique, case-sensitive username.
	// Returns ErrPrincipalNotFound if not found.
	GetByUsername(ctx context.Context, username string) (*authDomain.Principal, error)
}

// LoginInput carries a login attempt's credentials.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginOutput carries a successful login's results.
type LoginOutput struct {
	// Token is the signed bearer token. Stateless: never persisted server-side.
	Token string
	// Role is the authenticated principal's role.
	Role authDomain.Role
	// ExpiresAt is the token's expiry timestamp.
	ExpiresAt time.Time
}

// LoginUseCase verifies login attempts and mints access tokens.
type LoginUseCase interface {
	// Login verifies the username/password pair and, on success, returns a
	// signed token plus the principal's role.
	//
	// Blank credentials are rejected before any lookup or hashing work.
	// Unknown usernames and wrong passwords both surface as
	// ErrInvalidCredentials so the outward message never reveals whether the
	// username exists; the two cases are distinguished only in debug logs.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
