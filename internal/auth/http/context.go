// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
)

// principalKey is a context key type for storing the authenticated principal.
type principalKey struct{}

// AuthenticatedPrincipal is the per-request security context: who is calling,
// with what role. It lives only on the request context and is discarded when
// the request ends. Never stored or shared across requests.
type AuthenticatedPrincipal struct {
	Username string
	Role     authDomain.Role
}

// WithPrincipal stores the authenticated principal in the context.
// Called by the authentication middleware after successful token verification.
func WithPrincipal(ctx context.Context, principal *AuthenticatedPrincipal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns (principal, true) if one is present, or (nil, false) for anonymous
// requests. Handlers and the authorization middleware read it from here.
func GetPrincipal(ctx context.Context) (*AuthenticatedPrincipal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*AuthenticatedPrincipal)
	return principal, ok
}
