package http

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
	authService "github.com/stockpile/stockpile/internal/auth/service"
	authUseCase "github.com/stockpile/stockpile/internal/auth/usecase"
	apperrors "github.com/stockpile/stockpile/internal/errors"
	"github.com/stockpile/stockpile/internal/httputil"
)

// AuthenticationMiddleware populates the request's security context from a
// Bearer token in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Verifies it with the token codec (signature + expiry)
// 3. On success, stores the principal (subject + role) in the request context
// 4. Allows downstream handlers to access the principal via GetPrincipal()
//
// A missing or invalid token is NOT a failure here: the context simply stays
// empty and the request continues, because some routes are public. Rejecting
// unauthenticated access to protected routes is RequireRole's job, which keeps
// the public/protected decision in one place.
//
// When principalRepo is non-nil the role is re-resolved from storage on every
// request instead of trusting the token's role claim, so role changes take
// effect before the token expires. The default wiring passes nil and trusts
// the claim.
//
// Usage:
//
//	router.Use(AuthenticationMiddleware(tokenCodec, nil, logger))
//	router.GET("/protected", RequireRole(logger, authDomain.AdminRole), handler)
func AuthenticationMiddleware(
	tokenCodec authService.TokenCodec,
	principalRepo authUseCase.PrincipalRepository,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// Anonymous request; context stays empty
			c.Next()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication skipped: malformed authorization header")
			c.Next()
			return
		}

		token := authHeader[len(bearerPrefix):]
		if token == "" {
			logger.Debug("authentication skipped: empty bearer token")
			c.Next()
			return
		}

		claims, err := tokenCodec.Verify(token, time.Now().UTC())
		if err != nil {
			// Invalid token leaves the context empty; RequireRole rejects later
			// if the route is protected
			logger.Debug("authentication failed: invalid token")
			c.Next()
			return
		}

		role := claims.Role
		if principalRepo != nil {
			// Hardened mode: resolve the current role from storage instead of
			// trusting the claim minted at login time
			principal, err := principalRepo.GetByUsername(c.Request.Context(), claims.Subject)
			if err != nil {
				logger.Debug("authentication failed: principal lookup",
					slog.String("username", claims.Subject),
					slog.String("error", err.Error()))
				c.Next()
				return
			}
			role = principal.Role
		}

		ctx := WithPrincipal(c.Request.Context(), &AuthenticatedPrincipal{
			Username: claims.Subject,
			Role:     role,
		})
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("username", claims.Subject),
			slog.String("role", string(role)))

		c.Next()
	}
}

// RequireRole provides role-based authorization for a route.
//
// This middleware MUST be mounted after AuthenticationMiddleware. It reads the
// security context populated there and applies the route's required role set:
//
//   - Empty context → 401 Unauthorized (the route requires authentication)
//   - Authenticated but role not in the required set → 403 Forbidden
//   - Otherwise the request continues
//
// An empty required set admits any authenticated principal. Public routes
// simply don't mount this middleware.
//
// Usage:
//
//	router.POST("/v1/items", RequireRole(logger, authDomain.AdminRole), handler)
//	router.GET("/v1/items", RequireRole(logger, authDomain.AdminRole, authDomain.UserRole), handler)
func RequireRole(logger *slog.Logger, roles ...authDomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok || principal == nil {
			logger.Debug("authorization failed: no authenticated principal in context",
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !hasAnyRole(principal, roles) {
			logger.Debug("authorization failed: insufficient role",
				slog.String("username", principal.Username),
				slog.String("role", string(principal.Role)),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		logger.Debug("authorization successful",
			slog.String("username", principal.Username),
			slog.String("role", string(principal.Role)),
			slog.String("path", c.Request.URL.Path))

		c.Next()
	}
}

// hasAnyRole reports whether the principal's role is in the required set.
func hasAnyRole(principal *AuthenticatedPrincipal, roles []authDomain.Role) bool {
	if len(roles) == 0 {
		return true
	}
	for _, role := range roles {
		if principal.Role == role {
			return true
		}
	}
	return false
}
