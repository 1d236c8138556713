// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
	authService "github.com/stockpile/stockpile/internal/auth/service"
	apperrors "github.com/stockpile/stockpile/internal/errors"
)

// loginUseCase implements LoginUseCase.
type loginUseCase struct {
	principalRepo PrincipalRepository
	secretService authService.SecretService
	tokenCodec    authService.TokenCodec
	logger        *slog.Logger
	now           func() time.Time
}

// NewLoginUseCase creates a new LoginUseCase.
func NewLoginUseCase(
	principalRepo PrincipalRepository,
	secretService authService.SecretService,
	tokenCodec authService.TokenCodec,
	logger *slog.Logger,
) LoginUseCase {
	return &loginUseCase{
		principalRepo: principalRepo,
		secretService: secretService,
		tokenCodec:    tokenCodec,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Login authenticates a principal and mints a signed access token.
//
// This method:
// 1. Rejects blank credentials before any lookup or hashing work
// 2. Looks up the principal by username
// 3. Verifies the password against the stored Argon2id hash (constant-time)
// 4. Asks the token codec to issue a signed token with the principal's role
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both unknown usernames and wrong
//     passwords to prevent username enumeration; the distinction exists only in
//     debug logs
//   - No session state is created; the token itself is the only credential
func (u *loginUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	// Reject blank credentials up front: no lookup, no hashing
	if strings.TrimSpace(input.Username) == "" {
		return nil, authDomain.ErrUsernameRequired
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, authDomain.ErrPasswordRequired
	}

	principal, err := u.principalRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		// Unknown username collapses into the generic credentials error
		if apperrors.Is(err, authDomain.ErrPrincipalNotFound) {
			u.logger.Debug("login failed: unknown username",
				slog.String("username", input.Username))
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.secretService.CompareSecret(input.Password, principal.PasswordHash) {
		u.logger.Debug("login failed: password mismatch",
			slog.String("username", input.Username))
		return nil, authDomain.ErrInvalidCredentials
	}

	token, expiresAt, err := u.tokenCodec.Issue(principal.Username, principal.Role, u.now())
	if err != nil {
		return nil, err
	}

	u.logger.Debug("login successful",
		slog.String("username", principal.Username),
		slog.String("role", string(principal.Role)))

	return &LoginOutput{
		Token:     token,
		Role:      principal.Role,
		ExpiresAt: expiresAt,
	}, nil
}
