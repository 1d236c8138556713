package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
	apperrors "github.com/stockpile/stockpile/internal/errors"
)

// minSigningKeyBytes is the minimum signing key size (256 bits for HMAC-SHA256).
const minSigningKeyBytes = 32

// tokenClaims is the JWT claim set carried by access tokens.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// tokenCodec implements TokenCodec using HMAC-SHA256 signed JWTs.
// The signing key and TTL are fixed at construction; the codec holds no other
// state and performs no I/O.
type tokenCodec struct {
	signingKey []byte
	ttl        time.Duration
}

// NewTokenCodec creates a TokenCodec that signs tokens with the given symmetric
// key and fixed TTL. The key must be at least 32 bytes (256 bits).
func NewTokenCodec(signingKey []byte, ttl time.Duration) (TokenCodec, error) {
	if len(signingKey) < minSigningKeyBytes {
		return nil, apperrors.Wrapf(
			apperrors.ErrInvalidInput,
			"signing key must be at least %d bytes", minSigningKeyBytes,
		)
	}
	if ttl <= 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token ttl must be positive")
	}

	return &tokenCodec{
		signingKey: signingKey,
		ttl:        ttl,
	}, nil
}

// Issue produces a compact HS256-signed JWT embedding the subject, the role
// claim, issued-at = now, and expiry = now + TTL.
func (t *tokenCodec) Issue(
	subject string,
	role authDomain.Role,
	now time.Time,
) (string, time.Time, error) {
	expiresAt := now.Add(t.ttl)

	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.signingKey)
	if err != nil {
		return "", time.Time{}, apperrors.Wrap(err, "failed to sign token")
	}

	return signed, expiresAt, nil
}

// Verify validates the signature over the full claim set and checks expiry
// against now. All failure modes collapse into ErrInvalidToken so the caller
// cannot learn which check rejected the token.
func (t *tokenCodec) Verify(token string, now time.Time) (*Claims, error) {
	claims := &tokenClaims{}

	parsed, err := jwt.ParseWithClaims(
		token,
		claims,
		func(tok *jwt.Token) (any, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, authDomain.ErrInvalidToken
			}
			return t.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil || !parsed.Valid {
		return nil, authDomain.ErrInvalidToken
	}

	role := authDomain.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return nil, authDomain.ErrInvalidToken
	}

	return &Claims{
		Subject: claims.Subject,
		Role:    role,
	}, nil
}
