package service

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
	apperrors "github.com/stockpile/stockpile/internal/errors"
)

var testSigningKey = []byte("0123456789abcdef0123456789abcdef")

func newTestCodec(t *testing.T) TokenCodec {
	t.Helper()

	codec, err := NewTokenCodec(testSigningKey, 10*time.Hour)
	require.NoError(t, err)
	return codec
}

func TestNewTokenCodec(t *testing.T) {
	t.Run("Success_ValidKeyAndTTL", func(t *testing.T) {
		codec, err := NewTokenCodec(testSigningKey, time.Hour)
		require.NoError(t, err)
		assert.NotNil(t, codec)
	})

	t.Run("Error_KeyTooShort", func(t *testing.T) {
		codec, err := NewTokenCodec([]byte("short-key"), time.Hour)
		assert.Nil(t, codec)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("Error_NonPositiveTTL", func(t *testing.T) {
		codec, err := NewTokenCodec(testSigningKey, 0)
		assert.Nil(t, codec)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Now().UTC()

	token, expiresAt, err := codec.Issue("alice", authDomain.AdminRole, now)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, now.Add(10*time.Hour).Unix(), expiresAt.Unix())

	claims, err := codec.Verify(token, now)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, authDomain.AdminRole, claims.Role)
}

func TestTokenCodec_Verify_Idempotent(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Now().UTC()

	token, _, err := codec.Issue("bob", authDomain.UserRole, now)
	require.NoError(t, err)

	first, err := codec.Verify(token, now)
	require.NoError(t, err)
	second, err := codec.Verify(token, now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestTokenCodec_Verify_Expired(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Now().UTC()

	token, expiresAt, err := codec.Issue("alice", authDomain.AdminRole, now)
	require.NoError(t, err)

	// Still valid one second before expiry
	claims, err := codec.Verify(token, expiresAt.Add(-time.Second))
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	// Invalid after expiry, even though the signature is intact
	claims, err = codec.Verify(token, expiresAt.Add(time.Second))
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_TamperedPayload(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Now().UTC()

	token, _, err := codec.Issue("bob", authDomain.UserRole, now)
	require.NoError(t, err)

	// Rewrite the role claim inside the signed payload; the signature no longer matches
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	tampered := strings.Replace(string(payload), `"USER"`, `"ADMIN"`, 1)
	require.NotEqual(t, string(payload), tampered)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(tampered))

	claims, err := codec.Verify(strings.Join(parts, "."), now)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_WrongKey(t *testing.T) {
	codec := newTestCodec(t)
	otherCodec, err := NewTokenCodec([]byte("ffffffffffffffffffffffffffffffff"), 10*time.Hour)
	require.NoError(t, err)

	now := time.Now().UTC()
	token, _, err := codec.Issue("alice", authDomain.AdminRole, now)
	require.NoError(t, err)

	claims, err := otherCodec.Verify(token, now)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_Malformed(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Now().UTC()

	tests := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"not a jwt", "this-is-not-a-token"},
		{"missing segments", "aaaa.bbbb"},
		{"garbage segments", "aaaa.bbbb.cccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := codec.Verify(tt.token, now)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
		})
	}
}

func TestTokenCodec_Verify_UnknownRoleClaim(t *testing.T) {
	codec := newTestCodec(t)
	now := time.Now().UTC()

	token, _, err := codec.Issue("alice", authDomain.Role("SUPERUSER"), now)
	require.NoError(t, err)

	claims, err := codec.Verify(token, now)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}
