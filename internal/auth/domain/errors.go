package domain

import (
	"github.com/stockpile/stockpile/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrPrincipalNotFound indicates a principal with the specified username was
	// not found. Never surfaced to clients directly; the login use case collapses
	// it into ErrInvalidCredentials to prevent username enumeration.
	ErrPrincipalNotFound = errors.Wrap(errors.ErrNotFound, "principal not found")

	// ErrInvalidCredentials indicates the username/password pair did not match a
	// stored principal. Covers both unknown usernames and wrong passwords so the
	// outward message never reveals which check failed.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid username or password")

	// ErrInvalidToken indicates a bearer token failed verification. Signature
	// mismatch, malformed structure, and expiry all collapse into this single
	// outcome so callers cannot probe which check failed.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrUsernameRequired indicates the username field is blank.
	ErrUsernameRequired = errors.Wrap(errors.ErrInvalidInput, "username is required")

	// ErrPasswordRequired indicates the password field is blank.
	ErrPasswordRequired = errors.Wrap(errors.ErrInvalidInput, "password is required")

	// ErrInvalidRole indicates a role tag outside the known set.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")

	// ErrPrincipalAlreadyExists indicates a principal with the same username already exists.
	ErrPrincipalAlreadyExists = errors.Wrap(errors.ErrConflict, "principal already exists")
)
