// Package repository provides data persistence implementations for principals.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
	"github.com/stockpile/stockpile/internal/database"
	apperrors "github.com/stockpile/stockpile/internal/errors"
)

// PostgreSQLPrincipalRepository handles principal persistence for PostgreSQL.
type PostgreSQLPrincipalRepository struct {
	db *sql.DB
}

// NewPostgreSQLPrincipalRepository creates a new PostgreSQLPrincipalRepository.
func NewPostgreSQLPrincipalRepository(db *sql.DB) *PostgreSQLPrincipalRepository {
	return &PostgreSQLPrincipalRepository{
		db: db,
	}
}

// Create inserts a new principal. Used by the out-of-band seeding command only.
func (r *PostgreSQLPrincipalRepository) Create(ctx context.Context, principal *authDomain.Principal) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO principals (id, username, password_hash, role, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		principal.ID, principal.Username, principal.PasswordHash, principal.Role)
	if err != nil {
		// Check for unique constraint violation (duplicate username)
		if isPostgreSQLUniqueViolation(err) {
			return authDomain.ErrPrincipalAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create principal")
	}
	return nil
}

// GetByUsername retrieves a principal by its unique, case-sensitive username.
func (r *PostgreSQLPrincipalRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*authDomain.Principal, error) {
	var principal authDomain.Principal
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password_hash, role, created_at, updated_at
			  FROM principals WHERE username = $1`

	err := querier.QueryRowContext(ctx, query, username).Scan(
		&principal.ID,
		&principal.Username,
		&principal.PasswordHash,
		&principal.Role,
		&principal.CreatedAt,
		&principal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrPrincipalNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get principal by username")
	}

	return &principal, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
