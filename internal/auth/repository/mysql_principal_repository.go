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

// MySQLPrincipalRepository handles principal persistence for MySQL.
type MySQLPrincipalRepository struct {
	db *sql.DB
}

// NewMySQLPrincipalRepository creates a new MySQLPrincipalRepository.
func NewMySQLPrincipalRepository(db *sql.DB) *MySQLPrincipalRepository {
	return &MySQLPrincipalRepository{
		db: db,
	}
}

// Create inserts a new principal. Used by the out-of-band seeding command only.
func (r *MySQLPrincipalRepository) Create(ctx context.Context, principal *authDomain.Principal) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO principals (id, username, password_hash, role, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query,
		principal.ID, principal.Username, principal.PasswordHash, principal.Role)
	if err != nil {
		if isMySQLDuplicateEntry(err) {
			return authDomain.ErrPrincipalAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create principal")
	}
	return nil
}

// GetByUsername retrieves a principal by its unique, case-sensitive username.
func (r *MySQLPrincipalRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*authDomain.Principal, error) {
	var principal authDomain.Principal
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, password_hash, role, created_at, updated_at
			  FROM principals WHERE username = ?`

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

// isMySQLDuplicateEntry checks if the error is a MySQL duplicate entry error (1062).
func isMySQLDuplicateEntry(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "error 1062") || strings.Contains(errMsg, "duplicate entry")
}
