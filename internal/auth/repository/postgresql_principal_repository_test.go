package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/stockpile/stockpile/internal/auth/domain"
)

func newTestPrincipal(t *testing.T) *authDomain.Principal {
	t.Helper()
	now := time.Now().UTC()
	return &authDomain.Principal{
		ID:           uuid.Must(uuid.NewV7()),
		Username:     "alice",
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$salt$hash",
		Role:         authDomain.AdminRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestPostgreSQLPrincipalRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		principal := newTestPrincipal(t)

		mock.ExpectExec("INSERT INTO principals").
			WithArgs(principal.ID, principal.Username, principal.PasswordHash, principal.Role).
			WillReturnResult(sqlmock.NewResult(1, 1))

		repo := NewPostgreSQLPrincipalRepository(db)
		err = repo.Create(context.Background(), principal)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateUsername", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		principal := newTestPrincipal(t)

		mock.ExpectExec("INSERT INTO principals").
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "principals_username_key"`))

		repo := NewPostgreSQLPrincipalRepository(db)
		err = repo.Create(context.Background(), principal)
		assert.ErrorIs(t, err, authDomain.ErrPrincipalAlreadyExists)
	})

	t.Run("Error_DatabaseFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		principal := newTestPrincipal(t)

		mock.ExpectExec("INSERT INTO principals").
			WillReturnError(errors.New("connection refused"))

		repo := NewPostgreSQLPrincipalRepository(db)
		err = repo.Create(context.Background(), principal)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, authDomain.ErrPrincipalAlreadyExists)
	})
}

func TestPostgreSQLPrincipalRepository_GetByUsername(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		want := newTestPrincipal(t)

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at", "updated_at"}).
			AddRow(want.ID, want.Username, want.PasswordHash, want.Role, want.CreatedAt, want.UpdatedAt)

		mock.ExpectQuery("SELECT (.+) FROM principals WHERE username").
			WithArgs("alice").
			WillReturnRows(rows)

		repo := NewPostgreSQLPrincipalRepository(db)
		got, err := repo.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Username, got.Username)
		assert.Equal(t, want.Role, got.Role)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM principals WHERE username").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at", "updated_at"}))

		repo := NewPostgreSQLPrincipalRepository(db)
		got, err := repo.GetByUsername(context.Background(), "ghost")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, authDomain.ErrPrincipalNotFound)
	})

	t.Run("Error_DatabaseFailure", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM principals WHERE username").
			WillReturnError(errors.New("connection reset"))

		repo := NewPostgreSQLPrincipalRepository(db)
		got, err := repo.GetByUsername(context.Background(), "alice")
		assert.Nil(t, got)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, authDomain.ErrPrincipalNotFound)
	})
}

func TestMySQLPrincipalRepository(t *testing.T) {
	t.Run("Create_DuplicateEntry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		principal := newTestPrincipal(t)

		mock.ExpectExec("INSERT INTO principals").
			WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'principals.username'"))

		repo := NewMySQLPrincipalRepository(db)
		err = repo.Create(context.Background(), principal)
		assert.ErrorIs(t, err, authDomain.ErrPrincipalAlreadyExists)
	})

	t.Run("GetByUsername_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT (.+) FROM principals WHERE username").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "role", "created_at", "updated_at"}))

		repo := NewMySQLPrincipalRepository(db)
		got, err := repo.GetByUsername(context.Background(), "ghost")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, authDomain.ErrPrincipalNotFound)
	})
}
