package postgres

import (
	"context"
	"testing"
	"time"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var authColumns = []string{"id", "email", "password_hash", "role", "created_at", "updated_at"}

func TestAuthRepository_FindAuthenticationByEmail_NormalizesEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "authentications" WHERE email = \$1 ORDER BY "authentications"."id" LIMIT \$2`).
		WithArgs("chef@example.com", 1).
		WillReturnRows(sqlmock.NewRows(authColumns).AddRow(id.String(), "chef@example.com", "hash", "vendor", now, now))

	auth, err := repo.FindAuthenticationByEmail(context.Background(), "  Chef@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, id, auth.ID)
	assert.Equal(t, entity.RoleVendor, auth.Role)
	assert.Equal(t, "hash", auth.PasswordHash)
}

func TestAuthRepository_FindAuthenticationByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "authentications" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(authColumns))

	auth, err := repo.FindAuthenticationByEmail(context.Background(), "missing@example.com")
	assert.Nil(t, auth)
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)
}

func TestAuthRepository_CreateAuthentication_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db)

	mock.ExpectQuery(`INSERT INTO "authentications"`).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_authentications_email"})

	err := repo.CreateAuthentication(context.Background(), &entity.Authentication{
		Email:        "dup@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleCustomer,
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestAuthRepository_CreateAuthentication_SetsGeneratedID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAuthRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`INSERT INTO "authentications" .* RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	auth := &entity.Authentication{Email: "New@Example.com", PasswordHash: "hash", Role: entity.RoleCustomer}
	require.NoError(t, repo.CreateAuthentication(context.Background(), auth))
	assert.Equal(t, id, auth.ID)
	assert.Equal(t, "new@example.com", auth.Email)
}

func TestRefreshTokenRepository_DeleteRefreshTokenByHash_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)

	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE token_hash = \$1`).
		WithArgs("hash").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRefreshTokenByHash(context.Background(), "hash")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_CountActiveSessions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRefreshTokenRepository(db)
	authID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "refresh_tokens" WHERE auth_id = \$1 AND expires_at > \$2`).
		WithArgs(authID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountActiveSessionsByAuthID(context.Background(), authID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
