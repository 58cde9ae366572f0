// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found or has expired.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// RefreshTokenRepository defines the operations for session storage.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves an unexpired refresh token by its hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteRefreshTokenByHash removes a refresh token, ending the session.
	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// CountActiveSessionsByAuthID counts unexpired refresh tokens of a credential.
	CountActiveSessionsByAuthID(ctx context.Context, authID uuid.UUID) (int, error)
}
