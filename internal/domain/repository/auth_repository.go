// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
// This allows the application layer to handle specific outcomes without depending on database-specific errors.
var (
	// ErrAuthNotFound is returned when no credential matches the lookup.
	ErrAuthNotFound = errors.New("authentication not found")
)

// AuthRepository defines the persistence operations for credentials.
type AuthRepository interface {
	// CreateAuthentication persists a new credential. A duplicate email yields domainerrors.ErrEmailAlreadyExists.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthenticationByEmail retrieves a credential by its (case-insensitive) email.
	FindAuthenticationByEmail(ctx context.Context, email string) (*entity.Authentication, error)

	// FindAuthenticationByID retrieves a credential by its ID.
	FindAuthenticationByID(ctx context.Context, id uuid.UUID) (*entity.Authentication, error)

	// AcquireSessionMutex row-locks the credential so session counting and insertion are serialized.
	// It must be called inside a transaction.
	AcquireSessionMutex(ctx context.Context, id uuid.UUID) error
}
