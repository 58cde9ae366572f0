package repository

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the persistence operations for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByAuthID(ctx context.Context, authID uuid.UUID) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
