package usecase

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateCustomerInput holds the profile fields a customer may change. Nil fields are left untouched.
type UpdateCustomerInput struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// CustomerUsecase defines customer profile management.
type CustomerUsecase interface {
	GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error)
	UpdateProfile(ctx context.Context, customerID uuid.UUID, input *UpdateCustomerInput) (*entity.Customer, error)
}
