package repository

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrVendorNotFound is returned when a vendor is not found.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines the persistence operations for vendors.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	FindByAuthID(ctx context.Context, authID uuid.UUID) (*entity.Vendor, error)
	List(ctx context.Context) ([]*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
}
