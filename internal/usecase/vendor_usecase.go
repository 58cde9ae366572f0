package usecase

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateVendorInput holds the profile fields a vendor may change. Nil fields are left untouched.
type UpdateVendorInput struct {
	BusinessName *string
	PhoneNumber  *string
}

// VendorUsecase defines public vendor lookups and owner profile management.
type VendorUsecase interface {
	ListVendors(ctx context.Context) ([]*entity.Vendor, error)
	GetVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error)
	GetProfile(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error)
	UpdateProfile(ctx context.Context, vendorID uuid.UUID, input *UpdateVendorInput) (*entity.Vendor, error)
}
