package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxBusinessNameLength = 100

type vendorService struct {
	vendorRepo repository.VendorRepository
	authRepo   repository.AuthRepository
	logger     *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	VendorRepo repository.VendorRepository
	AuthRepo   repository.AuthRepository
	Logger     *slog.Logger
}

// NewVendorService creates the vendor directory and profile usecase.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		vendorRepo: params.VendorRepo,
		authRepo:   params.AuthRepo,
		logger:     params.Logger,
	}
}

func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *vendorService) ListVendors(ctx context.Context) ([]*entity.Vendor, error) {
	vendors, err := srv.vendorRepo.List(ctx)
	if err != nil {
		return nil, translateError(err, "failed to list vendors")
	}

	return vendors, nil
}

func (srv *vendorService) GetVendor(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, translateError(err, "failed to find vendor")
	}

	return vendor, nil
}

// GetProfile returns the vendor with the login email filled in.
func (srv *vendorService) GetProfile(ctx context.Context, vendorID uuid.UUID) (*entity.Vendor, error) {
	vendor, err := srv.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	auth, err := srv.authRepo.FindAuthenticationByID(ctx, vendor.AuthID)
	if err != nil {
		return nil, translateError(err, "failed to load vendor credential")
	}
	vendor.Email = auth.Email

	return vendor, nil
}

func (srv *vendorService) UpdateProfile(ctx context.Context, vendorID uuid.UUID, input *usecase.UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := srv.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, translateError(err, "failed to find vendor")
	}

	if input.BusinessName != nil {
		name := strings.TrimSpace(*input.BusinessName)
		if name == "" || len(name) > maxBusinessNameLength {
			return nil, domainerrors.ErrValidationFailed.WithDetails("business_name must be 1 to 100 characters")
		}
		vendor.BusinessName = name
	}
	if input.PhoneNumber != nil {
		phone := strings.TrimSpace(*input.PhoneNumber)
		if phone == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("phone_number must not be empty")
		}
		vendor.PhoneNumber = phone
	}

	if err := srv.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, translateError(err, "failed to update vendor")
	}

	srv.log(ctx).Info("Vendor profile updated", slog.Any("vendorID", vendorID))

	return vendor, nil
}
