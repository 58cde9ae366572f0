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

const maxPersonNameLength = 50

type customerService struct {
	customerRepo repository.CustomerRepository
	authRepo     repository.AuthRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	AuthRepo     repository.AuthRepository
	Logger       *slog.Logger
}

// NewCustomerService creates the customer profile usecase.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		authRepo:     params.AuthRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *customerService) GetProfile(ctx context.Context, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, translateError(err, "failed to find customer")
	}

	auth, err := srv.authRepo.FindAuthenticationByID(ctx, customer.AuthID)
	if err != nil {
		return nil, translateError(err, "failed to load customer credential")
	}
	customer.Email = auth.Email

	return customer, nil
}

func (srv *customerService) UpdateProfile(ctx context.Context, customerID uuid.UUID, input *usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, translateError(err, "failed to find customer")
	}

	if input.FirstName != nil {
		name := strings.TrimSpace(*input.FirstName)
		if name == "" || len(name) > maxPersonNameLength {
			return nil, domainerrors.ErrValidationFailed.WithDetails("first_name must be 1 to 50 characters")
		}
		customer.FirstName = name
	}
	if input.LastName != nil {
		name := strings.TrimSpace(*input.LastName)
		if len(name) > maxPersonNameLength {
			return nil, domainerrors.ErrValidationFailed.WithDetails("last_name must be at most 50 characters")
		}
		customer.LastName = name
	}
	if input.PhoneNumber != nil {
		phone := strings.TrimSpace(*input.PhoneNumber)
		if phone == "" {
			return nil, domainerrors.ErrValidationFailed.WithDetails("phone_number must not be empty")
		}
		customer.PhoneNumber = phone
	}

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		return nil, translateError(err, "failed to update customer")
	}

	srv.log(ctx).Info("Customer profile updated", slog.Any("customerID", customerID))

	return customer, nil
}
