package impl

import (
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/errors"
)

// notFoundErrors maps repository sentinels to the domain errors returned to callers.
var notFoundErrors = []struct {
	sentinel error
	domain   *domainerrors.BaseError
}{
	{repository.ErrVendorNotFound, domainerrors.ErrVendorNotFound},
	{repository.ErrCustomerNotFound, domainerrors.ErrCustomerNotFound},
	{repository.ErrMenuNotFound, domainerrors.ErrMenuNotFound},
	{repository.ErrOrderNotFound, domainerrors.ErrOrderNotFound},
	{repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound},
	{repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound},
	{repository.ErrRefreshTokenNotFound, domainerrors.ErrRefreshTokenInvalid},
	{repository.ErrAuthNotFound, domainerrors.ErrInvalidCredentials},
}

// translateError wraps err with message, replacing repository not-found sentinels by their domain error.
func translateError(err error, message string) error {
	for _, mapping := range notFoundErrors {
		if errors.Is(err, mapping.sentinel) {
			return mapping.domain.WrapMessage(message)
		}
	}

	return errors.Wrap(err, message)
}
