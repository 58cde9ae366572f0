package impl

import (
	"context"
	"strings"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/errors"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
)

var validPlatforms = map[string]bool{"ios": true, "android": true, "web": true}

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
	}
}

// RegisterDevice registers a new device or refreshes the token of a known one
func (s *deviceService) RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *usecase.DeviceInfo) (*entity.CustomerDevice, error) {
	if err := validateDeviceInfo(deviceInfo); err != nil {
		return nil, err
	}
	platform := strings.ToLower(deviceInfo.Platform)

	existing, err := s.deviceRepo.FindDeviceByClientID(ctx, customerID, deviceInfo.DeviceID)
	switch {
	case err == nil:
		existing.FCMToken = deviceInfo.FCMToken
		existing.Platform = platform
		existing.IsActive = true
		if err := s.deviceRepo.UpdateDevice(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to update device")
		}

		return existing, nil
	case !errors.Is(err, repository.ErrDeviceNotFound):
		return nil, errors.Wrap(err, "failed to find device by client id")
	}

	device := &entity.CustomerDevice{
		CustomerID: customerID,
		FCMToken:   deviceInfo.FCMToken,
		DeviceID:   deviceInfo.DeviceID,
		Platform:   platform,
		IsActive:   true,
	}
	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	return device, nil
}

// UpdateFCMToken updates the FCM token for a specific device
func (s *deviceService) UpdateFCMToken(ctx context.Context, customerID, deviceID uuid.UUID, fcmToken string) (*entity.CustomerDevice, error) {
	if strings.TrimSpace(fcmToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	}

	device, err := s.ownedDevice(ctx, customerID, deviceID)
	if err != nil {
		return nil, err
	}

	device.FCMToken = fcmToken
	device.IsActive = true
	if err := s.deviceRepo.UpdateDevice(ctx, device); err != nil {
		return nil, translateError(err, "failed to update FCM token")
	}

	return device, nil
}

// GetCustomerDevices retrieves all devices for a customer
func (s *deviceService) GetCustomerDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	devices, err := s.deviceRepo.FindDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by customer")
	}

	return devices, nil
}

// DeactivateDevice stops push delivery to a device without forgetting it
func (s *deviceService) DeactivateDevice(ctx context.Context, customerID, deviceID uuid.UUID) error {
	device, err := s.ownedDevice(ctx, customerID, deviceID)
	if err != nil {
		return err
	}

	device.IsActive = false
	if err := s.deviceRepo.UpdateDevice(ctx, device); err != nil {
		return translateError(err, "failed to deactivate device")
	}

	return nil
}

// ownedDevice hides other customers' devices behind a not-found error.
func (s *deviceService) ownedDevice(ctx context.Context, customerID, deviceID uuid.UUID) (*entity.CustomerDevice, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, deviceID)
	if err != nil {
		return nil, translateError(err, "failed to find device")
	}
	if device.CustomerID != customerID {
		return nil, domainerrors.ErrDeviceNotFound.WrapMessage("device belongs to another customer")
	}

	return device, nil
}

func validateDeviceInfo(info *usecase.DeviceInfo) error {
	switch {
	case strings.TrimSpace(info.FCMToken) == "":
		return domainerrors.ErrValidationFailed.WithDetails("fcm_token is required")
	case strings.TrimSpace(info.DeviceID) == "":
		return domainerrors.ErrValidationFailed.WithDetails("device_id is required")
	case !validPlatforms[strings.ToLower(info.Platform)]:
		return domainerrors.ErrValidationFailed.WithDetails("platform must be one of ios, android, web")
	}

	return nil
}
