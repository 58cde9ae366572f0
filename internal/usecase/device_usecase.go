package usecase

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string `json:"fcm_token"`
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
}

// DeviceUsecase defines the interface for device management use cases
type DeviceUsecase interface {
	// RegisterDevice registers a new device or refreshes the one with the same device ID
	RegisterDevice(ctx context.Context, customerID uuid.UUID, deviceInfo *DeviceInfo) (*entity.CustomerDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device
	UpdateFCMToken(ctx context.Context, customerID, deviceID uuid.UUID, fcmToken string) (*entity.CustomerDevice, error)

	// GetCustomerDevices retrieves all devices of a customer
	GetCustomerDevices(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// DeactivateDevice stops pushes to a device
	DeactivateDevice(ctx context.Context, customerID, deviceID uuid.UUID) error
}
