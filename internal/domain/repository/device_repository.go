// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for customer device operations.
type DeviceRepository interface {
	// CreateDevice persists a new device for a customer.
	CreateDevice(ctx context.Context, device *entity.CustomerDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.CustomerDevice, error)

	// FindDeviceByClientID retrieves a customer's device by the client-supplied device identifier.
	FindDeviceByClientID(ctx context.Context, customerID uuid.UUID, deviceID string) (*entity.CustomerDevice, error)

	// FindDevicesByCustomer retrieves all devices of a customer (including inactive).
	FindDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// FindActiveDevicesByCustomer retrieves the devices that should receive pushes.
	FindActiveDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error)

	// UpdateDevice saves token, platform and active flag.
	UpdateDevice(ctx context.Context, device *entity.CustomerDevice) error

	// DeactivateByTokens turns off every device holding one of the tokens.
	DeactivateByTokens(ctx context.Context, tokens []string) error
}
