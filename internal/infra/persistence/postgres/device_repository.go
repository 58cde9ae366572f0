package postgres

import (
	"context"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/errors"
	"foodmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device for a customer.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.CustomerDevice) error {
	deviceM := fromDeviceDomain(device)

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("device already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.CustomerDevice, error) {
	var deviceM model.CustomerDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDeviceByClientID retrieves a customer's device by the identifier the client reported.
func (repo *deviceRepository) FindDeviceByClientID(ctx context.Context, customerID uuid.UUID, deviceID string) (*entity.CustomerDevice, error) {
	var deviceM model.CustomerDeviceModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ? AND device_id = ?", customerID, deviceID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by client ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByCustomer retrieves all devices for a customer (including inactive, excluding soft-deleted).
func (repo *deviceRepository) FindDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	return repo.findMany(ctx, "customer_id = ?", customerID)
}

// FindActiveDevicesByCustomer retrieves the active devices for a customer (excluding soft-deleted).
func (repo *deviceRepository) FindActiveDevicesByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CustomerDevice, error) {
	return repo.findMany(ctx, "customer_id = ? AND is_active = ?", customerID, true)
}

func (repo *deviceRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.CustomerDevice, error) {
	var deviceModels []*model.CustomerDeviceModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by customer")
	}

	devices := make([]*entity.CustomerDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// UpdateDevice saves the token, platform and active flag of a device.
func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.CustomerDevice) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerDeviceModel{}).
		Where("id = ? AND customer_id = ?", device.ID, device.CustomerID).
		Updates(map[string]any{
			"fcm_token":  device.FCMToken,
			"platform":   device.Platform,
			"is_active":  device.IsActive,
			"updated_at": gorm.Expr("NOW()"),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens marks every device holding one of the tokens inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": gorm.Expr("NOW()"),
		}).Error; err != nil {
		return errors.Wrap(err, "failed to deactivate devices")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM CustomerDeviceModel to a domain CustomerDevice entity.
func toDeviceDomain(data *model.CustomerDeviceModel) *entity.CustomerDevice {
	if data == nil {
		return nil
	}

	return &entity.CustomerDevice{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain CustomerDevice entity to a GORM CustomerDeviceModel.
func fromDeviceDomain(data *entity.CustomerDevice) *model.CustomerDeviceModel {
	if data == nil {
		return nil
	}

	return &model.CustomerDeviceModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		FCMToken:   data.FCMToken,
		DeviceID:   data.DeviceID,
		Platform:   data.Platform,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
