package impl

import (
	"context"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	mockRepo "foodmarket/internal/mocks/repository"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	return NewDeviceService(deviceRepo), deviceRepo
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	customerID := uuid.New()

	deviceRepo.EXPECT().FindDeviceByClientID(ctx, customerID, "device-1").Return(nil, repository.ErrDeviceNotFound)
	deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.CustomerDevice")).
		Run(func(_ context.Context, device *entity.CustomerDevice) {
			device.ID = uuid.New()
		}).
		Return(nil)

	device, err := service.RegisterDevice(ctx, customerID, &usecase.DeviceInfo{
		FCMToken: "token-1",
		DeviceID: "device-1",
		Platform: "Android",
	})

	require.NoError(t, err)
	assert.Equal(t, customerID, device.CustomerID)
	assert.Equal(t, "android", device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_ExistingDeviceGetsNewToken(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	customerID := uuid.New()
	existing := &entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID, DeviceID: "device-1", FCMToken: "old", Platform: "ios"}

	deviceRepo.EXPECT().FindDeviceByClientID(ctx, customerID, "device-1").Return(existing, nil)
	deviceRepo.EXPECT().UpdateDevice(ctx, existing).Return(nil)

	device, err := service.RegisterDevice(ctx, customerID, &usecase.DeviceInfo{
		FCMToken: "new",
		DeviceID: "device-1",
		Platform: "ios",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, device.ID)
	assert.Equal(t, "new", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info usecase.DeviceInfo
	}{
		{name: "missing token", info: usecase.DeviceInfo{DeviceID: "d", Platform: "ios"}},
		{name: "missing device id", info: usecase.DeviceInfo{FCMToken: "t", Platform: "ios"}},
		{name: "unknown platform", info: usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestDeviceService(t)

			_, err := service.RegisterDevice(context.Background(), uuid.New(), &tt.info)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)
	ctx := context.Background()
	customerID := uuid.New()
	device := &entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID, FCMToken: "old"}

	deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
	deviceRepo.EXPECT().UpdateDevice(ctx, device).Return(nil)

	updated, err := service.UpdateFCMToken(ctx, customerID, device.ID, "fresh")

	require.NoError(t, err)
	assert.Equal(t, "fresh", updated.FCMToken)
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	t.Run("own device", func(t *testing.T) {
		service, deviceRepo := createTestDeviceService(t)
		customerID := uuid.New()
		device := &entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID, IsActive: true}

		deviceRepo.EXPECT().FindDeviceByID(mock.Anything, device.ID).Return(device, nil)
		deviceRepo.EXPECT().
			UpdateDevice(mock.Anything, device).
			Run(func(_ context.Context, device *entity.CustomerDevice) {
				assert.False(t, device.IsActive)
			}).
			Return(nil)

		require.NoError(t, service.DeactivateDevice(context.Background(), customerID, device.ID))
	})

	t.Run("someone else's device", func(t *testing.T) {
		service, deviceRepo := createTestDeviceService(t)
		device := &entity.CustomerDevice{ID: uuid.New(), CustomerID: uuid.New(), IsActive: true}

		deviceRepo.EXPECT().FindDeviceByID(mock.Anything, device.ID).Return(device, nil)

		err := service.DeactivateDevice(context.Background(), uuid.New(), device.ID)

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("unknown device", func(t *testing.T) {
		service, deviceRepo := createTestDeviceService(t)
		deviceID := uuid.New()

		deviceRepo.EXPECT().FindDeviceByID(mock.Anything, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := service.DeactivateDevice(context.Background(), uuid.New(), deviceID)

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})
}
