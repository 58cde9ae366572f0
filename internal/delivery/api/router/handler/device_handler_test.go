package handler

import (
	"net/http"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	mockUC "foodmarket/internal/mocks/usecase"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceEcho(t *testing.T, customerID uuid.UUID) (*mockUC.MockDeviceUsecase, *echo.Echo) {
	deviceUC := mockUC.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: discardLogger()})

	e := newTestEcho()
	g := e.Group("/devices", as(customerID, entity.RoleCustomer))
	g.POST("", h.RegisterDevice)
	g.GET("", h.GetCustomerDevices)
	g.PUT("/:id/token", h.UpdateFCMToken)
	g.DELETE("/:id", h.DeactivateDevice)

	return deviceUC, e
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	customerID := uuid.New()
	deviceUC, e := newDeviceEcho(t, customerID)

	deviceUC.EXPECT().
		RegisterDevice(mock.Anything, customerID, &usecase.DeviceInfo{FCMToken: "fcm-1", DeviceID: "pixel-8", Platform: "android"}).
		Return(&entity.CustomerDevice{ID: uuid.New(), CustomerID: customerID, Platform: "android", IsActive: true}, nil)

	rec := doRequest(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","device_id":"pixel-8","platform":"android"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","device_id":"pixel-8","platform":"symbian"}`)
	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, env.Error.Details, "platform must be one of")
}

func TestDeviceHandler_TokenAndDeactivate(t *testing.T) {
	customerID := uuid.New()
	deviceUC, e := newDeviceEcho(t, customerID)

	deviceID := uuid.New()
	deviceUC.EXPECT().UpdateFCMToken(mock.Anything, customerID, deviceID, "fcm-2").
		Return(&entity.CustomerDevice{ID: deviceID, FCMToken: "fcm-2"}, nil)
	deviceUC.EXPECT().DeactivateDevice(mock.Anything, customerID, deviceID).Return(domainerrors.ErrDeviceNotFound)
	deviceUC.EXPECT().GetCustomerDevices(mock.Anything, customerID).Return(nil, nil)

	rec := doRequest(e, http.MethodPut, "/devices/"+deviceID.String()+"/token", `{"fcm_token":"fcm-2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var device entity.CustomerDevice
	decodeData(t, rec, &device)
	assert.Equal(t, "fcm-2", device.FCMToken)

	rec = doRequest(e, http.MethodDelete, "/devices/"+deviceID.String(), "")
	requireErrorCode(t, rec, http.StatusNotFound, "DEVICE_NOT_FOUND")

	rec = doRequest(e, http.MethodGet, "/devices", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
}
