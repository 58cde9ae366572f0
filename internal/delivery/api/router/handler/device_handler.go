package handler

import (
	"log/slog"
	"net/http"

	"foodmarket/internal/delivery/api/response"
	"foodmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// UpdateFCMTokenRequest represents the request body for updating FCM token
type UpdateFCMTokenRequest struct {
	FCMToken string `json:"fcm_token" validate:"required"`
}

// RegisterDevice handles POST /auth/customer/devices
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req, "device"); err != nil {
		return err
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), customerID, &usecase.DeviceInfo{
		FCMToken: req.FCMToken,
		DeviceID: req.DeviceID,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

// GetCustomerDevices handles GET /auth/customer/devices
func (h *DeviceHandler) GetCustomerDevices(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}

	devices, err := h.deviceUC.GetCustomerDevices(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, devices)
}

// UpdateFCMToken handles PUT /auth/customer/devices/:id/token
func (h *DeviceHandler) UpdateFCMToken(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}
	deviceID, err := pathID(c, "id", "device")
	if err != nil {
		return err
	}

	var req UpdateFCMTokenRequest
	if err := bindAndValidate(c, &req, "FCM token"); err != nil {
		return err
	}

	device, err := h.deviceUC.UpdateFCMToken(c.Request().Context(), customerID, deviceID, req.FCMToken)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, device)
}

// DeactivateDevice handles DELETE /auth/customer/devices/:id
func (h *DeviceHandler) DeactivateDevice(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}
	deviceID, err := pathID(c, "id", "device")
	if err != nil {
		return err
	}

	if err := h.deviceUC.DeactivateDevice(c.Request().Context(), customerID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Device deactivated successfully")
}
