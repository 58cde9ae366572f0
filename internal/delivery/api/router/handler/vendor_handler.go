package handler

import (
	"log/slog"
	"net/http"

	"foodmarket/internal/delivery/api/response"
	"foodmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VendorHandlerParams holds dependencies for VendorHandler, injected by Fx.
type VendorHandlerParams struct {
	fx.In

	VendorUC usecase.VendorUsecase
	Logger   *slog.Logger
}

// VendorHandler serves public vendor lookups and the vendor's own profile.
type VendorHandler struct {
	vendorUC usecase.VendorUsecase
	logger   *slog.Logger
}

// NewVendorHandler is the constructor for VendorHandler
func NewVendorHandler(params VendorHandlerParams) *VendorHandler {
	return &VendorHandler{
		vendorUC: params.VendorUC,
		logger:   params.Logger,
	}
}

type UpdateVendorRequest struct {
	BusinessName *string `json:"business_name" validate:"omitempty,max=100"`
	PhoneNumber  *string `json:"phone_number" validate:"omitempty,max=20"`
}

// ListVendors handles GET /vendor
func (h *VendorHandler) ListVendors(c echo.Context) error {
	vendors, err := h.vendorUC.ListVendors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, vendors)
}

// GetVendor handles GET /vendor/:id
func (h *VendorHandler) GetVendor(c echo.Context) error {
	vendorID, err := pathID(c, "id", "vendor")
	if err != nil {
		return err
	}

	vendor, err := h.vendorUC.GetVendor(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// GetProfile handles GET /auth/vendor/profile
func (h *VendorHandler) GetProfile(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	vendor, err := h.vendorUC.GetProfile(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}

// UpdateProfile handles PATCH /auth/vendor/profile
func (h *VendorHandler) UpdateProfile(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateVendorRequest
	if err := bindAndValidate(c, &req, "profile"); err != nil {
		return err
	}

	vendor, err := h.vendorUC.UpdateProfile(c.Request().Context(), vendorID, &usecase.UpdateVendorInput{
		BusinessName: req.BusinessName,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vendor)
}
