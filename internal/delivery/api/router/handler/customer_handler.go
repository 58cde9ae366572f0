package handler

import (
	"log/slog"
	"net/http"

	"foodmarket/internal/delivery/api/response"
	"foodmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler serves the customer's own profile.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

type UpdateCustomerRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,max=50"`
	LastName    *string `json:"last_name" validate:"omitempty,max=50"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=20"`
}

// GetProfile handles GET /auth/customer/profile
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}

	customer, err := h.customerUC.GetProfile(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// UpdateProfile handles PATCH /auth/customer/profile
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req UpdateCustomerRequest
	if err := bindAndValidate(c, &req, "profile"); err != nil {
		return err
	}

	customer, err := h.customerUC.UpdateProfile(c.Request().Context(), customerID, &usecase.UpdateCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}
