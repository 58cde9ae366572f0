// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	"log/slog"
	"net/http"

	"foodmarket/internal/delivery/api/response"
	"foodmarket/internal/domain/entity"
	"foodmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves signup and token endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

type SignupVendorRequest struct {
	BusinessName string `json:"business_name" validate:"required,max=100"`
	PhoneNumber  string `json:"phone_number" validate:"required,max=20"`
	Email        string `json:"email" validate:"required,email,max=254"`
	Password     string `json:"password" validate:"required"`
}

type SignupCustomerRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=50"`
	LastName    string `json:"last_name" validate:"max=50"`
	PhoneNumber string `json:"phone_number" validate:"required,max=20"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest is used by both refresh and logout.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	TokenType    string           `json:"token_type"`
	Role         entity.Role      `json:"role"`
	Vendor       *entity.Vendor   `json:"vendor,omitempty"`
	Customer     *entity.Customer `json:"customer,omitempty"`
}

// SignupVendor handles POST /vendor
func (h *AuthHandler) SignupVendor(c echo.Context) error {
	var req SignupVendorRequest
	if err := bindAndValidate(c, &req, "signup"); err != nil {
		return err
	}

	vendor, err := h.authUC.SignupVendor(c.Request().Context(), &usecase.SignupVendorInput{
		BusinessName: req.BusinessName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Password:     req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vendor)
}

// SignupCustomer handles POST /customer
func (h *AuthHandler) SignupCustomer(c echo.Context) error {
	var req SignupCustomerRequest
	if err := bindAndValidate(c, &req, "signup"); err != nil {
		return err
	}

	customer, err := h.authUC.SignupCustomer(c.Request().Context(), &usecase.SignupCustomerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

// Login handles POST /token/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req, "login"); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		TokenType:    "Bearer",
		Role:         output.Role,
		Vendor:       output.Vendor,
		Customer:     output.Customer,
	})
}

// RefreshToken handles POST /token/refresh
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req, "refresh token"); err != nil {
		return err
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"access_token": output.AccessToken,
		"token_type":   "Bearer",
	})
}

// Logout handles POST /token/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	var req RefreshTokenRequest
	if err := bindAndValidate(c, &req, "logout"); err != nil {
		return err
	}

	if err := h.authUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Successfully logged out")
}
