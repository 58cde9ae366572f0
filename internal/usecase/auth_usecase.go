// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"foodmarket/internal/domain/entity"
)

// --- Input DTOs ---

// SignupVendorInput defines the data required to register a new vendor.
type SignupVendorInput struct {
	BusinessName string
	PhoneNumber  string
	Email        string
	Password     string
}

// SignupCustomerInput defines the data required to register a new customer.
type SignupCustomerInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Password    string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token of an existing session.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token of the session to end.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens and the profile of whoever logged in.
// Exactly one of Vendor and Customer is set, matching Role.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Role         entity.Role
	Vendor       *entity.Vendor
	Customer     *entity.Customer
}

// RefreshTokenOutput returns the newly issued access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines signup and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	SignupVendor(ctx context.Context, input *SignupVendorInput) (*entity.Vendor, error)
	SignupCustomer(ctx context.Context, input *SignupCustomerInput) (*entity.Customer, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
