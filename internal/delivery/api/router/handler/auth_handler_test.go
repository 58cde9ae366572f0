package handler

import (
	"net/http"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	mockUC "foodmarket/internal/mocks/usecase"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthEcho(t *testing.T) (*mockUC.MockAuthUsecase, *AuthHandler) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return authUC, NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Logger: discardLogger()})
}

func TestAuthHandler_Login(t *testing.T) {
	authUC, h := newAuthEcho(t)
	e := newTestEcho()
	e.POST("/token/login", h.Login)

	vendor := &entity.Vendor{ID: uuid.New(), BusinessName: "Mama Put"}
	authUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "chef@example.com", Password: "Secret123"}).
		Return(&usecase.LoginOutput{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Role:         entity.RoleVendor,
			Vendor:       vendor,
		}, nil)

	rec := doRequest(e, http.MethodPost, "/token/login", `{"email":"chef@example.com","password":"Secret123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var out LoginResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, entity.RoleVendor, out.Role)
	require.NotNil(t, out.Vendor)
	assert.Equal(t, vendor.ID, out.Vendor.ID)
	assert.Nil(t, out.Customer)
}

func TestAuthHandler_LoginValidation(t *testing.T) {
	_, h := newAuthEcho(t)
	e := newTestEcho()
	e.POST("/token/login", h.Login)

	rec := doRequest(e, http.MethodPost, "/token/login", `{"email":"not-an-email"}`)

	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, env.Error.Details, "password is required")
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	authUC, h := newAuthEcho(t)
	e := newTestEcho()
	e.POST("/token/login", h.Login)

	authUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(e, http.MethodPost, "/token/login", `{"email":"chef@example.com","password":"wrong"}`)

	env := requireErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
	assert.Nil(t, env.Error.Details)
}

func TestAuthHandler_SignupVendorDuplicate(t *testing.T) {
	authUC, h := newAuthEcho(t)
	e := newTestEcho()
	e.POST("/vendor", h.SignupVendor)

	authUC.EXPECT().
		SignupVendor(mock.Anything, &usecase.SignupVendorInput{
			BusinessName: "Mama Put",
			PhoneNumber:  "+2348000000000",
			Email:        "chef@example.com",
			Password:     "Secret123",
		}).
		Return(nil, domainerrors.ErrEmailAlreadyExists)

	rec := doRequest(e, http.MethodPost, "/vendor",
		`{"business_name":"Mama Put","phone_number":"+2348000000000","email":"chef@example.com","password":"Secret123"}`)

	requireErrorCode(t, rec, http.StatusConflict, "EMAIL_ALREADY_EXISTS")
}

func TestAuthHandler_SignupCustomer(t *testing.T) {
	authUC, h := newAuthEcho(t)
	e := newTestEcho()
	e.POST("/customer", h.SignupCustomer)

	customer := &entity.Customer{ID: uuid.New(), FirstName: "Ada", Email: "ada@example.com"}
	authUC.EXPECT().SignupCustomer(mock.Anything, mock.Anything).Return(customer, nil)

	rec := doRequest(e, http.MethodPost, "/customer",
		`{"first_name":"Ada","phone_number":"+2348000000001","email":"ada@example.com","password":"Secret123"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var out entity.Customer
	decodeData(t, rec, &out)
	assert.Equal(t, customer.ID, out.ID)
	assert.Equal(t, "ada@example.com", out.Email)
}

func TestAuthHandler_RefreshAndLogout(t *testing.T) {
	authUC, h := newAuthEcho(t)
	e := newTestEcho()
	e.POST("/token/refresh", h.RefreshToken)
	e.POST("/token/logout", h.Logout)

	authUC.EXPECT().
		RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "refresh"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "new-access"}, nil)
	authUC.EXPECT().
		Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "refresh"}).
		Return(domainerrors.ErrRefreshTokenInvalid)

	rec := doRequest(e, http.MethodPost, "/token/refresh", `{"refresh_token":"refresh"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]string
	decodeData(t, rec, &out)
	assert.Equal(t, "new-access", out["access_token"])

	rec = doRequest(e, http.MethodPost, "/token/logout", `{"refresh_token":"refresh"}`)
	requireErrorCode(t, rec, http.StatusUnauthorized, "REFRESH_TOKEN_INVALID")
}
