package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/service"
	mockSvc "foodmarket/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEcho(t *testing.T) (*mockSvc.MockTokenService, *echo.Echo) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	g := e.Group("/auth", m.Authenticate)
	g.GET("/vendor/ping", func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok {
			return c.NoContent(http.StatusTeapot)
		}

		return c.String(http.StatusOK, userID.String())
	}, m.RequireRole(entity.RoleVendor))

	return tokenSvc, e
}

func call(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/auth/vendor/ping", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthenticate(t *testing.T) {
	vendorID := uuid.New()
	customerID := uuid.New()

	tests := []struct {
		name          string
		authorization string
		setup         func(tokenSvc *mockSvc.MockTokenService)
		wantStatus    int
		wantBody      string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   "MISSING_TOKEN",
		},
		{
			name:          "not a bearer token",
			authorization: "Basic dXNlcjpwYXNz",
			wantStatus:    http.StatusUnauthorized,
			wantBody:      "INVALID_TOKEN",
		},
		{
			name:          "rejected token",
			authorization: "Bearer expired",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "INVALID_TOKEN",
		},
		{
			name:          "wrong role",
			authorization: "Bearer customer-token",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("customer-token").
					Return(&service.Claims{UserID: customerID, Role: entity.RoleCustomer}, nil)
			},
			wantStatus: http.StatusForbidden,
			wantBody:   "FORBIDDEN",
		},
		{
			name:          "vendor token",
			authorization: "Bearer vendor-token",
			setup: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("vendor-token").
					Return(&service.Claims{UserID: vendorID, AuthID: uuid.New(), Role: entity.RoleVendor}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   vendorID.String(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc, e := newAuthEcho(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec := call(e, tt.authorization)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
