package middleware

import (
	"log/slog"
	"strings"

	"foodmarket/internal/delivery/api/response"
	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/constants"
	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates access tokens and guards routes by role.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores its subject on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.UserID == uuid.Nil || !claims.Role.IsValid() {
			return response.Unauthorized(c, "INVALID_TOKEN", "Token subject is incomplete")
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyAuthID, claims.AuthID)
		c.Set(constants.ContextKeyRole, claims.Role)

		// Enrich the request-scoped logger so service logs carry the caller.
		ctx := c.Request().Context()
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			logger = logger.With(slog.String("user_id", claims.UserID.String()), slog.String("role", claims.Role.String()))
			c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))
		}

		return next(c)
	}
}

// RequireRole rejects callers whose token role differs from role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			current, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}
			if current != role {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the vendor or customer ID of the authenticated caller.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRole returns the role of the authenticated caller.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(constants.ContextKeyRole).(entity.Role)

	return role, ok
}
