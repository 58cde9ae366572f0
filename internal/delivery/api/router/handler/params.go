package handler

import (
	"net/http"

	"foodmarket/internal/delivery/api/middleware"
	"foodmarket/internal/delivery/api/response"
	domainerrors "foodmarket/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// callerID returns the authenticated vendor or customer ID.
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return id, nil
}

// pathID parses a UUID path parameter.
func pathID(c echo.Context, name, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + label + " ID")
	}

	return id, nil
}

// bindAndValidate decodes the body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any, label string) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid " + label + " input")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func message(c echo.Context, text string) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": text})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
