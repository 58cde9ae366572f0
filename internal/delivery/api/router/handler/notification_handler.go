package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"foodmarket/internal/delivery/api/response"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves vendor messages to customers, from both sides.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

type NotifyRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
	Message string    `json:"message" validate:"required,max=1000"`
}

// Notify handles POST /auth/vendor/notification
func (h *NotificationHandler) Notify(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	var req NotifyRequest
	if err := bindAndValidate(c, &req, "notification"); err != nil {
		return err
	}

	notification, err := h.notificationUC.Notify(c.Request().Context(), vendorID, &usecase.NotifyInput{
		OrderID: req.OrderID,
		Message: req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// ListSent handles GET /auth/vendor/notification
func (h *NotificationHandler) ListSent(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	notifications, err := h.notificationUC.ListSent(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, notifications)
}

// GetSent handles GET /auth/vendor/notification/:id
func (h *NotificationHandler) GetSent(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}
	notificationID, err := pathID(c, "id", "notification")
	if err != nil {
		return err
	}

	notification, err := h.notificationUC.GetSent(c.Request().Context(), vendorID, notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// ListReceived handles GET /auth/customer/notification with an optional ?unread=true filter.
func (h *NotificationHandler) ListReceived(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}

	unreadOnly := false
	if raw := c.QueryParam("unread"); raw != "" {
		unreadOnly, err = strconv.ParseBool(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("unread must be a boolean")
		}
	}

	notifications, err := h.notificationUC.ListReceived(c.Request().Context(), customerID, unreadOnly)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, notifications)
}

// GetReceived handles GET /auth/customer/notification/:id; reading marks it read.
func (h *NotificationHandler) GetReceived(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}
	notificationID, err := pathID(c, "id", "notification")
	if err != nil {
		return err
	}

	notification, err := h.notificationUC.GetReceived(c.Request().Context(), customerID, notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}

// MarkRead handles PATCH /auth/customer/notification/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}
	notificationID, err := pathID(c, "id", "notification")
	if err != nil {
		return err
	}

	notification, err := h.notificationUC.MarkRead(c.Request().Context(), customerID, notificationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification)
}
