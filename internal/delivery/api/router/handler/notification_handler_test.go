package handler

import (
	"net/http"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	mockUC "foodmarket/internal/mocks/usecase"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationEcho(t *testing.T, userID uuid.UUID, role entity.Role) (*mockUC.MockNotificationUsecase, *echo.Echo) {
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: discardLogger()})

	e := newTestEcho()
	g := e.Group("", as(userID, role))
	g.POST("/vendor/notification", h.Notify)
	g.GET("/vendor/notification/:id", h.GetSent)
	g.GET("/customer/notification", h.ListReceived)
	g.GET("/customer/notification/:id", h.GetReceived)
	g.PATCH("/customer/notification/:id/read", h.MarkRead)

	return notificationUC, e
}

func TestNotificationHandler_Notify(t *testing.T) {
	vendorID := uuid.New()
	notificationUC, e := newNotificationEcho(t, vendorID, entity.RoleVendor)

	orderID := uuid.New()
	notificationUC.EXPECT().
		Notify(mock.Anything, vendorID, &usecase.NotifyInput{OrderID: orderID, Message: "Your rice is on the way"}).
		Return(&entity.Notification{ID: uuid.New(), OrderID: orderID, Status: entity.MessageStatusUnread}, nil)

	rec := doRequest(e, http.MethodPost, "/vendor/notification",
		`{"order_id":"`+orderID.String()+`","message":"Your rice is on the way"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out entity.Notification
	decodeData(t, rec, &out)
	assert.Equal(t, entity.MessageStatusUnread, out.Status)

	rec = doRequest(e, http.MethodPost, "/vendor/notification", `{"order_id":"`+orderID.String()+`"}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestNotificationHandler_GetSentNotFound(t *testing.T) {
	vendorID := uuid.New()
	notificationUC, e := newNotificationEcho(t, vendorID, entity.RoleVendor)

	notificationID := uuid.New()
	notificationUC.EXPECT().GetSent(mock.Anything, vendorID, notificationID).Return(nil, domainerrors.ErrNotificationNotFound)

	rec := doRequest(e, http.MethodGet, "/vendor/notification/"+notificationID.String(), "")

	requireErrorCode(t, rec, http.StatusNotFound, "NOTIFICATION_NOT_FOUND")
}

func TestNotificationHandler_ListReceived(t *testing.T) {
	customerID := uuid.New()
	notificationUC, e := newNotificationEcho(t, customerID, entity.RoleCustomer)

	notificationUC.EXPECT().ListReceived(mock.Anything, customerID, true).
		Return([]*entity.Notification{{ID: uuid.New(), Status: entity.MessageStatusUnread}}, nil)
	notificationUC.EXPECT().ListReceived(mock.Anything, customerID, false).
		Return([]*entity.Notification{}, nil)

	rec := doRequest(e, http.MethodGet, "/customer/notification?unread=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 1, *env.Meta.Count)

	rec = doRequest(e, http.MethodGet, "/customer/notification", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/customer/notification?unread=maybe", "")
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestNotificationHandler_ReadPaths(t *testing.T) {
	customerID := uuid.New()
	notificationUC, e := newNotificationEcho(t, customerID, entity.RoleCustomer)

	notificationID := uuid.New()
	read := &entity.Notification{ID: notificationID, Status: entity.MessageStatusRead}
	notificationUC.EXPECT().GetReceived(mock.Anything, customerID, notificationID).Return(read, nil)
	notificationUC.EXPECT().MarkRead(mock.Anything, customerID, notificationID).Return(read, nil)

	rec := doRequest(e, http.MethodGet, "/customer/notification/"+notificationID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPatch, "/customer/notification/"+notificationID.String()+"/read", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out entity.Notification
	decodeData(t, rec, &out)
	assert.Equal(t, entity.MessageStatusRead, out.Status)
}
