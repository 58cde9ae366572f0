package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodmarket/config"
	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/infra/pubsub"
	mockUC "foodmarket/internal/mocks/usecase"
	"foodmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*mockUC.MockDispatchUsecase, *PushHandler) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatchUC := mockUC.NewMockDispatchUsecase(t)
	events := NewEventHandler(EventHandlerParams{Logger: logger, DispatchUC: dispatchUC})

	cfg := &config.Config{}
	cfg.Env.Env = "develop"

	return dispatchUC, NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger, Events: events})
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m-1"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func encodeEvent(t *testing.T, event *service.NotificationEvent) string {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(raw)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_Dispatches(t *testing.T) {
	dispatchUC, h := newPushHandler(t)

	event := &service.NotificationEvent{
		Kind:           service.EventKindOrderStatus,
		NotificationID: "6f0c7c9e-8c1e-4e6e-9a55-0d4c5a0b1a11",
		CustomerID:     "0b6a2d53-4a55-4bb1-9b2f-1f6f0f7c2d10",
		Message:        "Your order has been accepted",
		OrderStatus:    "accepted",
	}
	dispatchUC.EXPECT().
		Dispatch(mock.Anything, mock.MatchedBy(func(got *service.NotificationEvent) bool {
			return got.NotificationID == event.NotificationID && got.OrderStatus == "accepted"
		})).
		RunAndReturn(func(ctx context.Context, _ *service.NotificationEvent) (*usecase.DispatchResult, error) {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.DispatchResult{PushSent: 2}, nil
		})

	rec := servePush(h, pushBody(t, encodeEvent(t, event), map[string]string{"request_id": "req-42"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_Outcomes(t *testing.T) {
	tests := []struct {
		name        string
		dispatchErr error
		wantStatus  int
	}{
		{
			name:        "undeliverable is acknowledged",
			dispatchErr: errors.Join(usecase.ErrUndeliverable, errors.New("customer not found")),
			wantStatus:  http.StatusOK,
		},
		{
			name:        "transient failure asks for redelivery",
			dispatchErr: errors.New("connection reset"),
			wantStatus:  http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatchUC, h := newPushHandler(t)
			dispatchUC.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(nil, tt.dispatchErr)

			rec := servePush(h, pushBody(t, encodeEvent(t, &service.NotificationEvent{NotificationID: "n-1"}), nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	_, h := newPushHandler(t)

	rec := servePush(h, `{"message":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(h, pushBody(t, "%%% not base64", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A payload that is not an event can never succeed, so it is acknowledged.
	rec = servePush(h, pushBody(t, base64.StdEncoding.EncodeToString([]byte("not json")), nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewPushHandler_VerifiesGooglePushOutsideDevelop(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: "google"}}
	cfg.Env.Env = "production"
	h := NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger})
	assert.True(t, h.verifyPushAuth)

	rec := servePush(h, pushBody(t, "", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	cfg.Env.Env = "develop"
	assert.False(t, NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger}).verifyPushAuth)
}
