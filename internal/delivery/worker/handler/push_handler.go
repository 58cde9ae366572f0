package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"foodmarket/config"
	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/constants"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"
	"foodmarket/internal/infra/pubsub"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// EventHandler turns raw notification events into dispatches.
// It is shared by the Pub/Sub push endpoint and the RabbitMQ consumer.
type EventHandler struct {
	logger     *slog.Logger
	dispatchUC usecase.DispatchUsecase
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewEventHandler creates the shared event handler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		logger:     params.Logger,
		dispatchUC: params.DispatchUC,
	}
}

// Handle decodes one JSON event and dispatches it.
// A returned error wrapping usecase.ErrUndeliverable means redelivery is pointless.
func (h *EventHandler) Handle(ctx context.Context, body []byte, requestID string) error {
	var event service.NotificationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return errors.Wrap(usecase.ErrUndeliverable, "decode notification event: "+err.Error())
	}

	// Priority: transport attribute > event field > existing context
	if requestID == "" {
		requestID = event.RequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	ctx, reqLogger := deliverycontext.Attach(ctx, h.logger, requestID)

	reqLogger.Info("[Worker] Processing notification event",
		slog.String("notification_id", event.NotificationID),
		slog.String("kind", event.Kind),
		slog.String("customer_id", event.CustomerID),
	)

	result, err := h.dispatchUC.Dispatch(ctx, &event)
	if err != nil {
		reqLogger.Error("[Worker] Failed to dispatch notification",
			slog.String("notification_id", event.NotificationID),
			slog.Any("error", err),
			slog.Bool("retryable", !errors.Is(err, usecase.ErrUndeliverable)),
		)

		return err
	}

	reqLogger.Info("[Worker] Notification dispatched",
		slog.String("notification_id", event.NotificationID),
		slog.Int("push_sent", result.PushSent),
		slog.Int("push_failed", result.PushFailed),
		slog.Int("invalid_tokens", result.InvalidTokens),
		slog.Bool("sms_sent", result.SMSSent),
		slog.Bool("email_sent", result.EmailSent),
	)

	return nil
}

// PushHandler handles Pub/Sub push messages
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	events         *EventHandler
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Events *EventHandler
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; other providers post directly in development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		events:         params.Events,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	err = h.events.Handle(c.Request().Context(), data, pushMsg.Message.Attributes["request_id"])
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.Is(err, usecase.ErrUndeliverable):
		// Acknowledge so Pub/Sub stops redelivering.
		return c.NoContent(http.StatusOK)
	default:
		// Non-2xx makes Pub/Sub retry with backoff.
		return c.NoContent(http.StatusServiceUnavailable)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return errors.New("invalid authorization header format")
	}

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
