package impl

import (
	"context"
	"log/slog"

	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	channelPush  = "push"
	channelSMS   = "sms"
	channelEmail = "email"
)

type dispatchService struct {
	customerRepo repository.CustomerRepository
	authRepo     repository.AuthRepository
	deviceRepo   repository.DeviceRepository
	push         service.NotificationService
	sms          service.SMSSender
	email        service.EmailSender
	metrics      service.BusinessMetrics
	logger       *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	AuthRepo     repository.AuthRepository
	DeviceRepo   repository.DeviceRepository
	Push         service.NotificationService
	SMS          service.SMSSender
	Email        service.EmailSender
	Metrics      service.BusinessMetrics
	Logger       *slog.Logger
}

// NewDispatchService creates the worker-side delivery usecase.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		customerRepo: params.CustomerRepo,
		authRepo:     params.AuthRepo,
		deviceRepo:   params.DeviceRepo,
		push:         params.Push,
		sms:          params.SMS,
		email:        params.Email,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dispatch delivers one notification event over push, SMS and e-mail.
// Errors wrapping usecase.ErrUndeliverable must not be retried. Any other error is worth redelivery.
func (srv *dispatchService) Dispatch(ctx context.Context, event *service.NotificationEvent) (*usecase.DispatchResult, error) {
	customerID, err := uuid.Parse(event.CustomerID)
	if err != nil {
		return nil, errors.Wrapf(usecase.ErrUndeliverable, "invalid customer id %q", event.CustomerID)
	}
	if event.Message == "" {
		return nil, errors.Wrap(usecase.ErrUndeliverable, "event has no message")
	}

	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(usecase.ErrUndeliverable, "recipient no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load recipient")
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recipient devices")
	}

	result := &usecase.DispatchResult{}
	title := notificationTitle(event)
	var channelErrs []error
	if err := srv.dispatchPush(ctx, event, title, devices, result); err != nil {
		channelErrs = append(channelErrs, err)
	}

	if customer.PhoneNumber != "" {
		err := srv.sms.SendSMS(ctx, customer.PhoneNumber, title+": "+event.Message)
		srv.record(ctx, channelSMS, event, err)
		result.SMSSent = err == nil
		if err != nil {
			channelErrs = append(channelErrs, errors.Wrap(err, channelSMS))
		}
	}

	if email := srv.recipientEmail(ctx, customer); email != "" {
		err := srv.email.SendEmail(ctx, email, title, event.Message)
		srv.record(ctx, channelEmail, event, err)
		result.EmailSent = err == nil
		if err != nil {
			channelErrs = append(channelErrs, errors.Wrap(err, channelEmail))
		}
	}

	// Once any channel got through, redelivery would duplicate it, so partial failures are only logged.
	if !result.Delivered() && len(channelErrs) > 0 {
		return result, errors.Wrap(errors.Join(channelErrs...), "every notification channel failed")
	}

	srv.log(ctx).Info("Notification dispatched",
		slog.String("notificationID", event.NotificationID),
		slog.Int("pushSent", result.PushSent),
		slog.Int("pushFailed", result.PushFailed),
		slog.Bool("smsSent", result.SMSSent),
		slog.Bool("emailSent", result.EmailSent),
	)

	return result, nil
}

// dispatchPush returns the sender error, if any. Invalid tokens are cleaned up, not reported.
func (srv *dispatchService) dispatchPush(ctx context.Context, event *service.NotificationEvent, title string, devices []*entity.CustomerDevice, result *usecase.DispatchResult) error {
	if len(devices) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := map[string]string{
		"notification_id": event.NotificationID,
		"order_id":        event.OrderID,
		"vendor_id":       event.VendorID,
		"kind":            event.Kind,
	}
	if event.OrderStatus != "" {
		data["order_status"] = event.OrderStatus
	}

	sent, failed, invalidTokens, err := srv.push.SendBatchNotification(ctx, tokens, title, event.Message, data)
	srv.record(ctx, channelPush, event, err)
	result.PushSent = sent
	result.PushFailed = failed
	result.InvalidTokens = len(invalidTokens)

	if len(invalidTokens) > 0 {
		if deactivateErr := srv.deviceRepo.DeactivateByTokens(ctx, invalidTokens); deactivateErr != nil {
			srv.log(ctx).Warn("Failed to deactivate invalid tokens", slog.Int("count", len(invalidTokens)), slog.Any("error", deactivateErr))
		}
	}
	if err != nil {
		return errors.Wrap(err, channelPush)
	}

	return nil
}

// recipientEmail falls back to the login credential when the profile has no email loaded.
func (srv *dispatchService) recipientEmail(ctx context.Context, customer *entity.Customer) string {
	if customer.Email != "" {
		return customer.Email
	}

	auth, err := srv.authRepo.FindAuthenticationByID(ctx, customer.AuthID)
	if err != nil {
		srv.log(ctx).Warn("Failed to load recipient email", slog.Any("customerID", customer.ID), slog.Any("error", err))

		return ""
	}

	return auth.Email
}

func (srv *dispatchService) record(ctx context.Context, channel string, event *service.NotificationEvent, err error) {
	srv.metrics.NotificationDispatched(channel, err == nil)
	if err != nil {
		srv.log(ctx).Warn("Notification channel failed",
			slog.String("channel", channel),
			slog.String("notificationID", event.NotificationID),
			slog.Any("error", err),
		)
	}
}

func notificationTitle(event *service.NotificationEvent) string {
	if event.VendorName == "" {
		return "Order update"
	}

	return event.VendorName
}
