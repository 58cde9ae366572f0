package usecase

import (
	"context"

	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"

	"github.com/google/uuid"
)

// NotifyInput is a vendor's message about one of its orders.
type NotifyInput struct {
	OrderID uuid.UUID
	Message string
}

// NotificationUsecase defines vendor-to-customer messaging.
type NotificationUsecase interface {
	// Notify stores a message for the customer of the order and publishes it for delivery.
	Notify(ctx context.Context, vendorID uuid.UUID, input *NotifyInput) (*entity.Notification, error)
	ListSent(ctx context.Context, vendorID uuid.UUID) ([]*entity.Notification, error)
	GetSent(ctx context.Context, vendorID, notificationID uuid.UUID) (*entity.Notification, error)

	ListReceived(ctx context.Context, customerID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error)
	// GetReceived returns the notification and marks it read.
	GetReceived(ctx context.Context, customerID, notificationID uuid.UUID) (*entity.Notification, error)
	MarkRead(ctx context.Context, customerID, notificationID uuid.UUID) (*entity.Notification, error)
}

// ErrUndeliverable marks a dispatch failure that redelivering the same event cannot fix.
var ErrUndeliverable = errors.New("notification event is undeliverable")

// DispatchResult summarizes one event delivery across channels.
type DispatchResult struct {
	PushSent      int
	PushFailed    int
	InvalidTokens int
	SMSSent       bool
	EmailSent     bool
}

// Delivered reports whether at least one channel reached the customer.
func (r *DispatchResult) Delivered() bool {
	return r.PushSent > 0 || r.SMSSent || r.EmailSent
}

// DispatchUsecase delivers notification events to customers; it runs in the worker.
type DispatchUsecase interface {
	Dispatch(ctx context.Context, event *service.NotificationEvent) (*DispatchResult, error)
}
