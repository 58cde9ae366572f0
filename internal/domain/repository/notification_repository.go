package repository

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the persistence operations for vendor-to-customer messages.
type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Notification, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error)

	// MarkRead sets the status to read; it is a no-op for already read notifications.
	MarkRead(ctx context.Context, notification *entity.Notification) error
}
