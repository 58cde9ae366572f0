package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const maxMessageLength = 1000

type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationService creates the vendor-to-customer messaging usecase.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify stores a message for the customer of one of the vendor's orders and publishes it for delivery.
func (srv *notificationService) Notify(ctx context.Context, vendorID uuid.UUID, input *usecase.NotifyInput) (*entity.Notification, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message must be at most 1000 characters")
	}

	var (
		notification *entity.Notification
		vendorName   string
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindByID(ctx, input.OrderID)
		if err != nil {
			return err
		}
		if order.VendorID != vendorID {
			return repository.ErrOrderNotFound
		}

		vendor, err := repoFactory.VendorRepo().FindByID(ctx, vendorID)
		if err != nil {
			return err
		}
		vendorName = vendor.BusinessName

		notification = &entity.Notification{
			VendorID:   vendorID,
			CustomerID: order.CustomerID,
			OrderID:    order.ID,
			Message:    message,
			Status:     entity.MessageStatusUnread,
		}

		return repoFactory.NotificationRepo().Create(ctx, notification)
	})
	if err != nil {
		return nil, translateError(err, "failed to create notification")
	}

	publishNotification(ctx, srv.publisher, srv.log(ctx), service.EventKindVendorMessage, notification, vendorName, "")

	return notification, nil
}

func (srv *notificationService) ListSent(ctx context.Context, vendorID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, translateError(err, "failed to list sent notifications")
	}

	return notifications, nil
}

func (srv *notificationService) GetSent(ctx context.Context, vendorID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, translateError(err, "failed to find notification")
	}
	if notification.VendorID != vendorID {
		return nil, domainerrors.ErrNotificationNotFound.WrapMessage("notification belongs to another vendor")
	}

	return notification, nil
}

func (srv *notificationService) ListReceived(ctx context.Context, customerID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.ListByCustomer(ctx, customerID, unreadOnly)
	if err != nil {
		return nil, translateError(err, "failed to list received notifications")
	}

	return notifications, nil
}

// GetReceived returns the notification and marks it read.
func (srv *notificationService) GetReceived(ctx context.Context, customerID, notificationID uuid.UUID) (*entity.Notification, error) {
	return srv.MarkRead(ctx, customerID, notificationID)
}

// MarkRead is idempotent: a notification that is already read keeps its first read time.
func (srv *notificationService) MarkRead(ctx context.Context, customerID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return nil, translateError(err, "failed to find notification")
	}
	if notification.CustomerID != customerID {
		return nil, domainerrors.ErrNotificationNotFound.WrapMessage("notification belongs to another customer")
	}

	if !notification.MarkRead(srv.now()) {
		return notification, nil
	}
	if err := srv.notificationRepo.MarkRead(ctx, notification); err != nil {
		return nil, translateError(err, "failed to mark notification read")
	}

	return notification, nil
}

// publishNotification hands a stored notification to the event bus.
// The notification is already committed, so a publish failure is logged and not returned.
func publishNotification(
	ctx context.Context,
	publisher service.EventPublisher,
	logger *slog.Logger,
	kind string,
	notification *entity.Notification,
	vendorName string,
	status entity.OrderStatus,
) {
	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		Kind:           kind,
		NotificationID: notification.ID.String(),
		VendorID:       notification.VendorID.String(),
		VendorName:     vendorName,
		CustomerID:     notification.CustomerID.String(),
		OrderID:        notification.OrderID.String(),
		OrderStatus:    string(status),
		Message:        notification.Message,
		CreatedAt:      notification.CreatedAt,
	}

	if err := publisher.PublishNotificationEvent(ctx, event); err != nil {
		logger.Error("Failed to publish notification event",
			slog.String("notificationID", event.NotificationID),
			slog.String("kind", kind),
			slog.Any("error", errors.WithStack(err)),
		)

		return
	}

	logger.Debug("Notification event published", slog.String("notificationID", event.NotificationID), slog.String("kind", kind))
}
