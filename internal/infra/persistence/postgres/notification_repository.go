package postgres

import (
	"context"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/errors"
	"foodmarket/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new vendor-to-customer notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	if notification.Status == "" {
		notification.Status = entity.MessageStatusUnread
	}
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("invalid order, vendor or customer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// ListByVendor retrieves notifications sent by a vendor, newest first.
func (repo *notificationRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by vendor")
	}

	return toNotificationDomainList(notificationModels), nil
}

// ListByCustomer retrieves notifications received by a customer, newest first.
func (repo *notificationRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).Where("customer_id = ?", customerID)
	if unreadOnly {
		query = query.Where("status = ?", string(entity.MessageStatusUnread))
	}

	if err := query.Order("created_at DESC").Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by customer")
	}

	return toNotificationDomainList(notificationModels), nil
}

// MarkRead flips an unread notification to read. Already read rows keep their original read_at.
func (repo *notificationRepository) MarkRead(ctx context.Context, notification *entity.Notification) error {
	if notification.ReadAt == nil {
		return errors.New("read_at must be set before marking a notification read")
	}

	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND status = ?", notification.ID, string(entity.MessageStatusUnread)).
		Updates(map[string]any{
			"status":  string(entity.MessageStatusRead),
			"read_at": *notification.ReadAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}

	return nil
}

// --- Mapper Functions ---

func toNotificationDomainList(notificationModels []*model.NotificationModel) []*entity.Notification {
	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications
}

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:         data.ID,
		VendorID:   data.VendorID,
		CustomerID: data.CustomerID,
		OrderID:    data.OrderID,
		Message:    data.Message,
		Status:     entity.MessageStatus(data.Status),
		CreatedAt:  data.CreatedAt,
		ReadAt:     data.ReadAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:         data.ID,
		VendorID:   data.VendorID,
		CustomerID: data.CustomerID,
		OrderID:    data.OrderID,
		Message:    data.Message,
		Status:     string(data.Status),
		CreatedAt:  data.CreatedAt,
		ReadAt:     data.ReadAt,
	}
}
