package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/service"
	mockRepo "foodmarket/internal/mocks/repository"
	mockSvc "foodmarket/internal/mocks/service"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func createTestNotificationService(t *testing.T) (
	*notificationService,
	*mockRepo.MockTransactionManager,
	*txRepos,
	*mockRepo.MockNotificationRepository,
	*mockSvc.MockEventPublisher,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newTxRepos(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewNotificationService(NotificationServiceParams{
		TxManager:        txManager,
		NotificationRepo: notificationRepo,
		Publisher:        publisher,
		Logger:           discardLogger(),
	}).(*notificationService)
	srv.now = func() time.Time { return fixedNow }

	return srv, txManager, repos, notificationRepo, publisher
}

func TestNotificationService_Notify_Success(t *testing.T) {
	srv, txManager, repos, _, publisher := createTestNotificationService(t)
	ctx := context.Background()
	vendorID, customerID := uuid.New(), uuid.New()
	order := &entity.Order{ID: uuid.New(), VendorID: vendorID, CustomerID: customerID}

	repos.runTransactions(txManager)
	repos.order.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	repos.vendor.EXPECT().FindByID(ctx, vendorID).Return(&entity.Vendor{ID: vendorID, BusinessName: "Mama Put"}, nil)
	repos.notification.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			notification.ID = uuid.New()
			notification.CreatedAt = fixedNow
		}).
		Return(nil)
	publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(_ context.Context, event *service.NotificationEvent) {
			assert.Equal(t, service.EventKindVendorMessage, event.Kind)
			assert.Equal(t, "Mama Put", event.VendorName)
			assert.Equal(t, "Your food is on the way", event.Message)
			assert.Empty(t, event.OrderStatus)
		}).
		Return(nil)

	notification, err := srv.Notify(ctx, vendorID, &usecase.NotifyInput{OrderID: order.ID, Message: "  Your food is on the way "})

	require.NoError(t, err)
	assert.Equal(t, customerID, notification.CustomerID)
	assert.Equal(t, entity.MessageStatusUnread, notification.Status)
}

func TestNotificationService_Notify_Rejected(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		srv, _, _, _, _ := createTestNotificationService(t)

		_, err := srv.Notify(context.Background(), uuid.New(), &usecase.NotifyInput{OrderID: uuid.New(), Message: "   "})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("message too long", func(t *testing.T) {
		srv, _, _, _, _ := createTestNotificationService(t)

		_, err := srv.Notify(context.Background(), uuid.New(), &usecase.NotifyInput{OrderID: uuid.New(), Message: strings.Repeat("a", 1001)})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("order of another vendor", func(t *testing.T) {
		srv, txManager, repos, _, _ := createTestNotificationService(t)
		order := &entity.Order{ID: uuid.New(), VendorID: uuid.New()}

		repos.runTransactions(txManager)
		repos.order.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

		_, err := srv.Notify(context.Background(), uuid.New(), &usecase.NotifyInput{OrderID: order.ID, Message: "hello"})

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestNotificationService_GetReceived_MarksRead(t *testing.T) {
	srv, _, _, notificationRepo, _ := createTestNotificationService(t)
	customerID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), CustomerID: customerID, Status: entity.MessageStatusUnread}

	notificationRepo.EXPECT().FindByID(mock.Anything, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkRead(mock.Anything, notification).Return(nil)

	got, err := srv.GetReceived(context.Background(), customerID, notification.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.MessageStatusRead, got.Status)
	require.NotNil(t, got.ReadAt)
	assert.Equal(t, fixedNow, *got.ReadAt)
}

func TestNotificationService_MarkRead_AlreadyRead(t *testing.T) {
	srv, _, _, notificationRepo, _ := createTestNotificationService(t)
	customerID := uuid.New()
	readAt := fixedNow.Add(-time.Hour)
	notification := &entity.Notification{ID: uuid.New(), CustomerID: customerID, Status: entity.MessageStatusRead, ReadAt: &readAt}

	notificationRepo.EXPECT().FindByID(mock.Anything, notification.ID).Return(notification, nil)

	got, err := srv.MarkRead(context.Background(), customerID, notification.ID)

	require.NoError(t, err)
	assert.Equal(t, readAt, *got.ReadAt)
}

func TestNotificationService_OwnershipIsEnforced(t *testing.T) {
	srv, _, _, notificationRepo, _ := createTestNotificationService(t)
	notification := &entity.Notification{ID: uuid.New(), VendorID: uuid.New(), CustomerID: uuid.New()}

	notificationRepo.EXPECT().FindByID(mock.Anything, notification.ID).Return(notification, nil)

	_, err := srv.GetSent(context.Background(), uuid.New(), notification.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)

	_, err = srv.MarkRead(context.Background(), uuid.New(), notification.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
