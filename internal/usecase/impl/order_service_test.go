package impl

import (
	"context"
	"math"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/domain/service"
	mockRepo "foodmarket/internal/mocks/repository"
	mockSvc "foodmarket/internal/mocks/service"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	repos     *txRepos
	orderRepo *mockRepo.MockOrderRepository
	cache     *mockSvc.MockMenuCache
	publisher *mockSvc.MockEventPublisher
	metrics   *mockSvc.MockBusinessMetrics
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	fx := orderServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		repos:     newTxRepos(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		cache:     mockSvc.NewMockMenuCache(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		metrics:   mockSvc.NewMockBusinessMetrics(t),
	}
	fx.service = NewOrderService(OrderServiceParams{
		TxManager: fx.txManager,
		OrderRepo: fx.orderRepo,
		Cache:     fx.cache,
		Publisher: fx.publisher,
		Metrics:   fx.metrics,
		Logger:    discardLogger(),
	})

	return fx
}

func (fx orderServiceFixtures) expectInvalidate(vendorID uuid.UUID) {
	fx.cache.EXPECT().Invalidate(mock.Anything, service.MenuScopeAll, service.MenuScopeVendor(vendorID)).Return(nil)
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID, vendorID := uuid.New(), uuid.New()
	rice := &entity.Menu{ID: uuid.New(), VendorID: vendorID, Name: "Jollof rice", Price: 1500, Quantity: 10}
	stew := &entity.Menu{ID: uuid.New(), VendorID: vendorID, Name: "Egusi", Price: 2000, Quantity: 1}

	fx.repos.runTransactions(fx.txManager)
	fx.repos.vendor.EXPECT().FindByID(ctx, vendorID).Return(&entity.Vendor{ID: vendorID}, nil)
	fx.repos.menu.EXPECT().
		FindByVendorAndIDsForUpdate(ctx, vendorID, []uuid.UUID{rice.ID, stew.ID}).
		Return([]*entity.Menu{stew, rice}, nil)
	fx.repos.menu.EXPECT().AdjustQuantity(ctx, rice.ID, -3).Return(nil)
	fx.repos.menu.EXPECT().AdjustQuantity(ctx, stew.ID, -1).Return(nil)
	fx.repos.order.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)
	fx.metrics.EXPECT().OrderPlaced(int64(6500)).Return()
	fx.expectInvalidate(vendorID)

	order, err := fx.service.CreateOrder(ctx, customerID, &usecase.CreateOrderInput{
		VendorID:    vendorID,
		Description: " extra pepper ",
		Items: []usecase.OrderItemInput{
			{MenuID: rice.ID, Quantity: 1},
			{MenuID: stew.ID, Quantity: 1},
			{MenuID: rice.ID, Quantity: 2},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "extra pepper", order.Description)
	assert.Equal(t, int64(6500), order.AmountDue)
	assert.Equal(t, int64(0), order.AmountPaid)
	assert.Equal(t, int64(6500), order.AmountOutstanding)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, int64(4500), order.Items[0].LineTotal)
}

func TestOrderService_CreateOrder_Rejected(t *testing.T) {
	vendorID := uuid.New()
	menu := &entity.Menu{ID: uuid.New(), VendorID: vendorID, Name: "Suya", Price: 500, Quantity: 1}

	tests := []struct {
		name    string
		items   []usecase.OrderItemInput
		setup   func(fx orderServiceFixtures)
		wantErr error
	}{
		{
			name:    "no items",
			wantErr: domainerrors.ErrOrderEmpty,
		},
		{
			name:    "zero quantity",
			items:   []usecase.OrderItemInput{{MenuID: menu.ID, Quantity: 0}},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "unknown vendor",
			items: []usecase.OrderItemInput{{MenuID: menu.ID, Quantity: 1}},
			setup: func(fx orderServiceFixtures) {
				fx.repos.runTransactions(fx.txManager)
				fx.repos.vendor.EXPECT().FindByID(mock.Anything, vendorID).Return(nil, repository.ErrVendorNotFound)
			},
			wantErr: domainerrors.ErrVendorNotFound,
		},
		{
			name:  "menu of another vendor",
			items: []usecase.OrderItemInput{{MenuID: menu.ID, Quantity: 1}, {MenuID: uuid.New(), Quantity: 1}},
			setup: func(fx orderServiceFixtures) {
				fx.repos.runTransactions(fx.txManager)
				fx.repos.vendor.EXPECT().FindByID(mock.Anything, vendorID).Return(&entity.Vendor{ID: vendorID}, nil)
				fx.repos.menu.EXPECT().FindByVendorAndIDsForUpdate(mock.Anything, vendorID, mock.Anything).
					Return([]*entity.Menu{menu}, nil)
			},
			wantErr: domainerrors.ErrMenuNotOffered,
		},
		{
			name:  "not enough stock",
			items: []usecase.OrderItemInput{{MenuID: menu.ID, Quantity: 2}},
			setup: func(fx orderServiceFixtures) {
				fx.repos.runTransactions(fx.txManager)
				fx.repos.vendor.EXPECT().FindByID(mock.Anything, vendorID).Return(&entity.Vendor{ID: vendorID}, nil)
				fx.repos.menu.EXPECT().FindByVendorAndIDsForUpdate(mock.Anything, vendorID, []uuid.UUID{menu.ID}).
					Return([]*entity.Menu{menu}, nil)
			},
			wantErr: domainerrors.ErrInsufficientStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			order, err := fx.service.CreateOrder(context.Background(), uuid.New(), &usecase.CreateOrderInput{
				VendorID: vendorID,
				Items:    tt.items,
			})

			assert.Nil(t, order)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_CreateOrder_TotalOverflow(t *testing.T) {
	fx := createTestOrderService(t)
	vendorID := uuid.New()
	// Stored before the price cap existed.
	menu := &entity.Menu{ID: uuid.New(), VendorID: vendorID, Name: "Legacy", Price: math.MaxInt64/2 + 2, Quantity: 10}

	fx.repos.runTransactions(fx.txManager)
	fx.repos.vendor.EXPECT().FindByID(mock.Anything, vendorID).Return(&entity.Vendor{ID: vendorID}, nil)
	fx.repos.menu.EXPECT().FindByVendorAndIDsForUpdate(mock.Anything, vendorID, []uuid.UUID{menu.ID}).
		Return([]*entity.Menu{menu}, nil)

	order, err := fx.service.CreateOrder(context.Background(), uuid.New(), &usecase.CreateOrderInput{
		VendorID: vendorID,
		Items:    []usecase.OrderItemInput{{MenuID: menu.ID, Quantity: 4}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.repos.menu.AssertNotCalled(t, "AdjustQuantity", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderService_CancelOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	customerID, vendorID, menuID := uuid.New(), uuid.New(), uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		VendorID:   vendorID,
		Status:     entity.OrderStatusPending,
		Items:      []entity.OrderItem{{MenuID: menuID, Quantity: 2}},
	}

	fx.repos.runTransactions(fx.txManager)
	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.order.EXPECT().Update(ctx, order).Return(nil)
	fx.repos.menu.EXPECT().AdjustQuantity(ctx, menuID, 2).Return(nil)
	fx.repos.vendor.EXPECT().FindByID(ctx, vendorID).Return(&entity.Vendor{ID: vendorID, BusinessName: "Mama Put"}, nil)
	fx.repos.notification.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, "Your order from Mama Put was cancelled", notification.Message)
			assert.Equal(t, entity.MessageStatusUnread, notification.Status)
			notification.ID = uuid.New()
		}).
		Return(nil)
	fx.metrics.EXPECT().OrderStatusChanged(entity.OrderStatusPending, entity.OrderStatusCancelled).Return()
	fx.expectInvalidate(vendorID)
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.AnythingOfType("*service.NotificationEvent")).
		Run(func(_ context.Context, event *service.NotificationEvent) {
			assert.Equal(t, service.EventKindOrderStatus, event.Kind)
			assert.Equal(t, "cancelled", event.OrderStatus)
			assert.Equal(t, customerID.String(), event.CustomerID)
		}).
		Return(nil)

	cancelled, err := fx.service.CancelOrder(ctx, customerID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
}

func TestOrderService_CancelOrder_NotPending(t *testing.T) {
	fx := createTestOrderService(t)
	customerID := uuid.New()
	order := &entity.Order{ID: uuid.New(), CustomerID: customerID, Status: entity.OrderStatusAccepted}

	fx.repos.runTransactions(fx.txManager)
	fx.repos.order.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(context.Background(), customerID, order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotCancellable)
}

func TestOrderService_CancelOrder_OtherCustomer(t *testing.T) {
	fx := createTestOrderService(t)
	order := &entity.Order{ID: uuid.New(), CustomerID: uuid.New(), Status: entity.OrderStatusPending}

	fx.repos.runTransactions(fx.txManager)
	fx.repos.order.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.CancelOrder(context.Background(), uuid.New(), order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	tests := []struct {
		name string
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{name: "skip from pending", from: entity.OrderStatusPending, to: entity.OrderStatusReady},
		{name: "skip from accepted", from: entity.OrderStatusAccepted, to: entity.OrderStatusReady},
		{name: "backwards", from: entity.OrderStatusReady, to: entity.OrderStatusAccepted},
		{name: "vendor cannot cancel", from: entity.OrderStatusPending, to: entity.OrderStatusCancelled},
		{name: "decline after accepting", from: entity.OrderStatusAccepted, to: entity.OrderStatusDeclined},
		{name: "out of delivered", from: entity.OrderStatusDelivered, to: entity.OrderStatusReady},
		{name: "out of declined", from: entity.OrderStatusDeclined, to: entity.OrderStatusAccepted},
		{name: "out of cancelled", from: entity.OrderStatusCancelled, to: entity.OrderStatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			vendorID := uuid.New()
			order := &entity.Order{ID: uuid.New(), VendorID: vendorID, Status: tt.from}

			fx.repos.runTransactions(fx.txManager)
			fx.repos.order.EXPECT().FindByIDForUpdate(mock.Anything, order.ID).Return(order, nil)

			_, err := fx.service.UpdateOrderStatus(context.Background(), vendorID, order.ID, tt.to)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
			assert.Equal(t, tt.from, order.Status)
		})
	}
}

func TestOrderService_UpdateOrderStatus_DeclineRestoresStock(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	vendorID, customerID := uuid.New(), uuid.New()
	riceID, goneID := uuid.New(), uuid.New()
	order := &entity.Order{
		ID:         uuid.New(),
		VendorID:   vendorID,
		CustomerID: customerID,
		Status:     entity.OrderStatusPending,
		Items:      []entity.OrderItem{{MenuID: riceID, Quantity: 3}, {MenuID: goneID, Quantity: 1}},
	}

	fx.repos.runTransactions(fx.txManager)
	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.order.EXPECT().Update(ctx, order).Return(nil)
	fx.repos.menu.EXPECT().AdjustQuantity(ctx, riceID, 3).Return(nil)
	fx.repos.menu.EXPECT().AdjustQuantity(ctx, goneID, 1).Return(repository.ErrMenuNotFound)
	fx.repos.vendor.EXPECT().FindByID(ctx, vendorID).Return(&entity.Vendor{ID: vendorID, BusinessName: "Mama Put"}, nil)
	fx.repos.notification.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, "Mama Put declined your order", notification.Message)
			assert.Equal(t, customerID, notification.CustomerID)
		}).
		Return(nil)
	fx.metrics.EXPECT().OrderStatusChanged(entity.OrderStatusPending, entity.OrderStatusDeclined).Return()
	fx.expectInvalidate(vendorID)
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	declined, err := fx.service.UpdateOrderStatus(ctx, vendorID, order.ID, entity.OrderStatusDeclined)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDeclined, declined.Status)
}

func TestOrderService_UpdateOrderStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), uuid.New(), uuid.New(), entity.OrderStatus("eaten"))

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_UpdateOrderStatus_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	vendorID := uuid.New()
	order := &entity.Order{ID: uuid.New(), VendorID: vendorID, CustomerID: uuid.New(), Status: entity.OrderStatusPending}

	fx.repos.runTransactions(fx.txManager)
	fx.repos.order.EXPECT().FindByIDForUpdate(ctx, order.ID).Return(order, nil)
	fx.repos.order.EXPECT().Update(ctx, order).Return(nil)
	fx.repos.vendor.EXPECT().FindByID(ctx, vendorID).Return(&entity.Vendor{ID: vendorID, BusinessName: "Mama Put"}, nil)
	fx.repos.notification.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, "Mama Put accepted your order", notification.Message)
		}).
		Return(nil)
	fx.metrics.EXPECT().OrderStatusChanged(entity.OrderStatusPending, entity.OrderStatusAccepted).Return()
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	updated, err := fx.service.UpdateOrderStatus(ctx, vendorID, order.ID, entity.OrderStatusAccepted)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusAccepted, updated.Status)
}

func TestOrderService_PayOrder(t *testing.T) {
	customerID := uuid.New()
	newOrder := func(status entity.OrderStatus) *entity.Order {
		return &entity.Order{
			ID:                uuid.New(),
			CustomerID:        customerID,
			Status:            status,
			AmountDue:         5000,
			AmountPaid:        1000,
			AmountOutstanding: 4000,
		}
	}

	tests := []struct {
		name    string
		order   *entity.Order
		amount  int64
		wantErr error
	}{
		{name: "partial payment", order: newOrder(entity.OrderStatusAccepted), amount: 1500},
		{name: "settles balance", order: newOrder(entity.OrderStatusDelivered), amount: 4000},
		{name: "more than outstanding", order: newOrder(entity.OrderStatusPending), amount: 4001, wantErr: domainerrors.ErrInvalidPaymentAmount},
		{name: "cancelled order", order: newOrder(entity.OrderStatusCancelled), amount: 100, wantErr: domainerrors.ErrOrderNotPayable},
		{name: "declined order", order: newOrder(entity.OrderStatusDeclined), amount: 100, wantErr: domainerrors.ErrOrderNotPayable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.repos.runTransactions(fx.txManager)
			fx.repos.order.EXPECT().FindByIDForUpdate(ctx, tt.order.ID).Return(tt.order, nil)
			if tt.wantErr == nil {
				fx.repos.order.EXPECT().Update(ctx, tt.order).Return(nil)
				fx.repos.order.EXPECT().CreatePayment(ctx, mock.AnythingOfType("*entity.Payment")).Return(nil)
				fx.metrics.EXPECT().PaymentRecorded(tt.amount).Return()
			}

			output, err := fx.service.PayOrder(ctx, customerID, tt.order.ID, &usecase.PayOrderInput{Amount: tt.amount, Reference: "TX-1"})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1000)+tt.amount, output.Order.AmountPaid)
			assert.Equal(t, output.Order.AmountDue-output.Order.AmountPaid, output.Order.AmountOutstanding)
			assert.Equal(t, tt.amount, output.Payment.Amount)
			assert.Equal(t, "TX-1", output.Payment.Reference)
		})
	}
}

func TestOrderService_PayOrder_NonPositiveAmount(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.PayOrder(context.Background(), uuid.New(), uuid.New(), &usecase.PayOrderInput{Amount: 0})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentAmount)
}

func TestOrderService_GetCustomerOrder_OtherCustomer(t *testing.T) {
	fx := createTestOrderService(t)
	order := &entity.Order{ID: uuid.New(), CustomerID: uuid.New()}

	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)

	_, err := fx.service.GetCustomerOrder(context.Background(), uuid.New(), order.ID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetVendorOrder_WithPayments(t *testing.T) {
	fx := createTestOrderService(t)
	vendorID := uuid.New()
	order := &entity.Order{ID: uuid.New(), VendorID: vendorID}
	payments := []*entity.Payment{{ID: uuid.New(), OrderID: order.ID, Amount: 200}}

	fx.orderRepo.EXPECT().FindByID(mock.Anything, order.ID).Return(order, nil)
	fx.orderRepo.EXPECT().ListPayments(mock.Anything, order.ID).Return(payments, nil)

	detail, err := fx.service.GetVendorOrder(context.Background(), vendorID, order.ID)

	require.NoError(t, err)
	assert.Equal(t, order, detail.Order)
	assert.Equal(t, payments, detail.Payments)
}

func TestOrderService_ListVendorOrders_RejectsUnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)
	status := entity.OrderStatus("lost")

	_, err := fx.service.ListVendorOrders(context.Background(), uuid.New(), repository.OrderFilter{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
