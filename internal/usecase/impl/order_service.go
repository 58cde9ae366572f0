package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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

const (
	maxOrderDescriptionLength = 500
	maxPaymentReferenceLength = 100
)

// statusMessages are sent to the customer when the order reaches the status.
var statusMessages = map[entity.OrderStatus]string{
	entity.OrderStatusAccepted:  "%s accepted your order",
	entity.OrderStatusPreparing: "%s is preparing your order",
	entity.OrderStatusReady:     "Your order from %s is ready",
	entity.OrderStatusDelivered: "Your order from %s was delivered",
	entity.OrderStatusDeclined:  "%s declined your order",
	entity.OrderStatusCancelled: "Your order from %s was cancelled",
}

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	cache     service.MenuCache
	publisher service.EventPublisher
	metrics   service.BusinessMetrics
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Cache     service.MenuCache
	Publisher service.EventPublisher
	Metrics   service.BusinessMetrics
	Logger    *slog.Logger
}

// NewOrderService creates the order lifecycle usecase.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		cache:     params.Cache,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices the requested items from the vendor's menus and reserves their stock.
func (srv *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	quantities, menuIDs, err := mergeOrderItems(input.Items)
	if err != nil {
		return nil, err
	}
	description := strings.TrimSpace(input.Description)
	if len(description) > maxOrderDescriptionLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("description must be at most 500 characters")
	}

	order := &entity.Order{
		CustomerID:  customerID,
		VendorID:    input.VendorID,
		Description: description,
		Status:      entity.OrderStatusPending,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.VendorRepo().FindByID(ctx, input.VendorID); err != nil {
			return err
		}

		menus, err := repoFactory.MenuRepo().FindByVendorAndIDsForUpdate(ctx, input.VendorID, menuIDs)
		if err != nil {
			return errors.Wrap(err, "failed to lock menus")
		}
		if len(menus) != len(menuIDs) {
			return domainerrors.ErrMenuNotOffered.WrapMessage("order references menus outside the vendor's catalogue")
		}

		byID := make(map[uuid.UUID]*entity.Menu, len(menus))
		for _, menu := range menus {
			byID[menu.ID] = menu
		}

		order.Items = make([]entity.OrderItem, 0, len(menuIDs))
		for _, menuID := range menuIDs {
			menu := byID[menuID]
			quantity := quantities[menuID]
			if !menu.HasStock(quantity) {
				return domainerrors.ErrInsufficientStock.WithDetails(menu.Name)
			}
			item, err := entity.NewOrderItem(menu, quantity)
			if err != nil {
				return amountError(err)
			}
			if err := repoFactory.MenuRepo().AdjustQuantity(ctx, menuID, -quantity); err != nil {
				return err
			}
			order.Items = append(order.Items, item)
		}
		if err := order.Recalculate(); err != nil {
			return amountError(err)
		}

		return repoFactory.OrderRepo().Create(ctx, order)
	})
	if err != nil {
		srv.log(ctx).Warn("Order creation failed", slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, translateError(err, "failed to create order")
	}

	srv.metrics.OrderPlaced(order.AmountDue)
	srv.invalidateMenus(ctx, order.VendorID)
	srv.log(ctx).Info("Order created",
		slog.Any("orderID", order.ID),
		slog.Any("vendorID", order.VendorID),
		slog.Int64("amountDue", order.AmountDue),
	)

	return order, nil
}

func amountError(err error) error {
	if errors.Is(err, entity.ErrAmountOverflow) {
		return domainerrors.ErrValidationFailed.WithDetails("order total is too large")
	}

	return err
}

// mergeOrderItems folds duplicate menu ids together, keeping the first-seen order.
func mergeOrderItems(items []usecase.OrderItemInput) (map[uuid.UUID]int, []uuid.UUID, error) {
	if len(items) == 0 {
		return nil, nil, domainerrors.ErrOrderEmpty
	}

	quantities := make(map[uuid.UUID]int, len(items))
	menuIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails("item quantity must be at least 1")
		}
		if _, seen := quantities[item.MenuID]; !seen {
			menuIDs = append(menuIDs, item.MenuID)
		}
		quantities[item.MenuID] += item.Quantity
	}

	return quantities, menuIDs, nil
}

func (srv *orderService) ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, translateError(err, "failed to list customer orders")
	}

	return orders, nil
}

func (srv *orderService) GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*usecase.OrderDetail, error) {
	return srv.orderDetail(ctx, orderID, func(order *entity.Order) bool {
		return order.CustomerID == customerID
	})
}

func (srv *orderService) ListVendorOrders(ctx context.Context, vendorID uuid.UUID, filter repository.OrderFilter) ([]*entity.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", *filter.Status))
	}

	orders, err := srv.orderRepo.ListByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, translateError(err, "failed to list vendor orders")
	}

	return orders, nil
}

func (srv *orderService) GetVendorOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*usecase.OrderDetail, error) {
	return srv.orderDetail(ctx, orderID, func(order *entity.Order) bool {
		return order.VendorID == vendorID
	})
}

// orderDetail loads an order with its payments. Orders the caller does not own read as not found.
func (srv *orderService) orderDetail(ctx context.Context, orderID uuid.UUID, owns func(*entity.Order) bool) (*usecase.OrderDetail, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, translateError(err, "failed to find order")
	}
	if !owns(order) {
		return nil, domainerrors.ErrOrderNotFound.WrapMessage("order belongs to another party")
	}

	payments, err := srv.orderRepo.ListPayments(ctx, orderID)
	if err != nil {
		return nil, translateError(err, "failed to list payments")
	}

	return &usecase.OrderDetail{Order: order, Payments: payments}, nil
}

// CancelOrder lets the customer withdraw a pending order and returns the reserved stock.
func (srv *orderService) CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error) {
	return srv.changeStatus(ctx, orderID, entity.OrderStatusCancelled, func(order *entity.Order) error {
		if order.CustomerID != customerID {
			return repository.ErrOrderNotFound
		}
		if !order.Status.CanCustomerCancel() {
			return domainerrors.ErrOrderNotCancellable.WithDetails(fmt.Sprintf("order is %s", order.Status))
		}

		return nil
	})
}

// UpdateOrderStatus moves a vendor's order one step along the status graph.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, vendorID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown order status %q", status))
	}

	return srv.changeStatus(ctx, orderID, status, func(order *entity.Order) error {
		if order.VendorID != vendorID {
			return repository.ErrOrderNotFound
		}
		if !order.Status.CanVendorTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("%s -> %s", order.Status, status))
		}

		return nil
	})
}

// changeStatus applies a checked transition, restores stock for void outcomes and notifies the customer.
func (srv *orderService) changeStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus, check func(*entity.Order) error) (*entity.Order, error) {
	var (
		order        *entity.Order
		previous     entity.OrderStatus
		notification *entity.Notification
		vendorName   string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if err := check(order); err != nil {
			return err
		}

		previous = order.Status
		order.Status = next
		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return err
		}

		if next.IsVoid() {
			if err := restoreStock(ctx, repoFactory.MenuRepo(), order.Items); err != nil {
				return err
			}
		}

		vendor, err := repoFactory.VendorRepo().FindByID(ctx, order.VendorID)
		if err != nil {
			return err
		}
		vendorName = vendor.BusinessName

		notification = &entity.Notification{
			VendorID:   order.VendorID,
			CustomerID: order.CustomerID,
			OrderID:    order.ID,
			Message:    fmt.Sprintf(statusMessages[next], vendorName),
			Status:     entity.MessageStatusUnread,
		}

		return repoFactory.NotificationRepo().Create(ctx, notification)
	})
	if err != nil {
		srv.log(ctx).Warn("Order status change failed",
			slog.Any("orderID", orderID),
			slog.String("status", next.String()),
			slog.Any("error", err),
		)

		return nil, translateError(err, "failed to change order status")
	}

	srv.metrics.OrderStatusChanged(previous, next)
	if next.IsVoid() {
		srv.invalidateMenus(ctx, order.VendorID)
	}
	publishNotification(ctx, srv.publisher, srv.log(ctx), service.EventKindOrderStatus, notification, vendorName, next)

	srv.log(ctx).Info("Order status changed",
		slog.Any("orderID", order.ID),
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)

	return order, nil
}

// restoreStock returns reserved portions. Menus deleted since the order was placed are skipped.
func restoreStock(ctx context.Context, menuRepo repository.MenuRepository, items []entity.OrderItem) error {
	for _, item := range items {
		err := menuRepo.AdjustQuantity(ctx, item.MenuID, item.Quantity)
		if err != nil && !errors.Is(err, repository.ErrMenuNotFound) {
			return errors.Wrapf(err, "failed to restore stock for menu %s", item.MenuID)
		}
	}

	return nil
}

// PayOrder records a (partial) payment against the customer's order.
func (srv *orderService) PayOrder(ctx context.Context, customerID, orderID uuid.UUID, input *usecase.PayOrderInput) (*usecase.PaymentOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.ErrInvalidPaymentAmount.WithDetails("amount must be positive")
	}
	reference := strings.TrimSpace(input.Reference)
	if len(reference) > maxPaymentReferenceLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reference must be at most 100 characters")
	}

	output := &usecase.PaymentOutput{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		order, err := repoFactory.OrderRepo().FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order.CustomerID != customerID {
			return repository.ErrOrderNotFound
		}
		if order.Status.IsVoid() {
			return domainerrors.ErrOrderNotPayable.WithDetails(fmt.Sprintf("order is %s", order.Status))
		}
		if input.Amount > order.AmountOutstanding {
			return domainerrors.ErrInvalidPaymentAmount.WithDetails(fmt.Sprintf("outstanding balance is %d", order.AmountOutstanding))
		}

		order.ApplyPayment(input.Amount)
		if err := repoFactory.OrderRepo().Update(ctx, order); err != nil {
			return err
		}

		payment := &entity.Payment{
			OrderID:    order.ID,
			CustomerID: customerID,
			Amount:     input.Amount,
			Reference:  reference,
		}
		if err := repoFactory.OrderRepo().CreatePayment(ctx, payment); err != nil {
			return err
		}

		output.Order = order
		output.Payment = payment

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Payment failed", slog.Any("orderID", orderID), slog.Any("error", err))

		return nil, translateError(err, "failed to record payment")
	}

	srv.metrics.PaymentRecorded(input.Amount)
	srv.log(ctx).Info("Payment recorded",
		slog.Any("orderID", orderID),
		slog.Int64("amount", input.Amount),
		slog.Bool("fullyPaid", output.Order.IsFullyPaid()),
	)

	return output, nil
}

func (srv *orderService) invalidateMenus(ctx context.Context, vendorID uuid.UUID) {
	if err := srv.cache.Invalidate(ctx, service.MenuScopeAll, service.MenuScopeVendor(vendorID)); err != nil {
		srv.log(ctx).Warn("Menu cache invalidation failed", slog.Any("vendorID", vendorID), slog.Any("error", err))
	}
}
