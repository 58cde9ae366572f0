package usecase

import (
	"context"

	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/repository"

	"github.com/google/uuid"
)

// OrderItemInput references a menu and the number of portions wanted.
type OrderItemInput struct {
	MenuID   uuid.UUID
	Quantity int
}

// CreateOrderInput defines a customer's order against one vendor.
type CreateOrderInput struct {
	VendorID    uuid.UUID
	Description string
	Items       []OrderItemInput
}

// PayOrderInput defines a payment against an order, in minor currency units.
type PayOrderInput struct {
	Amount    int64
	Reference string
}

// OrderDetail is an order together with its payments.
type OrderDetail struct {
	Order    *entity.Order
	Payments []*entity.Payment
}

// PaymentOutput returns the recorded payment and the order with refreshed amounts.
type PaymentOutput struct {
	Order   *entity.Order
	Payment *entity.Payment
}

// OrderUsecase defines the order lifecycle for customers and vendors.
type OrderUsecase interface {
	// Customer side
	CreateOrder(ctx context.Context, customerID uuid.UUID, input *CreateOrderInput) (*entity.Order, error)
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*OrderDetail, error)
	CancelOrder(ctx context.Context, customerID, orderID uuid.UUID) (*entity.Order, error)
	PayOrder(ctx context.Context, customerID, orderID uuid.UUID, input *PayOrderInput) (*PaymentOutput, error)

	// Vendor side
	ListVendorOrders(ctx context.Context, vendorID uuid.UUID, filter repository.OrderFilter) ([]*entity.Order, error)
	GetVendorOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*OrderDetail, error)
	UpdateOrderStatus(ctx context.Context, vendorID, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
