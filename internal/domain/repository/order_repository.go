package repository

import (
	"context"
	"time"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows vendor order listings.
type OrderFilter struct {
	Status *entity.OrderStatus
}

// OrderRepository defines the persistence operations for orders and their payments.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate row-locks the order for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID, filter OrderFilter) ([]*entity.Order, error)

	// ListByVendorCreatedBetween returns the vendor's orders created in [from, to).
	ListByVendorCreatedBetween(ctx context.Context, vendorID uuid.UUID, from, to time.Time) ([]*entity.Order, error)

	// Update saves status and amounts of an existing order.
	Update(ctx context.Context, order *entity.Order) error

	CreatePayment(ctx context.Context, payment *entity.Payment) error
	ListPayments(ctx context.Context, orderID uuid.UUID) ([]*entity.Payment, error)
}
