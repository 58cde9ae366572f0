package entity

import (
	"math"
	"time"

	"foodmarket/internal/errors"

	"github.com/google/uuid"
)

// Order is a customer's purchase from one vendor. Amounts are in minor currency units.
type Order struct {
	ID                uuid.UUID   `json:"id"`
	CustomerID        uuid.UUID   `json:"customer_id"`
	VendorID          uuid.UUID   `json:"vendor_id"`
	Description       string      `json:"description"`
	Items             []OrderItem `json:"items"`
	AmountDue         int64       `json:"amount_due"`
	AmountPaid        int64       `json:"amount_paid"`
	AmountOutstanding int64       `json:"amount_outstanding"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a menu line at the time the order was placed.
type OrderItem struct {
	MenuID    uuid.UUID `json:"menu_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal int64     `json:"line_total"`
}

// Payment records money received against an order.
type Payment struct {
	ID         uuid.UUID `json:"id"`
	OrderID    uuid.UUID `json:"order_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     int64     `json:"amount"`
	Reference  string    `json:"reference,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ErrAmountOverflow is returned when an order total does not fit in int64 minor units.
var ErrAmountOverflow = errors.New("order amount overflows")

// NewOrderItem builds an item from a menu and computes its line total.
func NewOrderItem(menu *Menu, quantity int) (OrderItem, error) {
	if menu.Price < 0 || quantity < 0 {
		return OrderItem{}, errors.Errorf("negative price or quantity for menu %s", menu.ID)
	}
	if quantity > 0 && menu.Price > math.MaxInt64/int64(quantity) {
		return OrderItem{}, errors.Wrapf(ErrAmountOverflow, "menu %s x %d", menu.ID, quantity)
	}

	return OrderItem{
		MenuID:    menu.ID,
		Name:      menu.Name,
		UnitPrice: menu.Price,
		Quantity:  quantity,
		LineTotal: menu.Price * int64(quantity),
	}, nil
}

// Recalculate derives the amount due from the items and the outstanding balance from the payments.
func (o *Order) Recalculate() error {
	var due int64
	for _, item := range o.Items {
		if item.LineTotal < 0 || due > math.MaxInt64-item.LineTotal {
			return errors.Wrapf(ErrAmountOverflow, "summing line for menu %s", item.MenuID)
		}
		due += item.LineTotal
	}
	o.AmountDue = due
	o.AmountOutstanding = o.AmountDue - o.AmountPaid

	return nil
}

// ApplyPayment adds amount to the paid total and refreshes the outstanding balance.
func (o *Order) ApplyPayment(amount int64) {
	o.AmountPaid += amount
	o.AmountOutstanding = o.AmountDue - o.AmountPaid
}

// IsFullyPaid reports whether nothing is left to pay.
func (o *Order) IsFullyPaid() bool {
	return o.AmountOutstanding <= 0
}
