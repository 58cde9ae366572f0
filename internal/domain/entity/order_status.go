package entity

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusDeclined  OrderStatus = "declined"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderStatusRank orders statuses along the fulfilment path. Declined and cancelled
// share the rank right after pending since they can only be reached from it.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:   1,
	OrderStatusAccepted:  2,
	OrderStatusDeclined:  2,
	OrderStatusCancelled: 2,
	OrderStatusPreparing: 3,
	OrderStatusReady:     4,
	OrderStatusDelivered: 5,
}

// vendorTransitions lists the statuses a vendor may move an order to from each status.
var vendorTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusAccepted, OrderStatusDeclined},
	OrderStatusAccepted:  {OrderStatusPreparing},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusDelivered},
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]

	return ok
}

// Rank returns the position of the status in the lifecycle, 0 for unknown values.
func (s OrderStatus) Rank() int {
	return orderStatusRank[s]
}

// IsTerminal reports whether no further transition is possible.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusDeclined, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsVoid reports whether the order was called off and carries no revenue.
func (s OrderStatus) IsVoid() bool {
	return s == OrderStatusDeclined || s == OrderStatusCancelled
}

// CanVendorTransitionTo reports whether a vendor may move an order from s to next.
func (s OrderStatus) CanVendorTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	for _, allowed := range vendorTransitions[s] {
		if allowed == next {
			return next.Rank() > s.Rank()
		}
	}

	return false
}

// CanCustomerCancel reports whether the customer may still cancel the order.
func (s OrderStatus) CanCustomerCancel() bool {
	return s == OrderStatusPending
}

// AllOrderStatuses returns every status in lifecycle order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusAccepted,
		OrderStatusPreparing,
		OrderStatusReady,
		OrderStatusDelivered,
		OrderStatusDeclined,
		OrderStatusCancelled,
	}
}
