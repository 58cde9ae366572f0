package service

import "foodmarket/internal/domain/entity"

// BusinessMetrics records marketplace activity.
type BusinessMetrics interface {
	OrderPlaced(amountDue int64)
	OrderStatusChanged(from, to entity.OrderStatus)
	PaymentRecorded(amount int64)
	NotificationDispatched(channel string, success bool)
}
