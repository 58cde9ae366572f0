package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus tracks whether the customer has seen a notification.
type MessageStatus string

const (
	MessageStatusUnread MessageStatus = "unread"
	MessageStatusRead   MessageStatus = "read"
)

// IsValid checks if the message status is a known value.
func (s MessageStatus) IsValid() bool {
	return s == MessageStatusUnread || s == MessageStatusRead
}

// Notification is a message from a vendor to a customer about an order.
type Notification struct {
	ID         uuid.UUID     `json:"id"`
	VendorID   uuid.UUID     `json:"vendor_id"`
	CustomerID uuid.UUID     `json:"customer_id"`
	OrderID    uuid.UUID     `json:"order_id"`
	Message    string        `json:"message"`
	Status     MessageStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	ReadAt     *time.Time    `json:"read_at,omitempty"`
}

// MarkRead flags the notification as read once; later calls keep the first read time.
func (n *Notification) MarkRead(at time.Time) bool {
	if n.Status == MessageStatusRead {
		return false
	}
	n.Status = MessageStatusRead
	n.ReadAt = &at

	return true
}
