package service

import (
	"context"
	"time"
)

// Notification event kinds
const (
	EventKindVendorMessage = "vendor_message"
	EventKindOrderStatus   = "order_status"
)

// NotificationEvent is published after a notification is stored, for asynchronous delivery by the worker.
type NotificationEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	Kind           string    `json:"kind"`
	NotificationID string    `json:"notification_id"`
	VendorID       string    `json:"vendor_id"`
	VendorName     string    `json:"vendor_name"`
	CustomerID     string    `json:"customer_id"`
	OrderID        string    `json:"order_id"`
	OrderStatus    string    `json:"order_status,omitempty"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
