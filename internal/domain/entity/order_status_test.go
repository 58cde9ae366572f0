package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanVendorTransitionTo(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusPending, OrderStatusAccepted}:   true,
		{OrderStatusPending, OrderStatusDeclined}:   true,
		{OrderStatusAccepted, OrderStatusPreparing}: true,
		{OrderStatusPreparing, OrderStatusReady}:    true,
		{OrderStatusReady, OrderStatusDelivered}:    true,
	}

	statuses := append(AllOrderStatuses(), OrderStatus("unknown"))
	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, allowed[[2]OrderStatus{from, to}], from.CanVendorTransitionTo(to))
			})
		}
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	for _, status := range AllOrderStatuses() {
		terminal := status == OrderStatusDelivered || status == OrderStatusDeclined || status == OrderStatusCancelled
		assert.Equal(t, terminal, status.IsTerminal(), status)

		if terminal {
			for _, next := range AllOrderStatuses() {
				assert.False(t, status.CanVendorTransitionTo(next), "%s -> %s", status, next)
			}
			assert.False(t, status.CanCustomerCancel(), status)
		}
	}
}

func TestOrderStatus_CanCustomerCancel(t *testing.T) {
	for _, status := range AllOrderStatuses() {
		assert.Equal(t, status == OrderStatusPending, status.CanCustomerCancel(), status)
	}
}
