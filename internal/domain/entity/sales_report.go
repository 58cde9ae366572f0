package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailySalesReport summarizes one vendor's orders for a single business day.
// Money totals exclude declined and cancelled orders.
type DailySalesReport struct {
	VendorID          uuid.UUID           `json:"vendor_id"`
	Date              string              `json:"date"`
	From              time.Time           `json:"from"`
	To                time.Time           `json:"to"`
	OrderCount        int                 `json:"order_count"`
	StatusCounts      map[OrderStatus]int `json:"status_counts"`
	AmountDue         int64               `json:"amount_due"`
	AmountPaid        int64               `json:"amount_paid"`
	AmountOutstanding int64               `json:"amount_outstanding"`
	Items             []ItemSales         `json:"items"`
}

// ItemSales is the per-menu breakdown of a sales report.
type ItemSales struct {
	MenuID   uuid.UUID `json:"menu_id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Revenue  int64     `json:"revenue"`
}
