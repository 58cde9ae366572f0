package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderItemModel is one line of the 'orders.items' JSONB column.
type OrderItemModel struct {
	MenuID    uuid.UUID `json:"menu_id"`
	Name      string    `json:"name"`
	UnitPrice int64     `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal int64     `json:"line_total"`
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	VendorID          uuid.UUID        `gorm:"type:uuid;not null;index:idx_orders_vendor_created,priority:1"`
	Description       string           `gorm:"type:text"`
	Items             []OrderItemModel `gorm:"type:jsonb;serializer:json;not null"`
	AmountDue         int64            `gorm:"not null;check:amount_due >= 0"`
	AmountPaid        int64            `gorm:"not null;default:0;check:amount_paid >= 0"`
	AmountOutstanding int64            `gorm:"not null"`
	Status            string           `gorm:"type:varchar(20);not null;index"`
	CreatedAt         time.Time        `gorm:"index:idx_orders_vendor_created,priority:2"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// PaymentModel is the GORM-specific struct for the 'payments' table.
type PaymentModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null"`
	Amount     int64     `gorm:"not null;check:amount > 0"`
	Reference  string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
