package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerDeviceModel is the GORM-specific struct for the 'customer_devices' table.
// It represents a customer's device registered for push notifications.
type CustomerDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_customer_devices_client,priority:1"`
	FCMToken   string    `gorm:"type:varchar(255);not null"`
	DeviceID   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_customer_devices_client,priority:2"`
	Platform   string    `gorm:"type:varchar(50);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerDeviceModel) TableName() string {
	return "customer_devices"
}
