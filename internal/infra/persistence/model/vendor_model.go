package model

import (
	"time"

	"github.com/google/uuid"
)

// VendorModel is the GORM-specific struct for the 'vendors' table.
type VendorModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_vendors_phone_number"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Auth *AuthenticationModel `gorm:"foreignKey:AuthID"`
}

// TableName explicitly sets the table name for GORM.
func (VendorModel) TableName() string {
	return "vendors"
}
