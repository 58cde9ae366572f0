package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	FirstName   string    `gorm:"type:varchar(100);not null"`
	LastName    string    `gorm:"type:varchar(100)"`
	PhoneNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_customers_phone_number"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Auth *AuthenticationModel `gorm:"foreignKey:AuthID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
