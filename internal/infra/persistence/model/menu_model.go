package model

import (
	"time"

	"github.com/google/uuid"
)

// MenuModel is the GORM-specific struct for the 'menus' table.
// Price is kept in minor currency units; check constraints enforce price > 0 and quantity >= 0.
type MenuModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorID              uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                  string    `gorm:"type:varchar(255);not null"`
	Description           string    `gorm:"type:text"`
	Price                 int64     `gorm:"not null;check:price > 0"`
	Quantity              int       `gorm:"not null;default:0;check:quantity >= 0"`
	IsRecurring           bool      `gorm:"not null;default:false"`
	FrequencyOfRecurrence string    `gorm:"type:varchar(50)"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (MenuModel) TableName() string {
	return "menus"
}
