package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a business that publishes menus and fulfills orders.
type Vendor struct {
	ID           uuid.UUID `json:"id"`
	AuthID       uuid.UUID `json:"-"`
	BusinessName string    `json:"business_name"`
	PhoneNumber  string    `json:"phone_number"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
