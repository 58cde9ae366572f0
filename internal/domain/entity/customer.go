package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is an end user who places orders against a vendor's menu.
type Customer struct {
	ID          uuid.UUID `json:"id"`
	AuthID      uuid.UUID `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FullName joins the first and last name.
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}

	return c.FirstName + " " + c.LastName
}
