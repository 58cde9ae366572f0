package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxMenuPrice bounds a menu price in minor units. Together with the stock limit it keeps
// order totals far away from int64 overflow.
const MaxMenuPrice int64 = 1_000_000_000_000

// Menu is a dish offered by a vendor. Price is expressed in minor currency units.
type Menu struct {
	ID                    uuid.UUID `json:"id"`
	VendorID              uuid.UUID `json:"vendor_id"`
	Name                  string    `json:"name"`
	Description           string    `json:"description"`
	Price                 int64     `json:"price"`
	Quantity              int       `json:"quantity"`
	IsRecurring           bool      `json:"is_recurring"`
	FrequencyOfRecurrence string    `json:"frequency_of_recurrence,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// HasStock reports whether quantity portions can still be ordered.
func (m *Menu) HasStock(quantity int) bool {
	return quantity > 0 && m.Quantity >= quantity
}
