package repository

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMenuNotFound is returned when a menu is not found or is not owned by the given vendor.
var ErrMenuNotFound = errors.New("menu not found")

// MenuRepository defines the persistence operations for menus.
type MenuRepository interface {
	// Create persists a single menu.
	Create(ctx context.Context, menu *entity.Menu) error

	// CreateBatch persists several menus in one statement.
	CreateBatch(ctx context.Context, menus []*entity.Menu) error

	// FindByID retrieves a menu by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Menu, error)

	// FindByVendorAndIDsForUpdate row-locks and returns the menus of a vendor among ids.
	// Menus that do not exist or belong to another vendor are simply absent from the result.
	FindByVendorAndIDsForUpdate(ctx context.Context, vendorID uuid.UUID, ids []uuid.UUID) ([]*entity.Menu, error)

	// List retrieves every menu, newest first.
	List(ctx context.Context) ([]*entity.Menu, error)

	// ListByVendor retrieves the menus of one vendor, newest first.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Menu, error)

	// Update overwrites a menu owned by menu.VendorID.
	Update(ctx context.Context, menu *entity.Menu) error

	// Delete removes a menu owned by vendorID.
	Delete(ctx context.Context, vendorID, id uuid.UUID) error

	// AdjustQuantity adds delta (which may be negative) to the available portions.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error
}
