package usecase

import (
	"context"
	"io"

	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/service"

	"github.com/google/uuid"
)

// MenuInput is the full set of writable menu fields; updates replace every field.
type MenuInput struct {
	Name                  string
	Description           string
	Price                 int64
	Quantity              int
	IsRecurring           bool
	FrequencyOfRecurrence string
}

// ImportMenusOutput reports the menus created from a workbook and the rows that were skipped.
type ImportMenusOutput struct {
	Created []*entity.Menu
	Skipped []service.RowError
}

// MenuUsecase defines public menu reads and vendor-scoped menu management.
type MenuUsecase interface {
	ListAll(ctx context.Context) ([]*entity.Menu, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Menu, error)
	Get(ctx context.Context, menuID uuid.UUID) (*entity.Menu, error)

	ListOwn(ctx context.Context, vendorID uuid.UUID) ([]*entity.Menu, error)
	Create(ctx context.Context, vendorID uuid.UUID, input *MenuInput) (*entity.Menu, error)
	Update(ctx context.Context, vendorID, menuID uuid.UUID, input *MenuInput) (*entity.Menu, error)
	Delete(ctx context.Context, vendorID, menuID uuid.UUID) error

	// Import creates menus from an xlsx workbook in one transaction, skipping invalid rows.
	Import(ctx context.Context, vendorID uuid.UUID, workbook io.Reader) (*ImportMenusOutput, error)

	// MenuQRCode renders a PNG QR code of the vendor's public menu URL.
	MenuQRCode(ctx context.Context, vendorID uuid.UUID) ([]byte, error)
}
