package usecase

import (
	"context"

	"foodmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportUsecase defines vendor sales reporting.
type ReportUsecase interface {
	// DailySales aggregates the vendor's orders created on date (YYYY-MM-DD, empty for today)
	// in the configured business timezone.
	DailySales(ctx context.Context, vendorID uuid.UUID, date string) (*entity.DailySalesReport, error)

	// DailySalesXLSX renders DailySales as an Excel workbook.
	DailySalesXLSX(ctx context.Context, vendorID uuid.UUID, date string) ([]byte, error)
}
