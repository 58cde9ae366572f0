package service

import (
	"io"

	"foodmarket/internal/domain/entity"
)

// MenuRow is one parsed line of a menu import workbook.
type MenuRow struct {
	Row                   int
	Name                  string
	Description           string
	Price                 int64
	Quantity              int
	IsRecurring           bool
	FrequencyOfRecurrence string
}

// RowError describes why a workbook line was skipped.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// Spreadsheet reads menu imports and renders reports as workbooks.
type Spreadsheet interface {
	// ParseMenus reads the first sheet; the first row is a header.
	ParseMenus(r io.Reader) ([]MenuRow, []RowError, error)

	// RenderDailySales writes a workbook with a summary sheet and an items sheet.
	RenderDailySales(report *entity.DailySalesReport) ([]byte, error)
}
