// Package report reads and writes Excel workbooks for menu imports and sales exports.
package report

import (
	"io"
	"strconv"
	"strings"

	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	itemsSheet   = "Items"

	maxNameLength = 100
)

// Import columns, matched case-insensitively against the header row.
const (
	columnName        = "name"
	columnDescription = "description"
	columnPrice       = "price"
	columnQuantity    = "quantity"
	columnRecurring   = "is recurring"
	columnFrequency   = "frequency"
)

var headerAliases = map[string]string{
	"name":                    columnName,
	"description":             columnDescription,
	"price":                   columnPrice,
	"quantity":                columnQuantity,
	"is recurring":            columnRecurring,
	"is_recurring":            columnRecurring,
	"recurring":               columnRecurring,
	"frequency":               columnFrequency,
	"frequency of recurrence": columnFrequency,
	"frequency_of_recurrence": columnFrequency,
}

type excelSpreadsheet struct{}

// NewExcelSpreadsheet creates the excelize backed workbook codec.
func NewExcelSpreadsheet() service.Spreadsheet {
	return &excelSpreadsheet{}
}

func (s *excelSpreadsheet) ParseMenus(r io.Reader) ([]service.MenuRow, []service.RowError, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open workbook")
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, errors.New("workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read sheet %s", sheets[0])
	}
	if len(rows) < 2 {
		return nil, nil, errors.New("workbook must have a header row and at least one data row")
	}

	columns, err := mapHeader(rows[0])
	if err != nil {
		return nil, nil, err
	}

	var (
		menus   []service.MenuRow
		invalid []service.RowError
	)
	for idx, cells := range rows[1:] {
		rowNumber := idx + 2
		if isBlank(cells) {
			continue
		}

		menu, reason := parseMenuRow(rowNumber, cells, columns)
		if reason != "" {
			invalid = append(invalid, service.RowError{Row: rowNumber, Reason: reason})

			continue
		}
		menus = append(menus, menu)
	}

	return menus, invalid, nil
}

func mapHeader(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for idx, title := range header {
		key := strings.ToLower(strings.TrimSpace(title))
		if column, ok := headerAliases[key]; ok {
			columns[column] = idx
		}
	}

	for _, required := range []string{columnName, columnPrice, columnQuantity} {
		if _, ok := columns[required]; !ok {
			return nil, errors.Errorf("missing required column %q", required)
		}
	}

	return columns, nil
}

func parseMenuRow(rowNumber int, cells []string, columns map[string]int) (service.MenuRow, string) {
	cell := func(column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(cells) {
			return ""
		}

		return strings.TrimSpace(cells[idx])
	}

	menu := service.MenuRow{
		Row:                   rowNumber,
		Name:                  cell(columnName),
		Description:           cell(columnDescription),
		FrequencyOfRecurrence: cell(columnFrequency),
	}

	if menu.Name == "" {
		return menu, "name is required"
	}
	if len(menu.Name) > maxNameLength {
		return menu, "name must be at most " + strconv.Itoa(maxNameLength) + " characters"
	}

	price, err := strconv.ParseInt(cell(columnPrice), 10, 64)
	if err != nil || price <= 0 {
		return menu, "price must be a positive whole number of minor units"
	}
	menu.Price = price

	quantity, err := strconv.Atoi(cell(columnQuantity))
	if err != nil || quantity < 0 {
		return menu, "quantity must be a non-negative whole number"
	}
	menu.Quantity = quantity

	if raw := cell(columnRecurring); raw != "" {
		recurring, ok := parseYesNo(raw)
		if !ok {
			return menu, "is recurring must be yes/no or true/false"
		}
		menu.IsRecurring = recurring
	}
	if !menu.IsRecurring {
		menu.FrequencyOfRecurrence = ""
	}

	return menu, ""
}

func parseYesNo(raw string) (bool, bool) {
	switch strings.ToLower(raw) {
	case "yes", "y", "true", "1":
		return true, true
	case "no", "n", "false", "0":
		return false, true
	default:
		return false, false
	}
}

func isBlank(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func (s *excelSpreadsheet) RenderDailySales(report *entity.DailySalesReport) ([]byte, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName(workbook.GetSheetName(0), summarySheet); err != nil {
		return nil, errors.WithStack(err)
	}

	summary := [][]any{
		{"Vendor", report.VendorID.String()},
		{"Date", report.Date},
		{"Orders", report.OrderCount},
		{"Amount due", report.AmountDue},
		{"Amount paid", report.AmountPaid},
		{"Amount outstanding", report.AmountOutstanding},
	}
	for _, status := range entity.AllOrderStatuses() {
		summary = append(summary, []any{"Status " + status.String(), report.StatusCounts[status]})
	}
	if err := writeRows(workbook, summarySheet, summary); err != nil {
		return nil, err
	}

	if _, err := workbook.NewSheet(itemsSheet); err != nil {
		return nil, errors.WithStack(err)
	}
	items := [][]any{{"Menu ID", "Name", "Quantity", "Revenue"}}
	for _, item := range report.Items {
		items = append(items, []any{item.MenuID.String(), item.Name, item.Quantity, item.Revenue})
	}
	if err := writeRows(workbook, itemsSheet, items); err != nil {
		return nil, err
	}

	if err := styleHeaders(workbook); err != nil {
		return nil, err
	}

	buffer, err := workbook.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to write workbook")
	}

	return buffer.Bytes(), nil
}

func writeRows(workbook *excelize.File, sheet string, rows [][]any) error {
	for idx, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+1)
		if err != nil {
			return errors.WithStack(err)
		}
		if err := workbook.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.Wrapf(err, "failed to write %s row %d", sheet, idx+1)
		}
	}

	return nil
}

func styleHeaders(workbook *excelize.File) error {
	bold, err := workbook.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.WithStack(err)
	}

	if err := workbook.SetCellStyle(itemsSheet, "A1", "D1", bold); err != nil {
		return errors.WithStack(err)
	}
	if err := workbook.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return errors.WithStack(err)
	}
	if err := workbook.SetColWidth(itemsSheet, "A", "B", 38); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
