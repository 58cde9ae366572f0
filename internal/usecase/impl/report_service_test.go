package impl

import (
	"context"
	"testing"
	"time"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	mockRepo "foodmarket/internal/mocks/repository"
	mockSvc "foodmarket/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestReportService(t *testing.T, location *time.Location) (*reportService, *mockRepo.MockOrderRepository, *mockSvc.MockSpreadsheet) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	sheet := mockSvc.NewMockSpreadsheet(t)

	srv := NewReportService(ReportServiceParams{
		OrderRepo:   orderRepo,
		Spreadsheet: sheet,
		Logger:      discardLogger(),
	}).(*reportService)
	srv.location = location
	srv.now = func() time.Time { return fixedNow }

	return srv, orderRepo, sheet
}

func TestReportService_DailySales_Aggregates(t *testing.T) {
	lagos, err := time.LoadLocation("Africa/Lagos")
	require.NoError(t, err)
	srv, orderRepo, _ := createTestReportService(t, lagos)
	vendorID := uuid.New()
	rice, stew := uuid.New(), uuid.New()
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, lagos)

	orders := []*entity.Order{
		{
			Status: entity.OrderStatusDelivered, AmountDue: 3000, AmountPaid: 3000,
			Items: []entity.OrderItem{{MenuID: rice, Name: "Rice", Quantity: 2, LineTotal: 3000}},
		},
		{
			Status: entity.OrderStatusPending, AmountDue: 2500, AmountPaid: 500, AmountOutstanding: 2000,
			Items: []entity.OrderItem{
				{MenuID: rice, Name: "Rice", Quantity: 1, LineTotal: 1500},
				{MenuID: stew, Name: "Stew", Quantity: 1, LineTotal: 1000},
			},
		},
		{
			Status: entity.OrderStatusCancelled, AmountDue: 9000, AmountOutstanding: 9000,
			Items: []entity.OrderItem{{MenuID: stew, Name: "Stew", Quantity: 9, LineTotal: 9000}},
		},
	}
	orderRepo.EXPECT().ListByVendorCreatedBetween(mock.Anything, vendorID, from, from.AddDate(0, 0, 1)).Return(orders, nil)

	report, err := srv.DailySales(context.Background(), vendorID, "2026-03-10")

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", report.Date)
	assert.Equal(t, 3, report.OrderCount)
	assert.Equal(t, 1, report.StatusCounts[entity.OrderStatusCancelled])
	assert.Equal(t, 0, report.StatusCounts[entity.OrderStatusDeclined])
	assert.Equal(t, int64(5500), report.AmountDue)
	assert.Equal(t, int64(3500), report.AmountPaid)
	assert.Equal(t, int64(2000), report.AmountOutstanding)
	assert.Equal(t, []entity.ItemSales{
		{MenuID: rice, Name: "Rice", Quantity: 3, Revenue: 4500},
		{MenuID: stew, Name: "Stew", Quantity: 1, Revenue: 1000},
	}, report.Items)
}

func TestReportService_DailySales_DefaultsToToday(t *testing.T) {
	srv, orderRepo, _ := createTestReportService(t, time.UTC)
	vendorID := uuid.New()
	today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	orderRepo.EXPECT().ListByVendorCreatedBetween(mock.Anything, vendorID, today, today.AddDate(0, 0, 1)).Return(nil, nil)

	report, err := srv.DailySales(context.Background(), vendorID, "")

	require.NoError(t, err)
	assert.Equal(t, "2026-03-14", report.Date)
	assert.Zero(t, report.OrderCount)
	assert.Empty(t, report.Items)
}

func TestReportService_DailySales_BadDate(t *testing.T) {
	srv, _, _ := createTestReportService(t, time.UTC)

	_, err := srv.DailySales(context.Background(), uuid.New(), "14/03/2026")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_DailySalesXLSX(t *testing.T) {
	srv, orderRepo, sheet := createTestReportService(t, time.UTC)
	vendorID := uuid.New()

	orderRepo.EXPECT().ListByVendorCreatedBetween(mock.Anything, vendorID, mock.Anything, mock.Anything).Return(nil, nil)
	sheet.EXPECT().
		RenderDailySales(mock.AnythingOfType("*entity.DailySalesReport")).
		Return([]byte("PK"), nil)

	workbook, err := srv.DailySalesXLSX(context.Background(), vendorID, "2026-03-14")

	require.NoError(t, err)
	assert.Equal(t, []byte("PK"), workbook)
}
