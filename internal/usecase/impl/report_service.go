package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"foodmarket/config"
	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/errors"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const reportDateLayout = "2006-01-02"

type reportService struct {
	orderRepo repository.OrderRepository
	sheet     service.Spreadsheet
	location  *time.Location
	logger    *slog.Logger
	now       func() time.Time
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	Spreadsheet service.Spreadsheet
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReportService creates the sales report usecase.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	location := time.UTC
	if params.Config != nil {
		location = params.Config.Location()
	}

	return &reportService{
		orderRepo: params.OrderRepo,
		sheet:     params.Spreadsheet,
		location:  location,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DailySales aggregates the vendor's orders created during one local business day.
// An empty date means today.
func (srv *reportService) DailySales(ctx context.Context, vendorID uuid.UUID, date string) (*entity.DailySalesReport, error) {
	from, err := srv.dayStart(date)
	if err != nil {
		return nil, err
	}
	to := from.AddDate(0, 0, 1)

	orders, err := srv.orderRepo.ListByVendorCreatedBetween(ctx, vendorID, from, to)
	if err != nil {
		return nil, translateError(err, "failed to load orders for report")
	}

	report := buildDailySales(vendorID, from, to, orders)
	srv.log(ctx).Debug("Daily sales computed",
		slog.Any("vendorID", vendorID),
		slog.String("date", report.Date),
		slog.Int("orders", report.OrderCount),
	)

	return report, nil
}

func (srv *reportService) DailySalesXLSX(ctx context.Context, vendorID uuid.UUID, date string) ([]byte, error) {
	report, err := srv.DailySales(ctx, vendorID, date)
	if err != nil {
		return nil, err
	}

	workbook, err := srv.sheet.RenderDailySales(report)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render daily sales workbook")
	}

	return workbook, nil
}

func (srv *reportService) dayStart(date string) (time.Time, error) {
	if date == "" {
		now := srv.now().In(srv.location)

		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, srv.location), nil
	}

	day, err := time.ParseInLocation(reportDateLayout, date, srv.location)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("date must use the YYYY-MM-DD format")
	}

	return day, nil
}

// buildDailySales counts every order but only sums money over orders that were not voided.
func buildDailySales(vendorID uuid.UUID, from, to time.Time, orders []*entity.Order) *entity.DailySalesReport {
	report := &entity.DailySalesReport{
		VendorID:     vendorID,
		Date:         from.Format(reportDateLayout),
		From:         from,
		To:           to,
		OrderCount:   len(orders),
		StatusCounts: make(map[entity.OrderStatus]int, len(entity.AllOrderStatuses())),
		Items:        []entity.ItemSales{},
	}
	for _, status := range entity.AllOrderStatuses() {
		report.StatusCounts[status] = 0
	}

	items := make(map[uuid.UUID]*entity.ItemSales)
	for _, order := range orders {
		report.StatusCounts[order.Status]++
		if order.Status.IsVoid() {
			continue
		}

		report.AmountDue += order.AmountDue
		report.AmountPaid += order.AmountPaid
		report.AmountOutstanding += order.AmountOutstanding

		for _, item := range order.Items {
			sales, ok := items[item.MenuID]
			if !ok {
				sales = &entity.ItemSales{MenuID: item.MenuID, Name: item.Name}
				items[item.MenuID] = sales
			}
			sales.Quantity += item.Quantity
			sales.Revenue += item.LineTotal
		}
	}

	for _, sales := range items {
		report.Items = append(report.Items, *sales)
	}
	sort.Slice(report.Items, func(i, j int) bool {
		if report.Items[i].Revenue != report.Items[j].Revenue {
			return report.Items[i].Revenue > report.Items[j].Revenue
		}

		return report.Items[i].Name < report.Items[j].Name
	})

	return report
}
