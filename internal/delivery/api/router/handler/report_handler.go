package handler

import (
	"log/slog"
	"net/http"

	"foodmarket/internal/delivery/api/response"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const formatXLSX = "xlsx"

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves vendor sales reports.
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// DailySales handles GET /auth/vendor/sales/daily?date=YYYY-MM-DD&format=json|xlsx
func (h *ReportHandler) DailySales(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	date := c.QueryParam("date")
	switch format := c.QueryParam("format"); format {
	case "", "json":
		report, err := h.reportUC.DailySales(c.Request().Context(), vendorID, date)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, report)
	case formatXLSX:
		workbook, err := h.reportUC.DailySalesXLSX(c.Request().Context(), vendorID, date)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		name := date
		if name == "" {
			name = "today"
		}

		return response.Attachment(c, response.ContentTypeXLSX, "daily-sales-"+name+".xlsx", workbook)
	default:
		return domainerrors.ErrValidationFailed.WithDetails("format must be json or xlsx")
	}
}
