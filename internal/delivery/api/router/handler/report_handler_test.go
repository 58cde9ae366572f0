package handler

import (
	"net/http"
	"testing"

	"foodmarket/internal/delivery/api/response"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	mockUC "foodmarket/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportEcho(t *testing.T, vendorID uuid.UUID) (*mockUC.MockReportUsecase, *echo.Echo) {
	reportUC := mockUC.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC, Logger: discardLogger()})

	e := newTestEcho()
	e.GET("/sales/daily", h.DailySales, as(vendorID, entity.RoleVendor))

	return reportUC, e
}

func TestReportHandler_DailySalesJSON(t *testing.T) {
	vendorID := uuid.New()
	reportUC, e := newReportEcho(t, vendorID)

	reportUC.EXPECT().DailySales(mock.Anything, vendorID, "2026-03-14").Return(&entity.DailySalesReport{
		VendorID:   vendorID,
		Date:       "2026-03-14",
		OrderCount: 4,
		AmountDue:  12000,
	}, nil)

	rec := doRequest(e, http.MethodGet, "/sales/daily?date=2026-03-14", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out entity.DailySalesReport
	decodeData(t, rec, &out)
	assert.Equal(t, 4, out.OrderCount)
	assert.Equal(t, int64(12000), out.AmountDue)
}

func TestReportHandler_DailySalesXLSX(t *testing.T) {
	vendorID := uuid.New()
	reportUC, e := newReportEcho(t, vendorID)

	workbook := []byte("PK\x03\x04")
	reportUC.EXPECT().DailySalesXLSX(mock.Anything, vendorID, "2026-03-14").Return(workbook, nil)

	rec := doRequest(e, http.MethodGet, "/sales/daily?date=2026-03-14&format=xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.ContentTypeXLSX, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="daily-sales-2026-03-14.xlsx"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, workbook, rec.Body.Bytes())
}

func TestReportHandler_Rejections(t *testing.T) {
	vendorID := uuid.New()
	reportUC, e := newReportEcho(t, vendorID)

	rec := doRequest(e, http.MethodGet, "/sales/daily?format=pdf", "")
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	reportUC.EXPECT().DailySales(mock.Anything, vendorID, "14/03/2026").
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD"))
	rec = doRequest(e, http.MethodGet, "/sales/daily?date=14/03/2026", "")
	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Equal(t, "date must be YYYY-MM-DD", env.Error.Details)
}
