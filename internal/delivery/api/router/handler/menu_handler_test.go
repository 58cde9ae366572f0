package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodmarket/internal/delivery/api/response"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/service"
	mockUC "foodmarket/internal/mocks/usecase"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMenuEcho(t *testing.T, vendorID uuid.UUID) (*mockUC.MockMenuUsecase, *echo.Echo) {
	menuUC := mockUC.NewMockMenuUsecase(t)
	h := NewMenuHandler(MenuHandlerParams{MenuUC: menuUC, Logger: discardLogger()})

	e := newTestEcho()
	e.GET("/menu", h.ListAll)
	e.GET("/vendor/:id/menu/qr", h.QRCode)
	g := e.Group("/auth/vendor", as(vendorID, entity.RoleVendor))
	g.POST("/menu", h.Create)
	g.PUT("/menu/:id", h.Update)
	g.DELETE("/menu/:id", h.Delete)
	g.POST("/menu/import", h.Import)

	return menuUC, e
}

func TestMenuHandler_ListAll(t *testing.T) {
	menuUC, e := newMenuEcho(t, uuid.New())
	menuUC.EXPECT().ListAll(mock.Anything).Return([]*entity.Menu{{ID: uuid.New(), Name: "Jollof rice", Price: 1500}}, nil)

	rec := doRequest(e, http.MethodGet, "/menu", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []entity.Menu
	decodeData(t, rec, &out)
	require.Len(t, out, 1)
	assert.Equal(t, "Jollof rice", out[0].Name)
}

func TestMenuHandler_Create(t *testing.T) {
	vendorID := uuid.New()
	menuUC, e := newMenuEcho(t, vendorID)

	menuUC.EXPECT().
		Create(mock.Anything, vendorID, &usecase.MenuInput{
			Name:                  "Egusi soup",
			Price:                 2500,
			Quantity:              10,
			IsRecurring:           true,
			FrequencyOfRecurrence: "weekly",
		}).
		Return(&entity.Menu{ID: uuid.New(), VendorID: vendorID, Name: "Egusi soup"}, nil)

	rec := doRequest(e, http.MethodPost, "/auth/vendor/menu",
		`{"name":"Egusi soup","price":2500,"quantity":10,"is_recurring":true,"frequency_of_recurrence":"weekly"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(e, http.MethodPost, "/auth/vendor/menu", `{"name":"Egusi soup","price":0}`)
	env := requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
	assert.Contains(t, env.Error.Details, "price must be greater than 0")
}

func TestMenuHandler_UpdateAndDelete(t *testing.T) {
	vendorID := uuid.New()
	menuUC, e := newMenuEcho(t, vendorID)

	menuID := uuid.New()
	menuUC.EXPECT().Update(mock.Anything, vendorID, menuID, mock.Anything).Return(nil, domainerrors.ErrMenuNotFound)
	menuUC.EXPECT().Delete(mock.Anything, vendorID, menuID).Return(nil)

	rec := doRequest(e, http.MethodPut, "/auth/vendor/menu/"+menuID.String(), `{"name":"Suya","price":800,"quantity":5}`)
	requireErrorCode(t, rec, http.StatusNotFound, "MENU_NOT_FOUND")

	rec = doRequest(e, http.MethodDelete, "/auth/vendor/menu/"+menuID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMenuHandler_QRCode(t *testing.T) {
	menuUC, e := newMenuEcho(t, uuid.New())

	vendorID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	menuUC.EXPECT().MenuQRCode(mock.Anything, vendorID).Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/vendor/"+vendorID.String()+"/menu/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.ContentTypePNG, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestMenuHandler_Import(t *testing.T) {
	vendorID := uuid.New()
	menuUC, e := newMenuEcho(t, vendorID)

	workbook := []byte("fake workbook bytes")
	menuUC.EXPECT().
		Import(mock.Anything, vendorID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, r io.Reader) (*usecase.ImportMenusOutput, error) {
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, workbook, got)

			return &usecase.ImportMenusOutput{
				Created: []*entity.Menu{{ID: uuid.New(), Name: "Puff puff"}},
				Skipped: []service.RowError{{Row: 3, Reason: "price must be positive"}},
			}, nil
		})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "menus.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/auth/vendor/menu/import", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out ImportMenusResponse
	decodeData(t, rec, &out)
	require.Len(t, out.Created, 1)
	require.Len(t, out.Skipped, 1)
	assert.Equal(t, 3, out.Skipped[0].Row)
}

func TestMenuHandler_ImportWithoutFile(t *testing.T) {
	_, e := newMenuEcho(t, uuid.New())

	rec := doRequest(e, http.MethodPost, "/auth/vendor/menu/import", `{}`)

	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}
