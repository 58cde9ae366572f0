package handler

import (
	"log/slog"
	"net/http"

	"foodmarket/internal/delivery/api/response"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// importFormField is the multipart field carrying the workbook.
const importFormField = "file"

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler serves the public menu catalogue and vendor menu management.
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// MenuRequest carries every writable menu field; PUT replaces the whole menu.
type MenuRequest struct {
	Name                  string `json:"name" validate:"required,max=100"`
	Description           string `json:"description" validate:"max=1000"`
	Price                 int64  `json:"price" validate:"gt=0"`
	Quantity              int    `json:"quantity" validate:"gte=0"`
	IsRecurring           bool   `json:"is_recurring"`
	FrequencyOfRecurrence string `json:"frequency_of_recurrence" validate:"max=50"`
}

func (r *MenuRequest) input() *usecase.MenuInput {
	return &usecase.MenuInput{
		Name:                  r.Name,
		Description:           r.Description,
		Price:                 r.Price,
		Quantity:              r.Quantity,
		IsRecurring:           r.IsRecurring,
		FrequencyOfRecurrence: r.FrequencyOfRecurrence,
	}
}

type ImportMenusResponse struct {
	Created []*entity.Menu     `json:"created"`
	Skipped []service.RowError `json:"skipped"`
}

// ListAll handles GET /menu
func (h *MenuHandler) ListAll(c echo.Context) error {
	menus, err := h.menuUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, menus)
}

// Get handles GET /menu/:id
func (h *MenuHandler) Get(c echo.Context) error {
	menuID, err := pathID(c, "id", "menu")
	if err != nil {
		return err
	}

	menu, err := h.menuUC.Get(c.Request().Context(), menuID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu)
}

// ListByVendor handles GET /vendor/:id/menu
func (h *MenuHandler) ListByVendor(c echo.Context) error {
	vendorID, err := pathID(c, "id", "vendor")
	if err != nil {
		return err
	}

	menus, err := h.menuUC.ListByVendor(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, menus)
}

// QRCode handles GET /vendor/:id/menu/qr and returns a PNG.
func (h *MenuHandler) QRCode(c echo.Context) error {
	vendorID, err := pathID(c, "id", "vendor")
	if err != nil {
		return err
	}

	png, err := h.menuUC.MenuQRCode(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, response.ContentTypePNG, png)
}

// ListOwn handles GET /auth/vendor/menu
func (h *MenuHandler) ListOwn(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	menus, err := h.menuUC.ListOwn(c.Request().Context(), vendorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, menus)
}

// Create handles POST /auth/vendor/menu
func (h *MenuHandler) Create(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	var req MenuRequest
	if err := bindAndValidate(c, &req, "menu"); err != nil {
		return err
	}

	menu, err := h.menuUC.Create(c.Request().Context(), vendorID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, menu)
}

// Update handles PUT /auth/vendor/menu/:id
func (h *MenuHandler) Update(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}
	menuID, err := pathID(c, "id", "menu")
	if err != nil {
		return err
	}

	var req MenuRequest
	if err := bindAndValidate(c, &req, "menu"); err != nil {
		return err
	}

	menu, err := h.menuUC.Update(c.Request().Context(), vendorID, menuID, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu)
}

// Delete handles DELETE /auth/vendor/menu/:id
func (h *MenuHandler) Delete(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}
	menuID, err := pathID(c, "id", "menu")
	if err != nil {
		return err
	}

	if err := h.menuUC.Delete(c.Request().Context(), vendorID, menuID); err != nil {
		return response.HandleAppError(c, err)
	}

	return message(c, "Menu deleted successfully")
}

// Import handles POST /auth/vendor/menu/import with a multipart xlsx upload.
func (h *MenuHandler) Import(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile(importFormField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("a workbook must be uploaded in the '" + importFormField + "' field")
	}
	file, err := header.Open()
	if err != nil {
		return domainerrors.ErrMenuImportInvalid.WithDetails(err.Error())
	}
	defer file.Close()

	output, err := h.menuUC.Import(c.Request().Context(), vendorID, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Menus imported",
		slog.String("vendor_id", vendorID.String()),
		slog.String("filename", header.Filename),
		slog.Int("created", len(output.Created)),
		slog.Int("skipped", len(output.Skipped)),
	)

	skipped := output.Skipped
	if skipped == nil {
		skipped = []service.RowError{}
	}

	return response.Success(c, http.StatusCreated, ImportMenusResponse{
		Created: output.Created,
		Skipped: skipped,
	})
}
