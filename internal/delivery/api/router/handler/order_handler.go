package handler

import (
	"log/slog"
	"net/http"

	"foodmarket/internal/delivery/api/response"
	"foodmarket/internal/domain/entity"
	"foodmarket/internal/domain/repository"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves both the customer and the vendor side of orders.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type OrderItemRequest struct {
	MenuID   uuid.UUID `json:"menu_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"gte=1"`
}

type CreateOrderRequest struct {
	VendorID    uuid.UUID          `json:"vendor_id" validate:"required"`
	Description string             `json:"description" validate:"max=500"`
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

type PayOrderRequest struct {
	Amount    int64  `json:"amount" validate:"gt=0"`
	Reference string `json:"reference" validate:"max=100"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type OrderDetailResponse struct {
	*entity.Order
	Payments []*entity.Payment `json:"payments"`
}

func detailResponse(detail *usecase.OrderDetail) OrderDetailResponse {
	payments := detail.Payments
	if payments == nil {
		payments = []*entity.Payment{}
	}

	return OrderDetailResponse{Order: detail.Order, Payments: payments}
}

// CreateOrder handles POST /auth/customer/order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bindAndValidate(c, &req, "order"); err != nil {
		return err
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{MenuID: item.MenuID, Quantity: item.Quantity})
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), customerID, &usecase.CreateOrderInput{
		VendorID:    req.VendorID,
		Description: req.Description,
		Items:       items,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// ListCustomerOrders handles GET /auth/customer/order
func (h *OrderHandler) ListCustomerOrders(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListCustomerOrders(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, orders)
}

// GetCustomerOrder handles GET /auth/customer/order/:id
func (h *OrderHandler) GetCustomerOrder(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id", "order")
	if err != nil {
		return err
	}

	detail, err := h.orderUC.GetCustomerOrder(c.Request().Context(), customerID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detailResponse(detail))
}

// CancelOrder handles DELETE /auth/customer/order/:id
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id", "order")
	if err != nil {
		return err
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), customerID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PayOrder handles PATCH /auth/customer/order/payment/:id
func (h *OrderHandler) PayOrder(c echo.Context) error {
	customerID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id", "order")
	if err != nil {
		return err
	}

	var req PayOrderRequest
	if err := bindAndValidate(c, &req, "payment"); err != nil {
		return err
	}

	output, err := h.orderUC.PayOrder(c.Request().Context(), customerID, orderID, &usecase.PayOrderInput{
		Amount:    req.Amount,
		Reference: req.Reference,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"order":   output.Order,
		"payment": output.Payment,
	})
}

// ListVendorOrders handles GET /auth/vendor/order with an optional ?status= filter.
func (h *OrderHandler) ListVendorOrders(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}

	var filter repository.OrderFilter
	if raw := c.QueryParam("status"); raw != "" {
		status := entity.OrderStatus(raw)
		filter.Status = &status
	}

	orders, err := h.orderUC.ListVendorOrders(c.Request().Context(), vendorID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, orders)
}

// GetVendorOrder handles GET /auth/vendor/order/:id
func (h *OrderHandler) GetVendorOrder(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id", "order")
	if err != nil {
		return err
	}

	detail, err := h.orderUC.GetVendorOrder(c.Request().Context(), vendorID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detailResponse(detail))
}

// UpdateOrderStatus handles PATCH /auth/vendor/order/:id
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	vendorID, err := callerID(c)
	if err != nil {
		return err
	}
	orderID, err := pathID(c, "id", "order")
	if err != nil {
		return err
	}

	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req, "status"); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), vendorID, orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
