package handler

import (
	"net/http"
	"testing"

	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/repository"
	mockUC "foodmarket/internal/mocks/usecase"
	"foodmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderEcho(t *testing.T, userID uuid.UUID, role entity.Role) (*mockUC.MockOrderUsecase, *echo.Echo) {
	orderUC := mockUC.NewMockOrderUsecase(t)
	h := NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: discardLogger()})

	e := newTestEcho()
	g := e.Group("", as(userID, role))
	g.POST("/order", h.CreateOrder)
	g.GET("/order/:id", h.GetCustomerOrder)
	g.DELETE("/order/:id", h.CancelOrder)
	g.PATCH("/order/payment/:id", h.PayOrder)
	g.GET("/vendor/order", h.ListVendorOrders)
	g.PATCH("/vendor/order/:id", h.UpdateOrderStatus)

	return orderUC, e
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	customerID := uuid.New()
	orderUC, e := newOrderEcho(t, customerID, entity.RoleCustomer)

	vendorID := uuid.New()
	jollof := uuid.New()
	order := &entity.Order{ID: uuid.New(), CustomerID: customerID, VendorID: vendorID, Status: entity.OrderStatusPending, AmountDue: 3000}
	orderUC.EXPECT().
		CreateOrder(mock.Anything, customerID, &usecase.CreateOrderInput{
			VendorID:    vendorID,
			Description: "no pepper",
			Items:       []usecase.OrderItemInput{{MenuID: jollof, Quantity: 2}},
		}).
		Return(order, nil)

	body := `{"vendor_id":"` + vendorID.String() + `","description":"no pepper","items":[{"menu_id":"` + jollof.String() + `","quantity":2}]}`
	rec := doRequest(e, http.MethodPost, "/order", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out entity.Order
	decodeData(t, rec, &out)
	assert.Equal(t, order.ID, out.ID)
	assert.Equal(t, int64(3000), out.AmountDue)
}

func TestOrderHandler_CreateOrderRejected(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{
			name:   "no items",
			body:   `{"vendor_id":"` + uuid.NewString() + `","items":[]}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "zero quantity",
			body:   `{"vendor_id":"` + uuid.NewString() + `","items":[{"menu_id":"` + uuid.NewString() + `","quantity":0}]}`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
		{
			name:   "malformed body",
			body:   `{"vendor_id":`,
			status: http.StatusBadRequest,
			code:   "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, e := newOrderEcho(t, uuid.New(), entity.RoleCustomer)

			rec := doRequest(e, http.MethodPost, "/order", tt.body)

			requireErrorCode(t, rec, tt.status, tt.code)
		})
	}
}

func TestOrderHandler_InsufficientStockCarriesDetails(t *testing.T) {
	orderUC, e := newOrderEcho(t, uuid.New(), entity.RoleCustomer)
	orderUC.EXPECT().CreateOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInsufficientStock.WithDetails("Jollof rice"))

	body := `{"vendor_id":"` + uuid.NewString() + `","items":[{"menu_id":"` + uuid.NewString() + `","quantity":9}]}`
	rec := doRequest(e, http.MethodPost, "/order", body)

	env := requireErrorCode(t, rec, http.StatusConflict, "INSUFFICIENT_STOCK")
	assert.Equal(t, "Jollof rice", env.Error.Details)
}

func TestOrderHandler_GetCustomerOrder(t *testing.T) {
	customerID := uuid.New()
	orderUC, e := newOrderEcho(t, customerID, entity.RoleCustomer)

	orderID := uuid.New()
	orderUC.EXPECT().GetCustomerOrder(mock.Anything, customerID, orderID).Return(&usecase.OrderDetail{
		Order: &entity.Order{ID: orderID, AmountDue: 5000, AmountPaid: 2000, AmountOutstanding: 3000},
		Payments: []*entity.Payment{
			{ID: uuid.New(), OrderID: orderID, Amount: 2000},
		},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/order/"+orderID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		ID                uuid.UUID         `json:"id"`
		AmountOutstanding int64             `json:"amount_outstanding"`
		Payments          []*entity.Payment `json:"payments"`
	}
	decodeData(t, rec, &out)
	assert.Equal(t, orderID, out.ID)
	assert.Equal(t, int64(3000), out.AmountOutstanding)
	require.Len(t, out.Payments, 1)
	assert.Equal(t, int64(2000), out.Payments[0].Amount)
}

func TestOrderHandler_GetCustomerOrderErrors(t *testing.T) {
	orderUC, e := newOrderEcho(t, uuid.New(), entity.RoleCustomer)

	rec := doRequest(e, http.MethodGet, "/order/not-a-uuid", "")
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	orderUC.EXPECT().GetCustomerOrder(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrOrderNotFound)
	rec = doRequest(e, http.MethodGet, "/order/"+uuid.NewString(), "")
	requireErrorCode(t, rec, http.StatusNotFound, "ORDER_NOT_FOUND")
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	customerID := uuid.New()
	orderUC, e := newOrderEcho(t, customerID, entity.RoleCustomer)

	orderID := uuid.New()
	orderUC.EXPECT().CancelOrder(mock.Anything, customerID, orderID).Return(nil, domainerrors.ErrOrderNotCancellable)

	rec := doRequest(e, http.MethodDelete, "/order/"+orderID.String(), "")

	requireErrorCode(t, rec, http.StatusConflict, "ORDER_NOT_CANCELLABLE")
}

func TestOrderHandler_PayOrder(t *testing.T) {
	customerID := uuid.New()
	orderUC, e := newOrderEcho(t, customerID, entity.RoleCustomer)

	orderID := uuid.New()
	orderUC.EXPECT().
		PayOrder(mock.Anything, customerID, orderID, &usecase.PayOrderInput{Amount: 1500, Reference: "TRX-1"}).
		Return(&usecase.PaymentOutput{
			Order:   &entity.Order{ID: orderID, AmountPaid: 1500},
			Payment: &entity.Payment{ID: uuid.New(), OrderID: orderID, Amount: 1500, Reference: "TRX-1"},
		}, nil)

	rec := doRequest(e, http.MethodPatch, "/order/payment/"+orderID.String(), `{"amount":1500,"reference":"TRX-1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Order   entity.Order   `json:"order"`
		Payment entity.Payment `json:"payment"`
	}
	decodeData(t, rec, &out)
	assert.Equal(t, int64(1500), out.Order.AmountPaid)
	assert.Equal(t, "TRX-1", out.Payment.Reference)

	rec = doRequest(e, http.MethodPatch, "/order/payment/"+orderID.String(), `{"amount":0}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestOrderHandler_ListVendorOrdersFilter(t *testing.T) {
	vendorID := uuid.New()
	orderUC, e := newOrderEcho(t, vendorID, entity.RoleVendor)

	orderUC.EXPECT().
		ListVendorOrders(mock.Anything, vendorID, mock.MatchedBy(func(filter repository.OrderFilter) bool {
			return filter.Status != nil && *filter.Status == entity.OrderStatusPending
		})).
		Return([]*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil)
	orderUC.EXPECT().
		ListVendorOrders(mock.Anything, vendorID, repository.OrderFilter{}).
		Return(nil, nil)

	rec := doRequest(e, http.MethodGet, "/vendor/order?status=pending", "")
	require.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Meta.Count)
	assert.Equal(t, 2, *env.Meta.Count)

	rec = doRequest(e, http.MethodGet, "/vendor/order", "")
	require.Equal(t, http.StatusOK, rec.Code)
	env = decode(t, rec)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestOrderHandler_UpdateOrderStatus(t *testing.T) {
	vendorID := uuid.New()
	orderUC, e := newOrderEcho(t, vendorID, entity.RoleVendor)

	orderID := uuid.New()
	orderUC.EXPECT().
		UpdateOrderStatus(mock.Anything, vendorID, orderID, entity.OrderStatusAccepted).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusAccepted}, nil)
	orderUC.EXPECT().
		UpdateOrderStatus(mock.Anything, vendorID, orderID, entity.OrderStatusDelivered).
		Return(nil, domainerrors.ErrInvalidStatusTransition)

	rec := doRequest(e, http.MethodPatch, "/vendor/order/"+orderID.String(), `{"status":"accepted"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var out entity.Order
	decodeData(t, rec, &out)
	assert.Equal(t, entity.OrderStatusAccepted, out.Status)

	rec = doRequest(e, http.MethodPatch, "/vendor/order/"+orderID.String(), `{"status":"delivered"}`)
	requireErrorCode(t, rec, http.StatusConflict, "INVALID_STATUS_TRANSITION")
}
