package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodmarket/config"
	apimiddleware "foodmarket/internal/delivery/api/middleware"
	"foodmarket/internal/delivery/api/router"
	"foodmarket/internal/delivery/api/router/handler"
	deliverycontext "foodmarket/internal/delivery/context"
	"foodmarket/internal/domain/entity"
	domainerrors "foodmarket/internal/domain/errors"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/infra/metrics"
	mockSvc "foodmarket/internal/mocks/service"
	mockUC "foodmarket/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	echo     *echo.Echo
	menuUC   *mockUC.MockMenuUsecase
	tokenSvc *mockSvc.MockTokenService
}

func newTestServer(t *testing.T) *testServer {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "2MB"
	cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "/metrics"}

	menuUC := mockUC.NewMockMenuUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	params := ServerParams{
		Cfg:     cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		RouterParams: router.RouterParams{
			AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUC.NewMockAuthUsecase(t), Logger: logger}),
			VendorHandler:       handler.NewVendorHandler(handler.VendorHandlerParams{VendorUC: mockUC.NewMockVendorUsecase(t), Logger: logger}),
			CustomerHandler:     handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: mockUC.NewMockCustomerUsecase(t), Logger: logger}),
			MenuHandler:         handler.NewMenuHandler(handler.MenuHandlerParams{MenuUC: menuUC, Logger: logger}),
			OrderHandler:        handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: mockUC.NewMockOrderUsecase(t), Logger: logger}),
			NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUC.NewMockNotificationUsecase(t), Logger: logger}),
			DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUC.NewMockDeviceUsecase(t), Logger: logger}),
			ReportHandler:       handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: mockUC.NewMockReportUsecase(t), Logger: logger}),
			AuthMiddleware:      apimiddleware.NewAuthMiddleware(tokenSvc),
		},
	}

	return &testServer{echo: newEcho(params), menuUC: menuUC, tokenSvc: tokenSvc}
}

func (s *testServer) get(target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/health", http.Header{deliverycontext.HeaderXRequestID: {"req-123"}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}

func TestServer_RoleGuards(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/auth/vendor/menu", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	s.tokenSvc.EXPECT().ValidateAccessToken("customer").Return(&service.Claims{
		UserID: uuid.New(),
		Role:   entity.RoleCustomer,
	}, nil)
	rec = s.get("/auth/vendor/menu", http.Header{echo.HeaderAuthorization: {"Bearer customer"}})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_MetricsRecordRoutes(t *testing.T) {
	s := newTestServer(t)

	s.menuUC.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrMenuNotFound)

	rec := s.get("/menu/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.get("/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `foodmarket_http_requests_total{method="GET",route="/menu/:id",status="404"} 1`)
}
