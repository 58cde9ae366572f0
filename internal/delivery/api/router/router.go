// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodmarket/internal/delivery/api/middleware"
	"foodmarket/internal/delivery/api/router/handler"
	"foodmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	VendorHandler       *handler.VendorHandler
	CustomerHandler     *handler.CustomerHandler
	MenuHandler         *handler.MenuHandler
	OrderHandler        *handler.OrderHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	ReportHandler       *handler.ReportHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth           *handler.AuthHandler
	vendor         *handler.VendorHandler
	customer       *handler.CustomerHandler
	menu           *handler.MenuHandler
	order          *handler.OrderHandler
	notification   *handler.NotificationHandler
	device         *handler.DeviceHandler
	report         *handler.ReportHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:           params.AuthHandler,
		vendor:         params.VendorHandler,
		customer:       params.CustomerHandler,
		menu:           params.MenuHandler,
		order:          params.OrderHandler,
		notification:   params.NotificationHandler,
		device:         params.DeviceHandler,
		report:         params.ReportHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Sessions
	tokenGroup := e.Group("/token")
	{
		tokenGroup.POST("/login", r.auth.Login)
		tokenGroup.POST("/refresh", r.auth.RefreshToken)
		tokenGroup.POST("/logout", r.auth.Logout)
	}

	// Public catalogue and signup
	e.POST("/vendor", r.auth.SignupVendor)
	e.GET("/vendor", r.vendor.ListVendors)
	e.GET("/vendor/:id", r.vendor.GetVendor)
	e.GET("/vendor/:id/menu", r.menu.ListByVendor)
	e.GET("/vendor/:id/menu/qr", r.menu.QRCode)
	e.POST("/customer", r.auth.SignupCustomer)
	e.GET("/menu", r.menu.ListAll)
	e.GET("/menu/:id", r.menu.Get)

	authGroup := e.Group("/auth")
	authGroup.Use(r.authMiddleware.Authenticate)

	vendorGroup := authGroup.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/profile", r.vendor.GetProfile)
		vendorGroup.PATCH("/profile", r.vendor.UpdateProfile)

		vendorGroup.GET("/menu", r.menu.ListOwn)
		vendorGroup.POST("/menu", r.menu.Create)
		vendorGroup.POST("/menu/import", r.menu.Import)
		vendorGroup.PUT("/menu/:id", r.menu.Update)
		vendorGroup.DELETE("/menu/:id", r.menu.Delete)

		vendorGroup.GET("/order", r.order.ListVendorOrders)
		vendorGroup.GET("/order/:id", r.order.GetVendorOrder)
		vendorGroup.PATCH("/order/:id", r.order.UpdateOrderStatus)

		vendorGroup.GET("/sales/daily", r.report.DailySales)

		vendorGroup.GET("/notification", r.notification.ListSent)
		vendorGroup.POST("/notification", r.notification.Notify)
		vendorGroup.GET("/notification/:id", r.notification.GetSent)
	}

	customerGroup := authGroup.Group("/customer")
	customerGroup.Use(r.authMiddleware.RequireRole(entity.RoleCustomer))
	{
		customerGroup.GET("/profile", r.customer.GetProfile)
		customerGroup.PATCH("/profile", r.customer.UpdateProfile)

		customerGroup.GET("/order", r.order.ListCustomerOrders)
		customerGroup.POST("/order", r.order.CreateOrder)
		customerGroup.GET("/order/:id", r.order.GetCustomerOrder)
		customerGroup.DELETE("/order/:id", r.order.CancelOrder)
		customerGroup.PATCH("/order/payment/:id", r.order.PayOrder)

		customerGroup.GET("/notification", r.notification.ListReceived)
		customerGroup.GET("/notification/:id", r.notification.GetReceived)
		customerGroup.PATCH("/notification/:id/read", r.notification.MarkRead)

		customerGroup.GET("/devices", r.device.GetCustomerDevices)
		customerGroup.POST("/devices", r.device.RegisterDevice)
		customerGroup.PUT("/devices/:id/token", r.device.UpdateFCMToken)
		customerGroup.DELETE("/devices/:id", r.device.DeactivateDevice)
	}
}
