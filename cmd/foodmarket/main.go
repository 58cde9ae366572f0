package main

import (
	"context"
	"log/slog"
	"os"

	"foodmarket/config"
	"foodmarket/internal/delivery"
	"foodmarket/internal/delivery/api"
	"foodmarket/internal/delivery/api/middleware"
	"foodmarket/internal/delivery/api/router/handler"
	"foodmarket/internal/domain/service"
	"foodmarket/internal/infra/auth"
	"foodmarket/internal/infra/cache"
	logs "foodmarket/internal/infra/log"
	"foodmarket/internal/infra/metrics"
	"foodmarket/internal/infra/persistence/postgres"
	"foodmarket/internal/infra/pubsub"
	"foodmarket/internal/infra/qrcode"
	"foodmarket/internal/infra/report"
	"foodmarket/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		func(m *metrics.Metrics) service.BusinessMetrics { return m },
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAuthRepository,
			postgres.NewVendorRepository,
			postgres.NewCustomerRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewMenuRepository,
			postgres.NewOrderRepository,
			postgres.NewNotificationRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewMenuCache,
			qrcode.NewQRCodeServiceFromConfig,
			report.NewExcelSpreadsheet,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewVendorService,
			impl.NewCustomerService,
			impl.NewMenuService,
			impl.NewOrderService,
			impl.NewNotificationService,
			impl.NewDeviceService,
			impl.NewReportService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewVendorHandler,
			handler.NewCustomerHandler,
			handler.NewMenuHandler,
			handler.NewOrderHandler,
			handler.NewNotificationHandler,
			handler.NewDeviceHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
