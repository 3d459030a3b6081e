package main

import (
	"context"
	"log/slog"
	"os"

	"fogon/config"
	"fogon/internal/delivery"
	"fogon/internal/delivery/http"
	"fogon/internal/delivery/http/middleware"
	"fogon/internal/delivery/http/router/handler"
	"fogon/internal/domain/service"
	"fogon/internal/infra/auth"
	logs "fogon/internal/infra/log"
	"fogon/internal/infra/media"
	"fogon/internal/infra/payment"
	"fogon/internal/infra/persistence/firestore"
	"fogon/internal/infra/pubsub"
	"fogon/internal/infra/qrcode"
	"fogon/internal/infra/report"
	"fogon/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
		firestore.NewApp,
		firestore.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestore.NewProductRepository,
			firestore.NewOrderRepository,
			firestore.NewOrderWatcher,
			firestore.NewUserRepository,
			firestore.NewStoreRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewFirebaseVerifier,
			media.NewCloudinaryUploader,
			payment.NewMercadoPagoGateway,
			pubsub.NewEventPublisher,
			report.NewPDFRenderer,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCheckoutService,
			impl.NewKitchenService,
			impl.NewTableService,
			impl.NewStoreService,
			impl.NewProfileService,
			impl.NewPaymentService,
			impl.NewReportService,
			impl.NewMediaService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
			handler.NewKitchenHandler,
			handler.NewStoreHandler,
			handler.NewProfileHandler,
			handler.NewPaymentHandler,
			handler.NewReportHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
				os.Exit(1)
			}
		}()
	}
}
