package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"quaidirect/config"
	"quaidirect/internal/delivery"
	"quaidirect/internal/delivery/http"
	"quaidirect/internal/delivery/http/middleware"
	"quaidirect/internal/delivery/http/router/handler"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/domain/service"
	logs "quaidirect/internal/infra/log"
	"quaidirect/internal/infra/mailer"
	"quaidirect/internal/infra/notification"
	"quaidirect/internal/infra/persistence/postgres"
	"quaidirect/internal/infra/pubsub"
	"quaidirect/internal/infra/qrcode"
	"quaidirect/internal/usecase"
	"quaidirect/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDropRepository,
			postgres.NewFollowRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newPushSender,
			mailer.New,
			newQRCodeService,
		),
	)
}

// newPushSender creates the FCM sender, or a no-op sender when Firebase is
// not configured.
func newPushSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Info("Firebase not configured, using no-op push sender")

		return notification.NewNoopSender(logger), nil
	}

	sender, err := notification.NewFirebaseSender(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase sender: %w", err)
	}

	return sender, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newFanoutService,
			newDropService,
			newFishermanService,
			impl.NewFollowService,
			impl.NewDeviceService,
		),
	)
}

func newFanoutService(
	dropRepo repository.DropRepository,
	followRepo repository.FollowRepository,
	subscriptionRepo repository.SubscriptionRepository,
	deviceRepo repository.DeviceRepository,
	notificationRepo repository.NotificationRepository,
	pushSender service.PushSender,
	emailSender service.EmailSender,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.FanoutUsecase {
	var radiusKm float64
	var concurrency int
	var baseURL string
	if cfg.Notification != nil {
		radiusKm = cfg.Notification.PortRadiusKm
		concurrency = cfg.Notification.EmailConcurrency
		baseURL = cfg.Notification.PublicBaseURL
	}

	return impl.NewFanoutService(
		dropRepo,
		followRepo,
		subscriptionRepo,
		deviceRepo,
		notificationRepo,
		pushSender,
		emailSender,
		logger,
		radiusKm,
		concurrency,
		baseURL,
	)
}

func newDropService(
	dropRepo repository.DropRepository,
	notificationRepo repository.NotificationRepository,
	eventPublisher service.EventPublisher,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.DropUsecase {
	var lead time.Duration
	if cfg.Notification != nil {
		lead = cfg.Notification.EarlyAccessLead
	}

	return impl.NewDropService(dropRepo, notificationRepo, eventPublisher, logger, lead)
}

func newFishermanService(
	dropRepo repository.DropRepository,
	qrcodeService service.QRCodeService,
	cfg *config.Config,
) usecase.FishermanUsecase {
	var baseURL string
	if cfg.Notification != nil {
		baseURL = cfg.Notification.PublicBaseURL
	}

	return impl.NewFishermanService(dropRepo, qrcodeService, baseURL)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewInternalAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotifyHandler,
			handler.NewDropHandler,
			handler.NewFollowHandler,
			handler.NewDeviceHandler,
			handler.NewFishermanHandler,
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
