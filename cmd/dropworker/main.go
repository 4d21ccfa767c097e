package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"quaidirect/config"
	"quaidirect/internal/delivery"
	"quaidirect/internal/delivery/worker"
	"quaidirect/internal/delivery/worker/handler"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/domain/service"
	logs "quaidirect/internal/infra/log"
	"quaidirect/internal/infra/mailer"
	"quaidirect/internal/infra/notification"
	"quaidirect/internal/infra/persistence/postgres"
	"quaidirect/internal/usecase"
	"quaidirect/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
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
		fx.Provide(
			newPushSender,
			mailer.New,
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

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newFanoutService,
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

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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
