package main

import (
	"context"
	"log/slog"
	"os"

	"minaret/config"
	"minaret/internal/delivery"
	"minaret/internal/delivery/worker"
	"minaret/internal/delivery/worker/handler"
	"minaret/internal/domain/lifecycle"
	"minaret/internal/domain/service"
	"minaret/internal/infra/clock"
	"minaret/internal/infra/lock"
	logs "minaret/internal/infra/log"
	"minaret/internal/infra/notification"
	"minaret/internal/infra/persistence/postgres"
	"minaret/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
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
		clock.NewSystemClock,
		postgres.New,
		newCycleLock,
		newPushSender,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewScheduledNotificationRepository,
			postgres.NewNotificationLogRepository,
			postgres.NewPreferenceRepository,
			postgres.NewDeviceRepository,
			postgres.NewUserRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPolicyService,
			impl.NewMessageBuilder,
			impl.NewSchedulerService,
			impl.NewMetricsService,
			impl.NewDispatchService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMetricsHandler,
			handler.NewNotificationHandler,
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
			fx.Annotate(
				worker.NewDispatcher,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// newCycleLock provides the cross-instance dispatch lock. Without redis the
// lock is nil and each instance relies on per-record claims alone.
func newCycleLock(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) service.CycleLock {
	if cfg.Redis == nil {
		logger.Info("Redis not configured, dispatch cycle lock disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return lock.NewRedisCycleLock(client, cfg.Dispatch.LockTTL)
}

// newPushSender provides the delivery backend: FCM behind a circuit breaker
// when configured, a log-only sender otherwise.
func newPushSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushSender, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase not configured, using log-only push sender")

		return notification.NewLogSender(logger), nil
	}

	sender, err := notification.NewFCMSender(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, err
	}

	return notification.NewBreakerSender(sender), nil
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
