package components

import (
	"context"
	"log/slog"

	"talentbridge/internal/infra/events"
	"talentbridge/internal/infra/mailer"
	"talentbridge/internal/infra/payment"
	"talentbridge/internal/infra/realtime"
	"talentbridge/internal/pkg/config"
	"talentbridge/internal/pkg/metrics"
	"talentbridge/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		NewRedisClient,
		NewRealtimeManager,
		func(m *realtime.Manager) shared.RealtimePublisher { return m },
		func(m *realtime.Manager) shared.RealtimeSubscriber { return m },
		NewActivityPublisher,
		func(cfg config.Config, logger *slog.Logger) shared.Mailer {
			return mailer.New(cfg.Mail, logger)
		},
		func(cfg config.Config) shared.BillingEventVerifier {
			return payment.NewStripeVerifier(cfg.Stripe)
		},
	),
	fx.Invoke(metrics.Register),
)

func NewRedisClient(cfg config.Config) *redis.Client {
	return realtime.NewRedisClient(cfg.Redis)
}

func NewRealtimeManager(lc fx.Lifecycle, client *redis.Client, logger *slog.Logger) *realtime.Manager {
	m := realtime.NewManager(client, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// realtime is best effort; an unreachable Redis only degrades live updates
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, realtime events will be dropped", "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return m.Close()
		},
	})
	return m
}

func NewActivityPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.ActivityPublisher {
	pub, closeFn := events.NewActivityPublisher(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return closeFn()
		},
	})
	return pub
}
