package components

import (
	"log/slog"

	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/config"
	"talentbridge/internal/usecase"
	"talentbridge/internal/usecase/commands"
	"talentbridge/internal/usecase/queries"
	"talentbridge/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) commands.DispatcherSettings {
		return commands.DispatcherSettings{
			BatchSize:   cfg.Dispatcher.BatchSize,
			Lease:       cfg.Dispatcher.Lease,
			ItemTimeout: cfg.Dispatcher.ItemTimeout,
		}
	},
	func(cfg config.Config) commands.RelaySettings {
		return commands.RelaySettings{
			BatchSize:   cfg.Relay.BatchSize,
			MaxAttempts: cfg.Relay.MaxAttempts,
			Backoff:     cfg.Relay.Backoff,
		}
	},
	func(cfg config.Config) commands.CommissionSettings {
		return commands.CommissionSettings{
			AmountCents: cfg.Referral.CommissionCents,
			Currency:    cfg.Referral.Currency,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewXPCommands,
		commands.NewDispatcher,
		commands.NewBillingCommands,
		commands.NewNotificationRelay,
		func(uow shared.UnitOfWork, rt shared.RealtimePublisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.FollowUpCommands {
			return commands.NewFollowUpCommands(uow, rt, clk, cfg.Dispatcher.DuplicateWindow, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewFollowUpQueries,
		queries.NewXPQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
