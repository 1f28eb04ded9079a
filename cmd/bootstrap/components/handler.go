package components

import (
	"talentbridge/internal/handler"
	"talentbridge/internal/handler/api"
	"talentbridge/internal/handler/middleware"
	"talentbridge/internal/pkg/clock"
	"talentbridge/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFollowUpHandler,
		api.NewXPHandler,
		api.NewRealtimeHandler,
		api.NewFunctionsHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
	),
	fx.Invoke(handler.NewRouter),
)
