package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"talentbridge/internal/domain/user"
	"talentbridge/internal/handler/api"
	"talentbridge/internal/handler/middleware"
	"talentbridge/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Auth      *api.AuthHandler
	FollowUp  *api.FollowUpHandler
	XP        *api.XPHandler
	Realtime  *api.RealtimeHandler
	Functions *api.FunctionsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, h, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.RequestLogging(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NewCORSMiddleware(cfg.CORS))
	// group middleware only runs on matched routes, so preflights need one
	apiGroup.OPTIONS("/*path", preflight)
	{
		auth := apiGroup.Group("/auth")
		{
			public := auth.Group("")
			public.Use(rateLimiter.Middleware())
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth(), rateLimiter.Middleware())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		followups := apiGroup.Group("/followups")
		followups.Use(authMiddleware.RequireAuth(), rateLimiter.Middleware(), authMiddleware.RequireRoleAtLeast(user.RoleRecruiter))
		{
			addRoutes(followups, []route{
				{Method: http.MethodPost, Path: "", Handler: h.FollowUp.Schedule},
				{Method: http.MethodGet, Path: "", Handler: h.FollowUp.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.FollowUp.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.FollowUp.Update},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.FollowUp.Cancel},
				{Method: http.MethodPost, Path: "/candidates/:candidateId/response", Handler: h.FollowUp.RecordResponse},
			})
		}

		xp := apiGroup.Group("/xp")
		xp.Use(authMiddleware.RequireAuth(), rateLimiter.Middleware())
		{
			addRoutes(xp, []route{
				{Method: http.MethodPost, Path: "/actions", Handler: h.XP.Award},
				{Method: http.MethodGet, Path: "/me", Handler: h.XP.Me},
			})
		}

		// long-lived streams are not rate limited
		realtime := apiGroup.Group("/realtime")
		realtime.Use(authMiddleware.RequireAuth())
		{
			addRoutes(realtime, []route{
				{Method: http.MethodGet, Path: "/:topic", Handler: h.Realtime.Stream},
			})
		}
	}

	functions := engine.Group("/functions")
	functions.Use(middleware.NewOpenCORSMiddleware())
	functions.OPTIONS("/*path", preflight)
	{
		cron := middleware.RequireCronSecret(cfg.Functions.CronSecret)
		addRoutes(functions, []route{
			{Method: http.MethodPost, Path: "/send-scheduled-followups", Handler: h.Functions.SendScheduledFollowUps, Mw: []gin.HandlerFunc{cron}},
			{Method: http.MethodPost, Path: "/send-scheduled-followup", Handler: h.Functions.SendScheduledFollowUps, Mw: []gin.HandlerFunc{cron}},
			{Method: http.MethodPost, Path: "/process-notification-jobs", Handler: h.Functions.ProcessNotificationJobs, Mw: []gin.HandlerFunc{cron}},
			{Method: http.MethodPost, Path: "/stripe-webhook", Handler: h.Functions.StripeWebhook},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
