package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pontomais/internal/domain/user"
	"pontomais/internal/handler/api"
	"pontomais/internal/handler/middleware"
	"pontomais/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Point   *api.PointHandler
	Booking *api.BookingHandler
	Partner *api.PartnerHandler
	Admin   *api.AdminHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	h Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, middleware.NewRateLimiter(cfg.RateLimit))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			// credential endpoints are throttled per client IP
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		points := apiGroup.Group("/points")
		{
			addRoutes(points, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Point.List},
				{Method: http.MethodGet, Path: "/filters", Handler: h.Point.Filters},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Point.Get},
				{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Point.Calendar},
				{Method: http.MethodPost, Path: "/:id/availability", Handler: h.Point.Availability},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/partner-requests", Handler: h.Partner.Submit, Mw: []gin.HandlerFunc{limiter.Middleware()}},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Confirm, Mw: []gin.HandlerFunc{limiter.Middleware()}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			})
		}

		partner := apiGroup.Group("/partner")
		partner.Use(authMiddleware.RequireAuth())
		{
			addRoutes(partner, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: h.Partner.ListMine},
				{Method: http.MethodPut, Path: "/requests/:id", Handler: h.Partner.Edit},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Partner.Dashboard},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: h.Admin.ListRequests},
				{Method: http.MethodPost, Path: "/requests/:id/approve", Handler: h.Admin.ApproveRequest},
				{Method: http.MethodPost, Path: "/requests/:id/reject", Handler: h.Admin.RejectRequest},
				{Method: http.MethodGet, Path: "/points", Handler: h.Admin.ListPoints},
				{Method: http.MethodPut, Path: "/points/:id", Handler: h.Admin.UpdatePoint},
				{Method: http.MethodPost, Path: "/points/:id/hide", Handler: h.Admin.HidePoint},
				{Method: http.MethodPost, Path: "/points/:id/unhide", Handler: h.Admin.UnhidePoint},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodPut, Path: "/users/:id", Handler: h.Admin.UpdateUser},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.Admin.DeleteUser},
				{Method: http.MethodGet, Path: "/financials", Handler: h.Admin.Financials},
				{Method: http.MethodGet, Path: "/export", Handler: h.Admin.Export},
			})
		}
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
