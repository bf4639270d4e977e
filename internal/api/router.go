package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/luminosmc/community-api/internal/api/handler"
	"github.com/luminosmc/community-api/internal/api/middleware"
	"github.com/luminosmc/community-api/internal/core/ports"
	"github.com/luminosmc/community-api/internal/infrastructure/http/handlers"
)

// Services bundles the core services the router exposes.
type Services struct {
	Auth     ports.AuthService
	Posts    ports.PostService
	Products ports.ProductService
	Members  ports.MemberService
	Staff    ports.StaffService
	Roles    ports.RoleService
	Stats    ports.StatsService
}

// Options carries the transport-level collaborators of the router.
type Options struct {
	Services Services
	// Realtime serves upgraded /ws connections.
	Realtime handler.Server
	// Idempotency may be nil, which disables the Idempotency-Key check.
	Idempotency  ports.IdempotencyGuard
	HealthChecks []handlers.Check
	CORSOrigins  []string
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Logger))
	// Clients authenticate with Bearer headers, never cookies.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
	}))
	e.Use(middleware.Metrics())

	// --- Dependencies ---
	svc := opts.Services
	authHandler := handler.NewAuthHandler(svc.Auth)
	postHandler := handler.NewPostHandler(svc.Posts)
	productHandler := handler.NewProductHandler(svc.Products)
	roleHandler := handler.NewRoleHandler(svc.Roles)
	adminHandler := handler.NewAdminHandler(svc.Members, svc.Staff, svc.Stats)
	realtimeHandler := handler.NewRealtimeHandler(opts.Realtime, opts.CORSOrigins, opts.Logger)

	requireAuth := middleware.Auth(svc.Auth)
	idempotent := middleware.Idempotency(opts.Idempotency, opts.Logger)

	api := e.Group("/api")
	api.GET("/", handler.Root)

	// --- Auth routes ---
	api.POST("/auth/register", authHandler.Register, idempotent)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/admin/login", authHandler.StaffLogin)
	api.GET("/auth/me", authHandler.Me, requireAuth)
	api.POST("/auth/change-password", authHandler.ChangePassword, requireAuth)

	// --- Forum ---
	api.GET("/posts", postHandler.List)
	api.POST("/posts", postHandler.Create, requireAuth, idempotent)
	api.PUT("/posts/:id", postHandler.Update, requireAuth)
	api.DELETE("/posts/:id", postHandler.Delete, requireAuth)
	api.POST("/posts/:id/replies", postHandler.AddReply, requireAuth, idempotent)

	// --- Shop ---
	api.GET("/products", productHandler.List)
	api.POST("/products", productHandler.Create, requireAuth, idempotent)
	api.PUT("/products/:id", productHandler.Update, requireAuth)
	api.DELETE("/products/:id", productHandler.Delete, requireAuth)

	// --- Roles ---
	api.GET("/roles", roleHandler.List)
	api.POST("/roles", roleHandler.Create, requireAuth, idempotent)
	api.PUT("/roles/:id", roleHandler.Update, requireAuth)
	api.DELETE("/roles/:id", roleHandler.Delete, requireAuth)

	// --- Administration (staff only) ---
	admin := api.Group("/admin", requireAuth, middleware.RequireStaff())
	admin.GET("/users/forum", adminHandler.ListMembers)
	admin.DELETE("/users/forum/:id", adminHandler.DeleteMember)
	admin.GET("/staff", adminHandler.ListStaff)
	admin.POST("/staff", adminHandler.CreateStaff, idempotent)
	admin.PUT("/staff/:id", adminHandler.UpdateStaff)
	admin.DELETE("/staff/:id", adminHandler.DeleteStaff)
	admin.GET("/stats", adminHandler.Stats)

	// --- Realtime ---
	e.GET("/ws", realtimeHandler.Connect)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler(opts.HealthChecks...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
