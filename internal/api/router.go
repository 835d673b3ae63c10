package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/spacehub/booking-portal/docs"
	"github.com/spacehub/booking-portal/internal/api/handler"
	"github.com/spacehub/booking-portal/internal/api/middleware"
	"github.com/spacehub/booking-portal/internal/core/domain"
	"github.com/spacehub/booking-portal/internal/core/ports"
	"github.com/spacehub/booking-portal/internal/infrastructure/http/handlers"
)

// Deps carries everything the router mounts.
type Deps struct {
	Log       zerolog.Logger
	JWTSecret string
	LoginURL  string
	// LocalAuth mounts /auth; disable it when tokens come from an external
	// identity provider.
	LocalAuth bool

	Catalog  handler.CatalogReader
	Auth     ports.AuthService
	Bookings ports.BookingService
	History  ports.HistoryService

	NewIdentity func() handler.SessionIdentity
	NewSession  handler.SessionFactory

	Readiness []handlers.Dependency

	// Registry receives the HTTP metrics. Nil selects the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log, d.LoginURL)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))

	promCfg := echoprometheus.MiddlewareConfig{Subsystem: "booking_portal"}
	handlerCfg := echoprometheus.HandlerConfig{}
	if d.Registry != nil {
		promCfg.Registerer = d.Registry
		handlerCfg.Gatherer = d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(handlerCfg))

	// --- Health checks (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	readinessHandler := handlers.NewHealthDependenciesHandler(d.Readiness...)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	if d.LocalAuth && d.Auth != nil {
		authHandler := handler.NewAuthHandler(d.Auth)
		e.POST("/auth/register", authHandler.Register)
		e.POST("/auth/login", authHandler.Login)
	}

	requireAuth := middleware.Auth(d.JWTSecret)

	catalogHandler := handler.NewCatalogHandler(d.Catalog, d.Bookings)
	bookingHandler := handler.NewBookingHandler(d.Bookings)
	historyHandler := handler.NewHistoryHandler(d.History)

	v1 := e.Group("/v1")
	v1.GET("/workstations", catalogHandler.List)
	v1.GET("/workstations/:id", catalogHandler.Get)
	v1.GET("/workstations/:id/schedule", catalogHandler.Schedule, requireAuth)
	v1.POST("/workstations/:id/bookings", bookingHandler.Create, requireAuth)
	v1.GET("/history", historyHandler.Get, requireAuth)

	// the stream resolves its own identity and reports absence as an event
	if d.NewIdentity != nil && d.NewSession != nil {
		streamHandler := handler.NewHistoryStreamHandler(d.NewIdentity, d.NewSession, d.JWTSecret, d.LoginURL, d.Log)
		v1.GET("/history/stream", streamHandler.Stream)
	}

	admin := v1.Group("/admin", requireAuth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/workstation-bookings", bookingHandler.ListAll)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
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
