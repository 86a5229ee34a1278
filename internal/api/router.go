package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/dogtraining/dashboard/docs"
	"github.com/dogtraining/dashboard/internal/api/handler"
	"github.com/dogtraining/dashboard/internal/api/middleware"
	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/ports"
	"github.com/dogtraining/dashboard/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the router wires into handlers.
// Mongo and Redis are optional and only feed the readiness probe.
type Dependencies struct {
	Auth          ports.AuthService
	Clients       ports.ClientService
	Media         ports.MediaService
	Notifications ports.NotificationService
	Payments      ports.PaymentService

	Logger zerolog.Logger
	Mongo  *mongo.Database
	Redis  *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)
	e.Validator = handler.NewValidator()

	// HTTP metrics get their own registry so a second router (tests) does not
	// collide with the first on the default one.
	reg := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "dashboard",
		Registerer: reg,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	clientHandler := handler.NewClientHandler(deps.Clients)
	mediaHandler := handler.NewMediaHandler(deps.Media)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Admin area ---
	admin := e.Group("/api/admin", middleware.Auth(deps.Auth, domain.RoleAdmin))
	admin.GET("/clients", clientHandler.List)
	admin.POST("/clients", clientHandler.Create)
	admin.GET("/media", mediaHandler.List)
	admin.POST("/media", mediaHandler.Create)
	admin.GET("/notifications", notificationHandler.List)
	admin.POST("/notifications", notificationHandler.Create)
	admin.GET("/payments", paymentHandler.List)
	admin.POST("/payments", paymentHandler.Record)

	// --- Client area ---
	client := e.Group("/api/client", middleware.Auth(deps.Auth, domain.RoleClient))
	client.GET("/media", mediaHandler.ListOwn)
	client.GET("/notifications", notificationHandler.ListOwn)
	client.POST("/notifications/read", notificationHandler.MarkRead)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{prometheus.DefaultGatherer, reg},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
