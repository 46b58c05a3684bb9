package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/payetonkawa/clients-api/internal/api/handler"
	"github.com/payetonkawa/clients-api/internal/api/middleware"
	"github.com/payetonkawa/clients-api/internal/core/domain"
	"github.com/payetonkawa/clients-api/internal/core/service"
	mongodb "github.com/payetonkawa/clients-api/internal/infrastructure/db/mongo"
	"github.com/payetonkawa/clients-api/internal/infrastructure/queue/rabbitmq"
)

// RouterConfig carries the externally constructed handles the router wires
// together. All dependencies are explicit; nothing reaches for globals.
type RouterConfig struct {
	DB        *mongo.Database
	Rabbit    *amqp.Connection
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clients"))

	// --- Dependencies ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	clientRepo := mongodb.NewClientRepository(cfg.DB)
	publisher := rabbitmq.NewPublisher(cfg.Rabbit, cfg.Logger)
	clientService := service.NewClientService(clientRepo, publisher, cfg.Logger)

	tokenHandler := handler.NewTokenHandler(tokenService)
	clientHandler := handler.NewClientHandler(clientService)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Token issuance ---
	e.POST("/token", tokenHandler.Issue)

	// --- Client records ---
	// Reads require authentication only; mutations require the admin role.
	clients := e.Group("/clients", authRequired)
	clients.GET("/", clientHandler.List)
	clients.GET("/:id", clientHandler.Get)
	clients.POST("/", clientHandler.Create, adminOnly)
	clients.PUT("/:id", clientHandler.Update, adminOnly)
	clients.DELETE("/:id", clientHandler.Delete, adminOnly)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DB, cfg.Rabbit)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
