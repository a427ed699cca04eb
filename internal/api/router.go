package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/authgate/accounts-service/docs" // swagger docs

	"github.com/authgate/accounts-service/internal/api/handler"
	"github.com/authgate/accounts-service/internal/api/middleware"
	"github.com/authgate/accounts-service/internal/core/ports"
	"github.com/authgate/accounts-service/internal/core/service"
)

// Dependencies are the collaborators the HTTP layer needs.
type Dependencies struct {
	Accounts    ports.AccountService
	Gate        *service.Gate
	TokenHeader string
	Checks      map[string]handler.Check
	Renderer    echo.Renderer
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.Renderer = deps.Renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))

	accountHandler := handler.NewAccountHandler(deps.Accounts)
	authenticated := middleware.Authenticate(deps.Gate, deps.TokenHeader)

	// --- Probes and tooling (no auth required) ---
	e.GET("/", handler.Root)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Checks).Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Pages ---
	e.GET("/signup", handler.SignupPage)
	e.GET("/login", handler.LoginPage)
	e.GET("/dashboard", handler.DashboardPage, authenticated)
	e.GET("/admin", handler.AdminPage, authenticated, middleware.RequireAdmin())

	// --- Account API ---
	api := e.Group("/api")
	api.POST("/signup", accountHandler.Signup)
	api.POST("/login", accountHandler.Login)

	return e
}
