package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/tienda/inventory-system/internal/api/handler"
	"github.com/tienda/inventory-system/internal/api/middleware"
	"github.com/tienda/inventory-system/internal/auth"
	"github.com/tienda/inventory-system/internal/client"
	"github.com/tienda/inventory-system/internal/core/domain"
	"github.com/tienda/inventory-system/internal/core/ports"
)

// Deps carries everything the router needs wired in.
type Deps struct {
	Gate     *auth.Gate
	API      *client.Client
	Sessions ports.SessionRepository

	BackendURL string
	Log        zerolog.Logger

	// Metrics overrides the Prometheus registry for the HTTP metrics.
	// Nil means the process-wide default registry.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes
// registered. The navigation surface mirrors the app's screens: public
// home, catalog and login; owner-gated dashboard; unknown paths redirect
// home.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if d.Metrics != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:  "tienda",
			Registerer: d.Metrics,
		}))
	} else {
		e.Use(echoprometheus.NewMiddleware("tienda"))
	}

	// --- Public routes ---
	homeHandler := handler.NewHomeHandler(d.Gate)
	catalogHandler := handler.NewCatalogHandler(d.API)
	authHandler := handler.NewAuthHandler(d.API, d.Gate)

	e.GET("/", homeHandler.Index)
	e.GET("/catalog", catalogHandler.Browse)
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Owner-gated dashboard ---
	guard := middleware.Guard(d.Gate, domain.RoleOwner)
	dash := e.Group("/dashboard", guard)

	dashboardHandler := handler.NewDashboardHandler(d.API, d.Gate, d.Log)
	productsHandler := handler.NewProductsHandler(d.API)
	suppliersHandler := handler.NewSuppliersHandler(d.API)
	clientsHandler := handler.NewClientsHandler(d.API)

	dash.GET("", dashboardHandler.Overview)
	dash.GET("/products", productsHandler.List)
	dash.POST("/products", productsHandler.Create)
	dash.PUT("/products/:id", productsHandler.Update)
	dash.DELETE("/products/:id", productsHandler.Delete)
	dash.GET("/suppliers", suppliersHandler.List)
	dash.POST("/suppliers", suppliersHandler.Create)
	dash.PUT("/suppliers/:id", suppliersHandler.Update)
	dash.DELETE("/suppliers/:id", suppliersHandler.Delete)
	dash.GET("/clients", clientsHandler.List)

	// --- Observability (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.BackendURL, d.Sessions)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	if d.Metrics != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Metrics}))
	} else {
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// Unknown paths land on the home screen.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/")
	})

	return e
}
