// Package stubapi is a seeded, in-memory implementation of the inventory
// backend contract. It exists for local development and end-to-end tests;
// the real backend is an external system.
//
// Every endpoint answers the JSON envelope {success, data?, error?} and
// nests its payload under data, exactly as the app's normalizer expects.
package stubapi

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/tienda/inventory-system/internal/core/domain"
)

// Server holds the in-memory dataset behind the stub endpoints.
type Server struct {
	jwtSecret string
	log       zerolog.Logger

	mu             sync.RWMutex
	users          map[string]seededUser // keyed by email
	products       map[int]domain.Product
	suppliers      map[int]domain.Supplier
	clients        []domain.Client
	nextProductID  int
	nextSupplierID int
}

type seededUser struct {
	identity     domain.Identity
	passwordHash []byte
}

// New creates a stub backend with the development dataset seeded.
func New(jwtSecret string, log zerolog.Logger) *Server {
	s := &Server{
		jwtSecret: jwtSecret,
		log:       log,
		users:     make(map[string]seededUser),
		products:  make(map[int]domain.Product),
		suppliers: make(map[int]domain.Supplier),
	}
	s.seed()
	return s
}

// Router builds the echo instance serving the backend contract.
func (s *Server) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.POST("/auth/login", s.login)

	// Public catalog.
	e.GET("/products/catalog", s.catalog)

	// Owner-only resources.
	owner := e.Group("", s.requireAuth, s.requireRole(domain.RoleOwner))
	owner.GET("/products", s.listProducts)
	owner.POST("/products", s.createProduct)
	owner.PUT("/products/:id", s.updateProduct)
	owner.DELETE("/products/:id", s.deleteProduct)
	owner.GET("/suppliers", s.listSuppliers)
	owner.POST("/suppliers", s.createSupplier)
	owner.PUT("/suppliers/:id", s.updateSupplier)
	owner.DELETE("/suppliers/:id", s.deleteSupplier)
	owner.GET("/clients", s.listClients)

	return e
}

// ok renders a success envelope with the payload nested under data.
func ok(c echo.Context, status int, data any) error {
	return c.JSON(status, map[string]any{"success": true, "data": data})
}

// fail renders a failure envelope.
func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "error": msg})
}
