package handler

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tienda/inventory-system/internal/client"
	"github.com/tienda/inventory-system/internal/core/domain"
	"github.com/tienda/inventory-system/internal/core/service"
)

// DashboardHandler aggregates the owner's overview screen. Products,
// suppliers and clients are three independent call sites; their fetches
// settle in no guaranteed order, so the handler joins them explicitly
// and tolerates partial arrival.
type DashboardHandler struct {
	api  *client.Client
	gate interface{ Identity() *domain.Identity }
	log  zerolog.Logger

	productsCall  client.CallState
	suppliersCall client.CallState
	clientsCall   client.CallState
}

func NewDashboardHandler(api *client.Client, gate interface{ Identity() *domain.Identity }, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{api: api, gate: gate, log: log}
}

type dashboardResponse struct {
	Welcome        string                 `json:"welcome,omitempty"`
	Stats          service.DashboardStats `json:"stats"`
	RecentProducts []domain.Product       `json:"recent_products"`
	Warnings       []string               `json:"warnings,omitempty"`
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		wg        sync.WaitGroup
		products  client.Result[[]domain.Product]
		suppliers client.Result[[]domain.Supplier]
		clients   client.Result[[]domain.Client]
	)

	wg.Add(3)
	go func() { defer wg.Done(); products = h.api.ListProducts(ctx, &h.productsCall) }()
	go func() { defer wg.Done(); suppliers = h.api.ListSuppliers(ctx, &h.suppliersCall) }()
	go func() { defer wg.Done(); clients = h.api.ListClients(ctx, &h.clientsCall) }()
	wg.Wait()

	var warnings []string
	for _, failed := range []struct {
		name string
		ok   bool
		msg  string
	}{
		{"products", products.OK, products.Message},
		{"suppliers", suppliers.OK, suppliers.Message},
		{"clients", clients.OK, clients.Message},
	} {
		if !failed.ok {
			h.log.Warn().Str("resource", failed.name).Str("reason", failed.msg).Msg("dashboard fetch failed")
			warnings = append(warnings, failed.name+": "+failed.msg)
		}
	}

	stats, recent := service.ComputeDashboard(products.Data, suppliers.Data, clients.Data)

	resp := dashboardResponse{Stats: stats, RecentProducts: recent, Warnings: warnings}
	if id := h.gate.Identity(); id != nil {
		resp.Welcome = id.DisplayName
	}
	return c.JSON(http.StatusOK, resp)
}
