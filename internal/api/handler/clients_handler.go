package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tienda/inventory-system/internal/client"
)

// ClientsHandler serves the registered-customers screen (read only).
type ClientsHandler struct {
	api *client.Client

	listCall client.CallState
}

func NewClientsHandler(api *client.Client) *ClientsHandler {
	return &ClientsHandler{api: api}
}

func (h *ClientsHandler) List(c echo.Context) error {
	res := h.api.ListClients(c.Request().Context(), &h.listCall)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadGateway)
	}
	return c.JSON(http.StatusOK, map[string]any{"clients": res.Data, "total": len(res.Data)})
}
