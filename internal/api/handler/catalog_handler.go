package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tienda/inventory-system/internal/client"
	"github.com/tienda/inventory-system/internal/core/service"
)

// CatalogHandler serves the public catalog screen with its search,
// category filter and sort controls.
type CatalogHandler struct {
	api *client.Client

	call client.CallState
}

func NewCatalogHandler(api *client.Client) *CatalogHandler {
	return &CatalogHandler{api: api}
}

type catalogResponse struct {
	Products any `json:"products"`
	Total    int `json:"total"`
}

func (h *CatalogHandler) Browse(c echo.Context) error {
	res := h.api.Catalog(c.Request().Context(), &h.call)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadGateway)
	}

	q := service.CatalogQuery{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	}
	products := service.FilterCatalog(res.Data, q)

	return c.JSON(http.StatusOK, catalogResponse{Products: products, Total: len(products)})
}
