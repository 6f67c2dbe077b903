package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tienda/inventory-system/internal/client"
	"github.com/tienda/inventory-system/internal/core/domain"
)

// ProductsHandler serves the product management screen: list plus
// create/update/delete passthrough to the backend.
type ProductsHandler struct {
	api *client.Client

	listCall   client.CallState
	mutateCall client.CallState
}

func NewProductsHandler(api *client.Client) *ProductsHandler {
	return &ProductsHandler{api: api}
}

func (h *ProductsHandler) List(c echo.Context) error {
	res := h.api.ListProducts(c.Request().Context(), &h.listCall)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadGateway)
	}
	return c.JSON(http.StatusOK, map[string]any{"products": res.Data, "total": len(res.Data)})
}

func (h *ProductsHandler) Create(c echo.Context) error {
	var form domain.ProductForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.api.CreateProduct(c.Request().Context(), &h.mutateCall, form)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, res.Data)
}

func (h *ProductsHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form domain.ProductForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.api.UpdateProduct(c.Request().Context(), &h.mutateCall, id, form)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, res.Data)
}

func (h *ProductsHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res := h.api.DeleteProduct(c.Request().Context(), &h.mutateCall, id)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadRequest)
	}
	return c.NoContent(http.StatusNoContent)
}
