package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tienda/inventory-system/internal/client"
	"github.com/tienda/inventory-system/internal/core/domain"
)

// SuppliersHandler serves the supplier management screen.
type SuppliersHandler struct {
	api *client.Client

	listCall   client.CallState
	mutateCall client.CallState
}

func NewSuppliersHandler(api *client.Client) *SuppliersHandler {
	return &SuppliersHandler{api: api}
}

func (h *SuppliersHandler) List(c echo.Context) error {
	res := h.api.ListSuppliers(c.Request().Context(), &h.listCall)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadGateway)
	}
	return c.JSON(http.StatusOK, map[string]any{"suppliers": res.Data, "total": len(res.Data)})
}

func (h *SuppliersHandler) Create(c echo.Context) error {
	var form domain.SupplierForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.api.CreateSupplier(c.Request().Context(), &h.mutateCall, form)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadRequest)
	}
	return c.JSON(http.StatusCreated, res.Data)
}

func (h *SuppliersHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form domain.SupplierForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.api.UpdateSupplier(c.Request().Context(), &h.mutateCall, id, form)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadRequest)
	}
	return c.JSON(http.StatusOK, res.Data)
}

func (h *SuppliersHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	res := h.api.DeleteSupplier(c.Request().Context(), &h.mutateCall, id)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusBadRequest)
	}
	return c.NoContent(http.StatusNoContent)
}
