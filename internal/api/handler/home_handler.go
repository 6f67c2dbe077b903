package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tienda/inventory-system/internal/auth"
)

// HomeHandler serves the public landing screen.
type HomeHandler struct {
	gate *auth.Gate
}

func NewHomeHandler(gate *auth.Gate) *HomeHandler {
	return &HomeHandler{gate: gate}
}

func (h *HomeHandler) Index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"name":    "tienda inventory",
		"state":   h.gate.Current().String(),
		"catalog": "/catalog",
		"login":   "/login",
	})
}
