package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tienda/inventory-system/internal/auth"
	"github.com/tienda/inventory-system/internal/client"
	"github.com/tienda/inventory-system/internal/metrics"
)

// AuthHandler serves the login screen and the login/logout transitions.
type AuthHandler struct {
	api  *client.Client
	gate *auth.Gate

	loginCall client.CallState
}

func NewAuthHandler(api *client.Client, gate *auth.Gate) *AuthHandler {
	return &AuthHandler{api: api, gate: gate}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User any `json:"user"`
}

// LoginPage is the login entry point the guard redirects to.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if h.gate.IsAuthenticated() {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  h.gate.Current().String(),
		"message": "sign in with POST /login",
	})
}

// Login validates the form locally, exchanges the credentials with the
// backend and, on success, opens the session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		// Client-local validation failure: no backend call is made.
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res := h.api.Login(c.Request().Context(), &h.loginCall, req.Email, req.Password)
	if !res.OK {
		return upstreamError(c, res.Responded, res.Message, http.StatusUnauthorized)
	}

	if err := h.gate.Login(c.Request().Context(), res.Data.Token, res.Data.User); err != nil {
		return err
	}

	metrics.SessionTransitionsTotal.WithLabelValues("login").Inc()
	return c.JSON(http.StatusOK, loginResponse{User: res.Data.User})
}

// Logout closes the session. Safe to call when already anonymous.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.gate.Logout(c.Request().Context()); err != nil {
		return err
	}
	metrics.SessionTransitionsTotal.WithLabelValues("logout").Inc()
	return c.NoContent(http.StatusNoContent)
}
