package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tienda/inventory-system/internal/auth"
	"github.com/tienda/inventory-system/internal/metrics"
)

const loginPath = "/login"

// Guard is the protected-route wrapper. Its decision is strictly
// three-way:
//
//   - gate still initializing: answer 503 with a neutral waiting body.
//     Redirecting here would bounce a valid persisted session to the
//     login screen on every restart.
//   - session missing or role mismatch: redirect to the login entry
//     point.
//   - authorized: pass through.
func Guard(gate *auth.Gate, requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if gate.Current() == auth.StateInitializing {
				metrics.GuardDecisionsTotal.WithLabelValues("pending").Inc()
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status": "starting",
				})
			}

			if !gate.IsAuthorized(requiredRole) {
				metrics.GuardDecisionsTotal.WithLabelValues("denied").Inc()
				return c.Redirect(http.StatusFound, loginPath)
			}

			metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
