package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// upstreamError renders a failed backend result. A backend-reported
// failure passes the backend's message through with failStatus; a
// transport failure (no response at all) answers 502 so the caller can
// tell "the backend said no" from "the backend is down".
func upstreamError(c echo.Context, responded bool, msg string, failStatus int) error {
	if !responded {
		return c.JSON(http.StatusBadGateway, map[string]string{"error": msg})
	}
	return c.JSON(failStatus, map[string]string{"error": msg})
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int, error) {
	var id int
	if err := echo.PathParamsBinder(c).Int("id", &id).BindError(); err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
