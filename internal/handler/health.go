package handler // declare the handler package

import (
    "net/http" // HTTP status codes

    "github.com/labstack/echo/v4" // Echo framework types
)

// Health responds with a simple status payload.  Load balancers and uptime
// probes hit this route; it performs no storage access.
func Health(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
