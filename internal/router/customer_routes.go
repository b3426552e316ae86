package router

import (
    "github.com/labstack/echo/v4"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/handler"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/middleware"
)

// RegisterCustomer registers customer-scoped endpoints under /v1.  All
// routes require a valid JWT and the CUSTOMER role.  Customers create
// reservations, list their own bookings and cancel them.  The optional
// limiter additionally rate-limits the booking route; pass nil to skip it.
func RegisterCustomer(e *echo.Echo, h *handler.CustomerHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("CUSTOMER"),
    )
    var mw []echo.MiddlewareFunc
    if limiter != nil {
        mw = append(mw, limiter)
    }
    // Note: GET /v1/restaurants/:id/availability and /slots are registered
    // on the public router so that guests can probe before registering.
    // Customer-specific endpoints begin here.
    g.POST("/restaurants/:id/reservations", h.CreateReservation, mw...)
    g.GET("/my-reservations", h.ListReservations)

    // Reservation detail and cancellation for the booking owner.
    g.GET("/reservations/:id", h.GetReservation)
    g.DELETE("/reservations/:id", h.CancelReservation)
}
