package router // router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/handler"    // owner handlers
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/middleware" // JWT + role middlewares
)

// RegisterOwner registers OWNER-scoped restaurant management endpoints under
// /v1.  All routes require a valid JWT and OWNER role.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, jwtSecret string) {
    // Attach middlewares at group construction time for clarity.
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("OWNER"),
    )

    // ---- Restaurants ----
    g.POST("/restaurants", o.CreateRestaurant)
    // NOTE: Listing restaurants is handled by the public browse API at
    // GET /v1/restaurants; the owner-scoped listing lives under /v1/owner
    // to avoid a route conflict with the public handler.
    g.GET("/owner/restaurants", o.ListMyRestaurants)
    g.PUT("/restaurants/:id", o.UpdateRestaurant)
    g.PATCH("/restaurants/:id", o.UpdateRestaurant) // allow partial/semantic updates via PATCH as well
    g.DELETE("/restaurants/:id", o.DeleteRestaurant)

    // ---- Opening schedule ----
    g.PUT("/restaurants/:id/schedule", o.UpdateSchedule)
}

// RegisterOwnerReservations registers routes that allow owners to manage
// reservations: the per-day view, status transitions and block entries.
// All routes are mounted under /v1 and require a JWT as well as the OWNER
// role.
func RegisterOwnerReservations(e *echo.Echo, h *handler.OwnerReservationHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole("OWNER"),
    )
    // Day view: every reservation of the restaurant-day, history included
    g.GET("/restaurants/:id/reservations", h.ListDayReservations)
    // Move a reservation through its lifecycle
    g.PATCH("/reservations/:id", h.UpdateReservationStatus)
    // Withhold seats from the booking grid
    g.POST("/restaurants/:id/blocks", h.CreateBlock)
}
