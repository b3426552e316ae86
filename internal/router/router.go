package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/handler"    // handlers implementing business logic
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/middleware" // JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Load balancers and monitoring systems use this endpoint to verify the
    // service is up.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies the
// necessary middleware.  Unauthenticated operations live under /v1/auth,
// while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    // Session-less operations: register, login, refresh.
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Refresh rotates the refresh token; refresh-access only issues a new
    // access token.
    g.POST("/refresh", a.Refresh)
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout accepts either an Authorization header (revoke all sessions) or
    // a refresh_token body (revoke one session), so it needs no middleware.
    g.POST("/logout", a.Logout)

    // Protected group: any valid role may ask who it is.
    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole("OWNER", "CUSTOMER"))
    auth.GET("/me", a.Me)

    // Alias outside the auth prefix for clients that POST /v1/logout.
    e.POST("/v1/logout", a.Logout)
}

// RegisterPublic registers unauthenticated browse and availability endpoints
// on the provided Echo instance.  The availability and slot-search routes
// recompute occupancy per request, so the optional rate limiter shields the
// store from probe storms; pass nil when Redis is not configured.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, limiter echo.MiddlewareFunc) {
    var mw []echo.MiddlewareFunc
    if limiter != nil {
        mw = append(mw, limiter)
    }
    // Expose list of all restaurants
    e.GET("/v1/restaurants", p.GetPublicRestaurants)
    // Restaurant details by id
    e.GET("/v1/restaurants/:id", p.GetPublicRestaurant)
    // Availability probe for a date, time and party size
    e.GET("/v1/restaurants/:id/availability", p.GetAvailability, mw...)
    // Alternative bookable slots around a requested time
    e.GET("/v1/restaurants/:id/slots", p.GetSlots, mw...)
}
