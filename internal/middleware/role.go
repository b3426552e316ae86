package middleware // declare the middleware package

import (
    "net/http" // HTTP status codes

    "github.com/labstack/echo/v4" // Echo framework types
)

// RequireRole returns middleware that permits the request only when the
// authenticated user's role matches one of the allowed roles.  It must run
// after JWTAuth, which places the role claim in the context.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            role, _ := c.Get("role").(string)
            for _, allowed := range roles {
                if role == allowed {
                    return next(c)
                }
            }
            return c.JSON(http.StatusForbidden, echo.Map{"error": "insufficient role"})
        }
    }
}
