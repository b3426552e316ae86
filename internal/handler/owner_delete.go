// Package handler defines HTTP handlers for authenticated OWNER operations.
// This file implements the DELETE endpoint allowing an owner to remove a
// restaurant they own.  Deletion is refused while reservations still
// consume capacity; canceled history is cleaned up in the repository
// layer together with the restaurant row.
package handler

import (
    "database/sql" // sentinel errors such as sql.ErrNoRows
    "net/http"     // status code constants
    "strconv"      // string-to-integer conversion

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/repository" // repository defines error types
    "github.com/labstack/echo/v4"                                                                // echo provides request/response handling
)

// DeleteRestaurant handles DELETE /v1/restaurants/:id.  A successful
// deletion returns 204 No Content.  404 when the restaurant does not
// exist, 403 when it belongs to another owner and 409 when non-canceled
// reservations still reference it.
func (h *OwnerHandler) DeleteRestaurant(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    err = h.RestaurantRepo.DeleteByIDAndOwner(c.Request().Context(), id, ownerID)
    if err != nil {
        switch err {
        case sql.ErrNoRows:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
        case repository.ErrForbidden:
            return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
        case repository.ErrConflict:
            return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete restaurant with reservations"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
        }
    }
    return c.NoContent(http.StatusNoContent)
}
