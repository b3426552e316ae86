package handler // handler defines http handlers

import (
    "errors"  // errors provides sentinel values used in getUserID
    "strconv" // strconv converts strings to numeric types

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/repository" // repository holds data access layer
    "github.com/labstack/echo/v4"                                                                // echo defines request context types
)

// OwnerHandler bundles repositories for owners to manage their restaurants,
// opening schedules, block entries and reservation day views.
type OwnerHandler struct {
    RestaurantRepo  *repository.RestaurantRepo  // restaurant persistence
    ReservationRepo *repository.ReservationRepo // reservation persistence
}

// NewOwnerHandler constructs a new OwnerHandler and panics if any dependency is nil.
func NewOwnerHandler(restaurantRepo *repository.RestaurantRepo, reservationRepo *repository.ReservationRepo) *OwnerHandler {
    if restaurantRepo == nil || reservationRepo == nil {
        panic("nil repository passed to NewOwnerHandler")
    }
    return &OwnerHandler{
        RestaurantRepo:  restaurantRepo,
        ReservationRepo: reservationRepo,
    }
}

// getUserID extracts the user_id from echo.Context and converts it to uint64.
// JWT numeric claims decode as float64, but tolerate other numeric shapes
// and numeric strings.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}
