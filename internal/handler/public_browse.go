// Package handler exposes HTTP handlers for both authenticated and public
// endpoints.  This file defines the public browsing and availability API.
// These routes let unauthenticated guests browse restaurants, probe whether
// a table is free and fetch alternative slots without an account.  Sensitive
// fields (owner IDs, timestamps) are filtered from responses.

package handler

import (
    "errors"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/booking"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/repository"
)

// PublicHandler aggregates what unauthenticated browsing needs.  It produces
// sanitized responses suitable for public consumption.
type PublicHandler struct {
    RestaurantRepo *repository.RestaurantRepo // provides access to restaurant data
    Engine         *booking.Engine            // answers availability questions
}

// PublicRestaurant represents a restaurant exposed via the public API.  It
// contains only safe fields; the weekly schedule is included so clients can
// render opening hours.
type PublicRestaurant struct {
    ID                     uint64               `json:"id"`
    Name                   string               `json:"name"`
    Capacity               int                  `json:"capacity"`
    SlotIntervalMinutes    int                  `json:"slot_interval_minutes"`
    ServiceDurationMinutes int                  `json:"service_duration_minutes"`
    WeeklySchedule         model.WeeklySchedule `json:"weekly_schedule,omitempty"`
}

func publicView(r *model.Restaurant) PublicRestaurant {
    return PublicRestaurant{
        ID:                     r.ID,
        Name:                   r.Name,
        Capacity:               r.Capacity,
        SlotIntervalMinutes:    r.SlotInterval(),
        ServiceDurationMinutes: r.ServiceDuration(),
        WeeklySchedule:         r.WeeklySchedule,
    }
}

// GetPublicRestaurants returns all restaurants for unauthenticated users.
// Response JSON contains an "items" array of PublicRestaurant.
func (h *PublicHandler) GetPublicRestaurants(c echo.Context) error {
    items, err := h.RestaurantRepo.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]PublicRestaurant, 0, len(items))
    for _, r := range items {
        out = append(out, publicView(r))
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetPublicRestaurant returns a single restaurant by id.
func (h *PublicHandler) GetPublicRestaurant(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    r, err := h.RestaurantRepo.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrRestaurantNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, publicView(r))
}

// availabilityQuery parses the shared date/time/people query parameters.
func availabilityQuery(c echo.Context) (date, timeOfDay string, people int, errMsg string) {
    date = strings.TrimSpace(c.QueryParam("date"))
    timeOfDay = strings.TrimSpace(c.QueryParam("time"))
    peopleStr := strings.TrimSpace(c.QueryParam("people"))
    if date == "" || timeOfDay == "" || peopleStr == "" {
        return "", "", 0, "date, time and people are required"
    }
    n, err := strconv.Atoi(peopleStr)
    if err != nil {
        return "", "", 0, "people must be a number"
    }
    return date, timeOfDay, n, ""
}

// GetAvailability handles GET /v1/restaurants/:id/availability.  It answers
// whether the requested party fits at the requested time; when the answer is
// "full" the response carries alternative slots around the requested time.
func (h *PublicHandler) GetAvailability(c echo.Context) error {
    restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    date, timeOfDay, people, msg := availabilityQuery(c)
    if msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    ctx := c.Request().Context()
    err = h.Engine.CheckAvailability(ctx, restaurantID, date, timeOfDay, people)
    switch {
    case err == nil:
        return c.JSON(http.StatusOK, echo.Map{"available": true})
    case errors.Is(err, booking.ErrInvalidInput):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid input"})
    case errors.Is(err, booking.ErrRestaurantNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
    case errors.Is(err, booking.ErrClosed):
        return c.JSON(http.StatusOK, echo.Map{"available": false, "reason": "closed"})
    case errors.Is(err, booking.ErrFull):
        slots, sErr := h.Engine.ListAvailableSlotsAround(ctx, restaurantID, date, timeOfDay, people, 120, 4)
        if sErr != nil {
            slots = []string{}
        }
        return c.JSON(http.StatusOK, echo.Map{"available": false, "reason": "full", "alternatives": slots})
    }
    return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "storage unavailable"})
}

// GetSlots handles GET /v1/restaurants/:id/slots.  It returns bookable start
// times around the requested time, expanding symmetrically and capped at
// four results.  Optional query parameters: window (minutes, default 120)
// and max (result cap, default 4).
func (h *PublicHandler) GetSlots(c echo.Context) error {
    restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    date, timeOfDay, people, msg := availabilityQuery(c)
    if msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    window := 120
    if w := strings.TrimSpace(c.QueryParam("window")); w != "" {
        n, err := strconv.Atoi(w)
        if err != nil || n < 0 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "window must be a non-negative number"})
        }
        window = n
    }
    maxSlots := 4
    if m := strings.TrimSpace(c.QueryParam("max")); m != "" {
        n, err := strconv.Atoi(m)
        if err != nil || n <= 0 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "max must be a positive number"})
        }
        maxSlots = n
    }
    slots, err := h.Engine.ListAvailableSlotsAround(c.Request().Context(), restaurantID, date, timeOfDay, people, window, maxSlots)
    if err != nil {
        switch {
        case errors.Is(err, booking.ErrInvalidInput):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid input"})
        case errors.Is(err, booking.ErrRestaurantNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
        }
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "storage unavailable"})
    }
    return c.JSON(http.StatusOK, echo.Map{"slots": slots})
}
