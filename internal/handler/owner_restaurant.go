package handler // handler package contains owner-specific restaurant handlers

import (
    "database/sql" // sql is imported for sentinel errors like sql.ErrNoRows
    "net/http"     // http provides status code constants
    "strconv"      // strconv parses string identifiers to numeric types
    "strings"      // strings offers trimming utilities

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/booking"    // booking validates schedule clock strings
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"      // model holds database structs
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/repository" // repository holds database access
)

// restaurantBody is the JSON payload for creating or updating a restaurant.
// WeeklySchedule may be omitted entirely, in which case the built-in default
// hours apply.  A day missing from the map, or mapped to null, is closed.
type restaurantBody struct {
    Name                   string               `json:"name"`
    Capacity               int                  `json:"capacity"`
    SlotIntervalMinutes    int                  `json:"slot_interval_minutes"`
    ServiceDurationMinutes int                  `json:"service_duration_minutes"`
    WeeklySchedule         model.WeeklySchedule `json:"weekly_schedule"`
}

// validateRestaurantBody normalizes and checks the payload, returning an
// error message suitable for the client or "" when the payload is sound.
func validateRestaurantBody(b *restaurantBody) string {
    b.Name = strings.TrimSpace(b.Name)
    if b.Name == "" {
        return "name is required"
    }
    if b.Capacity <= 0 {
        return "capacity must be positive"
    }
    if b.SlotIntervalMinutes < 0 || b.ServiceDurationMinutes < 0 {
        return "slot interval and service duration must not be negative"
    }
    return validateSchedule(b.WeeklySchedule)
}

// validateSchedule checks day keys and clock strings.  Windows crossing
// midnight are accepted; the availability engine truncates them at 24:00.
func validateSchedule(s model.WeeklySchedule) string {
    for day, win := range s {
        if day < 0 || day > 6 {
            return "schedule day must be between 0 (Sunday) and 6 (Saturday)"
        }
        if win == nil { // explicit null marks a closed day
            continue
        }
        if _, ok := booking.ParseTime(win.Open); !ok {
            return "schedule open time must be HH:mm"
        }
        if _, ok := booking.ParseTime(win.Close); !ok {
            return "schedule close time must be HH:mm"
        }
    }
    return ""
}

// CreateRestaurant handles POST /v1/restaurants and creates a new
// restaurant for the authenticated owner.
func (h *OwnerHandler) CreateRestaurant(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var body restaurantBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := validateRestaurantBody(&body); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    rest := &model.Restaurant{
        OwnerID:                ownerID,
        Name:                   body.Name,
        Capacity:               body.Capacity,
        SlotIntervalMinutes:    body.SlotIntervalMinutes,
        ServiceDurationMinutes: body.ServiceDurationMinutes,
        WeeklySchedule:         body.WeeklySchedule,
    }
    if err := h.RestaurantRepo.Create(c.Request().Context(), rest); err != nil {
        if strings.Contains(err.Error(), "1062") { // duplicate name for this owner
            return c.JSON(http.StatusConflict, echo.Map{"error": "restaurant name already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create restaurant"})
    }
    return c.JSON(http.StatusCreated, rest)
}

// UpdateRestaurant handles PUT/PATCH /v1/restaurants/:id and updates
// the restaurant's name, capacity and grid configuration.
func (h *OwnerHandler) UpdateRestaurant(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body restaurantBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := validateRestaurantBody(&body); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    if _, err := h.RestaurantRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID); err != nil {
        if err == repository.ErrRestaurantNotFound || err == repository.ErrForbidden {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    rest := &model.Restaurant{
        ID:                     id,
        OwnerID:                ownerID,
        Name:                   body.Name,
        Capacity:               body.Capacity,
        SlotIntervalMinutes:    body.SlotIntervalMinutes,
        ServiceDurationMinutes: body.ServiceDurationMinutes,
        WeeklySchedule:         body.WeeklySchedule,
    }
    if err := h.RestaurantRepo.UpdateByIDAndOwner(c.Request().Context(), rest); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
        }
        if strings.Contains(err.Error(), "1062") {
            return c.JSON(http.StatusConflict, echo.Map{"error": "restaurant name already exists"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    updated, _ := h.RestaurantRepo.GetByID(c.Request().Context(), id)
    return c.JSON(http.StatusOK, updated)
}

// ListMyRestaurants handles GET /v1/owner/restaurants and returns all
// restaurants owned by the authenticated user.
func (h *OwnerHandler) ListMyRestaurants(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    items, err := h.RestaurantRepo.ListByOwner(c.Request().Context(), ownerID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateSchedule handles PUT /v1/restaurants/:id/schedule and replaces
// the weekly opening schedule.  Sending an empty object reverts the
// restaurant to the built-in default hours.
func (h *OwnerHandler) UpdateSchedule(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var body struct {
        WeeklySchedule model.WeeklySchedule `json:"weekly_schedule"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if msg := validateSchedule(body.WeeklySchedule); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }
    if err := h.RestaurantRepo.UpdateSchedule(c.Request().Context(), id, ownerID, body.WeeklySchedule); err != nil {
        if err == sql.ErrNoRows {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    updated, _ := h.RestaurantRepo.GetByID(c.Request().Context(), id)
    return c.JSON(http.StatusOK, updated)
}
