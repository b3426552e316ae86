package handler

// This file contains owner-facing reservation management: the per-day
// reservation view, status transitions and manual block entries.  Blocks
// are synthetic reservations whose user id carries the "block:" prefix;
// they hold seats exactly like guest bookings and are created through the
// same conflict-safe path.

import (
    "errors"   // errors.Is comparisons against booking sentinels
    "net/http" // HTTP status codes
    "strconv"  // parsing path parameters
    "strings"  // trimming and normalizing input

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/booking"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/repository"
)

// OwnerReservationHandler groups the dependencies owners need to inspect and
// manage reservations on their restaurants.  The booking engine is used when
// inserting block entries so they obey the same capacity rules as guests.
type OwnerReservationHandler struct {
    RestaurantRepo  *repository.RestaurantRepo
    ReservationRepo *repository.ReservationRepo
    Engine          *booking.Engine
    Attempts        int // bounded restarts after a lost creation race
}

// NewOwnerReservationHandler constructs the handler.  All dependencies must
// be non-nil; attempts below 1 falls back to a single try.
func NewOwnerReservationHandler(restaurantRepo *repository.RestaurantRepo, reservationRepo *repository.ReservationRepo, engine *booking.Engine, attempts int) *OwnerReservationHandler {
    if restaurantRepo == nil || reservationRepo == nil || engine == nil {
        panic("nil dependency passed to NewOwnerReservationHandler")
    }
    if attempts < 1 {
        attempts = 1
    }
    return &OwnerReservationHandler{
        RestaurantRepo:  restaurantRepo,
        ReservationRepo: reservationRepo,
        Engine:          engine,
        Attempts:        attempts,
    }
}

// ownRestaurant verifies the restaurant exists and belongs to the caller.
func (h *OwnerReservationHandler) ownRestaurant(c echo.Context, id, ownerID uint64) error {
    _, err := h.RestaurantRepo.GetByIDAndOwner(c.Request().Context(), id, ownerID)
    return err
}

// ListDayReservations handles GET /v1/restaurants/:id/reservations?date=.
// It returns every reservation of the restaurant-day, canceled rows
// included, so owners see full history for the date.
func (h *OwnerReservationHandler) ListDayReservations(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    date := strings.TrimSpace(c.QueryParam("date"))
    if date == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "date is required"})
    }
    if err := h.ownRestaurant(c, id, ownerID); err != nil {
        if err == repository.ErrRestaurantNotFound || err == repository.ErrForbidden {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    items, err := h.ReservationRepo.ListByRestaurantDate(c.Request().Context(), id, date)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateReservationStatus handles PATCH /v1/reservations/:id.  Owners move
// reservations through their lifecycle (confirmed, completed, canceled).
// Rows are never physically deleted; cancellation frees the seats because
// occupancy listing skips canceled rows.
func (h *OwnerReservationHandler) UpdateReservationStatus(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    resID := strings.TrimSpace(c.Param("id"))
    if resID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var body struct {
        Status string `json:"status"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    status := strings.ToLower(strings.TrimSpace(body.Status))
    if !model.ValidStatus(status) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
    }
    ctx := c.Request().Context()
    res, err := h.ReservationRepo.GetByID(ctx, resID)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    // Ownership runs through the restaurant the reservation belongs to.
    if err := h.ownRestaurant(c, res.RestaurantID, ownerID); err != nil {
        if err == repository.ErrRestaurantNotFound || err == repository.ErrForbidden {
            return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if err := h.ReservationRepo.UpdateStatus(ctx, resID, status); err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    updated, _ := h.ReservationRepo.GetByID(ctx, resID)
    return c.JSON(http.StatusOK, updated)
}

// CreateBlock handles POST /v1/restaurants/:id/blocks.  A block withholds
// seats from the booking grid for a span, for walk-ins or private events.
// It runs the same availability check and atomic insert as a guest booking,
// restarting when the creation race is lost.
func (h *OwnerReservationHandler) CreateBlock(c echo.Context) error {
    ownerID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.ownRestaurant(c, id, ownerID); err != nil {
        if err == repository.ErrRestaurantNotFound || err == repository.ErrForbidden {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    var body struct {
        Date   string `json:"date"`
        Time   string `json:"time"`
        People int    `json:"people"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    blockUser := model.BlockUserPrefix + strconv.FormatUint(ownerID, 10)
    res, err := createWithRetry(c.Request().Context(), h.Engine, h.ReservationRepo, bookingRequest{
        RestaurantID: id,
        UserID:       blockUser,
        Date:         strings.TrimSpace(body.Date),
        Time:         strings.TrimSpace(body.Time),
        People:       body.People,
        Status:       model.StatusBlocked,
    }, h.Attempts)
    if err != nil {
        return writeBookingError(c, err)
    }
    return c.JSON(http.StatusCreated, res)
}

// writeBookingError translates booking and repository sentinels into HTTP
// responses shared by the guest and owner creation paths.
func writeBookingError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, booking.ErrInvalidInput):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid input"})
    case errors.Is(err, booking.ErrRestaurantNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": "restaurant not found"})
    case errors.Is(err, booking.ErrClosed):
        return c.JSON(http.StatusConflict, echo.Map{"error": "closed", "reason": "closed"})
    case errors.Is(err, booking.ErrFull):
        return c.JSON(http.StatusConflict, echo.Map{"error": "full", "reason": "full"})
    case errors.Is(err, repository.ErrRaceLost):
        // All restarts lost their race; the client may simply retry.
        return c.JSON(http.StatusConflict, echo.Map{"error": "race", "reason": "race"})
    }
    return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "storage unavailable"})
}
