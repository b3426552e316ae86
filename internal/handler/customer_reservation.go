package handler

import (
    "context"  // contexts passed down to the engine and repositories
    "errors"   // errors.Is comparisons against sentinels
    "net/http" // HTTP status codes
    "strconv"  // parsing path parameters
    "strings"  // trimming request fields
    "time"     // timestamps for the published event

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/booking"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/queue"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/repository"
    queuepublisher "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/service"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/utils"
)

// CustomerHandler groups the dependencies guests need to book tables and
// manage their own reservations.  All methods assume JWT authentication and
// role validation already ran in middleware.
type CustomerHandler struct {
    RestaurantRepo  *repository.RestaurantRepo
    ReservationRepo *repository.ReservationRepo
    Engine          *booking.Engine
    Attempts        int // bounded restarts after a lost creation race
}

// NewCustomerHandler constructs a new CustomerHandler with the provided
// dependencies.  All of them must be non-nil.
func NewCustomerHandler(restaurantRepo *repository.RestaurantRepo, reservationRepo *repository.ReservationRepo, engine *booking.Engine, attempts int) *CustomerHandler {
    if restaurantRepo == nil || reservationRepo == nil || engine == nil {
        panic("nil dependency passed to NewCustomerHandler")
    }
    if attempts < 1 {
        attempts = 1
    }
    return &CustomerHandler{
        RestaurantRepo:  restaurantRepo,
        ReservationRepo: reservationRepo,
        Engine:          engine,
        Attempts:        attempts,
    }
}

// bookingRequest carries one attempt of the check-then-create sequence.
type bookingRequest struct {
    RestaurantID uint64
    UserID       string
    ID           string // optional client-supplied reservation id
    Date         string
    Time         string
    People       int
    Status       string
}

// createWithRetry runs the full check-then-create sequence with bounded
// restarts.  The availability check and the insert are not linearized by any
// lock; the insert's key uniqueness is the only atomic precondition, so a
// lost race means the world may have changed and the whole sequence starts
// over.  When the caller supplied its own reservation id a lost race is
// final: retrying the same key cannot succeed.
func createWithRetry(ctx context.Context, engine *booking.Engine, repo *repository.ReservationRepo, req bookingRequest, attempts int) (*model.Reservation, error) {
    if req.ID != "" {
        attempts = 1
    }
    var lastErr error
    for i := 0; i < attempts; i++ {
        if err := engine.CheckAvailability(ctx, req.RestaurantID, req.Date, req.Time, req.People); err != nil {
            return nil, err
        }
        id := req.ID
        if id == "" {
            minted, err := utils.RandomHex(16)
            if err != nil {
                return nil, err
            }
            id = minted
        }
        res := &model.Reservation{
            ID:           id,
            RestaurantID: req.RestaurantID,
            UserID:       req.UserID,
            Date:         req.Date,
            Time:         req.Time,
            People:       req.People,
            Status:       req.Status,
        }
        err := repo.Create(ctx, res)
        if err == nil {
            return res, nil
        }
        if !errors.Is(err, repository.ErrRaceLost) {
            return nil, err
        }
        lastErr = err
    }
    return nil, lastErr
}

// CreateReservation handles POST /v1/restaurants/:id/reservations.  It runs
// the bounded check-then-create sequence; when the restaurant is full the
// 409 response carries up to four alternative slots around the requested
// time.  On success a reservation.booked event is published best-effort.
func (h *CustomerHandler) CreateReservation(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    restaurantID, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || restaurantID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid restaurant id"})
    }
    var body struct {
        ReservationID string `json:"reservation_id"` // optional idempotency key
        Date          string `json:"date"`
        Time          string `json:"time"`
        People        int    `json:"people"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    req := bookingRequest{
        RestaurantID: restaurantID,
        UserID:       strconv.FormatUint(userID, 10),
        ID:           strings.TrimSpace(body.ReservationID),
        Date:         strings.TrimSpace(body.Date),
        Time:         strings.TrimSpace(body.Time),
        People:       body.People,
        Status:       model.StatusNew,
    }
    ctx := c.Request().Context()
    res, err := createWithRetry(ctx, h.Engine, h.ReservationRepo, req, h.Attempts)
    if err != nil {
        if errors.Is(err, booking.ErrFull) {
            // Offer nearby alternatives alongside the rejection.  The search
            // shares the rejection's occupancy rules, so every suggestion
            // would be accepted if requested right now.
            slots, sErr := h.Engine.ListAvailableSlotsAround(ctx, restaurantID, req.Date, req.Time, req.People, 120, 4)
            if sErr != nil {
                slots = []string{}
            }
            return c.JSON(http.StatusConflict, echo.Map{
                "error":        "full",
                "reason":       "full",
                "alternatives": slots,
            })
        }
        return writeBookingError(c, err)
    }

    // Best-effort event; booking success never depends on the broker.
    ev := queue.ReservationBookedEvent{
        ReservationID: res.ID,
        RestaurantID:  res.RestaurantID,
        UserID:        res.UserID,
        Date:          res.Date,
        Time:          res.Time,
        People:        res.People,
        BookedAt:      time.Now().UTC().Format(time.RFC3339),
    }
    _ = queuepublisher.PublishReservationBooked(ctx, ev)

    return c.JSON(http.StatusCreated, res)
}

// ListReservations handles GET /v1/my-reservations.  It returns all
// reservations created by the current user, newest first.  When no
// reservations exist, it returns an empty array.
func (h *CustomerHandler) ListReservations(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    items, err := h.ReservationRepo.ListByUser(c.Request().Context(), strconv.FormatUint(userID, 10))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetReservation handles GET /v1/reservations/:id.  It returns a single
// reservation of the authenticated user; 404 when missing, 403 when the
// reservation belongs to someone else.
func (h *CustomerHandler) GetReservation(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    resID := strings.TrimSpace(c.Param("id"))
    if resID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    res, err := h.ReservationRepo.GetByID(c.Request().Context(), resID)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
    }
    if res.UserID != strconv.FormatUint(userID, 10) {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }
    return c.JSON(http.StatusOK, echo.Map{"item": res})
}

// CancelReservation handles DELETE /v1/reservations/:id.  Cancellation is a
// status transition, never a physical delete; the occupancy listing skips
// canceled rows so the seats free up immediately.
func (h *CustomerHandler) CancelReservation(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    resID := strings.TrimSpace(c.Param("id"))
    if resID == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    ctx := c.Request().Context()
    res, err := h.ReservationRepo.GetByID(ctx, resID)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch reservation"})
    }
    if res.UserID != strconv.FormatUint(userID, 10) {
        return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
    }
    if res.Status == model.StatusCanceled {
        return c.NoContent(http.StatusNoContent) // already canceled
    }
    if err := h.ReservationRepo.UpdateStatus(ctx, resID, model.StatusCanceled); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
