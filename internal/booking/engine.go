// Package booking implements the table availability engine: opening-hours
// resolution, time-grid quantization, per-slot occupancy aggregation,
// full-span feasibility checking and alternative-slot search.  The engine
// holds no mutable state of its own; storage access goes through the
// injected capabilities below so that individual requests can run
// concurrently and tests can substitute in-memory doubles.  Occupancy is
// recomputed from the reservation listing on every check and never cached
// across requests.
package booking

import (
    "context"
    "errors"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

// Expected booking outcomes.  These are ordinary result values: handlers
// translate them into HTTP responses via errors.Is.  Storage connectivity
// faults are the only errors that propagate outside this taxonomy.
var (
    // ErrRestaurantNotFound indicates the requested restaurant does not exist.
    ErrRestaurantNotFound = errors.New("restaurant not found")
    // ErrClosed indicates the requested span does not fit entirely inside
    // the restaurant's opening window on that date.
    ErrClosed = errors.New("restaurant closed for the requested span")
    // ErrFull indicates the span fits the opening window but at least one
    // grid slot would exceed the seating capacity.
    ErrFull = errors.New("restaurant full for the requested span")
    // ErrInvalidInput indicates a malformed date or time, a non-positive
    // party size, or negative grid/duration configuration.  Malformed input
    // is rejected outright, never coerced to a default.
    ErrInvalidInput = errors.New("invalid input")
)

// RestaurantSource supplies restaurant configuration by id.  It returns
// (nil, nil) when no restaurant with the given id exists; errors are
// reserved for storage faults.  The engine never mutates the returned
// value and holds no reference to it beyond the current request.
type RestaurantSource interface {
    Restaurant(ctx context.Context, id uint64) (*model.Restaurant, error)
}

// ReservationLister supplies the reservations of one restaurant-day.  The
// listing is trusted as ground truth for occupancy: every returned record
// consumes capacity, so implementations must exclude canceled rows.
// Ordering only affects iteration determinism, not the aggregate.
type ReservationLister interface {
    ListActiveByRestaurantDate(ctx context.Context, restaurantID uint64, date string) ([]model.Reservation, error)
}

// Engine decides whether proposed reservations can be accepted and
// proposes nearby alternatives when they cannot.
type Engine struct {
    restaurants  RestaurantSource
    reservations ReservationLister
}

// NewEngine constructs an Engine with the provided storage capabilities.
// Both dependencies must be non-nil.
func NewEngine(restaurants RestaurantSource, reservations ReservationLister) *Engine {
    if restaurants == nil || reservations == nil {
        panic("nil dependency passed to NewEngine")
    }
    return &Engine{restaurants: restaurants, reservations: reservations}
}
