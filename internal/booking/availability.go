package booking

import (
    "context"
    "fmt"
    "time"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

// CheckAvailability validates one candidate reservation (date, time,
// party size) against the restaurant's opening window and seating
// capacity across the full service span.  It returns nil when the
// candidate can be accepted, one of the package sentinel errors for the
// expected rejection reasons, or a wrapped storage error.
//
// The requested time is snapped down to the grid before checking, and
// the span [start, start+duration) must fit entirely inside the opening
// window; partial overlap is rejected as closed.
func (e *Engine) CheckAvailability(ctx context.Context, restaurantID uint64, date, timeOfDay string, people int) error {
    if people <= 0 {
        return ErrInvalidInput
    }
    requested, ok := ParseTime(timeOfDay)
    if !ok {
        return ErrInvalidInput
    }
    if _, err := time.Parse(dateLayout, date); err != nil {
        return ErrInvalidInput
    }
    r, err := e.restaurants.Restaurant(ctx, restaurantID)
    if err != nil {
        return fmt.Errorf("load restaurant: %w", err)
    }
    if r == nil {
        return ErrRestaurantNotFound
    }
    if r.Capacity < 0 || r.SlotIntervalMinutes < 0 || r.ServiceDurationMinutes < 0 {
        return ErrInvalidInput
    }
    rng, open := ResolveOpeningRange(r, date)
    if !open {
        return ErrClosed
    }
    occ, err := e.ComputeOccupancy(ctx, r, date)
    if err != nil {
        return err
    }
    return checkSpan(r, rng, occ, SnapDown(requested, r.SlotInterval()), people)
}

// checkSpan applies the full feasibility rule for a single grid-snapped
// start minute against a precomputed occupancy map: the whole service
// span must fit inside the opening range, and adding the party must not
// exceed capacity at any grid slot it touches.  The slot walk steps from
// start itself, so a service duration that is not a multiple of the grid
// step still works.
func checkSpan(r *model.Restaurant, rng OpeningRange, occ map[string]int, start, people int) error {
    end := start + r.ServiceDuration()
    if start < rng.Start || end > rng.End {
        return ErrClosed
    }
    step := r.SlotInterval()
    for t := start; t < end; t += step {
        if occ[FormatTime(t)]+people > r.Capacity {
            return ErrFull
        }
    }
    return nil
}
