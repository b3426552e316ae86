package booking

import (
    "context"
    "fmt"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

// ComputeOccupancy aggregates the seats already committed on one
// restaurant-day into a mapping from grid-aligned "HH:mm" slot to seat
// count.  Each reservation occupies every grid slot from its snapped
// start for the configured service duration.  The map is request-scoped
// and rebuilt on every call, so it cannot go stale; aggregation is
// commutative, so the listing order does not matter.
//
// Cost is O(reservations x duration/step), which stays small because
// both factors are bounded to a single restaurant-day.
func (e *Engine) ComputeOccupancy(ctx context.Context, r *model.Restaurant, date string) (map[string]int, error) {
    list, err := e.reservations.ListActiveByRestaurantDate(ctx, r.ID, date)
    if err != nil {
        return nil, fmt.Errorf("list reservations: %w", err)
    }
    step := r.SlotInterval()
    duration := r.ServiceDuration()
    occ := make(map[string]int)
    for _, res := range list {
        start, ok := ParseTime(res.Time)
        if !ok {
            // A row with a malformed time cannot be placed on the grid;
            // it neither blocks nor consumes capacity.
            continue
        }
        start = SnapDown(start, step)
        end := start + duration
        for t := start; t < end && t < minutesPerDay; t += step {
            occ[FormatTime(t)] += res.People
        }
    }
    return occ, nil
}
