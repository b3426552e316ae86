package booking

import (
    "context"
    "fmt"
    "sort"
    "time"
)

// maxSuggestions caps the number of alternatives ever returned,
// regardless of the caller-requested maximum.  Keeping the list short is
// a product decision: guests pick from a compact set of nearby times.
const maxSuggestions = 4

// ListAvailableSlotsAround searches for feasible start times near a
// requested center time.  The search expands symmetrically from the
// grid-snapped center in both directions at once, one grid step per
// round, testing every candidate with the same rule CheckAvailability
// applies.  It stops when enough slots are found, when both directions
// have left the bounded window, or when the offset exceeds
// windowMinutes.  The result is deduplicated, ordered by absolute
// distance from the center (ties broken by the earlier time) and
// truncated to at most maxSuggestions entries.
//
// A date on which the restaurant is closed yields an empty list, not an
// error: there is simply nothing to propose.
func (e *Engine) ListAvailableSlotsAround(ctx context.Context, restaurantID uint64, date, centerTime string, people, windowMinutes, maxSlots int) ([]string, error) {
    if people <= 0 || windowMinutes < 0 {
        return nil, ErrInvalidInput
    }
    center, ok := ParseTime(centerTime)
    if !ok {
        return nil, ErrInvalidInput
    }
    if _, err := time.Parse(dateLayout, date); err != nil {
        return nil, ErrInvalidInput
    }
    r, err := e.restaurants.Restaurant(ctx, restaurantID)
    if err != nil {
        return nil, fmt.Errorf("load restaurant: %w", err)
    }
    if r == nil {
        return nil, ErrRestaurantNotFound
    }
    rng, open := ResolveOpeningRange(r, date)
    if !open {
        return []string{}, nil
    }
    occ, err := e.ComputeOccupancy(ctx, r, date)
    if err != nil {
        return nil, err
    }

    step := r.SlotInterval()
    center = SnapDown(center, step)

    // Candidates must start inside the opening window, leave room for the
    // full service span before closing, and stay within the search window.
    earliest := rng.Start
    if from := center - windowMinutes; from > earliest {
        earliest = from
    }
    latest := rng.End - r.ServiceDuration()
    if to := center + windowMinutes; to < latest {
        latest = to
    }

    limit := maxSlots
    if limit <= 0 || limit > maxSuggestions {
        limit = maxSuggestions
    }

    type candidate struct {
        minute int
        dist   int
    }
    var found []candidate
    seen := make(map[int]struct{})
    for delta := 0; delta <= windowMinutes; delta += step {
        if len(found) >= limit {
            break
        }
        before, after := center-delta, center+delta
        if before < earliest && after > latest {
            break
        }
        for _, m := range [2]int{before, after} {
            if m < earliest || m > latest {
                continue
            }
            if _, dup := seen[m]; dup {
                continue
            }
            seen[m] = struct{}{}
            if checkSpan(r, rng, occ, m, people) == nil {
                found = append(found, candidate{minute: m, dist: delta})
            }
        }
    }

    sort.Slice(found, func(i, j int) bool {
        if found[i].dist != found[j].dist {
            return found[i].dist < found[j].dist
        }
        return found[i].minute < found[j].minute
    })
    if len(found) > limit {
        found = found[:limit]
    }
    slots := make([]string, 0, len(found))
    for _, c := range found {
        slots = append(slots, FormatTime(c.minute))
    }
    return slots, nil
}
