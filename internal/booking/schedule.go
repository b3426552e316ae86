package booking

import (
    "time"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

// dateLayout is the calendar date format accepted everywhere in the
// engine ("YYYY-MM-DD").
const dateLayout = "2006-01-02"

// OpeningRange is the half-open [Start, End) minute-of-day interval
// during which a restaurant accepts seating on a given date.
type OpeningRange struct {
    Start int // first bookable minute of day
    End   int // first minute past closing
}

// defaultWeeklySchedule is substituted for restaurants created before
// scheduling existed: every day 10:00-22:00, Friday and Saturday until
// 23:00.  It must never be mutated.
var defaultWeeklySchedule = model.WeeklySchedule{
    0: {Open: "10:00", Close: "22:00"},
    1: {Open: "10:00", Close: "22:00"},
    2: {Open: "10:00", Close: "22:00"},
    3: {Open: "10:00", Close: "22:00"},
    4: {Open: "10:00", Close: "22:00"},
    5: {Open: "10:00", Close: "23:00"},
    6: {Open: "10:00", Close: "23:00"},
}

// ResolveOpeningRange derives the opening interval of a restaurant for a
// calendar date.  It reports false when the restaurant is closed that
// day or when the date or the configured times cannot be parsed; bad
// data fails closed rather than allowing bookings against garbage.
// A window whose close is at or before its open is treated as crossing
// midnight and truncated to [open, 24:00) — the next-day continuation is
// not modeled.
func ResolveOpeningRange(r *model.Restaurant, date string) (OpeningRange, bool) {
    day, err := time.Parse(dateLayout, date)
    if err != nil {
        return OpeningRange{}, false
    }
    schedule := r.WeeklySchedule
    if len(schedule) == 0 {
        schedule = defaultWeeklySchedule
    }
    // time.Weekday numbers Sunday as 0, matching the schedule keys.
    window := schedule[int(day.Weekday())]
    if window == nil {
        return OpeningRange{}, false
    }
    open, ok := ParseTime(window.Open)
    if !ok {
        return OpeningRange{}, false
    }
    closeAt, ok := ParseTime(window.Close)
    if !ok {
        return OpeningRange{}, false
    }
    if closeAt <= open {
        closeAt = minutesPerDay
    }
    return OpeningRange{Start: open, End: closeAt}, true
}
