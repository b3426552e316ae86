package model

import "time"

// Default values applied when a restaurant was created before the
// corresponding setting existed.  A zero value in the database means
// "unset" and is normalized through the accessor methods below.
const (
    DefaultSlotIntervalMinutes    = 15  // grid step used for quantizing times
    DefaultServiceDurationMinutes = 120 // assumed seat occupation per reservation
)

// OpeningWindow describes the open and close times of a restaurant on a
// single day of the week.  Both values are "HH:mm" strings in the
// restaurant's local time.  When Close is less than or equal to Open the
// window is treated as crossing midnight and is truncated to end-of-day
// for same-day booking.
type OpeningWindow struct {
    Open  string `json:"open"`  // opening time, e.g. "10:00"
    Close string `json:"close"` // closing time, e.g. "22:00"
}

// WeeklySchedule maps a day of week (0=Sunday .. 6=Saturday) to its
// opening window.  A day that is absent or mapped to nil is closed.
// An empty (or nil) schedule means the restaurant predates scheduling
// and a built-in default is substituted by the availability engine.
type WeeklySchedule map[int]*OpeningWindow

// Restaurant represents a venue accepting table reservations.  It
// corresponds to a row in the `restaurants` table; the weekly schedule
// is stored as a JSON column.
//
// Fields:
//  ID                     – primary key identifier.
//  OwnerID                – user ID of the restaurant owner.
//  Name                   – display name of the restaurant.
//  Capacity               – maximum seats occupied simultaneously.
//  SlotIntervalMinutes    – booking grid step in minutes (0 = default 15).
//  ServiceDurationMinutes – assumed service length in minutes (0 = default 120).
//  WeeklySchedule         – per-day opening windows (nil = built-in default).
//  CreatedAt              – creation timestamp.
//  UpdatedAt              – last update timestamp.
type Restaurant struct {
    ID                     uint64         // restaurants.id
    OwnerID                uint64         // restaurants.owner_id
    Name                   string         // restaurants.name
    Capacity               int            // restaurants.capacity
    SlotIntervalMinutes    int            // restaurants.slot_interval_minutes
    ServiceDurationMinutes int            // restaurants.service_duration_minutes
    WeeklySchedule         WeeklySchedule // restaurants.weekly_schedule (JSON, nullable)
    CreatedAt              time.Time      // restaurants.created_at
    UpdatedAt              time.Time      // restaurants.updated_at
}

// SlotInterval returns the booking grid step in minutes, substituting the
// default when the stored value is unset.
func (r *Restaurant) SlotInterval() int {
    if r.SlotIntervalMinutes <= 0 {
        return DefaultSlotIntervalMinutes
    }
    return r.SlotIntervalMinutes
}

// ServiceDuration returns the assumed service duration in minutes,
// substituting the default when the stored value is unset.
func (r *Restaurant) ServiceDuration() int {
    if r.ServiceDurationMinutes <= 0 {
        return DefaultServiceDurationMinutes
    }
    return r.ServiceDurationMinutes
}
