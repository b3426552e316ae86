package model

import (
    "strings"
    "time"
)

// Reservation status values.  A reservation moves from StatusNew to
// StatusConfirmed or StatusCanceled; StatusCompleted marks a party that
// has been seated and left.  StatusBlocked marks a staff-created block
// entry that consumes capacity without a real guest.  Canceled rows are
// kept for history and are excluded from occupancy; rows are never
// physically deleted by the booking flow.
const (
    StatusNew       = "new"
    StatusConfirmed = "confirmed"
    StatusCanceled  = "canceled"
    StatusCompleted = "completed"
    StatusBlocked   = "blocked"
)

// BlockUserPrefix marks the UserID of staff-created block entries so
// they are distinguishable from reservations made by real guests.
const BlockUserPrefix = "block:"

// Reservation records one booked table span.  It corresponds to a row
// in the `reservations` table.  Unlike most tables in this service the
// primary key is a caller-supplied string: the atomic create path relies
// on key uniqueness to detect concurrent writers racing on the same id.
//
// Fields:
//  ID           – primary key, opaque string chosen by the booking flow.
//  RestaurantID – restaurant being booked.
//  UserID       – guest identifier, or "block:<staff-id>" for block entries.
//  Date         – calendar date of the reservation ("YYYY-MM-DD").
//  Time         – start of service ("HH:mm", local to the restaurant).
//  People       – party size; always positive.
//  Status       – one of the Status* constants above.
//  CreatedAt    – creation timestamp.
type Reservation struct {
    ID           string    // reservations.id
    RestaurantID uint64    // reservations.restaurant_id
    UserID       string    // reservations.user_id
    Date         string    // reservations.date
    Time         string    // reservations.time
    People       int       // reservations.people
    Status       string    // reservations.status
    CreatedAt    time.Time // reservations.created_at
}

// IsBlock reports whether the reservation is a staff-created block entry.
func (r *Reservation) IsBlock() bool {
    return strings.HasPrefix(r.UserID, BlockUserPrefix)
}

// ValidStatus reports whether s is one of the known reservation statuses.
func ValidStatus(s string) bool {
    switch s {
    case StatusNew, StatusConfirmed, StatusCanceled, StatusCompleted, StatusBlocked:
        return true
    }
    return false
}
