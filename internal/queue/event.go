// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationBookedEvent is published when a reservation is successfully
// created.  It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type ReservationBookedEvent struct {
    ReservationID string `json:"reservation_id"`
    RestaurantID  uint64 `json:"restaurant_id"`
    UserID        string `json:"user_id"`
    Date          string `json:"date"`
    Time          string `json:"time"`
    People        int    `json:"people"`
    BookedAt      string `json:"booked_at"`
}
