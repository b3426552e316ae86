package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/go-sql-driver/mysql"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

// ErrReservationNotFound indicates that a reservation was not located in the DB.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrRaceLost is returned when a concurrent writer committed the same
// reservation id first.  The caller must restart the whole
// check-then-create sequence: the reservation set may have changed, so
// the earlier availability decision is stale.
var ErrRaceLost = errors.New("reservation lost creation race")

// mysqlDuplicateEntry is the server error number MySQL raises when an
// insert violates a unique key.
const mysqlDuplicateEntry = 1062

// ReservationRepo provides CRUD operations for reservations.  The
// primary key is a caller-supplied string, and the table carries a
// composite (restaurant_id, date) index so one restaurant-day can be
// listed cheaply.  Because both the record and its index entry live in
// the same row, a single INSERT commits them atomically: the unique
// primary key acts as the insert-if-absent precondition that detects
// racing writers.  Rows are never physically deleted by the booking
// flow; cancellation is a status update.
type ReservationRepo struct {
    db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying sql.DB.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

const reservationColumns = `id, restaurant_id, user_id, date, time, people, status, created_at`

// Create commits a new reservation atomically.  When another writer has
// already committed the same id, ErrRaceLost is returned and nothing is
// written; the caller restarts its availability check before retrying.
// On success the DB-assigned creation timestamp is populated on the
// given struct.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
    const q = `INSERT INTO reservations (id, restaurant_id, user_id, date, time, people, status)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
    _, err := r.db.ExecContext(ctx, q,
        res.ID, res.RestaurantID, res.UserID, res.Date, res.Time, res.People, res.Status,
    )
    if err != nil {
        var dbErr *mysql.MySQLError
        if errors.As(err, &dbErr) && dbErr.Number == mysqlDuplicateEntry {
            return ErrRaceLost
        }
        return err
    }
    const sel = `SELECT created_at FROM reservations WHERE id = ?`
    return r.db.QueryRowContext(ctx, sel, res.ID).Scan(&res.CreatedAt)
}

// GetByID retrieves a single reservation.  It returns
// ErrReservationNotFound when no row exists.
func (r *ReservationRepo) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = ?`
    var res model.Reservation
    err := r.db.QueryRowContext(ctx, q, id).Scan(
        &res.ID, &res.RestaurantID, &res.UserID, &res.Date, &res.Time,
        &res.People, &res.Status, &res.CreatedAt,
    )
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrReservationNotFound
        }
        return nil, err
    }
    return &res, nil
}

// ListActiveByRestaurantDate returns the reservations of one
// restaurant-day that still consume capacity, i.e. everything except
// canceled rows.  Block entries and completed visits are included on
// purpose: blocks reserve capacity by definition and completed rows are
// same-day history.  Ordering by time then id keeps iteration
// deterministic for the occupancy aggregation.
//
// This method satisfies the availability engine's lister contract.
func (r *ReservationRepo) ListActiveByRestaurantDate(ctx context.Context, restaurantID uint64, date string) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + `
               FROM reservations
               WHERE restaurant_id = ? AND date = ? AND status <> ?
               ORDER BY time, id`
    return r.queryReservations(ctx, q, restaurantID, date, model.StatusCanceled)
}

// ListByRestaurantDate returns every reservation of one restaurant-day
// regardless of status.  Used by the owner's day view.
func (r *ReservationRepo) ListByRestaurantDate(ctx context.Context, restaurantID uint64, date string) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + `
               FROM reservations
               WHERE restaurant_id = ? AND date = ?
               ORDER BY time, id`
    return r.queryReservations(ctx, q, restaurantID, date)
}

// ListByUser returns all reservations created by a user, newest date
// first.  When no reservations exist, an empty slice is returned.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID string) ([]model.Reservation, error) {
    const q = `SELECT ` + reservationColumns + `
               FROM reservations
               WHERE user_id = ?
               ORDER BY date DESC, time DESC, id`
    return r.queryReservations(ctx, q, userID)
}

func (r *ReservationRepo) queryReservations(ctx context.Context, q string, args ...any) ([]model.Reservation, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]model.Reservation, 0)
    for rows.Next() {
        var res model.Reservation
        if err := rows.Scan(
            &res.ID, &res.RestaurantID, &res.UserID, &res.Date, &res.Time,
            &res.People, &res.Status, &res.CreatedAt,
        ); err != nil {
            return nil, err
        }
        out = append(out, res)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// UpdateStatus moves a reservation to a new status.  It returns
// ErrReservationNotFound when the reservation does not exist.  The row
// is kept whatever the status; history is never physically deleted by
// this path.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id, status string) error {
    const q = `UPDATE reservations SET status = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, status, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        // Either the row is missing or the status already matched; look
        // it up to tell the two apart.
        if _, err := r.GetByID(ctx, id); err != nil {
            return err
        }
    }
    return nil
}
