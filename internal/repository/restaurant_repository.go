// Package repository contains data access logic for the reservation
// service.  This file manages persistence for restaurants.  The weekly
// schedule is stored as a JSON column so that per-day opening windows
// can be edited as one value; restaurants created before scheduling
// existed simply carry NULL there.
package repository

import (
    "context"      // context for controlling query lifetime
    "database/sql" // sql provides DB abstraction
    "encoding/json"
    "errors" // errors for sentinel definitions
    "fmt"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

// ErrRestaurantNotFound indicates that a restaurant was not located in the DB.
var ErrRestaurantNotFound = errors.New("restaurant not found")

// RestaurantRepo manages persistence for restaurants.
type RestaurantRepo struct {
    db *sql.DB
}

// NewRestaurantRepo constructs a RestaurantRepo with the given DB handle.
func NewRestaurantRepo(db *sql.DB) *RestaurantRepo {
    return &RestaurantRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *RestaurantRepo) DB() *sql.DB {
    return r.db
}

const restaurantColumns = `id, owner_id, name, capacity, slot_interval_minutes, service_duration_minutes, weekly_schedule, created_at, updated_at`

// scanRestaurant reads one row into a model.Restaurant, decoding the
// weekly schedule JSON when present.
func scanRestaurant(row interface{ Scan(...any) error }) (*model.Restaurant, error) {
    var rest model.Restaurant
    var schedule sql.NullString
    if err := row.Scan(
        &rest.ID, &rest.OwnerID, &rest.Name, &rest.Capacity,
        &rest.SlotIntervalMinutes, &rest.ServiceDurationMinutes,
        &schedule, &rest.CreatedAt, &rest.UpdatedAt,
    ); err != nil {
        return nil, err
    }
    if schedule.Valid && schedule.String != "" {
        if err := json.Unmarshal([]byte(schedule.String), &rest.WeeklySchedule); err != nil {
            return nil, fmt.Errorf("decode weekly schedule for restaurant %d: %w", rest.ID, err)
        }
    }
    return &rest, nil
}

// marshalSchedule encodes a weekly schedule for storage.  A nil or empty
// schedule is stored as NULL so the availability engine falls back to
// its built-in default.
func marshalSchedule(s model.WeeklySchedule) (any, error) {
    if len(s) == 0 {
        return nil, nil
    }
    b, err := json.Marshal(s)
    if err != nil {
        return nil, err
    }
    return string(b), nil
}

// Create inserts a new restaurant and reads the row back so that the ID
// and DB-default timestamps are populated on the given struct.
func (r *RestaurantRepo) Create(ctx context.Context, rest *model.Restaurant) error {
    schedule, err := marshalSchedule(rest.WeeklySchedule)
    if err != nil {
        return err
    }
    const qInsert = `INSERT INTO restaurants (owner_id, name, capacity, slot_interval_minutes, service_duration_minutes, weekly_schedule)
                     VALUES (?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, qInsert,
        rest.OwnerID, rest.Name, rest.Capacity,
        rest.SlotIntervalMinutes, rest.ServiceDurationMinutes, schedule,
    )
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    rest.ID = uint64(id)
    const qSelect = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = ?`
    got, err := scanRestaurant(r.db.QueryRowContext(ctx, qSelect, rest.ID))
    if err != nil {
        return err
    }
    *rest = *got
    return nil
}

// GetByID retrieves a restaurant by its ID regardless of owner.  It
// returns ErrRestaurantNotFound when no row is found.
func (r *RestaurantRepo) GetByID(ctx context.Context, id uint64) (*model.Restaurant, error) {
    const q = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = ?`
    rest, err := scanRestaurant(r.db.QueryRowContext(ctx, q, id))
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrRestaurantNotFound
        }
        return nil, err
    }
    return rest, nil
}

// Restaurant adapts GetByID to the availability engine's source
// contract: a missing restaurant is reported as (nil, nil), errors are
// reserved for storage faults.
func (r *RestaurantRepo) Restaurant(ctx context.Context, id uint64) (*model.Restaurant, error) {
    rest, err := r.GetByID(ctx, id)
    if errors.Is(err, ErrRestaurantNotFound) {
        return nil, nil
    }
    return rest, err
}

// GetByIDAndOwner retrieves a restaurant but only if it belongs to the
// given owner.  This helper is used to enforce resource ownership.
// It returns ErrRestaurantNotFound when the restaurant does not exist
// and ErrForbidden when it belongs to someone else.
func (r *RestaurantRepo) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (*model.Restaurant, error) {
    rest, err := r.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }
    if rest.OwnerID != ownerID {
        return nil, ErrForbidden
    }
    return rest, nil
}

// List returns all restaurants ordered by id.  Used by the public
// browse endpoint.
func (r *RestaurantRepo) List(ctx context.Context) ([]*model.Restaurant, error) {
    const q = `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY id`
    return r.queryRestaurants(ctx, q)
}

// ListByOwner returns all restaurants managed by one owner.
func (r *RestaurantRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]*model.Restaurant, error) {
    const q = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE owner_id = ? ORDER BY id`
    return r.queryRestaurants(ctx, q, ownerID)
}

func (r *RestaurantRepo) queryRestaurants(ctx context.Context, q string, args ...any) ([]*model.Restaurant, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    out := make([]*model.Restaurant, 0)
    for rows.Next() {
        rest, err := scanRestaurant(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, rest)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// UpdateByIDAndOwner updates the restaurant settings (name, capacity,
// grid step, service duration) if the restaurant belongs to the given
// owner.  Returns sql.ErrNoRows when no matching row was updated.
func (r *RestaurantRepo) UpdateByIDAndOwner(ctx context.Context, rest *model.Restaurant) error {
    const q = `UPDATE restaurants
               SET name = ?, capacity = ?, slot_interval_minutes = ?, service_duration_minutes = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ? AND owner_id = ?`
    res, err := r.db.ExecContext(ctx, q,
        rest.Name, rest.Capacity, rest.SlotIntervalMinutes, rest.ServiceDurationMinutes,
        rest.ID, rest.OwnerID,
    )
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return sql.ErrNoRows
    }
    return nil
}

// UpdateSchedule replaces the weekly schedule of an owner's restaurant.
// Passing an empty schedule clears the column back to NULL, restoring
// the built-in default hours.
func (r *RestaurantRepo) UpdateSchedule(ctx context.Context, id, ownerID uint64, schedule model.WeeklySchedule) error {
    encoded, err := marshalSchedule(schedule)
    if err != nil {
        return err
    }
    const q = `UPDATE restaurants
               SET weekly_schedule = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ? AND owner_id = ?`
    res, err := r.db.ExecContext(ctx, q, encoded, id, ownerID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return sql.ErrNoRows
    }
    return nil
}

// DeleteByIDAndOwner removes a restaurant owned by the given user.  It
// returns sql.ErrNoRows when the restaurant does not exist, ErrForbidden
// when it belongs to another owner and ErrConflict when non-canceled
// reservations still reference it.  Canceled history rows are removed
// together with the restaurant so no orphans remain.
func (r *RestaurantRepo) DeleteByIDAndOwner(ctx context.Context, id, ownerID uint64) error {
    tx, err := r.db.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() {
        if err != nil {
            _ = tx.Rollback()
        } else {
            _ = tx.Commit()
        }
    }()
    // Verify restaurant exists and ownership
    var dbOwnerID uint64
    if err = tx.QueryRowContext(ctx, `SELECT owner_id FROM restaurants WHERE id = ?`, id).Scan(&dbOwnerID); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return sql.ErrNoRows
        }
        return err
    }
    if dbOwnerID != ownerID {
        err = ErrForbidden
        return err
    }
    // Refuse when reservations still consume capacity on this restaurant.
    var active int
    if err = tx.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM reservations WHERE restaurant_id = ? AND status <> ?`,
        id, model.StatusCanceled).Scan(&active); err != nil {
        return err
    }
    if active > 0 {
        err = ErrConflict
        return err
    }
    if _, err = tx.ExecContext(ctx, `DELETE FROM reservations WHERE restaurant_id = ?`, id); err != nil {
        return err
    }
    if _, err = tx.ExecContext(ctx, `DELETE FROM restaurants WHERE id = ?`, id); err != nil {
        return err
    }
    return nil
}
