package booking

import (
    "context"
    "errors"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

// fakeDirectory is an in-memory RestaurantSource keyed by restaurant id.
type fakeDirectory map[uint64]*model.Restaurant

func (d fakeDirectory) Restaurant(_ context.Context, id uint64) (*model.Restaurant, error) {
    return d[id], nil
}

// fakeLister is an in-memory ReservationLister holding active rows only.
type fakeLister []model.Reservation

func (l fakeLister) ListActiveByRestaurantDate(_ context.Context, restaurantID uint64, date string) ([]model.Reservation, error) {
    var out []model.Reservation
    for _, r := range l {
        if r.RestaurantID == restaurantID && r.Date == date {
            out = append(out, r)
        }
    }
    return out, nil
}

// failingLister simulates a storage fault on every listing.
type failingLister struct{ err error }

func (l failingLister) ListActiveByRestaurantDate(context.Context, uint64, string) ([]model.Reservation, error) {
    return nil, l.err
}

var errStorageDown = errors.New("storage unavailable")

// sundayDate falls on a Sunday; most scenario tests book this day.
const sundayDate = "2026-09-06"

// scenarioRestaurant returns the restaurant used by the booking
// scenarios: capacity 10, 15-minute grid, two-hour service, open
// 10:00-22:00 every day.
func scenarioRestaurant() *model.Restaurant {
    schedule := model.WeeklySchedule{}
    for day := 0; day <= 6; day++ {
        schedule[day] = &model.OpeningWindow{Open: "10:00", Close: "22:00"}
    }
    return &model.Restaurant{
        ID:                     1,
        Name:                   "Trattoria Test",
        Capacity:               10,
        SlotIntervalMinutes:    15,
        ServiceDurationMinutes: 120,
        WeeklySchedule:         schedule,
    }
}

// newScenarioEngine wires an engine around the scenario restaurant and
// the given pre-existing reservations.
func newScenarioEngine(existing ...model.Reservation) (*Engine, *model.Restaurant) {
    r := scenarioRestaurant()
    return NewEngine(fakeDirectory{r.ID: r}, fakeLister(existing)), r
}

// reservationAt builds an active reservation row for the scenario
// restaurant on the scenario date.
func reservationAt(id, timeOfDay string, people int) model.Reservation {
    return model.Reservation{
        ID:           id,
        RestaurantID: 1,
        UserID:       "guest-" + id,
        Date:         sundayDate,
        Time:         timeOfDay,
        People:       people,
        Status:       model.StatusConfirmed,
    }
}
