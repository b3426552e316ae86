package booking

import (
    "context"
    "errors"
    "testing"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

func TestCheckAvailabilityCapacity(t *testing.T) {
    // Capacity 10 with 6 seats already committed at 18:00: a party of 5
    // would overcommit (6+5=11), a party of 4 fits exactly.
    e, _ := newScenarioEngine(reservationAt("a", "18:00", 6))
    ctx := context.Background()

    if err := e.CheckAvailability(ctx, 1, sundayDate, "18:00", 5); !errors.Is(err, ErrFull) {
        t.Errorf("party of 5 at 18:00: err = %v, want ErrFull", err)
    }
    if err := e.CheckAvailability(ctx, 1, sundayDate, "18:00", 4); err != nil {
        t.Errorf("party of 4 at 18:00: err = %v, want accept", err)
    }
}

func TestCheckAvailabilitySpanMustFitWindow(t *testing.T) {
    e, _ := newScenarioEngine()
    ctx := context.Background()

    // 21:30 + two hours of service ends 23:30, past the 22:00 close.
    if err := e.CheckAvailability(ctx, 1, sundayDate, "21:30", 2); !errors.Is(err, ErrClosed) {
        t.Errorf("21:30 request: err = %v, want ErrClosed", err)
    }
    // Starting before the doors open is rejected the same way.
    if err := e.CheckAvailability(ctx, 1, sundayDate, "09:00", 2); !errors.Is(err, ErrClosed) {
        t.Errorf("09:00 request: err = %v, want ErrClosed", err)
    }
    // The last start that still fits: 20:00 + 120 = 22:00 exactly.
    if err := e.CheckAvailability(ctx, 1, sundayDate, "20:00", 2); err != nil {
        t.Errorf("20:00 request: err = %v, want accept", err)
    }
}

func TestCheckAvailabilityClosedDay(t *testing.T) {
    r := scenarioRestaurant()
    delete(r.WeeklySchedule, 0) // closed on Sundays
    e := NewEngine(fakeDirectory{r.ID: r}, fakeLister{})
    if err := e.CheckAvailability(context.Background(), 1, sundayDate, "18:00", 2); !errors.Is(err, ErrClosed) {
        t.Errorf("closed day: err = %v, want ErrClosed", err)
    }
}

func TestCheckAvailabilityUnknownRestaurant(t *testing.T) {
    e, _ := newScenarioEngine()
    if err := e.CheckAvailability(context.Background(), 99, sundayDate, "18:00", 2); !errors.Is(err, ErrRestaurantNotFound) {
        t.Errorf("unknown restaurant: err = %v, want ErrRestaurantNotFound", err)
    }
}

func TestCheckAvailabilityInvalidInput(t *testing.T) {
    e, _ := newScenarioEngine()
    ctx := context.Background()
    tests := []struct {
        name   string
        date   string
        time   string
        people int
    }{
        {"zero party", sundayDate, "18:00", 0},
        {"negative party", sundayDate, "18:00", -3},
        {"bad time", sundayDate, "25:00", 2},
        {"loose time", sundayDate, "6:00", 2},
        {"bad date", "06/09/2026", "18:00", 2},
    }
    for _, tt := range tests {
        if err := e.CheckAvailability(ctx, 1, tt.date, tt.time, tt.people); !errors.Is(err, ErrInvalidInput) {
            t.Errorf("%s: err = %v, want ErrInvalidInput", tt.name, err)
        }
    }
}

func TestCheckAvailabilitySnapsRequestedTime(t *testing.T) {
    // An off-grid request snaps down, so 18:10 competes for the same
    // slots as 18:00.
    e, _ := newScenarioEngine(reservationAt("a", "18:00", 6))
    if err := e.CheckAvailability(context.Background(), 1, sundayDate, "18:10", 5); !errors.Is(err, ErrFull) {
        t.Errorf("18:10 request: err = %v, want ErrFull", err)
    }
}

func TestCheckAvailabilityAcceptImpliesCapacity(t *testing.T) {
    // Whenever the checker accepts, every slot of the span must still be
    // within capacity after adding the party.
    existing := []model.Reservation{
        reservationAt("a", "18:00", 6),
        reservationAt("b", "12:00", 9),
        reservationAt("c", "16:30", 2),
    }
    e, r := newScenarioEngine(existing...)
    ctx := context.Background()
    occ, err := e.ComputeOccupancy(ctx, r, sundayDate)
    if err != nil {
        t.Fatalf("ComputeOccupancy: %v", err)
    }
    for minute := 600; minute < 1440; minute += 15 {
        for _, people := range []int{1, 4, 8} {
            if e.CheckAvailability(ctx, 1, sundayDate, FormatTime(minute), people) != nil {
                continue
            }
            for t2 := minute; t2 < minute+r.ServiceDuration(); t2 += 15 {
                if occ[FormatTime(t2)]+people > r.Capacity {
                    t.Fatalf("accepted %d people at %s but slot %s would hold %d/%d seats",
                        people, FormatTime(minute), FormatTime(t2), occ[FormatTime(t2)]+people, r.Capacity)
                }
            }
        }
    }
}

func TestCheckAvailabilityPropagatesStorageFault(t *testing.T) {
    r := scenarioRestaurant()
    e := NewEngine(fakeDirectory{r.ID: r}, failingLister{err: errStorageDown})
    err := e.CheckAvailability(context.Background(), 1, sundayDate, "18:00", 2)
    if !errors.Is(err, errStorageDown) {
        t.Fatalf("err = %v, want wrapped %v", err, errStorageDown)
    }
    for _, sentinel := range []error{ErrClosed, ErrFull, ErrInvalidInput, ErrRestaurantNotFound} {
        if errors.Is(err, sentinel) {
            t.Fatalf("storage fault mapped to %v", sentinel)
        }
    }
}
