package booking

import (
    "context"
    "errors"
    "reflect"
    "testing"
)

func TestListAvailableSlotsAroundRejectedRequest(t *testing.T) {
    // The scenario-1 rejection: 6 seats at 18:00, a party of 5 cannot
    // overlap that span.  Within the two-hour search window only 16:00
    // (service ends as the blocked span starts) and 20:00 (starts as it
    // ends) are feasible, both 120 minutes from the center.
    e, _ := newScenarioEngine(reservationAt("a", "18:00", 6))
    slots, err := e.ListAvailableSlotsAround(context.Background(), 1, sundayDate, "18:00", 5, 120, 4)
    if err != nil {
        t.Fatalf("ListAvailableSlotsAround: %v", err)
    }
    if want := []string{"16:00", "20:00"}; !reflect.DeepEqual(slots, want) {
        t.Fatalf("slots = %v, want %v", slots, want)
    }
}

func TestListAvailableSlotsAroundOrdering(t *testing.T) {
    // An empty day: the nearest four candidates win, ordered by distance
    // from the center with the earlier time first on ties.
    e, _ := newScenarioEngine()
    slots, err := e.ListAvailableSlotsAround(context.Background(), 1, sundayDate, "18:00", 2, 120, 4)
    if err != nil {
        t.Fatalf("ListAvailableSlotsAround: %v", err)
    }
    if want := []string{"18:00", "17:45", "18:15", "17:30"}; !reflect.DeepEqual(slots, want) {
        t.Fatalf("slots = %v, want %v", slots, want)
    }
}

func TestListAvailableSlotsAroundCapsResult(t *testing.T) {
    e, _ := newScenarioEngine()
    ctx := context.Background()

    // A caller-requested maximum above the product cap is ignored.
    slots, err := e.ListAvailableSlotsAround(ctx, 1, sundayDate, "18:00", 2, 240, 50)
    if err != nil {
        t.Fatalf("ListAvailableSlotsAround: %v", err)
    }
    if len(slots) != maxSuggestions {
        t.Errorf("got %d slots, want cap %d", len(slots), maxSuggestions)
    }

    // A smaller maximum is honored.
    slots, err = e.ListAvailableSlotsAround(ctx, 1, sundayDate, "18:00", 2, 240, 2)
    if err != nil {
        t.Fatalf("ListAvailableSlotsAround: %v", err)
    }
    if len(slots) != 2 {
        t.Errorf("got %d slots, want 2", len(slots))
    }
}

func TestListAvailableSlotsAroundNeverSuggestsRejectable(t *testing.T) {
    e, _ := newScenarioEngine(
        reservationAt("a", "18:00", 6),
        reservationAt("b", "12:00", 9),
        reservationAt("c", "20:00", 8),
    )
    ctx := context.Background()
    for _, center := range []string{"11:00", "14:30", "18:00", "21:00"} {
        for _, people := range []int{2, 5, 10} {
            slots, err := e.ListAvailableSlotsAround(ctx, 1, sundayDate, center, people, 180, 4)
            if err != nil {
                t.Fatalf("ListAvailableSlotsAround(%s, %d): %v", center, people, err)
            }
            for _, slot := range slots {
                if err := e.CheckAvailability(ctx, 1, sundayDate, slot, people); err != nil {
                    t.Errorf("suggested %s for %d people around %s, but the checker rejects it: %v",
                        slot, people, center, err)
                }
            }
        }
    }
}

func TestListAvailableSlotsAroundStaysInsideWindow(t *testing.T) {
    // Candidates never start before opening nor so late that service
    // would run past closing, even with a generous search window.
    e, _ := newScenarioEngine()
    slots, err := e.ListAvailableSlotsAround(context.Background(), 1, sundayDate, "10:00", 2, 600, 4)
    if err != nil {
        t.Fatalf("ListAvailableSlotsAround: %v", err)
    }
    for _, slot := range slots {
        minute, ok := ParseTime(slot)
        if !ok {
            t.Fatalf("unparsable suggestion %q", slot)
        }
        if minute < 600 || minute > 1200 {
            t.Errorf("suggestion %s outside bookable window [10:00, 20:00]", slot)
        }
    }
}

func TestListAvailableSlotsAroundClosedDay(t *testing.T) {
    r := scenarioRestaurant()
    delete(r.WeeklySchedule, 0)
    e := NewEngine(fakeDirectory{r.ID: r}, fakeLister{})
    slots, err := e.ListAvailableSlotsAround(context.Background(), 1, sundayDate, "18:00", 2, 120, 4)
    if err != nil {
        t.Fatalf("ListAvailableSlotsAround: %v", err)
    }
    if len(slots) != 0 {
        t.Errorf("closed day yielded suggestions: %v", slots)
    }
}

func TestListAvailableSlotsAroundErrors(t *testing.T) {
    e, _ := newScenarioEngine()
    ctx := context.Background()
    if _, err := e.ListAvailableSlotsAround(ctx, 99, sundayDate, "18:00", 2, 120, 4); !errors.Is(err, ErrRestaurantNotFound) {
        t.Errorf("unknown restaurant: err = %v, want ErrRestaurantNotFound", err)
    }
    if _, err := e.ListAvailableSlotsAround(ctx, 1, sundayDate, "18h00", 2, 120, 4); !errors.Is(err, ErrInvalidInput) {
        t.Errorf("bad center: err = %v, want ErrInvalidInput", err)
    }
    if _, err := e.ListAvailableSlotsAround(ctx, 1, sundayDate, "18:00", 0, 120, 4); !errors.Is(err, ErrInvalidInput) {
        t.Errorf("zero party: err = %v, want ErrInvalidInput", err)
    }
    if _, err := e.ListAvailableSlotsAround(ctx, 1, "n/a", "18:00", 2, 120, 4); !errors.Is(err, ErrInvalidInput) {
        t.Errorf("bad date: err = %v, want ErrInvalidInput", err)
    }
}
