package booking

import (
    "context"
    "errors"
    "reflect"
    "testing"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

func TestComputeOccupancySingleReservation(t *testing.T) {
    e, r := newScenarioEngine(reservationAt("a", "18:00", 6))
    occ, err := e.ComputeOccupancy(context.Background(), r, sundayDate)
    if err != nil {
        t.Fatalf("ComputeOccupancy: %v", err)
    }
    // Two hours of service on a 15-minute grid: 18:00 up to but not
    // including 20:00.
    for minute := 1080; minute < 1200; minute += 15 {
        if got := occ[FormatTime(minute)]; got != 6 {
            t.Errorf("occupancy[%s] = %d, want 6", FormatTime(minute), got)
        }
    }
    if _, present := occ["17:45"]; present {
        t.Error("occupancy contains slot before the reservation start")
    }
    if _, present := occ["20:00"]; present {
        t.Error("occupancy contains the half-open end slot")
    }
}

func TestComputeOccupancyOverlapsSum(t *testing.T) {
    e, r := newScenarioEngine(
        reservationAt("a", "18:00", 6),
        reservationAt("b", "19:00", 3),
    )
    occ, err := e.ComputeOccupancy(context.Background(), r, sundayDate)
    if err != nil {
        t.Fatalf("ComputeOccupancy: %v", err)
    }
    if got := occ["18:00"]; got != 6 {
        t.Errorf("occupancy[18:00] = %d, want 6", got)
    }
    if got := occ["19:00"]; got != 9 {
        t.Errorf("occupancy[19:00] = %d, want 9", got)
    }
    if got := occ["20:30"]; got != 3 {
        t.Errorf("occupancy[20:30] = %d, want 3", got)
    }
}

func TestComputeOccupancyOrderIndependent(t *testing.T) {
    rows := []model.Reservation{
        reservationAt("a", "18:00", 6),
        reservationAt("b", "19:00", 3),
        reservationAt("c", "12:30", 2),
        reservationAt("d", "18:45", 1),
    }
    permutations := [][]int{
        {0, 1, 2, 3},
        {3, 2, 1, 0},
        {1, 3, 0, 2},
        {2, 0, 3, 1},
    }
    var baseline map[string]int
    for _, perm := range permutations {
        shuffled := make([]model.Reservation, 0, len(rows))
        for _, i := range perm {
            shuffled = append(shuffled, rows[i])
        }
        r := scenarioRestaurant()
        e := NewEngine(fakeDirectory{r.ID: r}, fakeLister(shuffled))
        occ, err := e.ComputeOccupancy(context.Background(), r, sundayDate)
        if err != nil {
            t.Fatalf("ComputeOccupancy: %v", err)
        }
        if baseline == nil {
            baseline = occ
            continue
        }
        if !reflect.DeepEqual(occ, baseline) {
            t.Fatalf("occupancy depends on listing order: %v vs %v", occ, baseline)
        }
    }
}

func TestComputeOccupancySnapsStartDown(t *testing.T) {
    // A reservation recorded off-grid occupies from its snapped start.
    e, r := newScenarioEngine(reservationAt("a", "18:10", 4))
    occ, err := e.ComputeOccupancy(context.Background(), r, sundayDate)
    if err != nil {
        t.Fatalf("ComputeOccupancy: %v", err)
    }
    if got := occ["18:00"]; got != 4 {
        t.Errorf("occupancy[18:00] = %d, want 4", got)
    }
    if got := occ["19:45"]; got != 4 {
        t.Errorf("occupancy[19:45] = %d, want 4", got)
    }
    if _, present := occ["20:00"]; present {
        t.Error("snapped span leaked past its end")
    }
}

func TestComputeOccupancySkipsMalformedTimes(t *testing.T) {
    e, r := newScenarioEngine(
        reservationAt("a", "garbage", 6),
        reservationAt("b", "18:00", 2),
    )
    occ, err := e.ComputeOccupancy(context.Background(), r, sundayDate)
    if err != nil {
        t.Fatalf("ComputeOccupancy: %v", err)
    }
    if got := occ["18:00"]; got != 2 {
        t.Errorf("occupancy[18:00] = %d, want 2 (malformed row must not count)", got)
    }
}

func TestComputeOccupancyPropagatesStorageFault(t *testing.T) {
    r := scenarioRestaurant()
    e := NewEngine(fakeDirectory{r.ID: r}, failingLister{err: errStorageDown})
    if _, err := e.ComputeOccupancy(context.Background(), r, sundayDate); !errors.Is(err, errStorageDown) {
        t.Fatalf("ComputeOccupancy error = %v, want wrapped %v", err, errStorageDown)
    }
}
