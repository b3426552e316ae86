package booking

import (
    "testing"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

func TestResolveOpeningRangeDefaultSchedule(t *testing.T) {
    // No configured schedule at all substitutes the built-in default:
    // every day 10:00-22:00, Friday and Saturday until 23:00.
    r := &model.Restaurant{ID: 1, Capacity: 10}
    tests := []struct {
        date string // 2026-08-31 is a Monday
        want OpeningRange
    }{
        {"2026-08-31", OpeningRange{600, 1320}}, // Monday
        {"2026-09-01", OpeningRange{600, 1320}}, // Tuesday
        {"2026-09-02", OpeningRange{600, 1320}}, // Wednesday
        {"2026-09-03", OpeningRange{600, 1320}}, // Thursday
        {"2026-09-04", OpeningRange{600, 1380}}, // Friday
        {"2026-09-05", OpeningRange{600, 1380}}, // Saturday
        {"2026-09-06", OpeningRange{600, 1320}}, // Sunday
    }
    for _, tt := range tests {
        got, ok := ResolveOpeningRange(r, tt.date)
        if !ok {
            t.Errorf("ResolveOpeningRange(default, %s) reported closed", tt.date)
            continue
        }
        if got != tt.want {
            t.Errorf("ResolveOpeningRange(default, %s) = %+v, want %+v", tt.date, got, tt.want)
        }
    }
}

func TestResolveOpeningRangeClosedDay(t *testing.T) {
    // A day that is absent from the schedule, or explicitly nil, is closed.
    r := &model.Restaurant{
        ID: 1,
        WeeklySchedule: model.WeeklySchedule{
            1: {Open: "10:00", Close: "22:00"}, // Monday only
            2: nil,                             // Tuesday explicitly closed
        },
    }
    if _, ok := ResolveOpeningRange(r, "2026-09-01"); ok { // Tuesday
        t.Error("explicitly nil day resolved as open")
    }
    if _, ok := ResolveOpeningRange(r, "2026-09-06"); ok { // Sunday, absent
        t.Error("absent day resolved as open")
    }
    if rng, ok := ResolveOpeningRange(r, "2026-08-31"); !ok || rng != (OpeningRange{600, 1320}) {
        t.Errorf("Monday = %+v ok=%v, want {600 1320} true", rng, ok)
    }
}

func TestResolveOpeningRangeCrossMidnight(t *testing.T) {
    // close <= open means the window crosses midnight; only the same-day
    // part [open, 24:00) is kept, whatever the stated close value.
    tests := []struct {
        open, close string
        wantStart   int
    }{
        {"18:00", "02:00", 1080},
        {"18:00", "18:00", 1080},
        {"22:00", "00:30", 1320},
    }
    for _, tt := range tests {
        r := &model.Restaurant{
            ID: 1,
            WeeklySchedule: model.WeeklySchedule{
                0: {Open: tt.open, Close: tt.close}, // Sunday
            },
        }
        rng, ok := ResolveOpeningRange(r, sundayDate)
        if !ok {
            t.Errorf("window %s-%s resolved as closed", tt.open, tt.close)
            continue
        }
        if rng.Start != tt.wantStart || rng.End != minutesPerDay {
            t.Errorf("window %s-%s = %+v, want {%d %d}", tt.open, tt.close, rng, tt.wantStart, minutesPerDay)
        }
    }
}

func TestResolveOpeningRangeFailsClosed(t *testing.T) {
    withWindow := func(w *model.OpeningWindow) *model.Restaurant {
        return &model.Restaurant{ID: 1, WeeklySchedule: model.WeeklySchedule{0: w}}
    }
    tests := []struct {
        name string
        r    *model.Restaurant
        date string
    }{
        {"garbage date", withWindow(&model.OpeningWindow{Open: "10:00", Close: "22:00"}), "not-a-date"},
        {"out-of-range date", withWindow(&model.OpeningWindow{Open: "10:00", Close: "22:00"}), "2026-13-40"},
        {"unparsable open", withWindow(&model.OpeningWindow{Open: "1000", Close: "22:00"}), sundayDate},
        {"unparsable close", withWindow(&model.OpeningWindow{Open: "10:00", Close: "22h00"}), sundayDate},
    }
    for _, tt := range tests {
        if _, ok := ResolveOpeningRange(tt.r, tt.date); ok {
            t.Errorf("%s: resolved as open, want fail closed", tt.name)
        }
    }
}
