package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/booking"
    "github.com/michaelmichaeli131-creator/restaurant-reservervation-sub002/internal/model"
)

// fakeDirectory is an in-memory booking.RestaurantSource keyed by id.
type fakeDirectory map[uint64]*model.Restaurant

func (d fakeDirectory) Restaurant(_ context.Context, id uint64) (*model.Restaurant, error) {
    return d[id], nil
}

// fakeLister is an in-memory booking.ReservationLister holding active rows.
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

// testDate falls on a Sunday, covered by the default weekly schedule.
const testDate = "2026-09-06"

func newPublicHandler(existing ...model.Reservation) *PublicHandler {
    dir := fakeDirectory{1: {
        ID:       1,
        Name:     "Trattoria Test",
        Capacity: 10,
        // zero grid config exercises the 15/120 defaults
    }}
    engine := booking.NewEngine(dir, fakeLister(existing))
    return &PublicHandler{Engine: engine}
}

// callAvailability performs GET /v1/restaurants/:id/availability with the
// given raw query string and returns the recorder and decoded body.
func callAvailability(t *testing.T, h *PublicHandler, id, query string) (*httptest.ResponseRecorder, map[string]any) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/"+id+"/availability?"+query, nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.SetPath("/v1/restaurants/:id/availability")
    c.SetParamNames("id")
    c.SetParamValues(id)
    if err := h.GetAvailability(c); err != nil {
        t.Fatalf("GetAvailability returned error: %v", err)
    }
    var body map[string]any
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("response is not JSON: %v", err)
    }
    return rec, body
}

func TestAvailabilityEndpointAccepts(t *testing.T) {
    h := newPublicHandler(model.Reservation{
        ID: "r1", RestaurantID: 1, Date: testDate, Time: "18:00", People: 6, Status: model.StatusConfirmed,
    })
    rec, body := callAvailability(t, h, "1", "date="+testDate+"&time=18:00&people=4")
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
    if body["available"] != true {
        t.Fatalf("available = %v, want true", body["available"])
    }
}

func TestAvailabilityEndpointFullCarriesAlternatives(t *testing.T) {
    h := newPublicHandler(model.Reservation{
        ID: "r1", RestaurantID: 1, Date: testDate, Time: "18:00", People: 6, Status: model.StatusConfirmed,
    })
    rec, body := callAvailability(t, h, "1", "date="+testDate+"&time=18:00&people=5")
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
    if body["available"] != false {
        t.Fatalf("available = %v, want false", body["available"])
    }
    if body["reason"] != "full" {
        t.Fatalf("reason = %v, want full", body["reason"])
    }
    alts, ok := body["alternatives"].([]any)
    if !ok {
        t.Fatalf("alternatives missing from full response: %v", body)
    }
    if len(alts) == 0 || len(alts) > 4 {
        t.Fatalf("alternatives count = %d, want 1..4", len(alts))
    }
}

func TestAvailabilityEndpointClosed(t *testing.T) {
    h := newPublicHandler()
    rec, body := callAvailability(t, h, "1", "date="+testDate+"&time=09:00&people=2")
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
    if body["available"] != false || body["reason"] != "closed" {
        t.Fatalf("body = %v, want available=false reason=closed", body)
    }
}

func TestAvailabilityEndpointUnknownRestaurant(t *testing.T) {
    h := newPublicHandler()
    rec, _ := callAvailability(t, h, "42", "date="+testDate+"&time=18:00&people=2")
    if rec.Code != http.StatusNotFound {
        t.Fatalf("status = %d, want 404", rec.Code)
    }
}

func TestAvailabilityEndpointRejectsBadInput(t *testing.T) {
    h := newPublicHandler()
    cases := []struct {
        name  string
        query string
    }{
        {"missing params", "date=" + testDate},
        {"people not a number", "date=" + testDate + "&time=18:00&people=four"},
        {"malformed time", "date=" + testDate + "&time=6pm&people=2"},
        {"non-positive people", "date=" + testDate + "&time=18:00&people=0"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            rec, _ := callAvailability(t, h, "1", tc.query)
            if rec.Code != http.StatusBadRequest {
                t.Errorf("status = %d, want 400", rec.Code)
            }
        })
    }
}

func TestSlotsEndpointCapsResults(t *testing.T) {
    h := newPublicHandler()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/restaurants/1/slots?date="+testDate+"&time=16:00&people=2&window=240&max=50", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.SetPath("/v1/restaurants/:id/slots")
    c.SetParamNames("id")
    c.SetParamValues("1")
    if err := h.GetSlots(c); err != nil {
        t.Fatalf("GetSlots returned error: %v", err)
    }
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
    var body struct {
        Slots []string `json:"slots"`
    }
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("response is not JSON: %v", err)
    }
    if len(body.Slots) != 4 {
        t.Fatalf("slots = %v, want exactly 4 despite max=50", body.Slots)
    }
    if body.Slots[0] != "16:00" {
        t.Fatalf("first slot = %q, want the requested time first", body.Slots[0])
    }
}
