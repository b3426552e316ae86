package booking

import "testing"

func TestParseTime(t *testing.T) {
    tests := []struct {
        in     string
        minute int
        ok     bool
    }{
        {"00:00", 0, true},
        {"10:15", 615, true},
        {"18:00", 1080, true},
        {"23:59", 1439, true},
        {"24:00", 0, false},
        {"12:60", 0, false},
        {"7:30", 0, false},
        {"07:3", 0, false},
        {"07-30", 0, false},
        {"ab:cd", 0, false},
        {"", 0, false},
        {" 7:30", 0, false},
    }
    for _, tt := range tests {
        got, ok := ParseTime(tt.in)
        if ok != tt.ok {
            t.Errorf("ParseTime(%q) ok = %v, want %v", tt.in, ok, tt.ok)
            continue
        }
        if ok && got != tt.minute {
            t.Errorf("ParseTime(%q) = %d, want %d", tt.in, got, tt.minute)
        }
    }
}

func TestFormatTime(t *testing.T) {
    tests := []struct {
        minute int
        want   string
    }{
        {0, "00:00"},
        {615, "10:15"},
        {1439, "23:59"},
        // Arithmetic overshoot must clamp instead of producing "24:15".
        {1455, "23:59"},
        {-30, "00:00"},
    }
    for _, tt := range tests {
        if got := FormatTime(tt.minute); got != tt.want {
            t.Errorf("FormatTime(%d) = %q, want %q", tt.minute, got, tt.want)
        }
    }
}

func TestSnapDown(t *testing.T) {
    tests := []struct {
        minute, step, want int
    }{
        {1080, 15, 1080},
        {1089, 15, 1080},
        {1094, 15, 1080},
        {1095, 15, 1095},
        {17, 30, 0},
        {1080, 0, 1080}, // non-positive step leaves the value alone
        {1080, -5, 1080},
    }
    for _, tt := range tests {
        if got := SnapDown(tt.minute, tt.step); got != tt.want {
            t.Errorf("SnapDown(%d, %d) = %d, want %d", tt.minute, tt.step, got, tt.want)
        }
    }
}

func TestSnapDownIdempotent(t *testing.T) {
    for minute := 0; minute < minutesPerDay; minute += 7 {
        for _, step := range []int{5, 15, 30, 60} {
            once := SnapDown(minute, step)
            if twice := SnapDown(once, step); twice != once {
                t.Fatalf("SnapDown not idempotent: SnapDown(%d, %d) = %d, snapped again = %d", minute, step, once, twice)
            }
        }
    }
}
