package booking

import "fmt"

// minutesPerDay bounds every minute-of-day value handled by the engine.
const minutesPerDay = 24 * 60

// ParseTime parses a strict "HH:mm" string into a minute of day.  It
// reports false for anything malformed (wrong length, missing colon,
// non-digits, hour > 23, minute > 59) so that a bad time becomes "no
// match" for the caller instead of a crash or a silent midnight default.
func ParseTime(s string) (int, bool) {
    if len(s) != 5 || s[2] != ':' {
        return 0, false
    }
    for _, i := range [4]int{0, 1, 3, 4} {
        if s[i] < '0' || s[i] > '9' {
            return 0, false
        }
    }
    h := int(s[0]-'0')*10 + int(s[1]-'0')
    m := int(s[3]-'0')*10 + int(s[4]-'0')
    if h > 23 || m > 59 {
        return 0, false
    }
    return h*60 + m, true
}

// FormatTime renders a minute of day as "HH:mm".  Values outside
// [0, 1439] are clamped first so that arithmetic overshoot can never
// produce strings like "24:15".
func FormatTime(minute int) string {
    if minute < 0 {
        minute = 0
    }
    if minute > minutesPerDay-1 {
        minute = minutesPerDay - 1
    }
    return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// SnapDown floors a minute of day to the nearest lower multiple of step.
// Rounding always goes down so an effective start time is never later
// than the one requested.  A non-positive step leaves the value as is.
func SnapDown(minute, step int) int {
    if step <= 0 {
        return minute
    }
    return minute - minute%step
}
