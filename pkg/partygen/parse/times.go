// Package parse normalizes the loosely-typed fields of a booking export:
// times, dates, party classification and child names.
package parse

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// ClockMinutes normalizes a raw time cell into minutes since midnight.
// It accepts time.Time values, Excel serial numbers (a fraction of a day,
// or a full date-time serial) and loose text such as "2:30pm", "14.30" or
// "2pm". The second return is false when the value carries no readable
// time of day; callers treat that as absence, not as an error.
func ClockMinutes(v any) (int, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case time.Time:
		return t.Hour()*60 + t.Minute(), true
	case float64:
		return serialMinutes(t)
	case int:
		return serialMinutes(float64(t))
	case string:
		return textMinutes(t)
	default:
		return 0, false
	}
}

func serialMinutes(f float64) (int, bool) {
	if f < 0 {
		return 0, false
	}
	if f < 1 {
		// Time-only serial: fraction of a 24-hour day.
		return int(f*24*60+0.5) % 1440, true
	}
	ts, err := excelize.ExcelDateToTime(f, false)
	if err != nil {
		return 0, false
	}
	return ts.Hour()*60 + ts.Minute(), true
}

func textMinutes(s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	// "2.30" is a period-separated clock time, not a decimal.
	s = strings.ReplaceAll(s, ".", ":")
	am := strings.Contains(s, "am")
	pm := strings.Contains(s, "pm")
	s = strings.ReplaceAll(s, "am", "")
	s = strings.ReplaceAll(s, "pm", "")

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ':' {
			b.WriteRune(r)
		}
	}
	s = b.String()
	if s == "" {
		return 0, false
	}

	hourPart, minutePart := s, ""
	if i := strings.IndexByte(s, ':'); i >= 0 {
		hourPart, minutePart = s[:i], s[i+1:]
		if j := strings.IndexByte(minutePart, ':'); j >= 0 {
			minutePart = minutePart[:j]
		}
	}
	h := atoiOrZero(hourPart)
	m := atoiOrZero(minutePart)
	if pm && h < 12 {
		h += 12
	}
	if am && h == 12 {
		h = 0
	}
	return h*60 + m, true
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
