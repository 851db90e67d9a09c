package parse

import (
	"strings"
	"time"

	"github.com/playbarn/partygen/pkg/partygen/models"
	"github.com/xuri/excelize/v2"
)

// Accepted layouts for free-text date cells, tried in order. Month-first
// layouts come before day-first to match how the upstream export renders
// ambiguous dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"1/2/2006 15:04",
	"01/02/2006 15:04",
	"1/2/06",
	"1-2-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2 January 2006",
}

// DayKey normalizes a raw date cell into a calendar-day key ("2006-01-02").
// Any time-of-day component is discarded. The second return is false when
// the value carries no parseable date.
func DayKey(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case time.Time:
		return t.Format("2006-01-02"), true
	case float64:
		// Serials below 1 are pure times of day, not dates.
		if t < 1 {
			return "", false
		}
		ts, err := excelize.ExcelDateToTime(t, false)
		if err != nil {
			return "", false
		}
		return ts.Format("2006-01-02"), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return "", false
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.Format("2006-01-02"), true
			}
		}
		return "", false
	default:
		return "", false
	}
}

// GroupByDate partitions rows by calendar day, resolving the date through
// the given ordered column keys. Rows without a parseable date are dropped;
// within each day the source order is preserved.
func GroupByDate(rows []models.BookingRow, dateKeys []string) map[string][]models.BookingRow {
	groups := make(map[string][]models.BookingRow)
	for _, row := range rows {
		v, ok := row.Field(dateKeys...)
		if !ok {
			continue
		}
		key, ok := DayKey(v)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], row)
	}
	return groups
}
