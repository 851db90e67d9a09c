// Package models defines data structures for party booking generation.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookingRow is one parsed booking record, keyed by column header.
// Values keep their native type from the source workbook: string for text
// cells, float64 for numeric cells (including Excel date serials), and
// time.Time when a collaborator hands in an already-parsed date.
type BookingRow map[string]any

// Column-header synonyms, checked in order. Source files are inconsistent
// about these two headers; all other columns use a single spelling.
var (
	DateKeys = []string{"Date of Party", "Party Date", "Date"}
	TimeKeys = []string{"Party Start Time", "Party Time", "Time"}
)

// Fixed column headers used by the booking export.
const (
	KeyPartyType     = "Party Type"
	KeyName          = "Name"
	KeyChildDetails  = "Child Details Name/Age"
	KeyLocation      = "PartyLocation"
	KeyFoodAllergies = "Food Any Allergies"
	KeyFoodNotes     = "Food Notes (inc Allergies)"
	KeyTelephone     = "Telephone"
	KeyEmail         = "Email"
)

// Field returns the first usable value among the given column keys.
// Missing columns, nil cells and blank strings fall through to the next key.
func (r BookingRow) Field(keys ...string) (any, bool) {
	for _, k := range keys {
		v, ok := r[k]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v, true
	}
	return nil, false
}

// Text resolves a field like Field and renders it as a trimmed string.
// Absent fields render as "".
func (r BookingRow) Text(keys ...string) string {
	v, ok := r.Field(keys...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format("2006-01-02 15:04")
	default:
		return fmt.Sprint(t)
	}
}
