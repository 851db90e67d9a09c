package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/playbarn/partygen/pkg/partygen/models"
)

// Kind classifies the free-text party type. The stomp substring is checked
// before the tagx substrings; the order is load-bearing if text ever
// matches both.
func Kind(partyType string) models.PartyKind {
	s := strings.ToLower(partyType)
	if s == "" {
		return models.KindUnknown
	}
	if strings.Contains(s, "stomp") {
		return models.KindStomp
	}
	if strings.Contains(s, "tag x") || strings.Contains(s, "tagx") {
		return models.KindTagX
	}
	return models.KindUnknown
}

var digitRun = regexp.MustCompile(`\d+`)

// Attendees extracts the attendee count from the first run of digits in the
// party-type text ("Tag X Party - 18 guests" → 18). No digits, or a count
// of zero, reports ok=false.
func Attendees(partyType string) (int, bool) {
	m := digitRun.FindString(partyType)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil || n == 0 {
		return 0, false
	}
	return n, true
}

// SupplySplit maps an attendee count onto the fixed catering tiers.
// Cans track the headcount exactly.
func SupplySplit(attendees int) models.SupplyCounts {
	c := models.SupplyCounts{Cans: attendees}
	switch {
	case attendees <= 10:
		c.Margherita, c.Pepperoni, c.Chips = 3, 2, 4
	case attendees <= 15:
		c.Margherita, c.Pepperoni, c.Chips = 3, 3, 5
	case attendees <= 20:
		c.Margherita, c.Pepperoni, c.Chips = 4, 3, 8
	case attendees <= 25:
		c.Margherita, c.Pepperoni, c.Chips = 4, 4, 9
	default:
		c.Margherita, c.Pepperoni, c.Chips = 5, 5, 10
	}
	return c
}
