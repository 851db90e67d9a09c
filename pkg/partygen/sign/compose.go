// Package sign collects children's names per party category and produces
// paginated name-sign documents by placeholder substitution in a docx
// template.
package sign

import (
	"github.com/playbarn/partygen/pkg/partygen/models"
	"github.com/playbarn/partygen/pkg/partygen/parse"
)

// Collect gathers deduplicated first names per category, preserving
// first-occurrence order. Tag X signs carry title-cased names, Stompers
// signs all-uppercase ones.
func Collect(rows []models.BookingRow) (tagx, stomp []string) {
	seenTag := make(map[string]bool)
	seenStomp := make(map[string]bool)
	for _, row := range rows {
		details := row.Text(models.KeyChildDetails)
		switch parse.Kind(row.Text(models.KeyPartyType)) {
		case models.KindTagX:
			if n, ok := parse.FirstName(details, parse.TitleCase); ok && !seenTag[n] {
				seenTag[n] = true
				tagx = append(tagx, n)
			}
		case models.KindStomp:
			if n, ok := parse.FirstName(details, parse.UpperCase); ok && !seenStomp[n] {
				seenStomp[n] = true
				stomp = append(stomp, n)
			}
		}
	}
	return tagx, stomp
}

// Paginate splits names into consecutive pages of at most perPage entries.
// An empty list still yields a single empty page, so a blank sign is
// always produced.
func Paginate(names []string, perPage int) [][]string {
	if len(names) == 0 {
		return make([][]string, 1)
	}
	var pages [][]string
	for i := 0; i < len(names); i += perPage {
		end := i + perPage
		if end > len(names) {
			end = len(names)
		}
		pages = append(pages, append([]string(nil), names[i:end]...))
	}
	return pages
}
