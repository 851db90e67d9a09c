package sheet

import (
	"strings"

	"github.com/playbarn/partygen/pkg/partygen/models"
	"github.com/playbarn/partygen/pkg/partygen/parse"
	"github.com/xuri/excelize/v2"
)

// infoFields are the labeled parts of the additional-info cell, in the
// order they are concatenated.
var infoFields = []struct {
	label string
	key   string
}{
	{"Food: ", models.KeyFoodAllergies},
	{"Notes: ", models.KeyFoodNotes},
	{"Tel: ", models.KeyTelephone},
	{"Email: ", models.KeyEmail},
}

type cellWrite struct {
	col int
	val any
}

// PopulateDay writes one day's bookings into a freshly loaded template
// copy. Bookings are applied in source order, so two bookings resolving to
// the same slot leave the later one's values in place. Rows with no
// readable time or no matching slot are skipped; the count of skipped rows
// is returned for caller-side diagnostics.
func PopulateDay(f *excelize.File, sheet string, slots map[int]int, l Layout, day []models.BookingRow) (int, error) {
	skipped := 0
	for _, row := range day {
		timeVal, _ := row.Field(models.TimeKeys...)
		mins, ok := parse.ClockMinutes(timeVal)
		if !ok {
			skipped++
			continue
		}
		slotRow, ok := slots[mins]
		if !ok {
			skipped++
			continue
		}

		ptype := row.Text(models.KeyPartyType)
		attendees, hasAttendees := parse.Attendees(ptype)

		cells := []cellWrite{
			{l.InfoCol, AdditionalInfo(row)},
			{l.TypeCol, ptype},
			{l.NameCol, row.Text(models.KeyName)},
			{l.ChildCol, row.Text(models.KeyChildDetails)},
			{l.LocationCol, row.Text(models.KeyLocation)},
		}
		if hasAttendees {
			cells = append(cells, cellWrite{l.AttendeesCol, attendees})
		} else {
			cells = append(cells, cellWrite{l.AttendeesCol, ""})
		}
		if parse.Kind(ptype) == models.KindTagX && hasAttendees {
			s := parse.SupplySplit(attendees)
			cells = append(cells,
				cellWrite{l.MargheritaCol, s.Margherita},
				cellWrite{l.PepperoniCol, s.Pepperoni},
				cellWrite{l.ChipsCol, s.Chips},
				cellWrite{l.CansCol, s.Cans},
			)
		}

		for _, c := range cells {
			cell, err := excelize.CoordinatesToCellName(c.col, slotRow)
			if err != nil {
				return skipped, err
			}
			if err := f.SetCellValue(sheet, cell, c.val); err != nil {
				return skipped, err
			}
		}
	}
	return skipped, nil
}

// AdditionalInfo concatenates whichever contact and allergy fields are
// present, each prefixed with its label, joined with " | ".
func AdditionalInfo(row models.BookingRow) string {
	var parts []string
	for _, f := range infoFields {
		if v := row.Text(f.key); v != "" {
			parts = append(parts, f.label+v)
		}
	}
	return strings.Join(parts, " | ")
}
