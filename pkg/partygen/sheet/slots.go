// Package sheet populates per-date schedule workbooks from a fixed
// template layout.
package sheet

import (
	"github.com/playbarn/partygen/pkg/partygen/parse"
	"github.com/xuri/excelize/v2"
)

// Layout describes where the schedule template keeps its time-slot grid
// and which columns each booking field lands in. Rows and columns are
// 1-based, matching excelize coordinates.
type Layout struct {
	// SlotFirstRow..SlotLastRow is the contiguous row range holding one
	// time slot per row.
	SlotFirstRow int
	SlotLastRow  int
	// SlotTimeCol is the column whose displayed value names each slot's time.
	SlotTimeCol int

	TypeCol      int
	NameCol      int
	ChildCol     int
	AttendeesCol int
	LocationCol  int
	InfoCol      int

	MargheritaCol int
	PepperoniCol  int
	ChipsCol      int
	CansCol       int
}

// ScanTimeSlots reads the template's slot rows once and indexes them by
// canonical minutes. Blank or label rows inside the range are skipped, so
// the index only holds rows a booking can actually land on.
func ScanTimeSlots(f *excelize.File, sheet string, l Layout) (map[int]int, error) {
	slots := make(map[int]int)
	for r := l.SlotFirstRow; r <= l.SlotLastRow; r++ {
		cell, err := excelize.CoordinatesToCellName(l.SlotTimeCol, r)
		if err != nil {
			return nil, err
		}
		v, err := f.GetCellValue(sheet, cell)
		if err != nil {
			return nil, err
		}
		if mins, ok := parse.ClockMinutes(v); ok {
			slots[mins] = r
		}
	}
	return slots, nil
}
