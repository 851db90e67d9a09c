// Package input parses an uploaded bookings workbook into rows.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/playbarn/partygen/pkg/partygen/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoWorksheet indicates the workbook holds no worksheet at all.
var ErrNoWorksheet = errors.New("no worksheet found")

// ErrNoBookings indicates the first worksheet has no data rows after the
// header row.
var ErrNoBookings = errors.New("no booking rows found after header row")

// Rows parses the first worksheet of an uploaded workbook into booking
// rows. Row 1 supplies the column headers; every later row with at least
// one non-empty cell becomes one BookingRow. Numeric cells (including date
// and time serials) are carried as float64, everything else as text, so
// downstream normalizers see the native value rather than a display
// string.
func Rows(data []byte) ([]models.BookingRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, ErrNoWorksheet
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoBookings
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	var out []models.BookingRow
	for _, r := range rows[1:] {
		row := make(models.BookingRow)
		for i, cell := range r {
			if i >= len(headers) || headers[i] == "" || cell == "" {
				continue
			}
			row[headers[i]] = typedCell(cell)
		}
		if len(row) > 0 {
			out = append(out, row)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoBookings
	}
	return out, nil
}

// typedCell interprets a raw cell as a number when it is one. Excel stores
// dates and times as numeric serials, so those arrive here as float64 too.
func typedCell(raw string) any {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}
