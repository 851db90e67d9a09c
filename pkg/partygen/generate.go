package partygen

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/playbarn/partygen/pkg/partygen/models"
	"github.com/playbarn/partygen/pkg/partygen/parse"
	"github.com/playbarn/partygen/pkg/partygen/sheet"
	"github.com/playbarn/partygen/pkg/partygen/sign"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// GenerateSchedules produces one populated schedule workbook per calendar
// date present in rows, in date order. Rows lacking a resolvable date, a
// readable time, or a matching template slot are left off the schedule
// without failing the batch; only template problems are fatal.
func GenerateSchedules(rows []models.BookingRow, templates TemplateSource, opts Options) ([]models.OutputFile, error) {
	opts = opts.withDefaults()

	tmpl, err := templates.ScheduleTemplate()
	if err != nil {
		return nil, NewGenerateError("schedule", "load", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(tmpl))
	if err != nil {
		return nil, NewGenerateError("schedule", "load", fmt.Errorf("%w: %v", ErrInvalidTemplate, err))
	}
	sheetName := f.GetSheetName(0)
	slots, err := sheet.ScanTimeSlots(f, sheetName, opts.Layout)
	f.Close()
	if err != nil {
		return nil, NewGenerateError("schedule", "index", err)
	}

	days := parse.GroupByDate(rows, models.DateKeys)
	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	// Each date starts from its own fresh copy of the template, so the
	// per-date workbooks are independent and safe to build concurrently.
	outputs := make([]models.OutputFile, len(dates))
	var g errgroup.Group
	for i, date := range dates {
		g.Go(func() error {
			data, err := populateDate(tmpl, sheetName, slots, opts.Layout, days[date])
			if err != nil {
				return NewGenerateError("schedule", "populate", fmt.Errorf("date %s: %w", date, err))
			}
			outputs[i] = models.OutputFile{
				Name: fmt.Sprintf(opts.SheetNamePattern, date),
				Data: data,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}

func populateDate(tmpl []byte, sheetName string, slots map[int]int, l sheet.Layout, day []models.BookingRow) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(tmpl))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if _, err := sheet.PopulateDay(f, sheetName, slots, l, day); err != nil {
		return nil, err
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateSigns produces the two lists of paginated name-sign documents.
// A category with no matching bookings still yields one sign with every
// name slot blank.
func GenerateSigns(rows []models.BookingRow, templates TemplateSource, opts Options) (tagx, stomp []models.OutputFile, err error) {
	opts = opts.withDefaults()
	tagNames, stompNames := sign.Collect(rows)

	tagx, err = signFamily("tagx signs", templates, models.KindTagX, tagNames, opts.TagXPerPage, opts.NameToken, opts.TagXSignPattern)
	if err != nil {
		return nil, nil, err
	}
	stomp, err = signFamily("stomp signs", templates, models.KindStomp, stompNames, opts.StompPerPage, opts.NameToken, opts.StompSignPattern)
	if err != nil {
		return nil, nil, err
	}
	return tagx, stomp, nil
}

func signFamily(artifact string, templates TemplateSource, kind models.PartyKind, names []string, perPage int, token, pattern string) ([]models.OutputFile, error) {
	tmpl, err := templates.SignTemplate(kind)
	if err != nil {
		return nil, NewGenerateError(artifact, "load", err)
	}

	pages := sign.Paginate(names, perPage)
	out := make([]models.OutputFile, len(pages))
	for i, page := range pages {
		data, err := sign.PageDoc(tmpl, page, perPage, token)
		if err != nil {
			return nil, NewGenerateError(artifact, "substitute", err)
		}
		out[i] = models.OutputFile{
			Name: fmt.Sprintf(pattern, i+1),
			Data: data,
		}
	}
	return out, nil
}

// GenerateAll runs both document families and returns every output file:
// schedule sheets first, then Tag X signs, then Stompers signs. This is
// the order the delivery bundle lists them in.
func GenerateAll(rows []models.BookingRow, templates TemplateSource, opts Options) ([]models.OutputFile, error) {
	sheets, err := GenerateSchedules(rows, templates, opts)
	if err != nil {
		return nil, err
	}
	tagx, stomp, err := GenerateSigns(rows, templates, opts)
	if err != nil {
		return nil, err
	}
	all := make([]models.OutputFile, 0, len(sheets)+len(tagx)+len(stomp))
	all = append(all, sheets...)
	all = append(all, tagx...)
	all = append(all, stomp...)
	return all, nil
}
