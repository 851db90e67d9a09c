// Package partygen turns loosely-typed party-booking records into finished
// schedule sheets and paginated name-sign documents.
package partygen

import "github.com/playbarn/partygen/pkg/partygen/sheet"

// Options configures generation. DefaultOptions matches the stock
// templates; callers only override fields when the templates change shape.
type Options struct {
	// Layout locates the slot grid and output columns of the schedule
	// template.
	Layout sheet.Layout

	// TagXPerPage and StompPerPage are the name-slot capacities of the two
	// sign templates.
	TagXPerPage  int
	StompPerPage int

	// NameToken is the positional placeholder prefix inside the sign
	// templates; slot n is NameToken followed by n, counted from 1.
	NameToken string

	// Output file name patterns. SheetNamePattern takes the ISO date;
	// the sign patterns take the 1-based page number.
	SheetNamePattern string
	TagXSignPattern  string
	StompSignPattern string
}

// DefaultOptions returns options matching the stock template set.
func DefaultOptions() Options {
	return Options{
		Layout: sheet.Layout{
			SlotFirstRow: 4,
			SlotLastRow:  13,
			SlotTimeCol:  4,

			TypeCol:      2,
			NameCol:      5,
			ChildCol:     6,
			AttendeesCol: 7,
			LocationCol:  8,
			InfoCol:      16,

			MargheritaCol: 9,
			PepperoniCol:  10,
			ChipsCol:      11,
			CansCol:       12,
		},
		TagXPerPage:      4,
		StompPerPage:     2,
		NameToken:        "NAME ",
		SheetNamePattern: "PartySheet_%s.xlsx",
		TagXSignPattern:  "TagX_Signs_%d.docx",
		StompSignPattern: "Stompers_Signs_%d.docx",
	}
}

// withDefaults fills zero-valued fields from DefaultOptions, so a partial
// Options literal still generates against the stock layout.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Layout == (sheet.Layout{}) {
		o.Layout = def.Layout
	}
	if o.TagXPerPage == 0 {
		o.TagXPerPage = def.TagXPerPage
	}
	if o.StompPerPage == 0 {
		o.StompPerPage = def.StompPerPage
	}
	if o.NameToken == "" {
		o.NameToken = def.NameToken
	}
	if o.SheetNamePattern == "" {
		o.SheetNamePattern = def.SheetNamePattern
	}
	if o.TagXSignPattern == "" {
		o.TagXSignPattern = def.TagXSignPattern
	}
	if o.StompSignPattern == "" {
		o.StompSignPattern = def.StompSignPattern
	}
	return o
}
