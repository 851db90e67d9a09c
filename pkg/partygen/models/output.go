package models

// PartyKind is the business classification of a booking. It selects which
// sign list a child's name joins and whether catering supplies are derived.
type PartyKind string

const (
	// KindStomp is a soft-play "Stompers" party.
	KindStomp PartyKind = "stomp"
	// KindTagX is a "Tag X" arena party.
	KindTagX PartyKind = "tagx"
	// KindUnknown is any booking whose party-type text matches neither.
	KindUnknown PartyKind = ""
)

// SupplyCounts holds the catering quantities derived from an attendee count.
type SupplyCounts struct {
	Margherita int `json:"margherita"`
	Pepperoni  int `json:"pepperoni"`
	Chips      int `json:"chips"`
	Cans       int `json:"cans"`
}

// OutputFile is one finished document, named and ready for delivery.
type OutputFile struct {
	Name string `json:"name"`
	Data []byte `json:"-"`
}
