package parse

import (
	"strings"
	"unicode"
)

// NameCase selects the casing convention applied to an extracted name.
type NameCase int

const (
	// TitleCase renders "amelia" as "Amelia".
	TitleCase NameCase = iota
	// UpperCase renders "amelia" as "AMELIA".
	UpperCase
)

// FirstName pulls a child's first name out of a free-text details field
// such as "Amelia (age 6) - allergy note". Parenthetical notes and
// hyphen-separated trailing notes are dropped, the first whitespace token
// is kept, and anything other than letters, apostrophes and hyphens is
// stripped. Hyphenated names like O'Brien-Smith survive intact: only a
// hyphen preceded by whitespace acts as a note separator.
func FirstName(raw string, c NameCase) (string, bool) {
	t := strings.TrimSpace(raw)
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = t[:i]
	}
	if i := strings.Index(t, " -"); i >= 0 {
		t = t[:i]
	}
	t = strings.TrimSpace(t)
	if t == "" {
		return "", false
	}

	first := strings.Fields(t)[0]
	var b strings.Builder
	for _, r := range first {
		if unicode.IsLetter(r) || r == '\'' || r == '-' {
			b.WriteRune(r)
		}
	}
	name := b.String()
	if name == "" {
		return "", false
	}

	if c == UpperCase {
		return strings.ToUpper(name), true
	}
	return titleCase(name), true
}

// titleCase lowercases a name and re-capitalizes the first letter of every
// apostrophe- or hyphen-joined segment, so o'brien-smith comes out as
// O'Brien-Smith.
func titleCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	startSegment := true
	for _, r := range strings.ToLower(name) {
		if r == '\'' || r == '-' {
			startSegment = true
			b.WriteRune(r)
			continue
		}
		if startSegment {
			b.WriteRune(unicode.ToUpper(r))
			startSegment = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
