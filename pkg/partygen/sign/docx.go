package sign

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// documentEntry is the markup stream subject to substitution. All other
// archive entries pass through byte for byte.
const documentEntry = "word/document.xml"

// Replacement is one literal substitution applied to the document markup.
type Replacement struct {
	Old string
	New string
}

// ReplaceInDocx applies the replacements, in order, to word/document.xml
// of a docx archive and repackages it. The template bytes are never
// modified; a new archive is returned. Substitution runs over the whole
// markup as a single string, since a placeholder's surrounding runs may
// span lines.
func ReplaceInDocx(template []byte, replacements []Replacement) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	found := false
	for _, entry := range r.File {
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", entry.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name, err)
		}

		if entry.Name == documentEntry {
			found = true
			markup := string(data)
			for _, rep := range replacements {
				markup = strings.ReplaceAll(markup, rep.Old, rep.New)
			}
			data = []byte(markup)
		}

		fw, err := w.CreateHeader(&zip.FileHeader{
			Name:     entry.Name,
			Method:   entry.Method,
			Modified: entry.Modified,
		})
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", entry.Name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return nil, fmt.Errorf("write %s: %w", entry.Name, err)
		}
	}
	if !found {
		return nil, fmt.Errorf("%s missing from template archive", documentEntry)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PageDoc fills the positional name tokens ("NAME 1", "NAME 2", …) of one
// page and returns the finished document. Slots beyond the supplied names
// are blanked, not left holding their placeholder.
func PageDoc(template []byte, names []string, slots int, tokenPrefix string) ([]byte, error) {
	replacements := make([]Replacement, 0, slots)
	for i := 0; i < slots; i++ {
		v := ""
		if i < len(names) {
			v = names[i]
		}
		replacements = append(replacements, Replacement{
			Old: fmt.Sprintf("%s%d", tokenPrefix, i+1),
			New: v,
		})
	}
	return ReplaceInDocx(template, replacements)
}
