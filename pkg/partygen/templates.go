package partygen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/playbarn/partygen/pkg/partygen/models"
)

// TemplateSource supplies template bytes for output artifacts. Every call
// must return content unaffected by anything done to a previously returned
// copy; generation loads a fresh copy per artifact.
type TemplateSource interface {
	ScheduleTemplate() ([]byte, error)
	SignTemplate(kind models.PartyKind) ([]byte, error)
}

// DirTemplates is a TemplateSource reading the stock template files from a
// directory.
type DirTemplates struct {
	Dir          string
	ScheduleFile string
	TagXFile     string
	StompFile    string
}

// NewDirTemplates returns a DirTemplates wired to the stock file names.
func NewDirTemplates(dir string) DirTemplates {
	return DirTemplates{
		Dir:          dir,
		ScheduleFile: "PARTY SHEET TEMPLATE.xlsx",
		TagXFile:     "New Tag X Name Sign 2025.docx",
		StompFile:    "Stompers_Template_2PP.docx",
	}
}

// ScheduleTemplate reads the schedule workbook template.
func (d DirTemplates) ScheduleTemplate() ([]byte, error) {
	return d.read(d.ScheduleFile)
}

// SignTemplate reads the sign document template for a category.
func (d DirTemplates) SignTemplate(kind models.PartyKind) ([]byte, error) {
	switch kind {
	case models.KindTagX:
		return d.read(d.TagXFile)
	case models.KindStomp:
		return d.read(d.StompFile)
	default:
		return nil, fmt.Errorf("no sign template for party kind %q", kind)
	}
}

func (d DirTemplates) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(d.Dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return nil, err
	}
	return data, nil
}
