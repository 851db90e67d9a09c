package partygen

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound indicates a required template artifact is missing.
var ErrTemplateNotFound = errors.New("template not found")

// ErrInvalidTemplate indicates a template artifact could not be parsed.
var ErrInvalidTemplate = errors.New("invalid template")

// GenerateError represents a fatal failure while producing one artifact
// family. Per-row issues (unparseable times, unmatched slots) never raise
// one; they are silent omissions.
type GenerateError struct {
	Artifact string // "schedule", "tagx signs", "stomp signs"
	Stage    string // "load", "index", "populate", "substitute"
	Err      error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generating %s (%s): %v", e.Artifact, e.Stage, e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

// NewGenerateError creates a new GenerateError.
func NewGenerateError(artifact, stage string, err error) *GenerateError {
	return &GenerateError{
		Artifact: artifact,
		Stage:    stage,
		Err:      err,
	}
}
