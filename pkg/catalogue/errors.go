package catalogue

import (
	"fmt"

	"github.com/phac-aspc/catalogue-go/pkg/catalogue/models"
)

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = models.ErrFileNotFound

// ErrInvalidFormat indicates an input file could not be decoded.
var ErrInvalidFormat = models.ErrInvalidFormat

// ErrInvalidConfig indicates the field mapping or run options are unusable.
var ErrInvalidConfig = models.ErrInvalidConfig

// Pipeline stages reported by StageError.
const (
	StageConfig    = "config"
	StageSource    = "source"
	StageTransform = "transform"
	StageSerialize = "serialize"
)

// StageError represents a failure in one stage of an extraction run.
type StageError struct {
	Stage    string
	Language models.Language
	Path     string
	Err      error
}

func (e *StageError) Error() string {
	msg := fmt.Sprintf("%s stage failed", e.Stage)
	if e.Language != "" {
		msg += fmt.Sprintf(" (%s)", e.Language)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" for %s", e.Path)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage string, lang models.Language, path string, err error) *StageError {
	return &StageError{
		Stage:    stage,
		Language: lang,
		Path:     path,
		Err:      err,
	}
}

func wrapConfig(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
}
