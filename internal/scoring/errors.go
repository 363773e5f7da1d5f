package scoring

import (
	"errors"
	"fmt"
)

// ErrInstrumentNotFound reports an instrument id absent from the catalog.
var ErrInstrumentNotFound = errors.New("instrument not found")

// ValidationError reports malformed engine input: answer-count mismatch,
// out-of-range values, unknown grade expectation. Raised before any
// computation; no partial result is produced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func validationErrorf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
