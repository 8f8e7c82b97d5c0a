package uri

import (
	"github.com/PLeVasseur/up-go/internal/errorutil"
)

// ValidationError reports the reasons a URI component fails a validity
// check. Several independent reasons merge into a single error carrying
// their comma-separated, insertion-ordered concatenation. It has no
// machine-readable codes, callers are expected to surface or log the
// message verbatim.
type ValidationError struct {
	msg string
}

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (err *ValidationError) Error() string {
	if err == nil {
		return "<nil>"
	}
	return err.msg
}

// MergeValidationErrors merges errs into a single ValidationError whose
// message is the comma-separated concatenation of the non-nil errs'
// messages, in the order given. It returns nil if errs contains no non-nil
// error.
func MergeValidationErrors(errs ...*ValidationError) *ValidationError {
	list := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			list = append(list, err)
		}
	}
	combined := errorutil.JoinList(", ", list...)
	if combined == nil {
		return nil
	}
	return &ValidationError{msg: combined.Error()}
}
