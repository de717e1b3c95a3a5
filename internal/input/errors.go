package input

import (
	"github.com/douhashi/greet/pkg/errors"
)

// NewReadError wraps a failure on the input stream.
func NewReadError(cause error) error {
	err := errors.WrapExternal(cause, "failed to read name from input")
	return errors.WithContext(err, "stream", "stdin")
}

// NewPromptError wraps a failure to write the prompt.
func NewPromptError(cause error) error {
	return errors.WrapExternal(cause, "failed to write prompt")
}

// NewCapacityError reports a destination buffer too small to hold even
// the NUL terminator.
func NewCapacityError(capacity int) error {
	err := errors.NewValidationError("buffer capacity must be at least 1")
	return errors.WithContext(err, "capacity", capacity)
}
