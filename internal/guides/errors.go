package guides

import "errors"

// ErrNotFound is returned when a guide id does not resolve. It is terminal,
// not retryable, and distinct from provider errors.
var ErrNotFound = errors.New("guide not found")

// ValidationError marks a pre-flight upload failure: no side effects have
// been performed yet and the message is safe to show inline.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
