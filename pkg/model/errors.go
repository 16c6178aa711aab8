package model

import (
	"errors"
	"fmt"
)

// ErrNotFound reports an edit or delete aimed at an id that is not in the
// collection. Callers treat it as a logged no-op rather than a hard failure.
var ErrNotFound = errors.New("model: record not found")

// ErrNotLoggedIn reports an operation that needs an active session.
var ErrNotLoggedIn = errors.New("model: not logged in")

// ValidationError rejects a form field before any state is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model: invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
