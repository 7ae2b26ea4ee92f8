package entity

import "errors"

// ErrNotFound marks slug/id lookups that matched nothing. Handlers map it to
// a generic 404 without leaking nearby records.
var ErrNotFound = errors.New("resource not found")

// ValidationError rejects malformed or conflicting input before any write.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// AsValidationError extracts a ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
