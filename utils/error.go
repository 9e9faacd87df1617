package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ValidationError marks an input the caller should fix (HTTP 400),
// as opposed to a store failure (HTTP 500).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
