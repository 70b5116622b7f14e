package config

import "fmt"

// ValidationError is a user-facing configuration error. Its message is
// printed as-is and the process exits with code 1; it never carries an
// internal cause worth unwrapping.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
