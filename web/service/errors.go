// Package service contains the application services sitting between the
// HTTP controllers and the database: credential checks and the employee
// record store with its validation rules.
package service

import "errors"

var (
	// ErrEmployeeNotFound is returned when an operation names an id that
	// has no employee row.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrDuplicateEmail is returned when a create/update would leave two
	// employees holding the same email.
	ErrDuplicateEmail = errors.New("email address is already registered")

	// ErrDuplicateUsername is returned when a user with that username
	// already exists.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrMissingField is the cause of a FieldError for a required field
	// that is empty after trimming.
	ErrMissingField = errors.New("required field is missing")

	// ErrInvalidNumber is the cause of a FieldError for numeric input
	// that does not parse as a finite number.
	ErrInvalidNumber = errors.New("not a valid number")
)

// FieldError scopes a validation failure to the offending form field.
// It unwraps to one of the sentinel errors above so callers can branch
// with errors.Is while still naming the field to the user.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missingField(field string) *FieldError {
	return &FieldError{Field: field, Err: ErrMissingField}
}

func invalidNumber(field string) *FieldError {
	return &FieldError{Field: field, Err: ErrInvalidNumber}
}

func duplicateEmail() *FieldError {
	return &FieldError{Field: "email", Err: ErrDuplicateEmail}
}
