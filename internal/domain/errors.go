package domain

import "fmt"

// Violation names a single failed field rule.
type Violation struct {
	Entity string
	Field  string
	Rule   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s.%s: violates %s", v.Entity, v.Field, v.Rule)
}

// ValidationError is caller-correctable bad input. It carries either a plain
// message or the list of field violations that failed.
type ValidationError struct {
	Message    string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Violations) > 0 {
		return e.Violations[0].String()
	}
	return "validation failed"
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError means a referenced Flight/Passenger/Reservation id does not
// exist in the store.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// UnexpectedError is a store or transport failure not otherwise classified.
type UnexpectedError struct {
	Op  string
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}
