package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Message(t *testing.T) {
	err := &NotFoundError{Entity: "Flight", ID: 42}
	assert.Equal(t, "Flight not found", err.Error())

	err = &NotFoundError{Entity: "Reservation", ID: 7}
	assert.Equal(t, "Reservation not found", err.Error())
}

func TestValidationError_Message(t *testing.T) {
	assert.Equal(t, "Reservation ID is required", NewValidationError("Reservation ID is required").Error())

	withViolations := &ValidationError{Violations: []Violation{
		{Entity: "Passenger", Field: "Phone", Rule: "len"},
	}}
	assert.Equal(t, "Passenger.Phone: violates len", withViolations.Error())

	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
}

func TestUnexpectedError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := &UnexpectedError{Op: "get flight", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "get flight")
}

func TestErrorKinds_Distinguishable(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", &NotFoundError{Entity: "Flight", ID: 1})

	var notFoundErr *NotFoundError
	assert.ErrorAs(t, wrapped, &notFoundErr)

	var validationErr *ValidationError
	assert.False(t, errors.As(wrapped, &validationErr))
}

func TestPassengerDisplayName(t *testing.T) {
	assert.Equal(t, "John Doe", Passenger{FirstName: "John", LastName: "Doe"}.DisplayName())
	assert.Equal(t, "John Quincy Doe", Passenger{FirstName: "John", MiddleName: "Quincy", LastName: "Doe"}.DisplayName())
	assert.Equal(t, "Doe", Passenger{LastName: "Doe"}.DisplayName())
	assert.Equal(t, "", Passenger{}.DisplayName())
}
