package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PassengerInput carries the passenger fields of a reservation attempt.
// Rules mirror the store's own column constraints so a violation is caught
// with field attribution before any write is attempted.
type PassengerInput struct {
	FirstName  string `validate:"omitempty,min=1,max=256"`
	LastName   string `validate:"omitempty,min=1,max=256"`
	MiddleName string `validate:"omitempty,max=256"`
	Email      string `validate:"omitempty,email"`
	Phone      string `validate:"omitempty,len=10,number"`
}

func (in PassengerInput) Validate() error {
	return toValidationError("Passenger", validate.Struct(in))
}

type ReservationInput struct {
	FlightID   int64   `validate:"required,gt=0"`
	CardNumber string  `validate:"omitempty,credit_card,max=20"`
	Amount     float64 `validate:"gte=0"`
}

func (in ReservationInput) Validate() error {
	return toValidationError("Reservation", validate.Struct(in))
}

type CheckInInput struct {
	NumberOfBags int `validate:"gte=0"`
}

func (in CheckInInput) Validate() error {
	return toValidationError("Reservation", validate.Struct(in))
}

// FlightInput is only used by seed/admin flows; the lifecycle never mutates
// flights.
type FlightInput struct {
	FlightNumber      string  `validate:"required,min=1,max=10"`
	OperatingAirlines string  `validate:"required,min=1,max=50"`
	DepartureCity     string  `validate:"required,min=1,max=50"`
	ArrivalCity       string  `validate:"required,min=1,max=50"`
	Price             float64 `validate:"gte=0"`
}

func (in FlightInput) Validate() error {
	return toValidationError("Flight", validate.Struct(in))
}

func toValidationError(entity string, err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &UnexpectedError{Op: "validate " + entity, Err: err}
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Violations = append(ve.Violations, Violation{
			Entity: entity,
			Field:  fe.Field(),
			Rule:   fe.Tag(),
		})
	}
	return ve
}
