package domain

import "time"

// Reservation moves through Created -> Paid -> CheckedIn. CheckedIn only
// ever transitions false -> true; there is no cancellation path.
type Reservation struct {
	ID           int64
	CheckedIn    bool
	NumberOfBags int
	PassengerID  int64
	FlightID     int64
	Created      time.Time
	CardNumber   string
	Amount       float64
}

// ReservationDetails is a reservation together with its associated rows,
// as loaded for check-in and confirmation views.
type ReservationDetails struct {
	Reservation Reservation
	Flight      *Flight
	Passenger   *Passenger
}
