package domain

import "time"

type Flight struct {
	ID                     int64
	FlightNumber           string
	OperatingAirlines      string
	DepartureCity          string
	ArrivalCity            string
	DateOfDeparture        time.Time
	EstimatedDepartureTime time.Time
	Price                  float64
}
