package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	Search(ctx context.Context, from, to string, dateOfDeparture time.Time) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) Search(ctx context.Context, from, to string, dateOfDeparture time.Time) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT id, flight_number, operating_airlines, departure_city, arrival_city, date_of_departure, estimated_departure_time, price FROM flight WHERE departure_city=$1 AND arrival_city=$2 AND date_of_departure=$3 ORDER BY estimated_departure_time`, from, to, dateOfDeparture)
	if err != nil {
		return nil, &domain.UnexpectedError{Op: "search flights", Err: err}
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.FlightNumber, &f.OperatingAirlines, &f.DepartureCity, &f.ArrivalCity, &f.DateOfDeparture, &f.EstimatedDepartureTime, &f.Price); err != nil {
			return nil, &domain.UnexpectedError{Op: "scan flight", Err: err}
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.UnexpectedError{Op: "search flights", Err: err}
	}
	return flights, nil
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT id, flight_number, operating_airlines, departure_city, arrival_city, date_of_departure, estimated_departure_time, price FROM flight WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.OperatingAirlines, &f.DepartureCity, &f.ArrivalCity, &f.DateOfDeparture, &f.EstimatedDepartureTime, &f.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Flight", ID: id}
		}
		return nil, &domain.UnexpectedError{Op: "get flight", Err: err}
	}
	return &f, nil
}

// Create inserts a seed/admin flight row. Lifecycle operations never call it.
func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	if err := r.db.QueryRow(ctx, `INSERT INTO flight (flight_number, operating_airlines, departure_city, arrival_city, date_of_departure, estimated_departure_time, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`, flight.FlightNumber, flight.OperatingAirlines, flight.DepartureCity, flight.ArrivalCity, flight.DateOfDeparture, flight.EstimatedDepartureTime, flight.Price).
		Scan(&flight.ID); err != nil {
		return &domain.UnexpectedError{Op: "create flight", Err: err}
	}
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
