package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository interface {
	// CreateWithPassenger inserts the passenger and the reservation that
	// references it in a single transaction, so a failure between the two
	// writes cannot leave an orphaned passenger row.
	CreateWithPassenger(ctx context.Context, passenger *domain.Passenger, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetWithPassenger(ctx context.Context, id int64) (*domain.Reservation, *domain.Passenger, error)
	GetWithDetails(ctx context.Context, id int64) (*domain.ReservationDetails, error)
	UpdateCheckIn(ctx context.Context, id int64, numberOfBags int) (*domain.Reservation, error)
	DeleteOrphanPassengers(ctx context.Context) (int64, error)
}

type PGReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) ReservationRepository {
	return &PGReservationRepository{db: db}
}

// checked_in is stored as a 0/1 bit; the conversion happens here so domain
// code only ever sees a bool.
func boolToBit(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

func bitToBool(bit int16) bool {
	return bit == 1
}

func (r *PGReservationRepository) CreateWithPassenger(ctx context.Context, passenger *domain.Passenger, reservation *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return &domain.UnexpectedError{Op: "begin create reservation", Err: err}
	}
	defer tx.Rollback(ctx)

	if err := tx.QueryRow(ctx, `INSERT INTO passenger (first_name, last_name, middle_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, passenger.FirstName, passenger.LastName, passenger.MiddleName, passenger.Email, passenger.Phone).
		Scan(&passenger.ID); err != nil {
		return &domain.UnexpectedError{Op: "create passenger", Err: err}
	}

	reservation.PassengerID = passenger.ID
	reservation.CheckedIn = false
	if err := tx.QueryRow(ctx, `INSERT INTO reservation (checked_in, number_of_bags, passenger_id, flight_id, card_number, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created`, boolToBit(false), reservation.NumberOfBags, reservation.PassengerID, reservation.FlightID, reservation.CardNumber, reservation.Amount).
		Scan(&reservation.ID, &reservation.Created); err != nil {
		return &domain.UnexpectedError{Op: "create reservation", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.UnexpectedError{Op: "commit create reservation", Err: err}
	}
	return nil
}

func (r *PGReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT id, checked_in, number_of_bags, passenger_id, flight_id, created, card_number, amount FROM reservation WHERE id=$1`, id)
	return scanReservation(row, id)
}

func (r *PGReservationRepository) GetWithPassenger(ctx context.Context, id int64) (*domain.Reservation, *domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT r.id, r.checked_in, r.number_of_bags, r.passenger_id, r.flight_id, r.created, r.card_number, r.amount,
			p.id, p.first_name, p.last_name, p.middle_name, p.email, p.phone
		FROM reservation r
		JOIN passenger p ON p.id = r.passenger_id
		WHERE r.id=$1`, id)

	var (
		res domain.Reservation
		p   domain.Passenger
		bit int16
	)
	if err := row.Scan(&res.ID, &bit, &res.NumberOfBags, &res.PassengerID, &res.FlightID, &res.Created, &res.CardNumber, &res.Amount,
		&p.ID, &p.FirstName, &p.LastName, &p.MiddleName, &p.Email, &p.Phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, &domain.NotFoundError{Entity: "Reservation", ID: id}
		}
		return nil, nil, &domain.UnexpectedError{Op: "get reservation", Err: err}
	}
	res.CheckedIn = bitToBool(bit)
	return &res, &p, nil
}

func (r *PGReservationRepository) GetWithDetails(ctx context.Context, id int64) (*domain.ReservationDetails, error) {
	row := r.db.QueryRow(ctx, `SELECT r.id, r.checked_in, r.number_of_bags, r.passenger_id, r.flight_id, r.created, r.card_number, r.amount,
			f.id, f.flight_number, f.operating_airlines, f.departure_city, f.arrival_city, f.date_of_departure, f.estimated_departure_time, f.price,
			p.id, p.first_name, p.last_name, p.middle_name, p.email, p.phone
		FROM reservation r
		JOIN flight f ON f.id = r.flight_id
		JOIN passenger p ON p.id = r.passenger_id
		WHERE r.id=$1`, id)

	var (
		d   domain.ReservationDetails
		f   domain.Flight
		p   domain.Passenger
		bit int16
	)
	if err := row.Scan(&d.Reservation.ID, &bit, &d.Reservation.NumberOfBags, &d.Reservation.PassengerID, &d.Reservation.FlightID, &d.Reservation.Created, &d.Reservation.CardNumber, &d.Reservation.Amount,
		&f.ID, &f.FlightNumber, &f.OperatingAirlines, &f.DepartureCity, &f.ArrivalCity, &f.DateOfDeparture, &f.EstimatedDepartureTime, &f.Price,
		&p.ID, &p.FirstName, &p.LastName, &p.MiddleName, &p.Email, &p.Phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Reservation", ID: id}
		}
		return nil, &domain.UnexpectedError{Op: "get reservation details", Err: err}
	}
	d.Reservation.CheckedIn = bitToBool(bit)
	d.Flight = &f
	d.Passenger = &p
	return &d, nil
}

func (r *PGReservationRepository) UpdateCheckIn(ctx context.Context, id int64, numberOfBags int) (*domain.Reservation, error) {
	row := r.db.QueryRow(ctx, `UPDATE reservation SET number_of_bags=$1, checked_in=$2 WHERE id=$3 RETURNING id, checked_in, number_of_bags, passenger_id, flight_id, created, card_number, amount`, numberOfBags, boolToBit(true), id)
	return scanReservation(row, id)
}

// DeleteOrphanPassengers removes passenger rows no reservation references.
// The create path is transactional so new orphans cannot appear; this sweep
// cleans up rows left behind by data written before that fix.
func (r *PGReservationRepository) DeleteOrphanPassengers(ctx context.Context) (int64, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passenger p WHERE NOT EXISTS (SELECT 1 FROM reservation r WHERE r.passenger_id = p.id)`)
	if err != nil {
		return 0, &domain.UnexpectedError{Op: "delete orphan passengers", Err: err}
	}
	return cmd.RowsAffected(), nil
}

func scanReservation(row pgx.Row, id int64) (*domain.Reservation, error) {
	var (
		res domain.Reservation
		bit int16
	)
	if err := row.Scan(&res.ID, &bit, &res.NumberOfBags, &res.PassengerID, &res.FlightID, &res.Created, &res.CardNumber, &res.Amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Reservation", ID: id}
		}
		return nil, &domain.UnexpectedError{Op: "get reservation", Err: err}
	}
	res.CheckedIn = bitToBool(bit)
	return &res, nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
