package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PassengerRepository interface {
	Create(ctx context.Context, passenger *domain.Passenger) error
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

func (r *PGPassengerRepository) Create(ctx context.Context, passenger *domain.Passenger) error {
	if err := r.db.QueryRow(ctx, `INSERT INTO passenger (first_name, last_name, middle_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, passenger.FirstName, passenger.LastName, passenger.MiddleName, passenger.Email, passenger.Phone).
		Scan(&passenger.ID); err != nil {
		return &domain.UnexpectedError{Op: "create passenger", Err: err}
	}
	return nil
}

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_name, last_name, middle_name, email, phone FROM passenger WHERE id=$1`, id)
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.MiddleName, &p.Email, &p.Phone); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Entity: "Passenger", ID: id}
		}
		return nil, &domain.UnexpectedError{Op: "get passenger", Err: err}
	}
	return &p, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
