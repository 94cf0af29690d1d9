package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/Domenick1991/flightreservation/internal/repository"
)

type FlightUseCase interface {
	Search(ctx context.Context, from, to string, dateOfDeparture time.Time) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type Cache interface {
	GetSearch(ctx context.Context, from, to string, dateOfDeparture time.Time) ([]domain.Flight, error)
	SetSearch(ctx context.Context, from, to string, dateOfDeparture time.Time, flights []domain.Flight) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

// Search returns the flights matching exact equality on departure city,
// arrival city and departure date. An empty result is a valid answer, not
// an error; callers distinguish via length.
func (s *FlightService) Search(ctx context.Context, from, to string, dateOfDeparture time.Time) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetSearch(ctx, from, to, dateOfDeparture); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.Search(ctx, from, to, dateOfDeparture)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetSearch(ctx, from, to, dateOfDeparture, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
