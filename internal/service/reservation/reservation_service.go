package reservation

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/Domenick1991/flightreservation/internal/kafka"
	"github.com/Domenick1991/flightreservation/internal/repository"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reservations_created_total",
		Help: "The total number of reservations created",
	})
	paymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_processed_total",
		Help: "The total number of payment attempts by outcome",
	}, []string{"outcome"})
	checkInsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkins_completed_total",
		Help: "The total number of completed check-ins",
	})
)

const (
	MsgPaymentSuccess = "Payment processed successfully! You can now check in."
	MsgPaymentFailure = "Payment failed. Please verify your card details and try again."
	MsgCheckInDone    = "Check-in completed successfully!"
)

type ReservationUseCase interface {
	CreateReservation(ctx context.Context, input CreateReservationInput) (*ConfirmationDetails, error)
	CompleteReservation(ctx context.Context, reservationID int64) (*PaymentResult, error)
	CompleteCheckIn(ctx context.Context, reservationID int64, numberOfBags int) (*domain.ReservationDetails, error)
	GetReservationForCheckIn(ctx context.Context, reservationID int64) (*domain.Reservation, error)
	GetFlightForReservation(ctx context.Context, flightID int64) (*domain.Flight, error)
}

type Authorizer interface {
	Authorize(ctx context.Context, cardNumber string, amount float64) (bool, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type ReservationService struct {
	reservations       repository.ReservationRepository
	flights            repository.FlightRepository
	authorizer         Authorizer
	producer           Producer
	reservationTopic   string
	notificationsTopic string
}

type CreateReservationInput struct {
	FlightID   int64   `json:"flight_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	MiddleName string  `json:"middle_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	CardNumber string  `json:"card_number"`
	Amount     float64 `json:"amount"`
}

// ConfirmationDetails is the payload the confirmation view renders after a
// successful create.
type ConfirmationDetails struct {
	Reservation       *domain.Reservation
	Flight            *domain.Flight
	PassengerName     string
	PassengerEmail    string
	ShowConfirmButton bool
}

// PaymentResult carries the payment outcome. The reservation row itself is
// not changed by CompleteReservation regardless of outcome.
type PaymentResult struct {
	Reservation *domain.Reservation
	Flight      *domain.Flight
	Success     bool
	Message     string
}

type ReservationServiceOption func(*ReservationService)

func WithNotificationsTopic(topic string) ReservationServiceOption {
	return func(s *ReservationService) {
		s.notificationsTopic = topic
	}
}

func NewReservationService(
	reservations repository.ReservationRepository,
	flights repository.FlightRepository,
	authorizer Authorizer,
	producer Producer,
	reservationTopic string,
	opts ...ReservationServiceOption,
) *ReservationService {
	service := &ReservationService{
		reservations:     reservations,
		flights:          flights,
		authorizer:       authorizer,
		producer:         producer,
		reservationTopic: reservationTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateReservation validates the passenger and reservation fields, verifies
// the flight exists, then inserts the passenger and reservation rows in one
// transaction. The existence check runs before any write so a missing flight
// cannot leave orphan rows behind.
func (s *ReservationService) CreateReservation(ctx context.Context, input CreateReservationInput) (*ConfirmationDetails, error) {
	passengerInput := domain.PassengerInput{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		MiddleName: input.MiddleName,
		Email:      input.Email,
		Phone:      input.Phone,
	}
	if err := passengerInput.Validate(); err != nil {
		return nil, err
	}

	reservationInput := domain.ReservationInput{
		FlightID:   input.FlightID,
		CardNumber: input.CardNumber,
		Amount:     input.Amount,
	}
	if err := reservationInput.Validate(); err != nil {
		return nil, err
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}

	passenger := &domain.Passenger{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		MiddleName: input.MiddleName,
		Email:      input.Email,
		Phone:      input.Phone,
	}
	reservation := &domain.Reservation{
		FlightID:   input.FlightID,
		CardNumber: input.CardNumber,
		Amount:     input.Amount,
	}

	if err := s.reservations.CreateWithPassenger(ctx, passenger, reservation); err != nil {
		return nil, err
	}

	reservationsCreated.Inc()
	s.publish(ctx, "reservation_created", reservation, passenger.Email)

	return &ConfirmationDetails{
		Reservation:       reservation,
		Flight:            flight,
		PassengerName:     passenger.DisplayName(),
		PassengerEmail:    passenger.Email,
		ShowConfirmButton: true,
	}, nil
}

// CompleteReservation runs the payment for an existing reservation and
// reports the outcome. It persists nothing: the reservation row is left
// untouched whether the payment succeeds or fails.
func (s *ReservationService) CompleteReservation(ctx context.Context, reservationID int64) (*PaymentResult, error) {
	reservation, passenger, err := s.reservations.GetWithPassenger(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	authorized, err := s.authorizer.Authorize(ctx, reservation.CardNumber, reservation.Amount)
	if err != nil {
		return nil, &domain.UnexpectedError{Op: "authorize payment", Err: err}
	}

	flight, err := s.flights.GetByID(ctx, reservation.FlightID)
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{
		Reservation: reservation,
		Flight:      flight,
		Success:     authorized,
		Message:     MsgPaymentFailure,
	}
	if authorized {
		result.Message = MsgPaymentSuccess
		paymentsProcessed.WithLabelValues("success").Inc()
	} else {
		paymentsProcessed.WithLabelValues("failure").Inc()
	}

	s.publish(ctx, "payment_processed", reservation, passenger.Email)
	return result, nil
}

// CompleteCheckIn records the bag count and flips checkedIn to true in a
// single-row update. There is no guard against re-check-in; repeating the
// call with the same bag count leaves the row unchanged.
func (s *ReservationService) CompleteCheckIn(ctx context.Context, reservationID int64, numberOfBags int) (*domain.ReservationDetails, error) {
	checkInInput := domain.CheckInInput{NumberOfBags: numberOfBags}
	if err := checkInInput.Validate(); err != nil {
		return nil, err
	}

	details, err := s.reservations.GetWithDetails(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	updated, err := s.reservations.UpdateCheckIn(ctx, reservationID, numberOfBags)
	if err != nil {
		return nil, err
	}

	checkInsCompleted.Inc()
	email := ""
	if details.Passenger != nil {
		email = details.Passenger.Email
	}
	s.publish(ctx, "checked_in", updated, email)

	return &domain.ReservationDetails{
		Reservation: *updated,
		Flight:      details.Flight,
		Passenger:   details.Passenger,
	}, nil
}

func (s *ReservationService) GetReservationForCheckIn(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	if reservationID <= 0 {
		return nil, domain.NewValidationError("Reservation ID is required")
	}
	return s.reservations.GetByID(ctx, reservationID)
}

func (s *ReservationService) GetFlightForReservation(ctx context.Context, flightID int64) (*domain.Flight, error) {
	return s.flights.GetByID(ctx, flightID)
}

// publish is best-effort: event delivery never fails a lifecycle operation.
func (s *ReservationService) publish(ctx context.Context, eventType string, reservation *domain.Reservation, passengerEmail string) {
	if s.producer == nil || s.reservationTopic == "" {
		return
	}
	event := kafka.ReservationEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		ReservationID:  reservation.ID,
		FlightID:       reservation.FlightID,
		PassengerEmail: passengerEmail,
		CheckedIn:      reservation.CheckedIn,
		NumberOfBags:   reservation.NumberOfBags,
		Amount:         reservation.Amount,
		OccurredAt:     time.Now(),
	}
	key := strconv.FormatInt(reservation.ID, 10)
	if err := s.producer.Publish(ctx, s.reservationTopic, key, event); err != nil {
		slog.Warn("failed to publish reservation event", "type", eventType, "reservation_id", reservation.ID, "error", err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			slog.Warn("failed to publish notification event", "type", eventType, "reservation_id", reservation.ID, "error", err)
		}
	}
}

var _ ReservationUseCase = (*ReservationService)(nil)
