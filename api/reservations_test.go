package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/Domenick1991/flightreservation/internal/service/reservation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReservationUseCase is a mock implementation of reservation.ReservationUseCase
type MockReservationUseCase struct {
	mock.Mock
}

func (m *MockReservationUseCase) CreateReservation(ctx context.Context, input reservation.CreateReservationInput) (*reservation.ConfirmationDetails, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.ConfirmationDetails), args.Error(1)
}

func (m *MockReservationUseCase) CompleteReservation(ctx context.Context, reservationID int64) (*reservation.PaymentResult, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reservation.PaymentResult), args.Error(1)
}

func (m *MockReservationUseCase) CompleteCheckIn(ctx context.Context, reservationID int64, numberOfBags int) (*domain.ReservationDetails, error) {
	args := m.Called(ctx, reservationID, numberOfBags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReservationDetails), args.Error(1)
}

func (m *MockReservationUseCase) GetReservationForCheckIn(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationUseCase) GetFlightForReservation(ctx context.Context, flightID int64) (*domain.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func newReservationRouter(service *MockReservationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.LoadHTMLGlob(filepath.Join("..", "web", "templates", "*.tmpl"))
	NewReservationHandler(service).Register(router.Group("/"))
	return router
}

func TestReservationHandler_createReservation(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newReservationRouter(mockService)

	input := reservation.CreateReservationInput{
		FlightID:   1,
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john.doe@example.com",
		Phone:      "1234567890",
		CardNumber: "4111111111111111",
		Amount:     300.50,
	}
	details := &reservation.ConfirmationDetails{
		Reservation:       &domain.Reservation{ID: 7, FlightID: 1, PassengerID: 5},
		Flight:            &domain.Flight{ID: 1, FlightNumber: "AA101", DepartureCity: "AUS", ArrivalCity: "NYC"},
		PassengerName:     "John Doe",
		PassengerEmail:    "john.doe@example.com",
		ShowConfirmButton: true,
	}
	mockService.On("CreateReservation", mock.Anything, input).Return(details, nil).Once()

	w := postForm(router, "/createReservation", url.Values{
		"flightId":   {"1"},
		"firstName":  {"John"},
		"lastName":   {"Doe"},
		"email":      {"john.doe@example.com"},
		"phone":      {"1234567890"},
		"cardNumber": {"4111111111111111"},
		"amount":     {"300.50"},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "John Doe")
	assert.Contains(t, w.Body.String(), "Confirm and Pay")
	mockService.AssertExpectations(t)
}

func TestReservationHandler_createReservation_ValidationError(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newReservationRouter(mockService)

	mockService.On("CreateReservation", mock.Anything, mock.Anything).
		Return(nil, &domain.ValidationError{Violations: []domain.Violation{
			{Entity: "Passenger", Field: "Phone", Rule: "len"},
		}}).Once()

	w := postForm(router, "/createReservation", url.Values{
		"flightId": {"1"},
		"phone":    {"123"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Phone")
}

func TestReservationHandler_completeReservation(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newReservationRouter(mockService)

	result := &reservation.PaymentResult{
		Reservation: &domain.Reservation{ID: 7},
		Flight:      &domain.Flight{ID: 1},
		Success:     true,
		Message:     reservation.MsgPaymentSuccess,
	}
	mockService.On("CompleteReservation", mock.Anything, int64(7)).Return(result, nil).Once()

	w := postForm(router, "/completeReservation", url.Values{"reservationId": {"7"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Payment processed successfully! You can now check in.")
}

func TestReservationHandler_completeReservation_NotFound(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newReservationRouter(mockService)

	mockService.On("CompleteReservation", mock.Anything, int64(42)).
		Return(nil, &domain.NotFoundError{Entity: "Reservation", ID: 42}).Once()

	w := postForm(router, "/completeReservation", url.Values{"reservationId": {"42"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Reservation not found")
}

func TestReservationHandler_renderCheckInPage(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newReservationRouter(mockService)

	mockService.On("GetReservationForCheckIn", mock.Anything, int64(7)).
		Return(&domain.Reservation{ID: 7, FlightID: 1}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/checkIn?reservationId=7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReservationHandler_renderCheckInPage_MissingID(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newReservationRouter(mockService)

	mockService.On("GetReservationForCheckIn", mock.Anything, int64(0)).
		Return(nil, domain.NewValidationError("Reservation ID is required")).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/checkIn", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Reservation ID is required")
}

func TestReservationHandler_completeCheckIn(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newReservationRouter(mockService)

	details := &domain.ReservationDetails{
		Reservation: domain.Reservation{ID: 7, CheckedIn: true, NumberOfBags: 2},
		Flight:      &domain.Flight{ID: 1, FlightNumber: "AA101", DepartureCity: "AUS", ArrivalCity: "NYC"},
		Passenger:   &domain.Passenger{ID: 5, FirstName: "John", LastName: "Doe"},
	}
	mockService.On("CompleteCheckIn", mock.Anything, int64(7), 2).Return(details, nil).Once()

	w := postForm(router, "/completeCheckIn", url.Values{
		"reservationId": {"7"},
		"numberOfBags":  {"2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Check-in completed successfully!")
	assert.Contains(t, w.Body.String(), "John Doe")
}

func TestReservationHandler_completeCheckIn_NotFound(t *testing.T) {
	mockService := &MockReservationUseCase{}
	router := newReservationRouter(mockService)

	mockService.On("CompleteCheckIn", mock.Anything, int64(42), 2).
		Return(nil, &domain.NotFoundError{Entity: "Reservation", ID: 42}).Once()

	w := postForm(router, "/completeCheckIn", url.Values{
		"reservationId": {"42"},
		"numberOfBags":  {"2"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
