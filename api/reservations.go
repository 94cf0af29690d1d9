package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/Domenick1991/flightreservation/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service reservation.ReservationUseCase
}

type createReservationRequest struct {
	FlightID   int64   `form:"flightId"`
	FirstName  string  `form:"firstName"`
	LastName   string  `form:"lastName"`
	MiddleName string  `form:"middleName"`
	Email      string  `form:"email"`
	Phone      string  `form:"phone"`
	CardNumber string  `form:"cardNumber"`
	Amount     float64 `form:"amount"`
}

func NewReservationHandler(service reservation.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/createReservation", h.createReservation)
	router.POST("/completeReservation", h.completeReservation)
	router.GET("/checkIn", h.renderCheckInPage)
	router.POST("/completeCheckIn", h.completeCheckIn)
}

func (h *ReservationHandler) createReservation(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBind(&req); err != nil {
		renderError(c, domain.NewValidationError(err.Error()))
		return
	}

	details, err := h.service.CreateReservation(c.Request.Context(), reservation.CreateReservationInput{
		FlightID:   req.FlightID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Email:      req.Email,
		Phone:      req.Phone,
		CardNumber: req.CardNumber,
		Amount:     req.Amount,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusCreated, "reservationConfirmation.tmpl", gin.H{
		"reservation":       details.Reservation,
		"flight":            details.Flight,
		"passengerName":     details.PassengerName,
		"passengerEmail":    details.PassengerEmail,
		"showConfirmButton": details.ShowConfirmButton,
	})
}

func (h *ReservationHandler) completeReservation(c *gin.Context) {
	reservationID, err := strconv.ParseInt(c.PostForm("reservationId"), 10, 64)
	if err != nil {
		renderError(c, domain.NewValidationError("Reservation ID is required"))
		return
	}

	result, err := h.service.CompleteReservation(c.Request.Context(), reservationID)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "paymentConfirmation.tmpl", gin.H{
		"msg":         result.Message,
		"success":     result.Success,
		"reservation": result.Reservation,
		"flight":      result.Flight,
	})
}

func (h *ReservationHandler) renderCheckInPage(c *gin.Context) {
	reservationID, _ := strconv.ParseInt(c.Query("reservationId"), 10, 64)

	found, err := h.service.GetReservationForCheckIn(c.Request.Context(), reservationID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "checkIn.tmpl", gin.H{"reservation": found})
}

func (h *ReservationHandler) completeCheckIn(c *gin.Context) {
	reservationID, err := strconv.ParseInt(c.PostForm("reservationId"), 10, 64)
	if err != nil {
		renderError(c, domain.NewValidationError("Reservation ID is required"))
		return
	}
	numberOfBags, err := strconv.Atoi(c.PostForm("numberOfBags"))
	if err != nil {
		renderError(c, &domain.ValidationError{Violations: []domain.Violation{
			{Entity: "Reservation", Field: "NumberOfBags", Rule: "number"},
		}})
		return
	}

	details, err := h.service.CompleteCheckIn(c.Request.Context(), reservationID, numberOfBags)
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "checkInConfirmation.tmpl", gin.H{
		"msg":         reservation.MsgCheckInDone,
		"reservation": details.Reservation,
		"flight":      details.Flight,
		"passenger":   details.Passenger,
	})
}
