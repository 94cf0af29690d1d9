package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/flightreservation/internal/domain"
	"github.com/Domenick1991/flightreservation/internal/service/flights"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type FlightHandler struct {
	service flights.FlightUseCase
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/findFlights", h.renderFindFlights)
	router.POST("/findFlights", h.findFlights)
	router.GET("/reserve", h.renderReservationPage)
}

func (h *FlightHandler) renderFindFlights(c *gin.Context) {
	c.HTML(http.StatusOK, "findFlights.tmpl", gin.H{})
}

func (h *FlightHandler) findFlights(c *gin.Context) {
	from := c.PostForm("from")
	to := c.PostForm("to")
	departureDate, err := time.Parse(dateLayout, c.PostForm("departureDate"))
	if err != nil {
		renderError(c, &domain.ValidationError{Violations: []domain.Violation{
			{Entity: "Flight", Field: "DateOfDeparture", Rule: "date"},
		}})
		return
	}

	found, err := h.service.Search(c.Request.Context(), from, to, departureDate)
	if err != nil {
		renderError(c, err)
		return
	}

	data := gin.H{"flights": found}
	if len(found) == 0 {
		data["msg"] = "No flights found for the given criteria."
	}
	c.HTML(http.StatusOK, "findFlightsResults.tmpl", data)
}

func (h *FlightHandler) renderReservationPage(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Query("flightId"), 10, 64)
	if err != nil {
		renderError(c, domain.NewValidationError("Flight ID is required"))
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), flightID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "reserve.tmpl", gin.H{"flight": flight})
}
