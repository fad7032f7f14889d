package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airdesk/internal/service/booking"
	"github.com/Domenick1991/airdesk/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	flights flights.FlightUseCase
	store   booking.BookingUseCase
}

type createFlightRequest struct {
	Number      int    `json:"number"`
	Source      string `json:"source" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TotalSeats  int    `json:"total_seats"`
}

func NewFlightHandler(flights flights.FlightUseCase, store booking.BookingUseCase) *FlightHandler {
	return &FlightHandler{flights: flights, store: store}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:number", h.get)
	router.POST("", h.create)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.flights.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *FlightHandler) get(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid flight number"})
		return
	}
	flight, err := h.flights.GetByNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.store.AddFlight(c.Request.Context(), booking.AddFlightInput{
		Number:      req.Number,
		Source:      req.Source,
		Destination: req.Destination,
		Date:        req.Date,
		TotalSeats:  req.TotalSeats,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}
