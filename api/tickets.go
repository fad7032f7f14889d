package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service booking.BookingUseCase
}

type bookTicketRequest struct {
	FlightNumber int    `json:"flight_number"`
	Name         string `json:"name" binding:"required"`
	Age          int    `json:"age"`
	Class        int    `json:"class" binding:"required"`
}

type ticketResponse struct {
	TicketNo     int    `json:"ticket_no"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	FlightNumber int    `json:"flight_number"`
	SeatNo       int    `json:"seat_no"`
}

func NewTicketHandler(service booking.BookingUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.book)
	router.GET("/:ticket", h.get)
	router.DELETE("/:ticket", h.cancel)
}

func (h *TicketHandler) book(c *gin.Context) {
	var req bookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.service.BookTicket(c.Request.Context(), booking.BookTicketInput{
		FlightNo: req.FlightNumber,
		Name:     req.Name,
		Age:      req.Age,
		Class:    domain.SeatClass(req.Class),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTicketResponse(ticket))
}

func (h *TicketHandler) get(c *gin.Context) {
	ticketNo, ok := ticketParam(c)
	if !ok {
		return
	}
	ticket, err := h.service.GetTicket(c.Request.Context(), ticketNo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func (h *TicketHandler) cancel(c *gin.Context) {
	ticketNo, ok := ticketParam(c)
	if !ok {
		return
	}
	ticket, err := h.service.CancelTicket(c.Request.Context(), ticketNo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func ticketParam(c *gin.Context) (int, bool) {
	ticketNo, err := strconv.Atoi(c.Param("ticket"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ticket number"})
		return 0, false
	}
	return ticketNo, true
}

func toTicketResponse(p *domain.Passenger) ticketResponse {
	return ticketResponse{
		TicketNo:     p.TicketNo,
		Name:         p.Name,
		Age:          p.Age,
		FlightNumber: p.FlightNo,
		SeatNo:       p.SeatNo,
	}
}
