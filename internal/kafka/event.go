package kafka

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventFlightAdded     = "flight_added"
	EventTicketBooked    = "ticket_booked"
	EventTicketCancelled = "ticket_cancelled"
)

type TicketEvent struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	TicketNo    int       `json:"ticket_no,omitempty"`
	Name        string    `json:"name,omitempty"`
	FlightNo    int       `json:"flight_no"`
	SeatNo      int       `json:"seat_no"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Date        string    `json:"date"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewTicketEvent(eventType string) TicketEvent {
	return TicketEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
	}
}
