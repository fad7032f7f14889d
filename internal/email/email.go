package email

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/airdesk/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	log.Printf("notify %s: %s", event.Name, Render(event))
	return nil
}

// Render builds the notification text for a ticket event.
func Render(event kafka.TicketEvent) string {
	route := fmt.Sprintf("flight %d %s -> %s on %s", event.FlightNo, event.Source, event.Destination, event.Date)
	switch event.Type {
	case kafka.EventTicketBooked:
		return fmt.Sprintf("ticket %d booked on %s, seat %d", event.TicketNo, route, event.SeatNo)
	case kafka.EventTicketCancelled:
		return fmt.Sprintf("ticket %d on %s has been cancelled", event.TicketNo, route)
	default:
		return fmt.Sprintf("%s for %s", event.Type, route)
	}
}
