package domain

type SeatClass int

const (
	SeatClassEconomy  SeatClass = 1
	SeatClassBusiness SeatClass = 2
)

func (c SeatClass) Valid() bool {
	return c == SeatClassEconomy || c == SeatClassBusiness
}

func (c SeatClass) String() string {
	switch c {
	case SeatClassEconomy:
		return "economy"
	case SeatClassBusiness:
		return "business"
	default:
		return "unknown"
	}
}

// Passenger is a booked ticket bound to one flight and seat index.
type Passenger struct {
	TicketNo int    `json:"ticket_no"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	FlightNo int    `json:"flight_no"`
	SeatNo   int    `json:"seat_no"`
}
