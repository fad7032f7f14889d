package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Domenick1991/airdesk/internal/domain"
)

const fieldSep = "|"

const (
	flightFields    = 6
	passengerFields = 5
)

// EncodeFlight renders flightNumber|source|destination|date|totalSeats|bookedSeats.
func EncodeFlight(f domain.Flight) string {
	return strings.Join([]string{
		strconv.Itoa(f.Number),
		f.Source,
		f.Destination,
		f.Date,
		strconv.Itoa(f.TotalSeats),
		strconv.Itoa(f.BookedSeats),
	}, fieldSep)
}

// DecodeFlight parses one flights file line. Counts that break
// 0 <= booked <= total are rejected like any other malformed line.
func DecodeFlight(line string) (domain.Flight, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != flightFields {
		return domain.Flight{}, fmt.Errorf("expected %d fields, got %d", flightFields, len(parts))
	}

	var (
		f   domain.Flight
		err error
	)
	if f.Number, err = atoi("flight number", parts[0]); err != nil {
		return domain.Flight{}, err
	}
	f.Source = parts[1]
	f.Destination = parts[2]
	f.Date = parts[3]
	if f.TotalSeats, err = atoi("total seats", parts[4]); err != nil {
		return domain.Flight{}, err
	}
	if f.BookedSeats, err = atoi("booked seats", parts[5]); err != nil {
		return domain.Flight{}, err
	}
	if f.TotalSeats <= 0 {
		return domain.Flight{}, fmt.Errorf("total seats %d must be positive", f.TotalSeats)
	}
	if f.BookedSeats < 0 || f.BookedSeats > f.TotalSeats {
		return domain.Flight{}, fmt.Errorf("booked seats %d outside 0..%d", f.BookedSeats, f.TotalSeats)
	}
	return f, nil
}

// EncodePassenger renders ticketNo|name|age|flightNo|seatNo.
func EncodePassenger(p domain.Passenger) string {
	return strings.Join([]string{
		strconv.Itoa(p.TicketNo),
		p.Name,
		strconv.Itoa(p.Age),
		strconv.Itoa(p.FlightNo),
		strconv.Itoa(p.SeatNo),
	}, fieldSep)
}

func DecodePassenger(line string) (domain.Passenger, error) {
	parts := strings.Split(line, fieldSep)
	if len(parts) != passengerFields {
		return domain.Passenger{}, fmt.Errorf("expected %d fields, got %d", passengerFields, len(parts))
	}

	var (
		p   domain.Passenger
		err error
	)
	if p.TicketNo, err = atoi("ticket number", parts[0]); err != nil {
		return domain.Passenger{}, err
	}
	p.Name = parts[1]
	if p.Age, err = atoi("age", parts[2]); err != nil {
		return domain.Passenger{}, err
	}
	if p.FlightNo, err = atoi("flight number", parts[3]); err != nil {
		return domain.Passenger{}, err
	}
	if p.SeatNo, err = atoi("seat number", parts[4]); err != nil {
		return domain.Passenger{}, err
	}
	return p, nil
}

// ValidField reports whether s can be stored in a text field and read back unchanged.
func ValidField(s string) bool {
	return !strings.ContainsAny(s, fieldSep+"\r\n")
}

func atoi(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer", name, s)
	}
	return n, nil
}
