// Package console runs the interactive text menu on top of the booking store.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/service/booking"
)

const menuText = `
1. List Flights
2. Add Flight (Admin)
3. Book Ticket
4. Cancel Ticket
5. Exit
6. Show Ticket
Enter choice: `

const (
	choiceList = iota + 1
	choiceAdd
	choiceBook
	choiceCancel
	choiceExit
	choiceShow
)

var errInvalidToken = errors.New("invalid input")

type Menu struct {
	store booking.BookingUseCase
	in    *bufio.Scanner
	out   io.Writer
}

// NewMenu reads whitespace separated tokens from in, so several answers may
// be given on one line.
func NewMenu(store booking.BookingUseCase, in io.Reader, out io.Writer) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Menu{store: store, in: scanner, out: out}
}

// Run serves menu choices until Exit is chosen, the input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printf("%s", menuText)
		choice, err := m.nextInt()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if errors.Is(err, errInvalidToken) {
				m.printf("Invalid Choice!\n")
				continue
			}
			return err
		}

		switch choice {
		case choiceList:
			err = m.listFlights(ctx)
		case choiceAdd:
			err = m.addFlight(ctx)
		case choiceBook:
			err = m.bookTicket(ctx)
		case choiceCancel:
			err = m.cancelTicket(ctx)
		case choiceShow:
			err = m.showTicket(ctx)
		case choiceExit:
			return nil
		default:
			m.printf("Invalid Choice!\n")
		}

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errInvalidToken):
			m.printf("Invalid input!\n")
		default:
			return err
		}
	}
}

func (m *Menu) listFlights(ctx context.Context) error {
	flights, err := m.store.ListFlights(ctx)
	if err != nil {
		return err
	}
	if len(flights) == 0 {
		m.printf("No flights available.\n")
		return nil
	}
	for _, f := range flights {
		m.printf("Flight No: %d, From: %s, To: %s, Date: %s, Seats: %d/%d\n",
			f.Number, f.Source, f.Destination, f.Date, f.BookedSeats, f.TotalSeats)
	}
	return nil
}

func (m *Menu) addFlight(ctx context.Context) error {
	m.printf("Enter Flight No, Source, Destination, Date, Total Seats:\n")
	var (
		input booking.AddFlightInput
		err   error
	)
	if input.Number, err = m.nextInt(); err != nil {
		return err
	}
	if input.Source, err = m.next(); err != nil {
		return err
	}
	if input.Destination, err = m.next(); err != nil {
		return err
	}
	if input.Date, err = m.next(); err != nil {
		return err
	}
	if input.TotalSeats, err = m.nextInt(); err != nil {
		return err
	}

	if _, err := m.store.AddFlight(ctx, input); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			m.printf("Flight %d already exists!\n", input.Number)
			return nil
		}
		m.printf("Could not add flight: %v\n", err)
		return nil
	}
	m.printf("Flight Added!\n")
	return nil
}

func (m *Menu) bookTicket(ctx context.Context) error {
	var (
		input booking.BookTicketInput
		err   error
	)
	m.printf("Enter Flight No: ")
	if input.FlightNo, err = m.nextInt(); err != nil {
		return err
	}
	m.printf("Enter Name and Age: ")
	if input.Name, err = m.next(); err != nil {
		return err
	}
	if input.Age, err = m.nextInt(); err != nil {
		return err
	}
	m.printf("Enter Class (1-Economy, 2-Business): ")
	class, err := m.nextInt()
	if err != nil {
		return err
	}
	input.Class = domain.SeatClass(class)

	ticket, err := m.store.BookTicket(ctx, input)
	switch {
	case err == nil:
		m.printf("Ticket Booked! Ticket No: %d, Seat No: %d\n", ticket.TicketNo, ticket.SeatNo)
	case errors.Is(err, domain.ErrNotFound):
		m.printf("Flight not found or Full!\n")
	case errors.Is(err, domain.ErrCapacity):
		m.printf("No seats available in selected class!\n")
	case errors.Is(err, domain.ErrInvalidInput):
		m.printf("Booking rejected: %v\n", err)
	default:
		m.printf("Booking failed: %v\n", err)
	}
	return nil
}

func (m *Menu) cancelTicket(ctx context.Context) error {
	m.printf("Enter Ticket No to cancel: ")
	ticketNo, err := m.nextInt()
	if err != nil {
		return err
	}

	if _, err := m.store.CancelTicket(ctx, ticketNo); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			m.printf("Ticket not found!\n")
			return nil
		}
		m.printf("Cancellation failed: %v\n", err)
		return nil
	}
	m.printf("Ticket Cancelled.\n")
	return nil
}

func (m *Menu) showTicket(ctx context.Context) error {
	m.printf("Enter Ticket No: ")
	ticketNo, err := m.nextInt()
	if err != nil {
		return err
	}

	p, err := m.store.GetTicket(ctx, ticketNo)
	if err != nil {
		m.printf("Ticket not found!\n")
		return nil
	}
	m.printf("Ticket No: %d, Name: %s, Age: %d, Flight No: %d, Seat No: %d\n",
		p.TicketNo, p.Name, p.Age, p.FlightNo, p.SeatNo)
	return nil
}

func (m *Menu) next() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return m.in.Text(), nil
}

func (m *Menu) nextInt() (int, error) {
	token, err := m.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", token, errInvalidToken)
	}
	return n, nil
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
