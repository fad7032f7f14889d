package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strconv"
	"sync"

	"github.com/Domenick1991/airdesk/internal/domain"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/Domenick1991/airdesk/internal/repository"
	"github.com/Domenick1991/airdesk/internal/seatmap"
)

// DefaultTicketCounterStart is the first ticket number handed out by an empty store.
const DefaultTicketCounterStart = 1000

type BookingUseCase interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, number int) (*domain.Flight, error)
	AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error)
	BookTicket(ctx context.Context, input BookTicketInput) (*domain.Passenger, error)
	CancelTicket(ctx context.Context, ticketNo int) (*domain.Passenger, error)
	GetTicket(ctx context.Context, ticketNo int) (*domain.Passenger, error)
	ListTickets(ctx context.Context) ([]domain.Passenger, error)
}

type Cache interface {
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// BookingService owns the in-memory flights and passengers and rewrites both
// data files after every mutation. Reads and mutations hold mu; cache
// invalidation and event publishing run after it is released.
type BookingService struct {
	mu sync.Mutex

	flightRepo    repository.FlightRepository
	passengerRepo repository.PassengerRepository
	cache         Cache
	producer      Producer

	eventsTopic         string
	notificationsTopic  string
	ticketCounterStart  int
	uniqueFlightNumbers bool

	flights       []domain.Flight
	passengers    map[int]domain.Passenger
	ticketCounter int
	version       uint64
}

type AddFlightInput struct {
	Number      int    `json:"number"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	TotalSeats  int    `json:"total_seats"`
}

type BookTicketInput struct {
	FlightNo int              `json:"flight_number"`
	Name     string           `json:"name"`
	Age      int              `json:"age"`
	Class    domain.SeatClass `json:"class"`
}

type BookingServiceOption func(*BookingService)

func WithTicketCounterStart(start int) BookingServiceOption {
	return func(s *BookingService) {
		s.ticketCounterStart = start
	}
}

// WithUniqueFlightNumbers controls whether AddFlight rejects a number that is
// already in use. When off, duplicates are accepted and lookups take the first match.
func WithUniqueFlightNumbers(unique bool) BookingServiceOption {
	return func(s *BookingService) {
		s.uniqueFlightNumbers = unique
	}
}

func WithCache(cache Cache) BookingServiceOption {
	return func(s *BookingService) {
		s.cache = cache
	}
}

func WithProducer(producer Producer, eventsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	flightRepo repository.FlightRepository,
	passengerRepo repository.PassengerRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		flightRepo:          flightRepo,
		passengerRepo:       passengerRepo,
		ticketCounterStart:  DefaultTicketCounterStart,
		uniqueFlightNumbers: true,
		flights:             make([]domain.Flight, 0),
		passengers:          make(map[int]domain.Passenger),
	}
	for _, opt := range opts {
		opt(service)
	}
	service.ticketCounter = service.ticketCounterStart
	return service
}

// Load reads both data files and replaces the in-memory state. It is meant to
// be called once, right after construction.
func (s *BookingService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights, err := s.flightRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load flights: %w", err)
	}
	passengers, err := s.passengerRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("load passengers: %w", err)
	}

	s.flights = flights
	s.passengers = make(map[int]domain.Passenger, len(passengers))
	s.ticketCounter = s.ticketCounterStart
	s.version++
	for _, p := range passengers {
		// a repeated ticket number keeps its last line
		s.passengers[p.TicketNo] = p
		if p.TicketNo >= s.ticketCounter {
			s.ticketCounter = p.TicketNo + 1
		}
	}

	log.Printf("loaded %d flights and %d passengers, next ticket %d", len(s.flights), len(s.passengers), s.ticketCounter)
	return nil
}

func (s *BookingService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flights := make([]domain.Flight, len(s.flights))
	copy(flights, s.flights)
	return flights, nil
}

func (s *BookingService) GetFlight(ctx context.Context, number int) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.flights {
		if f.Number == number {
			found := f
			return &found, nil
		}
	}
	return nil, fmt.Errorf("flight %d: %w", number, domain.ErrNotFound)
}

func (s *BookingService) AddFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error) {
	if input.TotalSeats <= 0 {
		return nil, fmt.Errorf("total seats must be positive: %w", domain.ErrInvalidInput)
	}
	for _, field := range []string{input.Source, input.Destination, input.Date} {
		if !repository.ValidField(field) {
			return nil, fmt.Errorf("field %q contains a reserved character: %w", field, domain.ErrInvalidInput)
		}
	}

	flight, err := s.addFlight(ctx, input)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, kafka.EventFlightAdded, *flight, nil)
	return flight, nil
}

func (s *BookingService) addFlight(ctx context.Context, input AddFlightInput) (*domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uniqueFlightNumbers && s.flightIndex(input.Number) >= 0 {
		return nil, fmt.Errorf("flight %d already exists: %w", input.Number, domain.ErrConflict)
	}

	flight := domain.Flight{
		Number:      input.Number,
		Source:      input.Source,
		Destination: input.Destination,
		Date:        input.Date,
		TotalSeats:  input.TotalSeats,
	}
	s.flights = append(s.flights, flight)

	if err := s.flightRepo.Save(ctx, s.flights); err != nil {
		s.flights = s.flights[:len(s.flights)-1]
		return nil, fmt.Errorf("save flights: %w", err)
	}
	s.version++

	log.Printf("flight %d added: %s -> %s on %s, %d seats", flight.Number, flight.Source, flight.Destination, flight.Date, flight.TotalSeats)
	return &flight, nil
}

func (s *BookingService) BookTicket(ctx context.Context, input BookTicketInput) (*domain.Passenger, error) {
	if !input.Class.Valid() {
		return nil, fmt.Errorf("seat class %d: %w", input.Class, domain.ErrInvalidInput)
	}
	if !repository.ValidField(input.Name) {
		return nil, fmt.Errorf("name contains a reserved character: %w", domain.ErrInvalidInput)
	}

	passenger, flight, err := s.bookTicket(ctx, input)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, kafka.EventTicketBooked, flight, passenger)
	return passenger, nil
}

func (s *BookingService) bookTicket(ctx context.Context, input BookTicketInput) (*domain.Passenger, domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, f := range s.flights {
		if f.Number == input.FlightNo && f.HasFreeSeats() {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.Flight{}, fmt.Errorf("flight not found or full: %w", domain.ErrNotFound)
	}
	flight := &s.flights[idx]

	seats := s.seatMapFor(*flight, input.Class)
	seat := seats.FindAvailableSeat()
	if seat == seatmap.NoSeat {
		return nil, domain.Flight{}, fmt.Errorf("no seats available in selected class: %w", domain.ErrCapacity)
	}
	seats.Occupy(seat)

	passenger := domain.Passenger{
		TicketNo: s.ticketCounter,
		Name:     input.Name,
		Age:      input.Age,
		FlightNo: flight.Number,
		SeatNo:   seat,
	}
	s.ticketCounter++

	before := *flight
	s.passengers[passenger.TicketNo] = passenger
	flight.BookSeat()

	if err := s.persist(ctx); err != nil {
		*flight = before
		delete(s.passengers, passenger.TicketNo)
		s.restore(ctx)
		return nil, domain.Flight{}, err
	}
	s.version++

	log.Printf("ticket %d booked on flight %d seat %d (%s)", passenger.TicketNo, passenger.FlightNo, passenger.SeatNo, input.Class)
	return &passenger, *flight, nil
}

func (s *BookingService) CancelTicket(ctx context.Context, ticketNo int) (*domain.Passenger, error) {
	passenger, flight, err := s.cancelTicket(ctx, ticketNo)
	if err != nil {
		return nil, err
	}
	s.afterMutation(ctx, kafka.EventTicketCancelled, flight, passenger)
	return passenger, nil
}

func (s *BookingService) cancelTicket(ctx context.Context, ticketNo int) (*domain.Passenger, domain.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, ok := s.passengers[ticketNo]
	if !ok {
		return nil, domain.Flight{}, fmt.Errorf("ticket not found: %w", domain.ErrNotFound)
	}

	var (
		flight *domain.Flight
		before domain.Flight
	)
	if idx := s.flightIndex(passenger.FlightNo); idx >= 0 {
		flight = &s.flights[idx]
		before = *flight
		flight.CancelSeat()
	}
	delete(s.passengers, ticketNo)

	if err := s.persist(ctx); err != nil {
		if flight != nil {
			*flight = before
		}
		s.passengers[ticketNo] = passenger
		s.restore(ctx)
		return nil, domain.Flight{}, err
	}
	s.version++

	log.Printf("ticket %d cancelled on flight %d", ticketNo, passenger.FlightNo)
	snapshot := domain.Flight{Number: passenger.FlightNo}
	if flight != nil {
		snapshot = *flight
	}
	return &passenger, snapshot, nil
}

// FlightsVersion changes after every successful mutation, so readers can tell
// whether a flight list they copied earlier is still current.
func (s *BookingService) FlightsVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.version
}

func (s *BookingService) GetTicket(ctx context.Context, ticketNo int) (*domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	passenger, ok := s.passengers[ticketNo]
	if !ok {
		return nil, fmt.Errorf("ticket not found: %w", domain.ErrNotFound)
	}
	return &passenger, nil
}

func (s *BookingService) ListTickets(ctx context.Context) ([]domain.Passenger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.passengerList(), nil
}

// seatMapFor rebuilds the occupancy of flight from the passengers booked on it.
// Passengers only record a flight number, so when several flights share that
// number their seats cannot be told apart and the map starts empty.
func (s *BookingService) seatMapFor(flight domain.Flight, class domain.SeatClass) *seatmap.SeatMap {
	seats := seatmap.New(class, flight.TotalSeats)
	if s.flightsNumbered(flight.Number) > 1 {
		return seats
	}
	for _, p := range s.passengers {
		if p.FlightNo == flight.Number {
			seats.Occupy(p.SeatNo)
		}
	}
	return seats
}

func (s *BookingService) flightIndex(number int) int {
	for i, f := range s.flights {
		if f.Number == number {
			return i
		}
	}
	return -1
}

func (s *BookingService) flightsNumbered(number int) int {
	n := 0
	for _, f := range s.flights {
		if f.Number == number {
			n++
		}
	}
	return n
}

func (s *BookingService) passengerList() []domain.Passenger {
	list := make([]domain.Passenger, 0, len(s.passengers))
	for _, p := range s.passengers {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].TicketNo < list[j].TicketNo })
	return list
}

func (s *BookingService) persist(ctx context.Context) error {
	if err := s.flightRepo.Save(ctx, s.flights); err != nil {
		return fmt.Errorf("save flights: %w", err)
	}
	if err := s.passengerRepo.Save(ctx, s.passengerList()); err != nil {
		return fmt.Errorf("save passengers: %w", err)
	}
	return nil
}

// restore rewrites the files from the rolled back state after a failed persist,
// which may have replaced the flights file already.
func (s *BookingService) restore(ctx context.Context) {
	if err := s.persist(ctx); err != nil {
		log.Printf("WARNING: data files may be out of sync with memory: %v", err)
	}
}

func (s *BookingService) afterMutation(ctx context.Context, eventType string, flight domain.Flight, passenger *domain.Passenger) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: Failed to invalidate flights cache: %v", err)
		}
	}
	if err := s.publish(ctx, eventType, flight, passenger); err != nil {
		log.Printf("WARNING: Failed to publish %s event for flight %d: %v", eventType, flight.Number, err)
	}
}

func (s *BookingService) publish(ctx context.Context, eventType string, flight domain.Flight, passenger *domain.Passenger) error {
	if s.producer == nil || s.eventsTopic == "" {
		return nil
	}
	event := kafka.NewTicketEvent(eventType)
	event.FlightNo = flight.Number
	event.Source = flight.Source
	event.Destination = flight.Destination
	event.Date = flight.Date
	if passenger != nil {
		event.TicketNo = passenger.TicketNo
		event.Name = passenger.Name
		event.SeatNo = passenger.SeatNo
	}

	key := strconv.Itoa(flight.Number)
	var errs []error
	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		errs = append(errs, err)
	}
	if s.notificationsTopic != "" && passenger != nil {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ BookingUseCase = (*BookingService)(nil)
