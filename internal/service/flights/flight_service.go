package flights

import (
	"context"
	"log"

	"github.com/Domenick1991/airdesk/internal/domain"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByNumber(ctx context.Context, number int) (*domain.Flight, error)
}

// FlightStore is the authoritative source of flights, normally the booking service.
type FlightStore interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	GetFlight(ctx context.Context, number int) (*domain.Flight, error)
	FlightsVersion() uint64
}

type FlightCache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

// FlightService serves the flight list through an optional read-through cache.
type FlightService struct {
	store FlightStore
	cache FlightCache
}

func NewFlightService(store FlightStore, cache FlightCache) *FlightService {
	return &FlightService{store: store, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	if s.cache == nil {
		return s.store.ListFlights(ctx)
	}

	version := s.store.FlightsVersion()
	flights, err := s.store.ListFlights(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetFlights(ctx, flights); err != nil {
		log.Printf("WARNING: Failed to cache flights: %v", err)
		return flights, nil
	}
	// a mutation since version may have invalidated before the set above
	if s.store.FlightsVersion() != version {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			log.Printf("WARNING: Failed to invalidate flights cache: %v", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByNumber(ctx context.Context, number int) (*domain.Flight, error) {
	return s.store.GetFlight(ctx, number)
}

var _ FlightUseCase = (*FlightService)(nil)
