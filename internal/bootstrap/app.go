package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/Domenick1991/airdesk/config"
	"github.com/Domenick1991/airdesk/internal/cache"
	"github.com/Domenick1991/airdesk/internal/kafka"
	"github.com/Domenick1991/airdesk/internal/repository"
	"github.com/Domenick1991/airdesk/internal/service/booking"
	"github.com/Domenick1991/airdesk/internal/service/flights"
)

// App is the store plus whichever side channels the config enables.
type App struct {
	Store   *booking.BookingService
	Flights *flights.FlightService

	cache    *cache.RedisCache
	producer *kafka.Producer
}

// NewApp builds the store from cfg and loads both data files.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}
	opts := []booking.BookingServiceOption{
		booking.WithTicketCounterStart(cfg.Booking.TicketCounterStart),
		booking.WithUniqueFlightNumbers(cfg.Booking.UniqueFlightNumbers),
	}

	var flightCache flights.FlightCache
	if cfg.Redis.Enabled() {
		app.cache = cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
		if err := app.cache.Ping(ctx); err != nil {
			log.Printf("WARNING: redis at %s unreachable: %v", cfg.Redis.Addr, err)
		}
		flightCache = app.cache
		opts = append(opts, booking.WithCache(app.cache))
	}

	if cfg.Kafka.Enabled() {
		app.producer = kafka.NewProducer(cfg.Kafka.Brokers)
		if err := app.producer.CheckConnection(ctx); err != nil {
			log.Printf("WARNING: %v", err)
		}
		opts = append(opts,
			booking.WithProducer(app.producer, cfg.Kafka.EventsTopic),
			booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		)
	}

	app.Store = booking.NewBookingService(
		repository.NewFlightRepository(cfg.Storage.FlightsFile, cfg.Storage.StrictLoad),
		repository.NewPassengerRepository(cfg.Storage.PassengersFile, cfg.Storage.StrictLoad),
		opts...,
	)
	if err := app.Store.Load(ctx); err != nil {
		app.Close()
		return nil, err
	}
	app.Flights = flights.NewFlightService(app.Store, flightCache)
	return app, nil
}

func (a *App) Close() {
	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			log.Printf("close kafka producer: %v", err)
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			log.Printf("close redis: %v", err)
		}
	}
}
