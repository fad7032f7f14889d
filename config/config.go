package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Booking BookingConfig `yaml:"booking"`
	HTTP    HTTPConfig    `yaml:"http"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
	Cache   CacheConfig   `yaml:"cache"`
}

type StorageConfig struct {
	FlightsFile    string `yaml:"flights_file"`
	PassengersFile string `yaml:"passengers_file"`
	// StrictLoad aborts startup on a malformed line instead of skipping it.
	StrictLoad bool `yaml:"strict_load"`
}

type BookingConfig struct {
	TicketCounterStart  int  `yaml:"ticket_counter_start"`
	UniqueFlightNumbers bool `yaml:"unique_flight_numbers"`
}

type HTTPConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	EventsTopic        string   `yaml:"events_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type CacheConfig struct {
	FlightsTTLSeconds int `yaml:"flights_ttl_seconds"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			FlightsFile:    "flightdata.txt",
			PassengersFile: "passengerdata.txt",
		},
		Booking: BookingConfig{
			TicketCounterStart:  1000,
			UniqueFlightNumbers: true,
		},
		HTTP: HTTPConfig{
			Address: ":8080",
		},
		Kafka: KafkaConfig{
			EventsTopic: "ticket_events",
			GroupID:     "airdesk-notifier",
		},
		Cache: CacheConfig{
			FlightsTTLSeconds: 60,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults and applies
// environment overrides.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Resolve loads the config named by CONFIG_PATH. When the variable is unset
// and the default config.yaml does not exist, the defaults are used.
func Resolve() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			cfg.applyEnv()
			return cfg, cfg.Validate()
		}
	}
	return LoadConfig(path)
}

func (c *Config) Validate() error {
	if c.Storage.FlightsFile == "" || c.Storage.PassengersFile == "" {
		return errors.New("storage.flights_file and storage.passengers_file are required")
	}
	if c.Storage.FlightsFile == c.Storage.PassengersFile {
		return errors.New("flights and passengers must be stored in different files")
	}
	if c.Booking.TicketCounterStart < 1 {
		return errors.New("booking.ticket_counter_start must be at least 1")
	}
	if c.Cache.FlightsTTLSeconds < 0 {
		return errors.New("cache.flights_ttl_seconds must not be negative")
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("FLIGHTS_FILE"); v != "" {
		c.Storage.FlightsFile = v
	}
	if v := os.Getenv("PASSENGERS_FILE"); v != "" {
		c.Storage.PassengersFile = v
	}
}
