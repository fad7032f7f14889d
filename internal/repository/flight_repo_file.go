package repository

import (
	"context"

	"github.com/Domenick1991/airdesk/internal/domain"
)

type FlightRepository interface {
	Load(ctx context.Context) ([]domain.Flight, error)
	Save(ctx context.Context, flights []domain.Flight) error
}

type FileFlightRepository struct {
	path   string
	strict bool
}

func NewFlightRepository(path string, strict bool) FlightRepository {
	return &FileFlightRepository{path: path, strict: strict}
}

func (r *FileFlightRepository) Load(ctx context.Context) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0)
	err := readRecords(ctx, r.path, r.strict, func(line string) error {
		f, err := DecodeFlight(line)
		if err != nil {
			return err
		}
		flights = append(flights, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *FileFlightRepository) Save(ctx context.Context, flights []domain.Flight) error {
	lines := make([]string, 0, len(flights))
	for _, f := range flights {
		lines = append(lines, EncodeFlight(f))
	}
	return writeLines(ctx, r.path, lines)
}

var _ FlightRepository = (*FileFlightRepository)(nil)
