package repository

import (
	"context"
	"sort"

	"github.com/Domenick1991/airdesk/internal/domain"
)

type PassengerRepository interface {
	Load(ctx context.Context) ([]domain.Passenger, error)
	Save(ctx context.Context, passengers []domain.Passenger) error
}

type FilePassengerRepository struct {
	path   string
	strict bool
}

func NewPassengerRepository(path string, strict bool) PassengerRepository {
	return &FilePassengerRepository{path: path, strict: strict}
}

func (r *FilePassengerRepository) Load(ctx context.Context) ([]domain.Passenger, error) {
	passengers := make([]domain.Passenger, 0)
	err := readRecords(ctx, r.path, r.strict, func(line string) error {
		p, err := DecodePassenger(line)
		if err != nil {
			return err
		}
		passengers = append(passengers, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return passengers, nil
}

// Save writes passengers in ascending ticket order.
func (r *FilePassengerRepository) Save(ctx context.Context, passengers []domain.Passenger) error {
	sorted := make([]domain.Passenger, len(passengers))
	copy(sorted, passengers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TicketNo < sorted[j].TicketNo })

	lines := make([]string, 0, len(sorted))
	for _, p := range sorted {
		lines = append(lines, EncodePassenger(p))
	}
	return writeLines(ctx, r.path, lines)
}

var _ PassengerRepository = (*FilePassengerRepository)(nil)
