// Package seatmap picks seats inside one fixed-size seat class partition.
package seatmap

import "github.com/Domenick1991/airdesk/internal/domain"

// NoSeat is returned by FindAvailableSeat when every slot is taken.
const NoSeat = -1

const (
	DefaultEconomyCapacity  = 50
	DefaultBusinessCapacity = 10
)

type SeatMap struct {
	class domain.SeatClass
	seats []bool
}

// New builds an empty map for class. A non-positive capacity falls back to the
// class default.
func New(class domain.SeatClass, capacity int) *SeatMap {
	if capacity <= 0 {
		capacity = DefaultCapacity(class)
	}
	return &SeatMap{class: class, seats: make([]bool, capacity)}
}

func DefaultCapacity(class domain.SeatClass) int {
	if class == domain.SeatClassBusiness {
		return DefaultBusinessCapacity
	}
	return DefaultEconomyCapacity
}

func (m *SeatMap) Class() domain.SeatClass {
	return m.class
}

func (m *SeatMap) Capacity() int {
	return len(m.seats)
}

// FindAvailableSeat returns the lowest free index or NoSeat.
func (m *SeatMap) FindAvailableSeat() int {
	for i, taken := range m.seats {
		if !taken {
			return i
		}
	}
	return NoSeat
}

// Occupy marks index as taken. It reports false for an out-of-range index.
func (m *SeatMap) Occupy(index int) bool {
	if index < 0 || index >= len(m.seats) {
		return false
	}
	m.seats[index] = true
	return true
}

func (m *SeatMap) Release(index int) bool {
	if index < 0 || index >= len(m.seats) {
		return false
	}
	m.seats[index] = false
	return true
}

func (m *SeatMap) Occupied() int {
	n := 0
	for _, taken := range m.seats {
		if taken {
			n++
		}
	}
	return n
}
