package seatbooking

import (
	"context"
	"sync"

	"github.com/metinatakli/cinema-tickets/internal/domain"
)

// MockSeatReservationService keeps reservations in memory. It is used when no
// Redis instance is configured and in tests.
type MockSeatReservationService struct {
	mu           sync.RWMutex
	reservations []Reservation
}

func NewMockSeatReservationService() *MockSeatReservationService {
	return &MockSeatReservationService{
		reservations: make([]Reservation, 0),
	}
}

func (m *MockSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	if seats < 0 {
		return domain.ErrInvalidSeatCount
	}

	if seats == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.reservations = append(m.reservations, Reservation{AccountID: accountID, Seats: seats})

	return nil
}

// Reservations returns a copy of all recorded reservations
func (m *MockSeatReservationService) Reservations() []Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reservations := make([]Reservation, len(m.reservations))
	copy(reservations, m.reservations)
	return reservations
}

func (m *MockSeatReservationService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reservations = make([]Reservation, 0)
}

var _ domain.SeatReservationService = (*MockSeatReservationService)(nil)
