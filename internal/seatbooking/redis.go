package seatbooking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Reservation is a single seat reservation made for an account.
type Reservation struct {
	ID        string    `json:"id"`
	AccountID int64     `json:"accountId"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}

// RedisSeatReservationService keeps an append-only log of reservations per
// account together with a running total of reserved seats.
type RedisSeatReservationService struct {
	redis redis.UniversalClient
	now   func() time.Time
}

func NewRedisSeatReservationService(client redis.UniversalClient) *RedisSeatReservationService {
	return &RedisSeatReservationService{
		redis: client,
		now:   time.Now,
	}
}

// ReserveSeat records a reservation of the given number of seats. Zero seats
// is a no-op; a negative count is rejected with domain.ErrInvalidSeatCount.
func (s *RedisSeatReservationService) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	if seats < 0 {
		return domain.ErrInvalidSeatCount
	}
	if seats == 0 {
		return nil
	}

	reservation := Reservation{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Seats:     seats,
		CreatedAt: s.now().UTC(),
	}

	payload, err := json.Marshal(reservation)
	if err != nil {
		return err
	}

	pipe := s.redis.TxPipeline()
	pipe.RPush(ctx, reservationsKey(accountID), payload)
	pipe.IncrBy(ctx, reservedSeatsKey(accountID), int64(seats))

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store seat reservation: %w", err)
	}

	return nil
}

// Reservations returns the reservations of an account, oldest first.
func (s *RedisSeatReservationService) Reservations(ctx context.Context, accountID int64) ([]Reservation, error) {
	items, err := s.redis.LRange(ctx, reservationsKey(accountID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	reservations := make([]Reservation, len(items))

	for i, item := range items {
		err = json.Unmarshal([]byte(item), &reservations[i])
		if err != nil {
			return nil, fmt.Errorf("corrupt reservation entry for account %d: %w", accountID, err)
		}
	}

	return reservations, nil
}

// ReservedSeats returns the total number of seats reserved for an account.
func (s *RedisSeatReservationService) ReservedSeats(ctx context.Context, accountID int64) (int, error) {
	total, err := s.redis.Get(ctx, reservedSeatsKey(accountID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return total, nil
}

func reservationsKey(accountID int64) string {
	return fmt.Sprintf("seat_reservations:%d", accountID)
}

func reservedSeatsKey(accountID int64) string {
	return fmt.Sprintf("seats_reserved:%d", accountID)
}

var _ domain.SeatReservationService = (*RedisSeatReservationService)(nil)
