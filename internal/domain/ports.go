package domain

import "context"

// TicketPaymentService takes payment for a purchase. Amounts are in whole
// currency units.
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

// SeatReservationService reserves seats for an account.
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}
