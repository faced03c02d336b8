package payment

import (
	"context"
	"sync"

	"github.com/metinatakli/cinema-tickets/internal/domain"
)

// Payment represents a recorded payment
type Payment struct {
	AccountID int64
	Amount    int
}

// MockPaymentService records payments instead of sending them anywhere. It is
// used when no payment gateway is configured and in tests.
type MockPaymentService struct {
	mu       sync.RWMutex
	payments []Payment
}

func NewMockPaymentService() *MockPaymentService {
	return &MockPaymentService{
		payments: make([]Payment, 0),
	}
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payments = append(m.payments, Payment{AccountID: accountID, Amount: amount})

	return nil
}

// Payments returns a copy of all recorded payments
func (m *MockPaymentService) Payments() []Payment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payments := make([]Payment, len(m.payments))
	copy(payments, m.payments)
	return payments
}

func (m *MockPaymentService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payments = make([]Payment, 0)
}

var _ domain.TicketPaymentService = (*MockPaymentService)(nil)
