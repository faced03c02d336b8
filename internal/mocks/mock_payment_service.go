package mocks

import (
	"context"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}

var _ domain.TicketPaymentService = (*MockPaymentService)(nil)
