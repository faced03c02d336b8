package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var minorUnitsPerUnit = decimal.NewFromInt(100)

type StripePaymentService struct {
	currency         stripe.Currency
	newPaymentIntent func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func NewStripePaymentService(currency string) *StripePaymentService {
	return &StripePaymentService{
		currency:         stripe.Currency(currency),
		newPaymentIntent: paymentintent.New,
	}
}

// MakePayment creates a payment intent for amount whole currency units on
// behalf of the account. Every call uses a fresh idempotency key so a retried
// HTTP request on Stripe's side never charges twice. A zero amount has
// nothing to charge and does not reach Stripe.
func (s *StripePaymentService) MakePayment(ctx context.Context, accountID int64, amount int) error {
	if amount == 0 {
		return nil
	}

	minorAmount := toMinorUnits(amount)

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(minorAmount),
		Currency:    stripe.String(string(s.currency)),
		Description: stripe.String(fmt.Sprintf("🎬 Cinema tickets for account %d", accountID)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())
	params.AddMetadata("account_id", strconv.FormatInt(accountID, 10))
	params.AddMetadata("amount", strconv.Itoa(amount))

	_, err := s.newPaymentIntent(params)
	return err
}

func toMinorUnits(amount int) int64 {
	return decimal.NewFromInt(int64(amount)).Mul(minorUnitsPerUnit).IntPart()
}

var _ domain.TicketPaymentService = (*StripePaymentService)(nil)
