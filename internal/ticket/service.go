package ticket

import (
	"context"
	"io"
	"log/slog"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-tickets/internal/ticket"

const (
	outcomeAccepted          = "accepted"
	outcomePaymentFailed     = "payment_failed"
	outcomeReservationFailed = "reservation_failed"
	outcomePricingFailed     = "pricing_failed"
)

// Service validates, prices and pays for ticket purchases and reserves the
// seats they need.
type Service struct {
	pricer   Pricer
	payments domain.TicketPaymentService
	seats    domain.SeatReservationService
	logger   *slog.Logger
	tracer   trace.Tracer
	meter    metric.Meter
	metrics  *purchaseMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMeter(meter metric.Meter) Option {
	return func(s *Service) {
		s.meter = meter
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func NewService(
	pricer Pricer,
	payments domain.TicketPaymentService,
	seats domain.SeatReservationService,
	opts ...Option) (*Service, error) {

	s := &Service{
		pricer:   pricer,
		payments: payments,
		seats:    seats,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:   otel.Tracer(instrumentationName),
		meter:    otel.Meter(instrumentationName),
	}

	for _, opt := range opts {
		opt(s)
	}

	m, err := newPurchaseMetrics(s.meter)
	if err != nil {
		return nil, err
	}
	s.metrics = m

	return s, nil
}

// Quote validates a purchase and prices it without paying or reserving
// anything. A request whose amount does not fit in an int is refused with
// domain.ErrAmountOverflow.
func (s *Service) Quote(accountID int64, requests []domain.TicketTypeRequest) (domain.PurchaseSummary, error) {
	counts, err := ValidatePurchase(accountID, requests)
	if err != nil {
		return domain.PurchaseSummary{}, err
	}

	amount, err := s.pricer.Price(requests)
	if err != nil {
		return domain.PurchaseSummary{}, err
	}

	return domain.PurchaseSummary{
		AccountID:   accountID,
		Counts:      counts,
		TotalAmount: amount,
	}, nil
}

// Purchase validates the request, takes payment for it and then reserves one
// seat per adult and child ticket. Nothing is paid or reserved for a rejected
// request. Errors from the payment and reservation services are returned as
// they are.
func (s *Service) Purchase(
	ctx context.Context,
	accountID int64,
	requests []domain.TicketTypeRequest) (domain.PurchaseSummary, error) {

	ctx, span := s.tracer.Start(ctx, "ticket.Purchase", trace.WithAttributes(
		attribute.Int64("account.id", accountID),
		attribute.Int("ticket.request_count", len(requests)),
	))
	defer span.End()

	logger := s.logger.With("account_id", accountID)

	summary, err := s.Quote(accountID, requests)
	if err != nil {
		outcome := outcomePricingFailed
		if reason, ok := domain.RejectReasonOf(err); ok {
			outcome = string(reason)
		}

		logger.Warn("purchase rejected", "reason", outcome, "error", err)
		s.metrics.recordOutcome(ctx, outcome)
		recordSpanError(span, err)

		return domain.PurchaseSummary{}, err
	}

	err = s.payments.MakePayment(ctx, accountID, summary.TotalAmount)
	if err != nil {
		logger.Error("payment failed", "amount", summary.TotalAmount, "error", err)
		s.metrics.recordOutcome(ctx, outcomePaymentFailed)
		recordSpanError(span, err)

		return domain.PurchaseSummary{}, err
	}

	seats := summary.Counts.Seats()

	err = s.seats.ReserveSeat(ctx, accountID, seats)
	if err != nil {
		logger.Error("seat reservation failed", "seats", seats, "error", err)
		s.metrics.recordOutcome(ctx, outcomeReservationFailed)
		recordSpanError(span, err)

		return domain.PurchaseSummary{}, err
	}

	summary.SeatsReserved = seats

	s.metrics.recordOutcome(ctx, outcomeAccepted)
	s.metrics.recordSold(ctx, summary.Counts)

	span.SetAttributes(
		attribute.Int("ticket.amount", summary.TotalAmount),
		attribute.Int("ticket.seats", seats),
	)

	logger.Info("purchase completed", "amount", summary.TotalAmount, "seats", seats)

	return summary, nil
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
