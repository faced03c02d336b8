package ticket

import (
	"context"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type purchaseMetrics struct {
	purchases   metric.Int64Counter
	ticketsSold metric.Int64Counter
}

func newPurchaseMetrics(meter metric.Meter) (*purchaseMetrics, error) {
	purchases, err := meter.Int64Counter(
		"ticket.purchases",
		metric.WithDescription("Purchase attempts by outcome"),
	)
	if err != nil {
		return nil, err
	}

	ticketsSold, err := meter.Int64Counter(
		"ticket.tickets_sold",
		metric.WithDescription("Tickets sold by ticket type"),
	)
	if err != nil {
		return nil, err
	}

	return &purchaseMetrics{
		purchases:   purchases,
		ticketsSold: ticketsSold,
	}, nil
}

func (m *purchaseMetrics) recordOutcome(ctx context.Context, outcome string) {
	m.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *purchaseMetrics) recordSold(ctx context.Context, counts domain.TicketCounts) {
	sold := map[domain.TicketType]int{
		domain.TicketTypeAdult:  counts.Adults,
		domain.TicketTypeChild:  counts.Children,
		domain.TicketTypeInfant: counts.Infants,
	}

	for t, n := range sold {
		if n == 0 {
			continue
		}

		m.ticketsSold.Add(ctx, int64(n), metric.WithAttributes(attribute.String("type", t.String())))
	}
}
