package ticket

import (
	"fmt"
	"math"

	"github.com/metinatakli/cinema-tickets/internal/domain"
)

// Pricer turns ticket requests into a total amount.
type Pricer interface {
	Price(requests []domain.TicketTypeRequest) (int, error)
}

// PriceCalculator prices tickets from a fixed price table. It does no
// validation of its own.
type PriceCalculator struct {
	prices domain.PriceTable
}

func NewPriceCalculator(prices domain.PriceTable) *PriceCalculator {
	return &PriceCalculator{prices: prices}
}

// Price sums quantity * unit price over all entries. Each entry with a zero or
// negative quantity is skipped on its own; entries of the same type are not
// netted against each other first. A total that does not fit in an int
// returns domain.ErrAmountOverflow.
func (c *PriceCalculator) Price(requests []domain.TicketTypeRequest) (int, error) {
	total := 0

	for _, r := range requests {
		if r.Quantity <= 0 {
			continue
		}

		unit := c.prices.UnitPrice(r.Type)
		if unit > 0 && r.Quantity > (math.MaxInt-total)/unit {
			return 0, fmt.Errorf("%w: %d x %s", domain.ErrAmountOverflow, r.Quantity, r.Type)
		}

		total += r.Quantity * unit
	}

	return total, nil
}

var _ Pricer = (*PriceCalculator)(nil)
