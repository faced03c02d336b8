package ticket

import "github.com/metinatakli/cinema-tickets/internal/domain"

// MaxTicketsPerPurchase is the hard cap on tickets in a single purchase.
const MaxTicketsPerPurchase = 20

// ValidatePurchase checks a purchase request against the business rules and
// returns the summed ticket counts when it is admissible.
//
// The checks run in a fixed order and the first failing one decides the
// reported reason:
//
//  1. the account id must be positive
//  2. no ticket type may sum to a negative count
//  3. at most MaxTicketsPerPurchase tickets in total
//  4. child and infant tickets need at least one adult ticket
//  5. every infant needs an adult lap, so infants may not outnumber adults
func ValidatePurchase(accountID int64, requests []domain.TicketTypeRequest) (domain.TicketCounts, error) {
	if accountID < 1 {
		return domain.TicketCounts{}, domain.ErrInvalidAccountID
	}

	counts := domain.CountTickets(requests)

	if err := validateCounts(counts); err != nil {
		return domain.TicketCounts{}, err
	}

	return counts, nil
}

func validateCounts(c domain.TicketCounts) error {
	switch {
	case c.Adults < 0:
		return domain.ErrNegativeAdults
	case c.Children < 0:
		return domain.ErrNegativeChildren
	case c.Infants < 0:
		return domain.ErrNegativeInfants
	case c.Total() > MaxTicketsPerPurchase:
		return domain.ErrTooManyTickets
	case c.Children+c.Infants > 0 && c.Adults == 0:
		return domain.ErrAdultRequired
	case c.Infants > c.Adults:
		return domain.ErrNotEnoughAdultLaps
	}

	return nil
}
