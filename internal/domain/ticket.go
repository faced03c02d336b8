package domain

import "math"

// TicketType is one of the fixed admission categories.
type TicketType string

const (
	TicketTypeInfant TicketType = "INFANT"
	TicketTypeChild  TicketType = "CHILD"
	TicketTypeAdult  TicketType = "ADULT"
)

// TicketTypes lists every category in a stable order.
var TicketTypes = []TicketType{TicketTypeInfant, TicketTypeChild, TicketTypeAdult}

func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeInfant, TicketTypeChild, TicketTypeAdult:
		return true
	default:
		return false
	}
}

func (t TicketType) String() string {
	return string(t)
}

// TicketTypeRequest asks for a number of tickets of one type. The quantity is
// taken as supplied; zero and negative values are possible and are dealt with
// by validation and pricing.
type TicketTypeRequest struct {
	Type     TicketType
	Quantity int
}

func NewTicketTypeRequest(t TicketType, quantity int) TicketTypeRequest {
	return TicketTypeRequest{Type: t, Quantity: quantity}
}

// PurchaseRequest is the input of a single purchase. Several entries of the
// same type are allowed and their quantities add up.
type PurchaseRequest struct {
	AccountID          int64
	TicketTypeRequests []TicketTypeRequest
}

// TicketCounts holds the summed quantity per ticket type.
type TicketCounts struct {
	Adults   int
	Children int
	Infants  int
}

// CountTickets sums the quantities of every entry per type. Sums are not
// clamped at zero, so negative entries can produce negative totals.
//
// Positive and negative entries are added up separately. When either side
// exceeds the int range the total saturates: a type whose negative entries
// overflow counts as math.MinInt, one whose positive entries alone overflow
// counts as math.MaxInt. The result does not depend on entry order.
func CountTickets(requests []TicketTypeRequest) TicketCounts {
	var adults, children, infants quantitySum

	for _, r := range requests {
		switch r.Type {
		case TicketTypeAdult:
			adults.add(r.Quantity)
		case TicketTypeChild:
			children.add(r.Quantity)
		case TicketTypeInfant:
			infants.add(r.Quantity)
		}
	}

	return TicketCounts{
		Adults:   adults.total(),
		Children: children.total(),
		Infants:  infants.total(),
	}
}

type quantitySum struct {
	positive, negative int
	posOverflow        bool
	negOverflow        bool
}

func (q *quantitySum) add(n int) {
	switch {
	case n > 0:
		if q.positive > math.MaxInt-n {
			q.posOverflow = true
			return
		}
		q.positive += n
	case n < 0:
		if q.negative < math.MinInt-n {
			q.negOverflow = true
			return
		}
		q.negative += n
	}
}

func (q quantitySum) total() int {
	switch {
	case q.negOverflow:
		return math.MinInt
	case q.posOverflow:
		return math.MaxInt
	}

	return q.positive + q.negative
}

// Total returns the number of tickets of all types, saturating instead of
// wrapping around.
func (c TicketCounts) Total() int {
	total := 0

	for _, n := range []int{c.Adults, c.Children, c.Infants} {
		switch {
		case n > 0 && total > math.MaxInt-n:
			total = math.MaxInt
		case n < 0 && total < math.MinInt-n:
			total = math.MinInt
		default:
			total += n
		}
	}

	return total
}

// Seats returns the number of seats the tickets occupy. Infants sit on an
// adult's lap.
func (c TicketCounts) Seats() int {
	return c.Adults + c.Children
}

// PurchaseSummary describes an accepted purchase.
type PurchaseSummary struct {
	AccountID     int64
	Counts        TicketCounts
	TotalAmount   int
	SeatsReserved int
}
