package domain

import "fmt"

const (
	DefaultInfantPrice = 0
	DefaultChildPrice  = 10
	DefaultAdultPrice  = 20
)

// PriceTable maps every ticket type to its unit price in whole currency units.
// It is a plain value and is never modified after construction.
type PriceTable struct {
	infant int
	child  int
	adult  int
}

func NewPriceTable(infant, child, adult int) (PriceTable, error) {
	if infant < 0 || child < 0 || adult < 0 {
		return PriceTable{}, fmt.Errorf("%w: infant=%d child=%d adult=%d", ErrNegativeUnitPrice, infant, child, adult)
	}

	return PriceTable{infant: infant, child: child, adult: adult}, nil
}

func DefaultPriceTable() PriceTable {
	return PriceTable{
		infant: DefaultInfantPrice,
		child:  DefaultChildPrice,
		adult:  DefaultAdultPrice,
	}
}

// UnitPrice returns the price of a single ticket of the given type. Types
// outside the enumeration are rejected at the API boundary and priced at zero.
func (p PriceTable) UnitPrice(t TicketType) int {
	switch t {
	case TicketTypeInfant:
		return p.infant
	case TicketTypeChild:
		return p.child
	case TicketTypeAdult:
		return p.adult
	}

	return 0
}
