package domain

import "errors"

var (
	ErrInvalidPurchase    = errors.New("invalid purchase")
	ErrNegativeUnitPrice  = errors.New("unit prices must not be negative")
	ErrInvalidSeatCount   = errors.New("seat count must not be negative")
	ErrAmountOverflow     = errors.New("total amount is too large")
	ErrInvalidAccountID   = &InvalidPurchaseError{Reason: ReasonInvalidAccountID}
	ErrNegativeAdults     = &InvalidPurchaseError{Reason: ReasonNegativeAdultCount}
	ErrNegativeChildren   = &InvalidPurchaseError{Reason: ReasonNegativeChildCount}
	ErrNegativeInfants    = &InvalidPurchaseError{Reason: ReasonNegativeInfantCount}
	ErrTooManyTickets     = &InvalidPurchaseError{Reason: ReasonMaxTicketsExceeded}
	ErrAdultRequired      = &InvalidPurchaseError{Reason: ReasonAdultRequired}
	ErrNotEnoughAdultLaps = &InvalidPurchaseError{Reason: ReasonInsufficientAdultLaps}
)

// RejectReason identifies why a purchase request was refused.
type RejectReason string

const (
	ReasonInvalidAccountID      RejectReason = "invalid_account_id"
	ReasonNegativeAdultCount    RejectReason = "negative_adult_count"
	ReasonNegativeChildCount    RejectReason = "negative_child_count"
	ReasonNegativeInfantCount   RejectReason = "negative_infant_count"
	ReasonMaxTicketsExceeded    RejectReason = "max_tickets_exceeded"
	ReasonAdultRequired         RejectReason = "adult_required"
	ReasonInsufficientAdultLaps RejectReason = "insufficient_adult_laps"
)

var rejectMessages = map[RejectReason]string{
	ReasonInvalidAccountID:      "account id must be greater than zero",
	ReasonNegativeAdultCount:    "negative number of adult tickets",
	ReasonNegativeChildCount:    "negative number of child tickets",
	ReasonNegativeInfantCount:   "negative number of infant tickets",
	ReasonMaxTicketsExceeded:    "cannot purchase more than 20 tickets at once",
	ReasonAdultRequired:         "child and infant tickets require an adult ticket",
	ReasonInsufficientAdultLaps: "more infants than adults, not enough laps",
}

func (r RejectReason) Message() string {
	if msg, ok := rejectMessages[r]; ok {
		return msg
	}

	return string(r)
}

// InvalidPurchaseError is returned when a purchase request breaks a business
// rule. It matches ErrInvalidPurchase and any InvalidPurchaseError with the
// same reason under errors.Is.
type InvalidPurchaseError struct {
	Reason RejectReason
}

func (e *InvalidPurchaseError) Error() string {
	return "invalid purchase: " + e.Reason.Message()
}

func (e *InvalidPurchaseError) Unwrap() error {
	return ErrInvalidPurchase
}

func (e *InvalidPurchaseError) Is(target error) bool {
	t, ok := target.(*InvalidPurchaseError)
	return ok && t.Reason == e.Reason
}

// RejectReasonOf extracts the rejection reason from err, if any.
func RejectReasonOf(err error) (RejectReason, bool) {
	var invalid *InvalidPurchaseError
	if errors.As(err, &invalid) {
		return invalid.Reason, true
	}

	return "", false
}
