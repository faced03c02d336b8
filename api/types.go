package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type TicketType string

const (
	INFANT TicketType = "INFANT"
	CHILD  TicketType = "CHILD"
	ADULT  TicketType = "ADULT"
)

// MaxQuantity bounds a single entry in either direction. Entries may be
// negative; the purchase rules decide what the summed counts allow.
const MaxQuantity = 1000

type TicketTypeRequest struct {
	Type     TicketType `json:"type" validate:"required,ticket_type"`
	Quantity int        `json:"quantity" validate:"min=-1000,max=1000"`
}

type PurchaseRequest struct {
	AccountId          *int64              `json:"accountId" validate:"required"`
	TicketTypeRequests []TicketTypeRequest `json:"ticketTypeRequests" validate:"required,dive"`
}

type PurchaseResponse struct {
	AccountId  int64           `json:"accountId"`
	Adults     int             `json:"adults"`
	Children   int             `json:"children"`
	Infants    int             `json:"infants"`
	Seats      int             `json:"seats"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type RejectionReason string

type RejectionResponse struct {
	Message   string          `json:"message"`
	Reason    RejectionReason `json:"reason"`
	RequestId string          `json:"requestId"`
	Timestamp time.Time       `json:"timestamp"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}
