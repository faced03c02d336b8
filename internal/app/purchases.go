package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
)

func (app *Application) QuotePurchaseHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readPurchaseRequest(w, r)
	if !ok {
		return
	}

	summary, err := app.tickets.Quote(*input.AccountId, toDomainTicketRequests(input.TicketTypeRequests))
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return
	}

	resp := toPurchaseResponse(summary)
	resp.Seats = summary.Counts.Seats()

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePurchaseHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	input, ok := app.readPurchaseRequest(w, r)
	if !ok {
		return
	}

	summary, err := app.tickets.Purchase(r.Context(), *input.AccountId, toDomainTicketRequests(input.TicketTypeRequests))
	if err != nil {
		app.purchaseErrorResponse(w, r, err)
		return
	}

	logger.Info("tickets purchased",
		"account_id", summary.AccountID,
		"amount", summary.TotalAmount,
		"seats", summary.SeatsReserved)

	err = app.writeJSON(w, http.StatusCreated, toPurchaseResponse(summary), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) readPurchaseRequest(w http.ResponseWriter, r *http.Request) (api.PurchaseRequest, bool) {
	var input api.PurchaseRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return input, false
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return input, false
	}

	return input, true
}

func (app *Application) purchaseErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	if reason, ok := domain.RejectReasonOf(err); ok {
		app.rejectedPurchaseResponse(w, r, reason)
		return
	}

	if errors.Is(err, domain.ErrAmountOverflow) {
		app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if errors.Is(err, domain.ErrInvalidSeatCount) {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.badGatewayResponse(w, r, err)
}

func toDomainTicketRequests(requests []api.TicketTypeRequest) []domain.TicketTypeRequest {
	result := make([]domain.TicketTypeRequest, len(requests))

	for i, req := range requests {
		result[i] = domain.NewTicketTypeRequest(domain.TicketType(req.Type), req.Quantity)
	}

	return result
}

func toPurchaseResponse(summary domain.PurchaseSummary) api.PurchaseResponse {
	return api.PurchaseResponse{
		AccountId:  summary.AccountID,
		Adults:     summary.Counts.Adults,
		Children:   summary.Counts.Children,
		Infants:    summary.Counts.Infants,
		Seats:      summary.SeatsReserved,
		TotalPrice: decimal.NewFromInt(int64(summary.TotalAmount)),
	}
}
