package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/ticket"
	"github.com/metinatakli/cinema-tickets/internal/validator"
)

func newTestApplication(
	t *testing.T,
	payments domain.TicketPaymentService,
	seats domain.SeatReservationService,
	opts ...func(*Application)) *Application {

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tickets, err := ticket.NewService(
		ticket.NewPriceCalculator(domain.DefaultPriceTable()),
		payments,
		seats,
		ticket.WithLogger(logger),
	)
	if err != nil {
		t.Fatal(err)
	}

	app := &Application{
		config:    Config{Env: "test"},
		validator: validator.NewValidator(),
		logger:    logger,
		tickets:   tickets,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

type errorExpectation struct {
	wantStatus     int
	wantErrMessage string
	wantReason     api.RejectionReason
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt errorExpectation) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch {
	case tt.wantReason != "":
		var rejectionResp api.RejectionResponse
		if err := json.NewDecoder(w.Body).Decode(&rejectionResp); err != nil {
			t.Fatalf("Failed to decode rejection response: %v", err)
		}

		if rejectionResp.Reason != tt.wantReason {
			t.Errorf("Reason = %v, want %v", rejectionResp.Reason, tt.wantReason)
		}

		if tt.wantErrMessage != "" && rejectionResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", rejectionResp.Message, tt.wantErrMessage)
		}

	case tt.wantStatus == http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
