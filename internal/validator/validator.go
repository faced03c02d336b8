package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("ticket_type", validateTicketType)

	return validator
}

func validateTicketType(fl validator.FieldLevel) bool {
	ticketType, ok := fl.Field().Interface().(api.TicketType)
	if !ok {
		return false
	}

	return domain.TicketType(ticketType).Valid()
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "ticket_type":
		names := make([]string, len(domain.TicketTypes))
		for i, t := range domain.TicketTypes {
			names[i] = t.String()
		}
		return fmt.Sprintf("must be one of %s", strings.Join(names, ", "))
	case "min":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())
	case "max":
		return fmt.Sprintf("must be less than or equal to %s", err.Param())
	default:
		return "is invalid"
	}
}
