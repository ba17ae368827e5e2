package dto

import (
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the body of every 4xx/5xx response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required fields: collegecode"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// ValidationMessage turns a binding error into a client-facing message.
// Missing or blank fields are listed by their JSON names.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body: " + err.Error()
	}

	var missing, invalid []string
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			missing = append(missing, fe.Field())
		default:
			invalid = append(invalid, formatFieldError(fe))
		}
	}
	sort.Strings(missing)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	parts = append(parts, invalid...)
	return strings.Join(parts, "; ")
}

func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "email":
		return e.Field() + " must be a valid email address"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
