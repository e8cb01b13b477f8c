package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/scry-tutor/internal/api/shared"
	"github.com/phrazzld/scry-tutor/internal/domain"
	"github.com/phrazzld/scry-tutor/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Caller mistakes
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMissingExplanation),
		errors.Is(err, generation.ErrInvalidRequest):
		return http.StatusBadRequest

	// The completion service did not answer in time
	case errors.Is(err, generation.ErrTransport) && isTimeout(err):
		return http.StatusGatewayTimeout

	// The completion service failed or broke its contract
	case errors.Is(err, generation.ErrProvider),
		errors.Is(err, generation.ErrEmptyResult),
		errors.Is(err, generation.ErrScoreContract),
		errors.Is(err, generation.ErrTransport):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrMissingExplanation):
		return "Topic has no explanation to correct"

	case errors.Is(err, domain.ErrEmptyTitle):
		return "Title cannot be empty"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, generation.ErrInvalidRequest):
		return "Invalid request"

	case errors.Is(err, generation.ErrProvider):
		return "The completion service rejected the request"

	case errors.Is(err, generation.ErrEmptyResult):
		return "The completion service returned no answer"

	case errors.Is(err, generation.ErrScoreContract):
		return "The completion service reply contained no score"

	case errors.Is(err, generation.ErrTransport) && isTimeout(err):
		return "The completion service timed out"

	case errors.Is(err, generation.ErrTransport):
		return "The completion service is unreachable"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the status and sanitized message matching err and
// logs the redacted details. defaultMsg replaces the generic message used
// for unmapped errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message naming the first failing field.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
	}

	// Fall back to a generic validation error message
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "dive":
		return "invalid element"
	default:
		return "validation failed"
	}
}

// isTimeout reports whether err was caused by a deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
