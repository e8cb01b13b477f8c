package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package and its adapters.
var (
	// ErrTransport is returned when no well-formed response envelope could be
	// obtained: connection failures, timeouts, unreadable or unrecognised bodies.
	ErrTransport = errors.New("transport failure calling language model")

	// ErrProvider is matched by *ProviderError, the service's own error envelope.
	ErrProvider = errors.New("language model provider returned an error")

	// ErrEmptyResult is returned when a success envelope carries zero choices.
	ErrEmptyResult = errors.New("language model returned no choices")

	// ErrScoreContract is returned when an evaluation lacks the %<digits>% score
	// marker the prompt asks for, or the marker does not hold a usable number.
	ErrScoreContract = errors.New("response violates the score format contract")

	// ErrInvalidRequest is returned when a request is rejected before any I/O.
	ErrInvalidRequest = errors.New("invalid completion request")

	// ErrInvalidConfig is returned when an adapter configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// ProviderError carries the error envelope returned by the completion service.
// Code and Message are both optional on the wire and stay nil when absent.
type ProviderError struct {
	Code       *string
	Message    *string
	StatusCode int
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	msg := ErrProvider.Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Code != nil {
		msg += ": code=" + *e.Code
	}
	if e.Message != nil {
		msg += ": " + *e.Message
	}
	return msg
}

// Is makes errors.Is(err, ErrProvider) match any *ProviderError.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}

// CodeText returns the error code, or "" when the provider sent none.
func (e *ProviderError) CodeText() string {
	if e.Code == nil {
		return ""
	}
	return *e.Code
}

// MessageText returns the error message, or "" when the provider sent none.
func (e *ProviderError) MessageText() string {
	if e.Message == nil {
		return ""
	}
	return *e.Message
}
