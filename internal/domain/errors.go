package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTitle is returned when a thematic or topic has no title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrMissingExplanation is returned when an operation needs a topic
	// explanation that has not been generated yet.
	ErrMissingExplanation = errors.New("topic has no explanation")
)
