package generation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/scry-tutor/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// Test that error types are distinct
func TestErrorTypes(t *testing.T) {
	errTypes := []error{
		generation.ErrTransport,
		generation.ErrProvider,
		generation.ErrEmptyResult,
		generation.ErrScoreContract,
		generation.ErrInvalidRequest,
		generation.ErrInvalidConfig,
	}

	for i, err1 := range errTypes {
		for j, err2 := range errTypes {
			if i != j {
				assert.False(t, errors.Is(err1, err2), "Errors should be distinct: %v and %v", err1, err2)
			}
		}
	}
}

func TestProviderErrorMatchesSentinel(t *testing.T) {
	var err error = &generation.ProviderError{Code: strPtr("invalid_api_key")}
	wrapped := fmt.Errorf("explain topic: %w", err)

	assert.True(t, errors.Is(wrapped, generation.ErrProvider))
	assert.False(t, errors.Is(wrapped, generation.ErrTransport))

	var providerErr *generation.ProviderError
	require.True(t, errors.As(wrapped, &providerErr))
	assert.Equal(t, "invalid_api_key", providerErr.CodeText())
	assert.Equal(t, "", providerErr.MessageText())
}

func TestProviderErrorMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      *generation.ProviderError
		expected string
	}{
		{
			name:     "empty envelope",
			err:      &generation.ProviderError{},
			expected: "language model provider returned an error",
		},
		{
			name:     "status only",
			err:      &generation.ProviderError{StatusCode: 400},
			expected: "language model provider returned an error (status 400)",
		},
		{
			name: "code and message",
			err: &generation.ProviderError{
				Code:       strPtr("context_length_exceeded"),
				Message:    strPtr("too many tokens"),
				StatusCode: 400,
			},
			expected: "language model provider returned an error (status 400): code=context_length_exceeded: too many tokens",
		},
		{
			name:     "message only",
			err:      &generation.ProviderError{Message: strPtr("you must provide a model parameter")},
			expected: "language model provider returned an error: you must provide a model parameter",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

// Test error wrapping keeps both the sentinel and the cause visible
func TestErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	wrapped := fmt.Errorf("%w: %w", generation.ErrTransport, cause)

	assert.True(t, errors.Is(wrapped, generation.ErrTransport))
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, "transport failure calling language model: connection refused", wrapped.Error())
}
