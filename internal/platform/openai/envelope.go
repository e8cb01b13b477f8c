package openai

import (
	"encoding/json"
	"fmt"

	"github.com/phrazzld/scry-tutor/internal/generation"
)

// envelopeKind is the discriminant of a decoded envelope.
type envelopeKind int

const (
	kindUnknown envelopeKind = iota
	kindSuccess
	kindProviderError
)

// kind classifies the envelope. An error member wins over choices; a null
// error member counts as absent.
func (e *envelope) kind() envelopeKind {
	switch {
	case e.Error != nil:
		return kindProviderError
	case e.Choices != nil:
		return kindSuccess
	default:
		return kindUnknown
	}
}

// decodeEnvelope parses body once and returns either the success response or
// the error it represents. statusCode is attached to errors for diagnostics
// only; the envelope shape alone decides the outcome.
func decodeEnvelope(body []byte, statusCode int) (*generation.CompletionResponse, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: undecodable response body (status %d): %w",
			generation.ErrTransport, statusCode, err)
	}

	switch env.kind() {
	case kindProviderError:
		return nil, &generation.ProviderError{
			Code:       env.Error.Code.value,
			Message:    env.Error.Message.value,
			StatusCode: statusCode,
		}

	case kindSuccess:
		choices := *env.Choices
		response := &generation.CompletionResponse{
			Choices: make([]generation.Candidate, 0, len(choices)),
		}
		for _, choice := range choices {
			response.Choices = append(response.Choices, generation.Candidate{
				Role:    choice.Message.Role,
				Content: choice.Message.Content,
			})
		}
		return response, nil

	default:
		return nil, fmt.Errorf("%w: response matched neither the success nor the error envelope (status %d)",
			generation.ErrTransport, statusCode)
	}
}
