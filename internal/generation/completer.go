package generation

import "context"

// Role identifies the author of a chat message.
type Role string

// Roles used by the tutor prompts.
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is one entry of a chat prompt.
type Message struct {
	Role    Role
	Content string
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Candidate is one alternative completion of a response.
type Candidate struct {
	Role    string
	Content string
}

// CompletionResponse lists the candidates returned for one request, in the
// order the service sent them.
type CompletionResponse struct {
	Choices []Candidate
}

// First returns the first candidate. An empty response is an error, never a
// zero Candidate.
func (r *CompletionResponse) First() (Candidate, error) {
	if r == nil || len(r.Choices) == 0 {
		return Candidate{}, ErrEmptyResult
	}
	return r.Choices[0], nil
}

// Completer performs exactly one chat completion request/response cycle.
// This interface serves as a boundary between the application core and
// external AI/LLM services, following the hexagonal architecture pattern.
type Completer interface {
	// Send posts messages with the given token budget and returns the parsed
	// success envelope. Failures wrap ErrTransport, ErrInvalidRequest, or are
	// a *ProviderError (matching ErrProvider). Implementations never retry.
	Send(ctx context.Context, messages []Message, maxTokens int) (*CompletionResponse, error)
}
