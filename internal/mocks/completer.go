package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-tutor/internal/generation"
)

// MockCompleter implements generation.Completer for testing
type MockCompleter struct {
	// SendFn allows test cases to mock the Send behavior
	SendFn func(ctx context.Context, messages []generation.Message, maxTokens int) (*generation.CompletionResponse, error)

	// Responses are returned one per call, in order, when SendFn is nil.
	// Once they run out, Response and Err are returned.
	Responses []*generation.CompletionResponse

	// Default response values
	Response *generation.CompletionResponse
	Err      error

	// Call tracking for verification
	SendCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times Send was called
		Count int

		// Messages contains the messages of every Send call
		Messages [][]generation.Message

		// MaxTokens contains the token budget of every Send call
		MaxTokens []int
	}
}

var _ generation.Completer = (*MockCompleter)(nil)

// Send implements the generation.Completer interface
func (m *MockCompleter) Send(
	ctx context.Context,
	messages []generation.Message,
	maxTokens int,
) (*generation.CompletionResponse, error) {
	m.SendCalls.mu.Lock()
	call := m.SendCalls.Count
	m.SendCalls.Count++
	m.SendCalls.Messages = append(m.SendCalls.Messages, messages)
	m.SendCalls.MaxTokens = append(m.SendCalls.MaxTokens, maxTokens)
	m.SendCalls.mu.Unlock()

	if m.SendFn != nil {
		return m.SendFn(ctx, messages, maxTokens)
	}

	if call < len(m.Responses) {
		return m.Responses[call], nil
	}
	return m.Response, m.Err
}

// CallCount returns how many times Send was called.
func (m *MockCompleter) CallCount() int {
	m.SendCalls.mu.Lock()
	defer m.SendCalls.mu.Unlock()
	return m.SendCalls.Count
}

// UserPrompts returns the user message content of every recorded call.
func (m *MockCompleter) UserPrompts() []string {
	m.SendCalls.mu.Lock()
	defer m.SendCalls.mu.Unlock()

	prompts := make([]string, 0, len(m.SendCalls.Messages))
	for _, messages := range m.SendCalls.Messages {
		for _, msg := range messages {
			if msg.Role == generation.RoleUser {
				prompts = append(prompts, msg.Content)
			}
		}
	}
	return prompts
}

// Reset resets the call tracking state
func (m *MockCompleter) Reset() {
	m.SendCalls.mu.Lock()
	defer m.SendCalls.mu.Unlock()

	m.SendCalls.Count = 0
	m.SendCalls.Messages = nil
	m.SendCalls.MaxTokens = nil
}

// ResponseWithContents builds a response holding one assistant candidate per content.
func ResponseWithContents(contents ...string) *generation.CompletionResponse {
	choices := make([]generation.Candidate, 0, len(contents))
	for _, content := range contents {
		choices = append(choices, generation.Candidate{Role: "assistant", Content: content})
	}
	return &generation.CompletionResponse{Choices: choices}
}

// NewMockCompleterWithContents creates a MockCompleter whose successive calls
// return a single candidate with the given contents.
func NewMockCompleterWithContents(contents ...string) *MockCompleter {
	m := &MockCompleter{}
	for _, content := range contents {
		m.Responses = append(m.Responses, ResponseWithContents(content))
	}
	return m
}

// NewMockCompleterWithError creates a MockCompleter that returns the specified error
func NewMockCompleterWithError(err error) *MockCompleter {
	return &MockCompleter{
		Err: err,
	}
}

// MockCompleterWithEmptyChoices creates a MockCompleter whose responses carry no candidates
func MockCompleterWithEmptyChoices() *MockCompleter {
	return &MockCompleter{
		Response: &generation.CompletionResponse{Choices: []generation.Candidate{}},
	}
}
