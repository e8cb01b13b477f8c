package openai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/phrazzld/scry-tutor/internal/generation"
)

// chatRequest is the request body posted to the completion endpoint.
type chatRequest struct {
	Messages  []wireMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
	Model     string        `json:"model"`
}

// wireMessage is a chat message as it appears on the wire, both in requests
// and inside response choices.
type wireMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// newChatRequest converts domain messages into a request body. A nil or empty
// message list is encoded as [] rather than null.
func newChatRequest(messages []generation.Message, maxTokens int, model string) chatRequest {
	wire := make([]wireMessage, 0, len(messages))
	for _, m := range messages {
		wire = append(wire, wireMessage{Role: string(m.Role), Content: m.Content})
	}
	return chatRequest{
		Messages:  wire,
		MaxTokens: maxTokens,
		Model:     model,
	}
}

// envelope is the union of the two response shapes. Exactly one of Choices
// and Error is expected to be non-nil; pointers distinguish "absent" from
// "present but empty".
type envelope struct {
	Choices *[]wireChoice `json:"choices"`
	Error   *wireError    `json:"error"`
}

// wireChoice is one candidate of a success envelope.
type wireChoice struct {
	Message wireMessage `json:"message"`
}

// wireError is the body of a provider error envelope.
type wireError struct {
	Code    optionalText `json:"code"`
	Message optionalText `json:"message"`
}

// optionalText decodes a JSON string, number or null. Numbers are kept in
// their literal form since some compatible services send numeric codes.
type optionalText struct {
	value *string
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *optionalText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		o.value = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		o.value = &s
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err == nil {
		text := n.String()
		o.value = &text
		return nil
	}

	return fmt.Errorf("expected string, number or null, got %s", trimmed)
}
