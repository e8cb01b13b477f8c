package openai

import (
	"errors"
	"testing"

	"github.com/phrazzld/scry-tutor/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEnvelopeSuccess(t *testing.T) {
	body := `{
		"id": "chatcmpl-1",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": "first"}, "finish_reason": "stop"},
			{"index": 1, "message": {"role": "assistant", "content": "second"}, "finish_reason": "stop"},
			{"index": 2, "message": {"role": "assistant", "content": "third"}, "finish_reason": "stop"}
		]
	}`

	resp, err := decodeEnvelope([]byte(body), 200)

	require.NoError(t, err)
	require.Len(t, resp.Choices, 3)
	assert.Equal(t, "first", resp.Choices[0].Content)
	assert.Equal(t, "second", resp.Choices[1].Content)
	assert.Equal(t, "third", resp.Choices[2].Content)
	assert.Equal(t, "assistant", resp.Choices[0].Role)
}

func TestDecodeEnvelopeEmptyChoicesIsSuccessShape(t *testing.T) {
	resp, err := decodeEnvelope([]byte(`{"choices": []}`), 200)

	require.NoError(t, err, "an empty choices list is a well-formed success envelope")
	assert.Empty(t, resp.Choices)

	_, err = resp.First()
	assert.True(t, errors.Is(err, generation.ErrEmptyResult))
}

func TestDecodeEnvelopeProviderError(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		wantCode    *string
		wantMessage *string
	}{
		{
			name:        "code and message",
			body:        `{"error": {"code": "invalid_api_key", "message": "Incorrect API key provided", "type": "invalid_request_error"}}`,
			wantCode:    strPtr("invalid_api_key"),
			wantMessage: strPtr("Incorrect API key provided"),
		},
		{
			name:        "null code",
			body:        `{"error": {"code": null, "message": "you must provide a model parameter"}}`,
			wantMessage: strPtr("you must provide a model parameter"),
		},
		{
			name:     "numeric code",
			body:     `{"error": {"code": 429}}`,
			wantCode: strPtr("429"),
		},
		{
			name: "present but empty",
			body: `{"error": {}}`,
		},
		{
			name:        "error wins over choices",
			body:        `{"choices": [], "error": {"message": "boom"}}`,
			wantMessage: strPtr("boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := decodeEnvelope([]byte(tc.body), 400)

			assert.Nil(t, resp)
			require.True(t, errors.Is(err, generation.ErrProvider))
			assert.False(t, errors.Is(err, generation.ErrTransport))

			var providerErr *generation.ProviderError
			require.True(t, errors.As(err, &providerErr))
			assert.Equal(t, tc.wantCode, providerErr.Code)
			assert.Equal(t, tc.wantMessage, providerErr.Message)
			assert.Equal(t, 400, providerErr.StatusCode)
		})
	}
}

func TestDecodeEnvelopeTransportFailures(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ``},
		{name: "html error page", body: `<html><body>502 Bad Gateway</body></html>`},
		{name: "truncated json", body: `{"choices": [{"message": {"role": "assis`},
		{name: "neither shape", body: `{"object": "chat.completion"}`},
		{name: "null error and no choices", body: `{"error": null}`},
		{name: "json array", body: `[]`},
		{name: "object code", body: `{"error": {"code": {"nested": true}}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := decodeEnvelope([]byte(tc.body), 502)

			assert.Nil(t, resp)
			assert.True(t, errors.Is(err, generation.ErrTransport))
			assert.False(t, errors.Is(err, generation.ErrProvider))
		})
	}
}

func TestNewChatRequestEncodesEmptyMessagesAsArray(t *testing.T) {
	req := newChatRequest(nil, 0, "gpt-3.5-turbo")

	assert.NotNil(t, req.Messages)
	assert.Empty(t, req.Messages)
	assert.Equal(t, "gpt-3.5-turbo", req.Model)
}

func strPtr(s string) *string { return &s }
