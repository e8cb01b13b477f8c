package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/scry-tutor/internal/config"
	"github.com/phrazzld/scry-tutor/internal/generation"
	"github.com/phrazzld/scry-tutor/internal/redact"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

// Client implements generation.Completer against a chat completions endpoint.
// It holds no per-request state, so sequential calls may share it freely.
type Client struct {
	// httpClient owns the connection pool reused across calls
	httpClient *http.Client

	// apiKey is sent as the bearer credential
	apiKey string

	// endpoint is the URL every request is posted to
	endpoint string

	// model is the model identifier placed in every request body
	model string

	logger *slog.Logger
}

// NewClient creates a Client from the LLM configuration.
//
// Parameters:
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, endpoint and timeout
//
// Returns:
//   - A properly initialized Client or an error wrapping generation.ErrInvalidConfig
func NewClient(logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint cannot be empty", generation.ErrInvalidConfig)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if cfg.TimeoutSeconds <= 0 {
		logger.Warn("invalid LLM timeout, using default",
			"timeout_seconds", cfg.TimeoutSeconds,
			"default_seconds", config.DefaultTimeoutSeconds)
		timeout = config.DefaultTimeoutSeconds * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint,
		model:      cfg.ModelName,
		logger:     logger,
	}, nil
}

// Model returns the model identifier sent with every request.
func (c *Client) Model() string {
	return c.model
}

// Send performs one chat completion request/response cycle.
//
// Parameters:
//   - ctx: Context bound to the HTTP request; cancelling it aborts the call
//   - messages: The prompt, sent as-is (an empty list is left for the service to reject)
//   - maxTokens: Token budget for the completion; must not be negative
//
// Returns:
//   - The decoded success envelope, choices in service order
//   - An error wrapping generation.ErrInvalidRequest or generation.ErrTransport,
//     or a *generation.ProviderError
func (c *Client) Send(
	ctx context.Context,
	messages []generation.Message,
	maxTokens int,
) (*generation.CompletionResponse, error) {
	if maxTokens < 0 {
		return nil, fmt.Errorf("%w: max tokens must not be negative, got %d",
			generation.ErrInvalidRequest, maxTokens)
	}

	payload, err := json.Marshal(newChatRequest(messages, maxTokens, c.model))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %w", generation.ErrInvalidRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", generation.ErrTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.DebugContext(ctx, "Sending chat completion request",
		"model", c.model,
		"message_count", len(messages),
		"max_tokens", maxTokens)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "Chat completion request failed",
			"error", redact.Secret(err.Error(), c.apiKey))
		return nil, fmt.Errorf("%w: %w", generation.ErrTransport, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.WarnContext(ctx, "Failed to close response body", "error", closeErr)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to read chat completion response",
			"status_code", resp.StatusCode,
			"error", redact.Secret(err.Error(), c.apiKey))
		return nil, fmt.Errorf("%w: failed to read response body: %w", generation.ErrTransport, err)
	}

	result, err := decodeEnvelope(body, resp.StatusCode)
	if err != nil {
		var providerErr *generation.ProviderError
		if errors.As(err, &providerErr) {
			c.logger.WarnContext(ctx, "Provider returned an error envelope",
				"status_code", providerErr.StatusCode,
				"code", providerErr.CodeText(),
				"message", redact.Secret(providerErr.MessageText(), c.apiKey))
		} else {
			c.logger.ErrorContext(ctx, "Unusable chat completion response",
				"status_code", resp.StatusCode,
				"body_length", len(body),
				"error", redact.Error(err))
		}
		return nil, err
	}

	c.logger.DebugContext(ctx, "Chat completion request succeeded",
		"status_code", resp.StatusCode,
		"choice_count", len(result.Choices))

	return result, nil
}

// Compile-time check that Client satisfies the port.
var _ generation.Completer = (*Client)(nil)
