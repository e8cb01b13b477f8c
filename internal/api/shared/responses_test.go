package shared

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureDefaultLogger routes the default slog logger into a buffer for the
// duration of the test.
func captureDefaultLogger(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "successful response",
			status:       http.StatusOK,
			data:         map[string]interface{}{"score": 7},
			expectedBody: `{"score":7}`,
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `null`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			rr := httptest.NewRecorder()

			RespondWithJSON(rr, req, tc.status, tc.data)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/evaluations", nil)
	req = req.WithContext(WithTraceID(context.Background(), "trace-1"))
	rr := httptest.NewRecorder()

	RespondWithError(rr, req, http.StatusBadRequest, "Invalid request format")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid request format", resp.Error)
	assert.Equal(t, "trace-1", resp.TraceID)
	assert.NotContains(t, rr.Body.String(), "400", "status code is not serialized")
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Run("details are logged redacted and never returned", func(t *testing.T) {
		logs := captureDefaultLogger(t)

		req := httptest.NewRequest(http.MethodPost, "/api/explanations", nil)
		rr := httptest.NewRecorder()
		err := errors.New("upstream said: Incorrect API key provided: sk-abcdefghijklmnopqrstuvwx")

		RespondWithErrorAndLog(rr, req, http.StatusBadGateway, "The completion service rejected the request", err)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.NotContains(t, rr.Body.String(), "Incorrect API key")
		assert.Contains(t, rr.Body.String(), "The completion service rejected the request")

		assert.Contains(t, logs.String(), `"level":"ERROR"`)
		assert.Contains(t, logs.String(), "[REDACTED_KEY]")
		assert.NotContains(t, logs.String(), "sk-abcdefghijklmnopqrstuvwx")
	})

	t.Run("client errors log at debug", func(t *testing.T) {
		logs := captureDefaultLogger(t)

		req := httptest.NewRequest(http.MethodPost, "/api/corrections", nil)
		rr := httptest.NewRecorder()

		RespondWithErrorAndLog(rr, req, http.StatusBadRequest, "Invalid request", errors.New("bad"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, logs.String(), `"level":"DEBUG"`)
	})
}
