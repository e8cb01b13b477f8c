package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := TopicPayload{
		Thematic:    "Basics",
		Topic:       "Variables",
		Position:    0,
		Explanation: "A variable names a value.",
	}

	event, err := NewEvent(TypeTopicExplained, payload)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, TypeTopicExplained, event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	var decoded TopicPayload
	require.NoError(t, event.UnmarshalPayload(&decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewEventUniqueIDs(t *testing.T) {
	first, err := NewEvent(TypeAnswerEvaluated, AnswerPayload{Topic: "Loops", Score: 7})
	require.NoError(t, err)
	second, err := NewEvent(TypeAnswerEvaluated, AnswerPayload{Topic: "Loops", Score: 7})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestNewEventUnencodablePayload(t *testing.T) {
	_, err := NewEvent(TypeTopicExplained, make(chan int))
	assert.Error(t, err)
}

// MockEventHandler implements the EventHandler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *Event
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the EventHandler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestHandlerFunc(t *testing.T) {
	var received *Event
	handler := HandlerFunc(func(ctx context.Context, event *Event) error {
		received = event
		return errors.New("handler error")
	})

	event, err := NewEvent(TypeExplanationCorrected, TopicPayload{Topic: "Loops"})
	require.NoError(t, err)

	err = handler.HandleEvent(context.Background(), event)
	assert.EqualError(t, err, "handler error")
	assert.Same(t, event, received)
}
