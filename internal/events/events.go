package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published by the tutor.
const (
	// TypeTopicExplained follows a topic receiving a generated explanation.
	TypeTopicExplained = "topic.explained"

	// TypeAnswerEvaluated follows a learner answer being scored.
	TypeAnswerEvaluated = "answer.evaluated"

	// TypeExplanationCorrected follows a topic explanation being revised.
	TypeExplanationCorrected = "explanation.corrected"
)

// Event is a notification that a tutor operation changed something.
type Event struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Payload contains the event-specific data serialized as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// TopicPayload is the payload of topic.explained and explanation.corrected.
type TopicPayload struct {
	Thematic    string `json:"thematic,omitempty"`
	Topic       string `json:"topic"`
	Position    int    `json:"position"`
	Explanation string `json:"explanation"`
}

// AnswerPayload is the payload of answer.evaluated.
type AnswerPayload struct {
	Topic string `json:"topic"`
	Score uint8  `json:"score"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *Event) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewEvent creates a new Event with the specified type and payload.
func NewEvent(eventType string, payload interface{}) (*Event, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		ID:        uuid.New(),
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *Event) error
}

// HandlerFunc adapts an ordinary function to EventHandler.
type HandlerFunc func(ctx context.Context, event *Event) error

// HandleEvent calls f(ctx, event).
func (f HandlerFunc) HandleEvent(ctx context.Context, event *Event) error {
	return f(ctx, event)
}

// EventEmitter defines an interface for components that can emit events.
// This allows services to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *Event) error
}
