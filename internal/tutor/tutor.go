package tutor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/scry-tutor/internal/config"
	"github.com/phrazzld/scry-tutor/internal/domain"
	"github.com/phrazzld/scry-tutor/internal/events"
	"github.com/phrazzld/scry-tutor/internal/generation"
	"github.com/phrazzld/scry-tutor/internal/redact"
)

// Tutor runs the pedagogical operations against a completion service.
// It keeps no memory between calls. Callers must not run two operations on
// the same Topic concurrently.
type Tutor struct {
	// completer performs the network calls
	completer generation.Completer

	// systemPrompt is the persona message sent first in every prompt
	systemPrompt string

	// maxTokens is the token budget of every request
	maxTokens int

	// emitter receives progress events; nil disables them
	emitter events.EventEmitter

	logger *slog.Logger
}

// NewTutor creates a Tutor.
//
// Parameters:
//   - completer: The completion service adapter
//   - logger: A structured logger for operation logging
//   - cfg: Persona prompt and token budget
//
// Returns:
//   - A properly initialized Tutor or an error if a dependency is missing
func NewTutor(completer generation.Completer, logger *slog.Logger, cfg config.TutorConfig) (*Tutor, error) {
	if completer == nil {
		return nil, errors.New("completer cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if strings.TrimSpace(cfg.SystemPrompt) == "" {
		return nil, fmt.Errorf("%w: system prompt cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxTokens < 0 {
		return nil, fmt.Errorf("%w: max tokens must not be negative", generation.ErrInvalidConfig)
	}

	return &Tutor{
		completer:    completer,
		systemPrompt: cfg.SystemPrompt,
		maxTokens:    cfg.MaxTokens,
		logger:       logger,
	}, nil
}

// SetEventEmitter makes the tutor publish progress events to emitter.
func (t *Tutor) SetEventEmitter(emitter events.EventEmitter) {
	t.emitter = emitter
}

// GenerateRoadmap runs GenerateKnowledge over every thematic in order and
// stops at the first failure. Thematics and topics already processed keep
// their explanations.
func (t *Tutor) GenerateRoadmap(ctx context.Context, thematics []domain.Thematic) error {
	for i := range thematics {
		if err := t.GenerateKnowledge(ctx, &thematics[i]); err != nil {
			return fmt.Errorf("thematic %d %q: %w", i, thematics[i].Title, err)
		}
	}
	return nil
}

// GenerateKnowledge asks for an explanation of every topic of thematic, one
// request at a time in topic order, and stores each result in its topic.
// The first failure aborts the remaining topics; earlier topics keep their
// new explanations.
func (t *Tutor) GenerateKnowledge(ctx context.Context, thematic *domain.Thematic) error {
	if thematic == nil {
		return fmt.Errorf("%w: thematic cannot be nil", domain.ErrValidation)
	}

	t.logger.InfoContext(ctx, "Generating knowledge for thematic",
		"thematic_title", thematic.Title,
		"topic_count", len(thematic.Topics))

	for i := range thematic.Topics {
		topic := &thematic.Topics[i]

		prompt, err := render(explainTemplate, explainData{Thematic: thematic.Title, Topic: topic.Title})
		if err != nil {
			return err
		}

		content, err := t.ask(ctx, prompt)
		if err != nil {
			t.logger.ErrorContext(ctx, "Failed to explain topic",
				"thematic_title", thematic.Title,
				"topic_title", topic.Title,
				"position", i,
				"error", redact.Error(err))
			return fmt.Errorf("failed to explain topic %d %q: %w", i, topic.Title, err)
		}

		topic.SetExplanation(content)
		t.logger.DebugContext(ctx, "Topic explained",
			"topic_title", topic.Title,
			"position", i,
			"explanation_length", len(content))

		t.emit(ctx, events.TypeTopicExplained, events.TopicPayload{
			Thematic:    thematic.Title,
			Topic:       topic.Title,
			Position:    i,
			Explanation: content,
		})
	}

	return nil
}

// EvaluateAnswer asks the model to rate answer for topic and extracts the
// score from the %<digits>% marker of its reply.
func (t *Tutor) EvaluateAnswer(ctx context.Context, answer string, topic domain.Topic) (*domain.Answer, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, fmt.Errorf("%w: answer cannot be empty", domain.ErrValidation)
	}

	prompt, err := render(evaluateTemplate, evaluateData{
		Topic:       topic.Title,
		Explanation: topic.ExplanationText(),
		Answer:      answer,
	})
	if err != nil {
		return nil, err
	}

	content, err := t.ask(ctx, prompt)
	if err != nil {
		t.logger.ErrorContext(ctx, "Failed to evaluate answer",
			"topic_title", topic.Title,
			"error", redact.Error(err))
		return nil, fmt.Errorf("failed to evaluate answer for topic %q: %w", topic.Title, err)
	}

	score, explanation, err := ExtractScore(content)
	if err != nil {
		t.logger.ErrorContext(ctx, "Evaluation response has no usable score",
			"topic_title", topic.Title,
			"response_length", len(content),
			"error", redact.Error(err))
		return nil, fmt.Errorf("failed to evaluate answer for topic %q: %w", topic.Title, err)
	}

	t.logger.InfoContext(ctx, "Answer evaluated",
		"topic_title", topic.Title,
		"score", score)

	t.emit(ctx, events.TypeAnswerEvaluated, events.AnswerPayload{
		Topic: topic.Title,
		Score: score,
	})

	return domain.NewAnswer(score, explanation), nil
}

// CorrectExplanation asks for a revision of topic's explanation that takes
// correction into account and overwrites the explanation with it. The topic
// must already have an explanation; on any failure it is left unchanged.
func (t *Tutor) CorrectExplanation(ctx context.Context, correction string, topic *domain.Topic) error {
	if topic == nil {
		return fmt.Errorf("%w: topic cannot be nil", domain.ErrValidation)
	}
	if !topic.HasExplanation() {
		return fmt.Errorf("cannot correct topic %q: %w", topic.Title, domain.ErrMissingExplanation)
	}
	if strings.TrimSpace(correction) == "" {
		return fmt.Errorf("%w: correction cannot be empty", domain.ErrValidation)
	}

	prompt, err := render(correctTemplate, correctData{
		Topic:       topic.Title,
		Explanation: topic.ExplanationText(),
		Correction:  correction,
	})
	if err != nil {
		return err
	}

	content, err := t.ask(ctx, prompt)
	if err != nil {
		t.logger.ErrorContext(ctx, "Failed to correct explanation",
			"topic_title", topic.Title,
			"error", redact.Error(err))
		return fmt.Errorf("failed to correct explanation of topic %q: %w", topic.Title, err)
	}

	topic.SetExplanation(content)
	t.logger.InfoContext(ctx, "Explanation corrected",
		"topic_title", topic.Title,
		"explanation_length", len(content))

	t.emit(ctx, events.TypeExplanationCorrected, events.TopicPayload{
		Topic:       topic.Title,
		Explanation: content,
	})

	return nil
}

// ask sends the persona and userPrompt and returns the first candidate's text.
// A first candidate without text, such as a tool-call reply, counts as an
// empty result.
func (t *Tutor) ask(ctx context.Context, userPrompt string) (string, error) {
	messages := []generation.Message{
		generation.SystemMessage(t.systemPrompt),
		generation.UserMessage(userPrompt),
	}

	resp, err := t.completer.Send(ctx, messages, t.maxTokens)
	if err != nil {
		return "", err
	}

	first, err := resp.First()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(first.Content) == "" {
		return "", fmt.Errorf("%w: first candidate has no text", generation.ErrEmptyResult)
	}
	return first.Content, nil
}

// emit publishes an event when an emitter is set. Failures are logged only:
// the mutation the event reports has already happened.
func (t *Tutor) emit(ctx context.Context, eventType string, payload interface{}) {
	if t.emitter == nil {
		return
	}

	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		t.logger.WarnContext(ctx, "Failed to create event", "event_type", eventType, "error", redact.Error(err))
		return
	}
	if err := t.emitter.EmitEvent(ctx, event); err != nil {
		t.logger.WarnContext(ctx, "Failed to emit event",
			"event_type", eventType,
			"event_id", event.ID,
			"error", redact.Error(err))
	}
}
