package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-tutor/internal/config"
	"github.com/phrazzld/scry-tutor/internal/events"
	"github.com/phrazzld/scry-tutor/internal/generation"
	"github.com/phrazzld/scry-tutor/internal/platform/logger"
	"github.com/phrazzld/scry-tutor/internal/platform/openai"
	"github.com/phrazzld/scry-tutor/internal/tutor"
)

// application holds the wired dependencies shared by all commands.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	tutor   *tutor.Tutor
	emitter *events.InMemoryEventEmitter
}

// appFactory builds the application. Log output goes to logOutput; nil means
// the server logger on stdout.
type appFactory func(logOutput io.Writer) (*application, error)

// setupApplication loads configuration and wires the completion client,
// tutor and progress events.
func setupApplication(logOutput io.Writer) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	var log *slog.Logger
	if logOutput == nil {
		log, err = logger.Setup(cfg.Server)
		if err != nil {
			return nil, fmt.Errorf("failed to set up logger: %w", err)
		}
	} else {
		log = logger.New(logOutput, cfg.Server.LogLevel)
		slog.SetDefault(log)
	}

	client, err := openai.NewClient(log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	log.Info("Completion client initialized",
		"model", client.Model(),
		"endpoint", cfg.LLM.Endpoint)

	return newApplication(cfg, log, client)
}

// newApplication wires the tutor around completer.
func newApplication(cfg *config.Config, log *slog.Logger, completer generation.Completer) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	t, err := tutor.NewTutor(completer, log, cfg.Tutor)
	if err != nil {
		return nil, fmt.Errorf("failed to create tutor: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(progressHandler(log))
	t.SetEventEmitter(emitter)

	return &application{
		config:  cfg,
		logger:  log,
		tutor:   t,
		emitter: emitter,
	}, nil
}

// progressHandler logs every tutor event as it happens.
func progressHandler(log *slog.Logger) events.EventHandler {
	return events.HandlerFunc(func(ctx context.Context, event *events.Event) error {
		switch event.Type {
		case events.TypeTopicExplained, events.TypeExplanationCorrected:
			var payload events.TopicPayload
			if err := event.UnmarshalPayload(&payload); err != nil {
				return err
			}
			log.InfoContext(ctx, "Progress",
				"event_type", event.Type,
				"thematic_title", payload.Thematic,
				"topic_title", payload.Topic,
				"position", payload.Position)
		case events.TypeAnswerEvaluated:
			var payload events.AnswerPayload
			if err := event.UnmarshalPayload(&payload); err != nil {
				return err
			}
			log.InfoContext(ctx, "Progress",
				"event_type", event.Type,
				"topic_title", payload.Topic,
				"score", payload.Score)
		default:
			log.DebugContext(ctx, "Ignoring unknown event", "event_type", event.Type)
		}
		return nil
	})
}
