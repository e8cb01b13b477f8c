package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-tutor/internal/api/shared"
	"github.com/phrazzld/scry-tutor/internal/domain"
)

// Tutor is the set of tutoring operations the HTTP API exposes.
type Tutor interface {
	GenerateKnowledge(ctx context.Context, thematic *domain.Thematic) error
	EvaluateAnswer(ctx context.Context, answer string, topic domain.Topic) (*domain.Answer, error)
	CorrectExplanation(ctx context.Context, correction string, topic *domain.Topic) error
}

// TutorHandler handles tutoring HTTP requests. Every request carries the
// complete topic state, so no state is shared between requests.
type TutorHandler struct {
	tutor  Tutor
	logger *slog.Logger
}

// NewTutorHandler creates a new TutorHandler
func NewTutorHandler(tutor Tutor, logger *slog.Logger) *TutorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TutorHandler{
		tutor:  tutor,
		logger: logger.With(slog.String("component", "tutor_handler")),
	}
}

// GenerateExplanations handles POST /api/explanations requests
func (h *TutorHandler) GenerateExplanations(w http.ResponseWriter, r *http.Request) {
	var req GenerateExplanationsRequest
	if !h.decode(w, r, &req) {
		return
	}

	thematic := req.Thematic.toDomain()
	if err := h.tutor.GenerateKnowledge(r.Context(), &thematic); err != nil {
		HandleAPIError(w, r, err, "Failed to generate explanations")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, thematicToResponse(thematic))
}

// EvaluateAnswer handles POST /api/evaluations requests
func (h *TutorHandler) EvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var req EvaluateAnswerRequest
	if !h.decode(w, r, &req) {
		return
	}

	answer, err := h.tutor.EvaluateAnswer(r.Context(), req.Answer, req.Topic.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to evaluate answer")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, answerToResponse(answer))
}

// CorrectExplanation handles POST /api/corrections requests
func (h *TutorHandler) CorrectExplanation(w http.ResponseWriter, r *http.Request) {
	var req CorrectExplanationRequest
	if !h.decode(w, r, &req) {
		return
	}

	topic := req.Topic.toDomain()
	if err := h.tutor.CorrectExplanation(r.Context(), req.Correction, &topic); err != nil {
		HandleAPIError(w, r, err, "Failed to correct explanation")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, topicToResponse(topic))
}

// decode parses and validates the request body into req. It writes a 400
// response and returns false when the body is unusable.
func (h *TutorHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		h.logger.DebugContext(r.Context(), "invalid request body", "error", err)
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}
	return true
}
