package api

import "github.com/phrazzld/scry-tutor/internal/domain"

// TopicRequest is a topic as sent by clients.
type TopicRequest struct {
	Title       string  `json:"title"                 validate:"required"`
	Explanation *string `json:"explanation,omitempty"`
}

// ThematicRequest is a thematic as sent by clients.
type ThematicRequest struct {
	Title  string         `json:"title"  validate:"required"`
	Topics []TopicRequest `json:"topics" validate:"required,min=1,max=50,dive"`
}

// GenerateExplanationsRequest represents the request body for POST /api/explanations
type GenerateExplanationsRequest struct {
	Thematic ThematicRequest `json:"thematic"`
}

// EvaluateAnswerRequest represents the request body for POST /api/evaluations
type EvaluateAnswerRequest struct {
	Answer string       `json:"answer" validate:"required"`
	Topic  TopicRequest `json:"topic"`
}

// CorrectExplanationRequest represents the request body for POST /api/corrections
type CorrectExplanationRequest struct {
	Correction string       `json:"correction" validate:"required"`
	Topic      TopicRequest `json:"topic"`
}

// TopicResponse represents a topic in responses
type TopicResponse struct {
	Title       string  `json:"title"`
	Explanation *string `json:"explanation"`
}

// ThematicResponse represents a thematic in responses
type ThematicResponse struct {
	Title  string          `json:"title"`
	Topics []TopicResponse `json:"topics"`
}

// AnswerResponse represents the evaluation of an answer
type AnswerResponse struct {
	Score       uint8  `json:"score"`
	Explanation string `json:"explanation"`
}

// toDomain converts the request into a domain topic.
func (t TopicRequest) toDomain() domain.Topic {
	topic := domain.Topic{Title: t.Title}
	if t.Explanation != nil {
		topic.SetExplanation(*t.Explanation)
	}
	return topic
}

// toDomain converts the request into a domain thematic.
func (t ThematicRequest) toDomain() domain.Thematic {
	thematic := domain.Thematic{
		Title:  t.Title,
		Topics: make([]domain.Topic, 0, len(t.Topics)),
	}
	for _, topic := range t.Topics {
		thematic.Topics = append(thematic.Topics, topic.toDomain())
	}
	return thematic
}

// topicToResponse converts a domain topic to its response shape.
func topicToResponse(topic domain.Topic) TopicResponse {
	return TopicResponse{
		Title:       topic.Title,
		Explanation: topic.Explanation,
	}
}

// thematicToResponse converts a domain thematic to its response shape.
func thematicToResponse(thematic domain.Thematic) ThematicResponse {
	topics := make([]TopicResponse, 0, len(thematic.Topics))
	for _, topic := range thematic.Topics {
		topics = append(topics, topicToResponse(topic))
	}
	return ThematicResponse{
		Title:  thematic.Title,
		Topics: topics,
	}
}

// answerToResponse converts a domain answer to its response shape.
func answerToResponse(answer *domain.Answer) AnswerResponse {
	return AnswerResponse{
		Score:       answer.Score,
		Explanation: answer.Explanation,
	}
}
