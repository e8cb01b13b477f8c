package domain

// Answer is the evaluation of a learner's free-text answer. Score is whatever
// number the model wrote in its score marker; the 1-10 range is requested in
// the prompt but not enforced here.
type Answer struct {
	Score       uint8  `json:"score"`
	Explanation string `json:"explanation"`
}

// NewAnswer creates an Answer.
func NewAnswer(score uint8, explanation string) *Answer {
	return &Answer{
		Score:       score,
		Explanation: explanation,
	}
}
