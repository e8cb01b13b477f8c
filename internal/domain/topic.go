package domain

import "fmt"

// Topic is one learning unit of a roadmap. Explanation stays nil until it is
// generated, and is then overwritten in place by later revisions.
type Topic struct {
	Title       string  `json:"title"                 yaml:"title"`
	Explanation *string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// NewTopic creates a Topic without an explanation.
func NewTopic(title string) (*Topic, error) {
	topic := &Topic{Title: title}
	if err := topic.Validate(); err != nil {
		return nil, err
	}
	return topic, nil
}

// Validate checks that the topic has a title.
func (t *Topic) Validate() error {
	if t.Title == "" {
		return fmt.Errorf("%w: topic: %w", ErrValidation, ErrEmptyTitle)
	}
	return nil
}

// HasExplanation reports whether an explanation has been set.
func (t *Topic) HasExplanation() bool {
	return t.Explanation != nil
}

// ExplanationText returns the explanation, or "" when none is set.
func (t *Topic) ExplanationText() string {
	if t.Explanation == nil {
		return ""
	}
	return *t.Explanation
}

// SetExplanation replaces the explanation. The topic keeps its own copy of
// the string.
func (t *Topic) SetExplanation(explanation string) {
	t.Explanation = &explanation
}

// Thematic is a named section of a roadmap. It owns its topics and keeps
// them in roadmap order.
type Thematic struct {
	Title  string  `json:"title"  yaml:"title"`
	Topics []Topic `json:"topics" yaml:"topics"`
}

// NewThematic creates a Thematic holding one explanation-less topic per title.
func NewThematic(title string, topicTitles ...string) (*Thematic, error) {
	thematic := &Thematic{
		Title:  title,
		Topics: make([]Topic, 0, len(topicTitles)),
	}
	for _, topicTitle := range topicTitles {
		thematic.Topics = append(thematic.Topics, Topic{Title: topicTitle})
	}
	if err := thematic.Validate(); err != nil {
		return nil, err
	}
	return thematic, nil
}

// Validate checks the thematic title and every topic.
func (th *Thematic) Validate() error {
	if th.Title == "" {
		return fmt.Errorf("%w: thematic: %w", ErrValidation, ErrEmptyTitle)
	}
	for i := range th.Topics {
		if err := th.Topics[i].Validate(); err != nil {
			return fmt.Errorf("thematic %q topic %d: %w", th.Title, i, err)
		}
	}
	return nil
}

// Topic returns a pointer to the topic at index i so callers can mutate it
// in place.
func (th *Thematic) Topic(i int) (*Topic, error) {
	if i < 0 || i >= len(th.Topics) {
		return nil, fmt.Errorf("%w: topic index %d out of range [0,%d)", ErrValidation, i, len(th.Topics))
	}
	return &th.Topics[i], nil
}
