package generation_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/scry-tutor/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageConstructors(t *testing.T) {
	assert.Equal(t, generation.Message{Role: generation.RoleSystem, Content: "persona"}, generation.SystemMessage("persona"))
	assert.Equal(t, generation.Message{Role: generation.RoleUser, Content: "question"}, generation.UserMessage("question"))
}

func TestCompletionResponseFirst(t *testing.T) {
	t.Run("returns first of many", func(t *testing.T) {
		resp := &generation.CompletionResponse{Choices: []generation.Candidate{
			{Role: "assistant", Content: "one"},
			{Role: "assistant", Content: "two"},
		}}

		first, err := resp.First()
		require.NoError(t, err)
		assert.Equal(t, "one", first.Content)
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		_, err := (&generation.CompletionResponse{}).First()
		assert.True(t, errors.Is(err, generation.ErrEmptyResult))
	})

	t.Run("nil response is an error", func(t *testing.T) {
		var resp *generation.CompletionResponse
		_, err := resp.First()
		assert.True(t, errors.Is(err, generation.ErrEmptyResult))
	})
}
