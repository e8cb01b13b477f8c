package tutor_test

import (
	"testing"

	"github.com/phrazzld/scry-tutor/internal/generation"
	"github.com/phrazzld/scry-tutor/internal/tutor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		text        string
		wantScore   uint8
		wantCleaned string
	}{
		{
			name:        "marker inside sentence",
			text:        "I'd rate this a %7% out of 10",
			wantScore:   7,
			wantCleaned: "I'd rate this a 7 out of 10",
		},
		{
			name:        "only the first marker is used and replaced",
			text:        "Score %8%. Last time it was %5%.",
			wantScore:   8,
			wantCleaned: "Score 8. Last time it was %5%.",
		},
		{
			name:        "marker is the whole text",
			text:        "%10%",
			wantScore:   10,
			wantCleaned: "10",
		},
		{
			name:        "range is not enforced",
			text:        "%0% because nothing was answered",
			wantScore:   0,
			wantCleaned: "0 because nothing was answered",
		},
		{
			name:        "leading zeros",
			text:        "Grade: %007%",
			wantScore:   7,
			wantCleaned: "Grade: 007",
		},
		{
			name:        "percent signs around non digits are skipped",
			text:        "100% sure: %9%",
			wantScore:   9,
			wantCleaned: "100% sure: 9",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, cleaned, err := tutor.ExtractScore(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantCleaned, cleaned)
		})
	}
}

func TestExtractScore_ContractViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{name: "no marker", text: "Good answer, well done."},
		{name: "empty text", text: ""},
		{name: "empty marker", text: "score: %%"},
		{name: "non digit marker", text: "score: %seven%"},
		{name: "overflows uint8", text: "score: %999%"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := tutor.ExtractScore(tt.text)
			assert.ErrorIs(t, err, generation.ErrScoreContract)
		})
	}
}
