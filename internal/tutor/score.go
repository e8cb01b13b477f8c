package tutor

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/phrazzld/scry-tutor/internal/generation"
)

// scorePattern matches the score marker the evaluation prompt asks for.
var scorePattern = regexp.MustCompile(`%(\d+)%`)

// ExtractScore finds the first %<digits>% marker in text and returns its
// number together with text where that one marker is replaced by its bare
// digits. A missing marker, or one whose number does not fit a uint8, is an
// ErrScoreContract violation; there is no fallback score.
func ExtractScore(text string) (uint8, string, error) {
	loc := scorePattern.FindStringSubmatchIndex(text)
	if loc == nil {
		return 0, "", fmt.Errorf("%w: no %%<digits>%% marker in response", generation.ErrScoreContract)
	}

	digits := text[loc[2]:loc[3]]
	score, err := strconv.ParseUint(digits, 10, 8)
	if err != nil {
		return 0, "", fmt.Errorf("%w: score %q is not a number in 0-255: %w",
			generation.ErrScoreContract, digits, err)
	}

	cleaned := text[:loc[0]] + digits + text[loc[1]:]
	return uint8(score), cleaned, nil
}
