package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsight/backend/internal/model"
)

func TestGenerateFeedbackStrengths(t *testing.T) {
	prof := testProfile()
	averages := model.DimensionScores{Accuracy: 92, Fluidity: 70, Balance: 88, Timing: 95}
	counts := map[model.Dimension]int{
		model.DimensionAccuracy: 30,
		model.DimensionFluidity: 30,
		model.DimensionBalance:  30,
		// timing barely contributed: its high average is not credited
		model.DimensionTiming: 3,
	}

	fb := generateFeedback(nil, averages, counts, 30, prof)
	assert.Equal(t, []string{
		strengthNotes[model.DimensionAccuracy],
		strengthNotes[model.DimensionBalance],
	}, fb.Strengths)
}

func TestGenerateFeedbackSuggestionsFollowWeaknessOrder(t *testing.T) {
	prof := testProfile()
	prof.ExtraSuggestions = nil
	weaknesses := []model.Weakness{
		{Dimension: model.DimensionBalance, Severity: 0.4},
		{Dimension: model.DimensionAccuracy, Severity: 0.2, Joints: []string{"right_elbow"}},
	}
	counts := map[model.Dimension]int{
		model.DimensionAccuracy: 30,
		model.DimensionBalance:  30,
	}

	fb := generateFeedback(weaknesses, model.DimensionScores{}, counts, 30, prof)
	require.Len(t, fb.Suggestions, 2)
	assert.Equal(t, model.DimensionBalance, fb.Suggestions[0].Dimension)
	assert.Equal(t, model.DimensionAccuracy, fb.Suggestions[1].Dimension)
	assert.Contains(t, fb.Suggestions[1].Description, "right elbow")
	assert.Equal(t, prof.Suggestions[model.DimensionBalance].Title, fb.Suggestions[0].Title)
}

func TestGenerateFeedbackSkipsThinDimensions(t *testing.T) {
	prof := testProfile()
	prof.ExtraSuggestions = nil
	weaknesses := []model.Weakness{
		{Dimension: model.DimensionFluidity, Severity: 0.5},
	}
	counts := map[model.Dimension]int{model.DimensionFluidity: 4}

	fb := generateFeedback(weaknesses, model.DimensionScores{}, counts, 4, prof)
	assert.Empty(t, fb.Suggestions)
}

func TestGenerateFeedbackExtraSuggestions(t *testing.T) {
	prof := testProfile()
	require.NotEmpty(t, prof.ExtraSuggestions)

	fb := generateFeedback(nil, model.DimensionScores{}, nil, 30, prof)
	require.Len(t, fb.Suggestions, 1)
	assert.Equal(t, prof.ExtraSuggestions[0].Title, fb.Suggestions[0].Title)

	// too short a session for drills
	fb = generateFeedback(nil, model.DimensionScores{}, nil, 5, prof)
	assert.Empty(t, fb.Suggestions)
}

func TestJoinJointNames(t *testing.T) {
	assert.Equal(t, "right elbow", joinJointNames([]string{"right_elbow"}))
	assert.Equal(t, "right elbow and left knee", joinJointNames([]string{"right_elbow", "left_knee"}))
}
