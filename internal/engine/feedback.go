package engine

import (
	"fmt"
	"strings"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/model"
)

var strengthNotes = map[model.Dimension]string{
	model.DimensionAccuracy: "Joint angle control is accurate and consistent.",
	model.DimensionFluidity: "Movement flows smoothly without jerkiness.",
	model.DimensionBalance:  "Posture stays stable and well balanced.",
	model.DimensionTiming:   "Motion rhythm matches the expected cadence.",
}

// generateFeedback maps detected weaknesses, in detector order, to the
// sport's suggestion templates, and scans dimension averages for
// consistently strong dimensions. Strengths come first, then suggestions
// in weakness-severity order. Dimensions with fewer than the minimum
// number of contributing windows produce neither.
func generateFeedback(weaknesses []model.Weakness, averages model.DimensionScores, dimCounts map[model.Dimension]int, frameCount int, prof *model.SportProfile) model.Feedback {
	strengths := make([]string, 0, len(model.Dimensions))
	for _, dim := range model.Dimensions {
		if dimCounts[dim] < constant.MinFeedbackWindows {
			continue
		}
		if averages.Of(dim) >= constant.StrengthThreshold {
			strengths = append(strengths, strengthNotes[dim])
		}
	}

	suggestions := make([]model.Suggestion, 0, len(weaknesses)+len(prof.ExtraSuggestions))
	for _, w := range weaknesses {
		if dimCounts[w.Dimension] < constant.MinFeedbackWindows {
			continue
		}
		tmpl, ok := prof.Suggestions[w.Dimension]
		if !ok {
			continue
		}
		description := tmpl.Description
		if len(w.Joints) > 0 {
			description = fmt.Sprintf("%s Pay particular attention to the %s.", description, joinJointNames(w.Joints))
		}
		suggestions = append(suggestions, model.Suggestion{
			Dimension:   w.Dimension,
			Priority:    tmpl.Priority,
			Title:       tmpl.Title,
			Description: description,
			Drill:       tmpl.Drill,
		})
	}

	if frameCount >= constant.MinFeedbackWindows {
		suggestions = append(suggestions, prof.ExtraSuggestions...)
	}

	return model.Feedback{
		Strengths:   strengths,
		Suggestions: suggestions,
	}
}

func joinJointNames(joints []string) string {
	humanized := make([]string, len(joints))
	for i, j := range joints {
		humanized[i] = strings.ReplaceAll(j, "_", " ")
	}
	return strings.Join(humanized, " and ")
}
