package engine

import (
	"sort"

	"github.com/samber/lo"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/model"
	"github.com/formsight/backend/internal/util"
)

// scoredWindow is the slice of session history the detector mines: one
// window's dimension scores and which of them actually contributed.
type scoredWindow struct {
	ts      float64
	scores  model.DimensionScores
	contrib contributions
}

// detectWeaknesses mines a stopped session's history for recurring
// deficiencies. For each dimension it takes the fraction of contributing
// windows scoring below the weak threshold; past the minimum occurrence
// rate a Weakness is emitted with severity = occurrence rate times the
// mean shortfall below the threshold.
//
// Ordering is a contract: descending severity, then descending dimension
// weight, then dimension name. Feedback ranking depends on it.
func detectWeaknesses(windows []scoredWindow, prof *model.SportProfile, jointMeanDev map[string]float64) []model.Weakness {
	weaknesses := make([]model.Weakness, 0, len(model.Dimensions))

	for _, dim := range model.Dimensions {
		dim := dim
		contributing := lo.Filter(windows, func(w scoredWindow, _ int) bool {
			return w.contrib.of(dim)
		})
		if len(contributing) == 0 {
			continue
		}

		var (
			weak      int
			shortfall float64
			ranges    []model.TimeRange
			open      *model.TimeRange
		)
		for _, w := range contributing {
			score := w.scores.Of(dim)
			if score >= constant.WeakScoreThreshold {
				if open != nil {
					ranges = append(ranges, *open)
					open = nil
				}
				continue
			}
			weak++
			shortfall += (constant.WeakScoreThreshold - score) / constant.WeakScoreThreshold
			if open == nil {
				open = &model.TimeRange{Start: w.ts, End: w.ts}
			} else {
				open.End = w.ts
			}
		}
		if open != nil {
			ranges = append(ranges, *open)
		}

		occurrence := float64(weak) / float64(len(contributing))
		if weak == 0 || occurrence < constant.MinWeakOccurrence {
			continue
		}

		w := model.Weakness{
			Dimension:  dim,
			Occurrence: util.RoundFloat64(occurrence, 4),
			Shortfall:  util.RoundFloat64(shortfall/float64(weak), 4),
			Ranges:     ranges,
		}
		w.Severity = util.RoundFloat64(w.Occurrence*w.Shortfall, 4)
		if dim == model.DimensionAccuracy {
			w.Joints = offendingJoints(jointMeanDev)
		}
		weaknesses = append(weaknesses, w)
	}

	sort.Slice(weaknesses, func(i, j int) bool {
		if weaknesses[i].Severity != weaknesses[j].Severity {
			return weaknesses[i].Severity > weaknesses[j].Severity
		}
		wi, wj := prof.Weights.Of(weaknesses[i].Dimension), prof.Weights.Of(weaknesses[j].Dimension)
		if wi != wj {
			return wi > wj
		}
		return weaknesses[i].Dimension < weaknesses[j].Dimension
	})

	return weaknesses
}

// offendingJoints names the joints with the largest mean out-of-range
// deviation, worst first.
func offendingJoints(jointMeanDev map[string]float64) []string {
	names := lo.Filter(lo.Keys(jointMeanDev), func(name string, _ int) bool {
		return jointMeanDev[name] > 0
	})
	sort.Slice(names, func(i, j int) bool {
		if jointMeanDev[names[i]] != jointMeanDev[names[j]] {
			return jointMeanDev[names[i]] > jointMeanDev[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > constant.MaxWeaknessJoints {
		names = names[:constant.MaxWeaknessJoints]
	}
	return names
}
