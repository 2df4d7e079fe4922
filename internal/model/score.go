package model

import "math"

// Dimension is one of the four weighted quality axes.
type Dimension string

const (
	DimensionAccuracy Dimension = "accuracy"
	DimensionFluidity Dimension = "fluidity"
	DimensionBalance  Dimension = "balance"
	DimensionTiming   Dimension = "timing"
)

// Dimensions lists all dimensions in weight-descending conventional order.
var Dimensions = []Dimension{
	DimensionAccuracy,
	DimensionFluidity,
	DimensionBalance,
	DimensionTiming,
}

// DimensionScores holds the four 0-100 dimension sub-scores.
type DimensionScores struct {
	Accuracy float64 `json:"accuracy"`
	Fluidity float64 `json:"fluidity"`
	Balance  float64 `json:"balance"`
	Timing   float64 `json:"timing"`
}

// Of returns the score of a single dimension.
func (s DimensionScores) Of(d Dimension) float64 {
	switch d {
	case DimensionAccuracy:
		return s.Accuracy
	case DimensionFluidity:
		return s.Fluidity
	case DimensionBalance:
		return s.Balance
	case DimensionTiming:
		return s.Timing
	}
	return math.NaN()
}

// Weighted returns the composite of the scores under the given weights.
func (s DimensionScores) Weighted(w DimensionWeights) float64 {
	return s.Accuracy*w.Accuracy + s.Fluidity*w.Fluidity + s.Balance*w.Balance + s.Timing*w.Timing
}

// RawMetrics are the unscaled measurements behind a ScoreBreakdown.
type RawMetrics struct {
	// MeanAngleDeviation is the mean out-of-range deviation across
	// detectable joints, in degrees.
	MeanAngleDeviation float64 `json:"meanAngleDeviation"`

	// VelocityVariance is the variance of per-step angular velocity over
	// the scoring window, in (deg/s)^2.
	VelocityVariance float64 `json:"velocityVariance"`

	// SymmetryIndex is the mean absolute mirrored-pair angle difference,
	// in degrees.
	SymmetryIndex float64 `json:"symmetryIndex"`

	// RhythmDeviation is the relative deviation of the observed inter-cycle
	// interval from the sport's expected cadence.
	RhythmDeviation float64 `json:"rhythmDeviation"`
}

// ScoreBreakdown is the per-window scoring output: one composite in
// [0,100], the four sub-scores, and the raw metrics they derive from.
type ScoreBreakdown struct {
	Seq       int64   `json:"seq"`
	Timestamp float64 `json:"timestamp"`

	Composite  float64         `json:"composite"`
	Dimensions DimensionScores `json:"dimensions"`
	Metrics    RawMetrics      `json:"metrics"`
}
