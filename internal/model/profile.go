package model

import "math"

// Sport identifies one of the supported sport profiles.
type Sport string

const (
	SportBadminton  Sport = "badminton"
	SportTennis     Sport = "tennis"
	SportBasketball Sport = "basketball"
	SportGolf       Sport = "golf"
	SportYoga       Sport = "yoga"
	SportRunning    Sport = "running"
)

// JointDefinition defines a joint angle as the angle at Vertex between the
// Proximal and Distal landmarks, and the optimal range for the sport.
type JointDefinition struct {
	Proximal LandmarkIndex `json:"-"`
	Vertex   LandmarkIndex `json:"-"`
	Distal   LandmarkIndex `json:"-"`

	OptimalMin float64 `json:"optimalMin"`
	OptimalMax float64 `json:"optimalMax"`
}

// DimensionWeights are the per-sport weights of the four quality
// dimensions. They must sum to 1.0 for a profile to load.
type DimensionWeights struct {
	Accuracy float64 `json:"accuracy"`
	Fluidity float64 `json:"fluidity"`
	Balance  float64 `json:"balance"`
	Timing   float64 `json:"timing"`
}

// Sum returns the total of the four weights.
func (w DimensionWeights) Sum() float64 {
	return w.Accuracy + w.Fluidity + w.Balance + w.Timing
}

// Of returns the weight of a single dimension.
func (w DimensionWeights) Of(d Dimension) float64 {
	switch d {
	case DimensionAccuracy:
		return w.Accuracy
	case DimensionFluidity:
		return w.Fluidity
	case DimensionBalance:
		return w.Balance
	case DimensionTiming:
		return w.Timing
	}
	return math.NaN()
}

// SuggestionTemplate is the sport-specific wording a weakness in one
// dimension maps to. For accuracy weaknesses the offending joint list is
// appended to Description.
type SuggestionTemplate struct {
	Title       string
	Description string
	Drill       string
	Priority    int
}

// SportProfile is the full static configuration of one sport. Loaded at
// session creation and immutable for the session lifetime; shared
// read-only across all sessions of the sport.
type SportProfile struct {
	Sport       Sport  `json:"sport"`
	DisplayName string `json:"displayName"`

	// Joints maps joint name to its landmark triple and optimal range.
	Joints map[string]JointDefinition `json:"joints"`

	Weights DimensionWeights `json:"weights"`

	// JerkTolerance is the angular jerk RMS, in deg/s^2, at which the
	// fluidity score reaches zero.
	JerkTolerance float64 `json:"jerkTolerance"`

	// ComTolerance is the center-of-mass positional spread, in normalized
	// image units, at which the balance stability sub-score reaches zero.
	ComTolerance float64 `json:"comTolerance"`

	// CadencePeriod is the expected seconds per motion cycle. Zero marks
	// the sport acyclic (e.g. yoga holds); timing then scores neutral.
	CadencePeriod float64 `json:"cadencePeriod"`

	// CadenceTolerance is the fraction of CadencePeriod by which the
	// observed inter-cycle interval may deviate before timing reaches zero.
	CadenceTolerance float64 `json:"cadenceTolerance"`

	// PrimaryJoint is the joint whose angle series is peak-detected for
	// cadence estimation. Empty for acyclic sports.
	PrimaryJoint string `json:"primaryJoint"`

	// SymmetryPairs lists mirrored joint-angle pairs compared by the
	// balance dimension.
	SymmetryPairs [][2]string `json:"-"`

	// Suggestions holds the per-dimension feedback wording.
	Suggestions map[Dimension]SuggestionTemplate `json:"-"`

	// ExtraSuggestions are appended to any weakness-driven feedback, e.g.
	// the badminton serve-rhythm drill.
	ExtraSuggestions []Suggestion `json:"-"`
}
