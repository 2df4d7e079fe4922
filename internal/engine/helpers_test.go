package engine

import (
	"math"

	"github.com/formsight/backend/internal/model"
)

// testProfile is a two-joint profile small enough to reason about by
// hand: both elbows with a [90,150] optimal range, mirrored for
// symmetry, right elbow driving cadence at one cycle per second.
func testProfile() *model.SportProfile {
	return &model.SportProfile{
		Sport:       model.SportBadminton,
		DisplayName: "Badminton",
		Joints: map[string]model.JointDefinition{
			"left_elbow": {
				Proximal:   model.LandmarkLeftShoulder,
				Vertex:     model.LandmarkLeftElbow,
				Distal:     model.LandmarkLeftWrist,
				OptimalMin: 90,
				OptimalMax: 150,
			},
			"right_elbow": {
				Proximal:   model.LandmarkRightShoulder,
				Vertex:     model.LandmarkRightElbow,
				Distal:     model.LandmarkRightWrist,
				OptimalMin: 90,
				OptimalMax: 150,
			},
		},
		Weights: model.DimensionWeights{
			Accuracy: 0.40,
			Fluidity: 0.30,
			Balance:  0.20,
			Timing:   0.10,
		},
		JerkTolerance:    4000,
		ComTolerance:     0.25,
		CadencePeriod:    1.0,
		CadenceTolerance: 0.5,
		PrimaryJoint:     "right_elbow",
		SymmetryPairs:    [][2]string{{"left_elbow", "right_elbow"}},
		Suggestions: map[model.Dimension]model.SuggestionTemplate{
			model.DimensionAccuracy: {
				Title:       "Improve joint angle control",
				Description: "Keep your joints within their optimal ranges.",
				Drill:       "Range-of-motion practice",
				Priority:    1,
			},
			model.DimensionFluidity: {
				Title:       "Smooth out the movement",
				Description: "Avoid stiff, stop-start motion.",
				Drill:       "Slow-motion repetitions",
				Priority:    2,
			},
			model.DimensionBalance: {
				Title:       "Strengthen body balance",
				Description: "Keep your center of mass steady.",
				Drill:       "Single-leg stands",
				Priority:    2,
			},
			model.DimensionTiming: {
				Title:       "Steady the rhythm",
				Description: "Train with a counted tempo.",
				Drill:       "Tempo-counted repetitions",
				Priority:    3,
			},
		},
		ExtraSuggestions: []model.Suggestion{{
			Priority:    4,
			Title:       "Refine serve rhythm",
			Description: "Keep a consistent contact point.",
			Drill:       "Target serves",
		}},
	}
}

// acyclicProfile is testProfile without a cadence: timing scores neutral.
func acyclicProfile() *model.SportProfile {
	prof := testProfile()
	prof.CadencePeriod = 0
	prof.CadenceTolerance = 0
	prof.PrimaryJoint = ""
	return prof
}

// frameWithElbows builds a full 33-landmark frame whose left and right
// elbow angles equal the given values, with a fixed torso so the
// center-of-mass estimate is stable across frames.
func frameWithElbows(seq int64, ts float64, left, right float64) *model.Frame {
	lms := make([]model.Landmark, model.NumLandmarks)
	for i := range lms {
		lms[i] = model.Landmark{X: 0.5, Y: 0.5, Visibility: 1}
	}
	set := func(idx model.LandmarkIndex, x, y float64) {
		lms[idx] = model.Landmark{X: x, Y: y, Visibility: 1}
	}
	set(model.LandmarkLeftShoulder, 0.4, 0.3)
	set(model.LandmarkRightShoulder, 0.6, 0.3)
	set(model.LandmarkLeftHip, 0.45, 0.6)
	set(model.LandmarkRightHip, 0.55, 0.6)
	set(model.LandmarkLeftElbow, 0.3, 0.4)
	set(model.LandmarkRightElbow, 0.7, 0.4)
	placeWrist(lms, model.LandmarkLeftShoulder, model.LandmarkLeftElbow, model.LandmarkLeftWrist, left)
	placeWrist(lms, model.LandmarkRightShoulder, model.LandmarkRightElbow, model.LandmarkRightWrist, right)
	return &model.Frame{Seq: seq, Timestamp: ts, Landmarks: lms}
}

// placeWrist positions the wrist so the elbow angle equals the given
// value in degrees, by rotating off the elbow-to-shoulder direction.
func placeWrist(lms []model.Landmark, shoulder, elbow, wrist model.LandmarkIndex, angle float64) {
	s, e := lms[shoulder], lms[elbow]
	base := math.Atan2(s.Y-e.Y, s.X-e.X)
	theta := base + angle*math.Pi/180
	lms[wrist] = model.Landmark{
		X:          e.X + 0.1*math.Cos(theta),
		Y:          e.Y + 0.1*math.Sin(theta),
		Visibility: 1,
	}
}

// undetectedFrame carries no landmarks at all.
func undetectedFrame(seq int64, ts float64) *model.Frame {
	return &model.Frame{Seq: seq, Timestamp: ts}
}
