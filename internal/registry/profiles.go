package registry

import "github.com/formsight/backend/internal/model"

// Joint names used across all profiles. Each joint is the angle at the
// vertex landmark between the two bounding landmarks.
const (
	JointLeftElbow     = "left_elbow"
	JointRightElbow    = "right_elbow"
	JointLeftShoulder  = "left_shoulder"
	JointRightShoulder = "right_shoulder"
	JointLeftKnee      = "left_knee"
	JointRightKnee     = "right_knee"
	JointLeftHip       = "left_hip"
	JointRightHip      = "right_hip"
)

// canonicalWeights are the contract weights of the four dimensions.
var canonicalWeights = model.DimensionWeights{
	Accuracy: 0.40,
	Fluidity: 0.30,
	Balance:  0.20,
	Timing:   0.10,
}

var symmetryPairs = [][2]string{
	{JointLeftElbow, JointRightElbow},
	{JointLeftShoulder, JointRightShoulder},
	{JointLeftKnee, JointRightKnee},
	{JointLeftHip, JointRightHip},
}

// jointRanges builds the eight standard joints with per-sport optimal
// ranges. Order of ranges: elbows, shoulders, knees, hips (left and
// right share a range).
func jointRanges(elbow, shoulder, knee, hip [2]float64) map[string]model.JointDefinition {
	def := func(p, v, d model.LandmarkIndex, r [2]float64) model.JointDefinition {
		return model.JointDefinition{Proximal: p, Vertex: v, Distal: d, OptimalMin: r[0], OptimalMax: r[1]}
	}
	return map[string]model.JointDefinition{
		JointLeftElbow:     def(model.LandmarkLeftShoulder, model.LandmarkLeftElbow, model.LandmarkLeftWrist, elbow),
		JointRightElbow:    def(model.LandmarkRightShoulder, model.LandmarkRightElbow, model.LandmarkRightWrist, elbow),
		JointLeftShoulder:  def(model.LandmarkLeftElbow, model.LandmarkLeftShoulder, model.LandmarkLeftHip, shoulder),
		JointRightShoulder: def(model.LandmarkRightElbow, model.LandmarkRightShoulder, model.LandmarkRightHip, shoulder),
		JointLeftKnee:      def(model.LandmarkLeftHip, model.LandmarkLeftKnee, model.LandmarkLeftAnkle, knee),
		JointRightKnee:     def(model.LandmarkRightHip, model.LandmarkRightKnee, model.LandmarkRightAnkle, knee),
		JointLeftHip:       def(model.LandmarkLeftShoulder, model.LandmarkLeftHip, model.LandmarkLeftKnee, hip),
		JointRightHip:      def(model.LandmarkRightShoulder, model.LandmarkRightHip, model.LandmarkRightKnee, hip),
	}
}

func baseSuggestions() map[model.Dimension]model.SuggestionTemplate {
	return map[model.Dimension]model.SuggestionTemplate{
		model.DimensionAccuracy: {
			Title:       "Improve joint angle control",
			Description: "Keep your joints within their optimal angle ranges, especially the elbows and knees. Practice the standard form slowly in front of a mirror.",
			Drill:       "10 minutes of guided range-of-motion practice daily",
			Priority:    1,
		},
		model.DimensionFluidity: {
			Title:       "Smooth out the movement",
			Description: "Relax and avoid stiff, stop-start motion. Rehearse the movement at half speed and build up gradually.",
			Drill:       "Slow-motion repetitions, 20 per set",
			Priority:    2,
		},
		model.DimensionBalance: {
			Title:       "Strengthen body balance",
			Description: "Keep your center of mass steady and both sides moving symmetrically. Core strength work improves stability.",
			Drill:       "Single-leg stands, 30 seconds per side, 3 sets",
			Priority:    2,
		},
		model.DimensionTiming: {
			Title:       "Steady the rhythm",
			Description: "Your motion cycles drift from the expected cadence. Train with a metronome or counted tempo to lock in the rhythm.",
			Drill:       "Tempo-counted repetitions, 5 minutes",
			Priority:    3,
		},
	}
}

func badminton() *model.SportProfile {
	return &model.SportProfile{
		Sport:            model.SportBadminton,
		DisplayName:      "Badminton",
		Joints:           jointRanges([2]float64{90, 150}, [2]float64{70, 120}, [2]float64{120, 170}, [2]float64{90, 150}),
		Weights:          canonicalWeights,
		JerkTolerance:    4000,
		ComTolerance:     0.25,
		CadencePeriod:    1.0,
		CadenceTolerance: 0.5,
		PrimaryJoint:     JointRightElbow,
		SymmetryPairs:    symmetryPairs,
		Suggestions:      baseSuggestions(),
		ExtraSuggestions: []model.Suggestion{{
			Priority:    4,
			Title:       "Refine serve rhythm",
			Description: "Control the serve tempo and keep a consistent contact point about 30 cm in front of the body.",
			Drill:       "50 target serves per day",
		}},
	}
}

func tennis() *model.SportProfile {
	return &model.SportProfile{
		Sport:            model.SportTennis,
		DisplayName:      "Tennis",
		Joints:           jointRanges([2]float64{80, 140}, [2]float64{60, 110}, [2]float64{110, 160}, [2]float64{85, 145}),
		Weights:          canonicalWeights,
		JerkTolerance:    4500,
		ComTolerance:     0.3,
		CadencePeriod:    1.5,
		CadenceTolerance: 0.5,
		PrimaryJoint:     JointRightElbow,
		SymmetryPairs:    symmetryPairs,
		Suggestions:      baseSuggestions(),
		ExtraSuggestions: []model.Suggestion{{
			Priority:    4,
			Title:       "Complete the follow-through",
			Description: "Let the racket finish high across the body after contact instead of cutting the swing short.",
			Drill:       "Shadow swings with full follow-through, 3 sets of 15",
		}},
	}
}

func basketball() *model.SportProfile {
	return &model.SportProfile{
		Sport:            model.SportBasketball,
		DisplayName:      "Basketball",
		Joints:           jointRanges([2]float64{70, 130}, [2]float64{60, 120}, [2]float64{110, 170}, [2]float64{100, 160}),
		Weights:          canonicalWeights,
		JerkTolerance:    3500,
		ComTolerance:     0.3,
		CadencePeriod:    2.0,
		CadenceTolerance: 0.6,
		PrimaryJoint:     JointRightElbow,
		SymmetryPairs:    symmetryPairs,
		Suggestions:      baseSuggestions(),
	}
}

func golf() *model.SportProfile {
	return &model.SportProfile{
		Sport:            model.SportGolf,
		DisplayName:      "Golf",
		Joints:           jointRanges([2]float64{100, 170}, [2]float64{60, 120}, [2]float64{140, 175}, [2]float64{100, 160}),
		Weights:          canonicalWeights,
		JerkTolerance:    3000,
		ComTolerance:     0.2,
		CadencePeriod:    3.0,
		CadenceTolerance: 0.6,
		PrimaryJoint:     JointRightShoulder,
		SymmetryPairs:    symmetryPairs,
		Suggestions:      baseSuggestions(),
	}
}

func yoga() *model.SportProfile {
	return &model.SportProfile{
		Sport:         model.SportYoga,
		DisplayName:   "Yoga",
		Joints:        jointRanges([2]float64{45, 135}, [2]float64{45, 135}, [2]float64{45, 135}, [2]float64{45, 135}),
		Weights:       canonicalWeights,
		JerkTolerance: 1500,
		ComTolerance:  0.15,
		// holds, not cycles: timing stays neutral
		CadencePeriod: 0,
		SymmetryPairs: symmetryPairs,
		Suggestions:   baseSuggestions(),
	}
}

func running() *model.SportProfile {
	return &model.SportProfile{
		Sport:            model.SportRunning,
		DisplayName:      "Running",
		Joints:           jointRanges([2]float64{70, 110}, [2]float64{15, 60}, [2]float64{90, 170}, [2]float64{140, 180}),
		Weights:          canonicalWeights,
		JerkTolerance:    6000,
		ComTolerance:     0.35,
		CadencePeriod:    0.7,
		CadenceTolerance: 0.3,
		PrimaryJoint:     JointRightKnee,
		SymmetryPairs:    symmetryPairs,
		Suggestions:      baseSuggestions(),
	}
}
