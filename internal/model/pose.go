package model

// LandmarkIndex identifies a body point in the fixed 33-landmark topology
// produced by the pose source.
type LandmarkIndex int

// Landmarks the engine consumes. The pose source emits the full topology;
// indices not listed here are carried through but never read.
const (
	LandmarkNose          LandmarkIndex = 0
	LandmarkLeftShoulder  LandmarkIndex = 11
	LandmarkRightShoulder LandmarkIndex = 12
	LandmarkLeftElbow     LandmarkIndex = 13
	LandmarkRightElbow    LandmarkIndex = 14
	LandmarkLeftWrist     LandmarkIndex = 15
	LandmarkRightWrist    LandmarkIndex = 16
	LandmarkLeftHip       LandmarkIndex = 23
	LandmarkRightHip      LandmarkIndex = 24
	LandmarkLeftKnee      LandmarkIndex = 25
	LandmarkRightKnee     LandmarkIndex = 26
	LandmarkLeftAnkle     LandmarkIndex = 27
	LandmarkRightAnkle    LandmarkIndex = 28
)

// NumLandmarks is the size of a full landmark set.
const NumLandmarks = 33

// Landmark is a single tracked body point in normalized image coordinates,
// with the pose source's visibility confidence in [0,1]. Immutable once
// received.
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// Frame is the complete landmark set sampled at one instant. An empty
// Landmarks slice is the explicit "no person detected" signal.
type Frame struct {
	// Seq is the monotonic sequence index assigned by the pose source.
	Seq int64 `json:"seq"`

	// Timestamp is the capture time in seconds relative to session start.
	Timestamp float64 `json:"timestamp"`

	Landmarks []Landmark `json:"landmarks"`
}

// Detected reports whether the frame carries a usable pose.
func (f *Frame) Detected() bool {
	return len(f.Landmarks) == NumLandmarks
}

// JointAngle is one computed joint angle in degrees, or an explicit
// undetectable marker when any contributing landmark fell below the
// visibility threshold.
type JointAngle struct {
	Value      float64 `json:"value"`
	Detectable bool    `json:"detectable"`
}

// JointAngleSet maps joint name to the angle derived from exactly one
// Frame. Every joint of the active SportProfile is present, detectable
// or not.
type JointAngleSet map[string]JointAngle
