package constant

const (
	// VisibilityThreshold is the minimum landmark visibility confidence for a
	// joint angle to be considered detectable. Matches the detection
	// confidence the pose source itself is run with.
	VisibilityThreshold = 0.5

	// HistoryCapacity bounds the per-session rolling history of scored
	// windows. 300 entries is 10 seconds of footage at 30 fps.
	HistoryCapacity = 300

	// ScoringWindow is the number of most recent angle sets the accuracy,
	// fluidity and balance dimensions are computed over.
	ScoringWindow = 10

	// MinFluiditySamples is the minimum number of samples in the scoring
	// window required to compute angular velocity and jerk. Below this the
	// fluidity score is neutral.
	MinFluiditySamples = 3

	// MinTimingPeaks is the minimum number of motion-cycle peaks required to
	// estimate cadence. Below this the timing score is neutral.
	MinTimingPeaks = 2

	// PeakProminence is the minimum rise, in degrees, of the primary joint
	// angle above the window minimum for a local maximum to count as a
	// motion-cycle peak.
	PeakProminence = 10.0

	// MaxDeviationCap caps the per-joint deviation penalty, in degrees,
	// outside the optimal range. Deviations at or beyond the cap score zero
	// for that joint.
	MaxDeviationCap = 45.0

	// NeutralScore is returned for a dimension that cannot be computed from
	// the available data and should neither reward nor penalize.
	NeutralScore = 100.0

	// TimingNeutralScore is the fixed timing score for sports without a
	// repeating motion cycle, and for windows without enough cycles.
	TimingNeutralScore = 85.0
)

const (
	// WeakScoreThreshold is the per-window dimension score below which the
	// window counts towards a weakness.
	WeakScoreThreshold = 60.0

	// MinWeakOccurrence is the minimum fraction of contributing windows that
	// must score weak for a Weakness to be emitted.
	MinWeakOccurrence = 0.30

	// StrengthThreshold is the session-average dimension score at or above
	// which a positive-reinforcement note is emitted.
	StrengthThreshold = 85.0

	// MinFeedbackWindows is the minimum number of contributing windows a
	// dimension needs before any suggestion or strength is emitted for it.
	MinFeedbackWindows = 10

	// MaxWeaknessJoints bounds how many offending joints a single accuracy
	// weakness names.
	MaxWeaknessJoints = 2
)

// Performance level bands, from the session composite rollup.
const (
	LevelExcellentThreshold = 90.0
	LevelGoodThreshold      = 75.0
	LevelFairThreshold      = 60.0
)
