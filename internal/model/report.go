package model

import "time"

// SessionState is the explicit lifecycle state of a session.
type SessionState string

const (
	StateCreated  SessionState = "created"
	StateRunning  SessionState = "running"
	StateStopped  SessionState = "stopped"
	StateReported SessionState = "reported"
	StateFailed   SessionState = "failed"
)

// TimeRange is a [Start,End] interval in session-relative seconds.
type TimeRange struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Weakness is a recurring, significant deficiency in one dimension mined
// from a stopped session's history.
type Weakness struct {
	Dimension Dimension `json:"dimension"`

	// Severity is Occurrence times the mean shortfall below the weak
	// threshold, in [0,1].
	Severity float64 `json:"severity"`

	// Occurrence is the fraction of contributing windows scoring weak.
	Occurrence float64 `json:"occurrence"`

	// Shortfall is the mean normalized distance below the weak threshold
	// across weak windows.
	Shortfall float64 `json:"shortfall"`

	// Joints names the offending joints, for the accuracy dimension.
	Joints []string `json:"joints,omitempty"`

	// Ranges are the contiguous time ranges of weak windows.
	Ranges []TimeRange `json:"ranges"`
}

// Suggestion is one ranked, human-readable training suggestion.
type Suggestion struct {
	Dimension   Dimension `json:"dimension,omitempty"`
	Priority    int       `json:"priority"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Drill       string    `json:"drill,omitempty"`
}

// Feedback is the ordered feedback of a finished session: strengths
// first, then suggestions ranked by the severity of the weakness that
// produced them.
type Feedback struct {
	Strengths   []string     `json:"strengths"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Level is the coarse performance band of a finished session.
type Level string

const (
	LevelExcellent        Level = "excellent"
	LevelGood             Level = "good"
	LevelFair             Level = "fair"
	LevelNeedsImprovement Level = "needs_improvement"
)

// SessionStats is the live view of a running (or later) session.
type SessionStats struct {
	SessionID  string       `json:"sessionId"`
	Sport      Sport        `json:"sport"`
	State      SessionState `json:"state"`
	FrameCount int          `json:"frameCount"`

	// Composite is the running mean composite score over frames where at
	// least one dimension contributed.
	Composite float64 `json:"composite"`

	// DimensionAverages are the rolling per-dimension means over
	// contributing windows.
	DimensionAverages DimensionScores `json:"dimensionAverages"`
}

// Report is the final output of a stopped session: the session-level
// rollup, the mined weaknesses, and the generated feedback.
type Report struct {
	SessionID string `json:"sessionId"`
	Sport     Sport  `json:"sport"`

	CreatedAt time.Time `json:"createdAt"`
	StoppedAt time.Time `json:"stoppedAt"`

	FrameCount int `json:"frameCount"`

	Composite         float64         `json:"composite"`
	DimensionAverages DimensionScores `json:"dimensionAverages"`
	Level             Level           `json:"level"`

	Weaknesses []Weakness `json:"weaknesses"`
	Feedback   Feedback   `json:"feedback"`
}
