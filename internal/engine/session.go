package engine

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/model"
	"github.com/formsight/backend/internal/util"
)

// entry is one fully scored instant in the session's bounded history.
type entry struct {
	s         sample
	breakdown model.ScoreBreakdown
	contrib   contributions
}

// Session owns one bounded training interval: the rolling history, the
// running aggregates and the lifecycle state machine. All mutating
// operations are serialized on a single mutex, so Stop is safe to call
// concurrently with an in-flight Ingest: a frame is either wholly inside
// or wholly outside the frozen history.
type Session struct {
	mu sync.Mutex

	id   string
	prof *model.SportProfile
	sc   *scorer

	state     model.SessionState
	createdAt time.Time
	stoppedAt time.Time
	lastSeen  time.Time

	// history is a fixed-capacity FIFO ring of scored entries.
	ring  []entry
	start int
	size  int

	frameCount int

	// compositeSum runs over frames where at least one dimension
	// contributed; a frame scored purely from neutral fallbacks must not
	// lift the session mean.
	compositeSum   float64
	compositeCount int

	dimSums   map[model.Dimension]float64
	dimCounts map[model.Dimension]int

	jointDevSums   map[string]float64
	jointDevCounts map[string]int

	report *model.Report
}

// NewSession allocates a session in the CREATED state. The profile is
// shared read-only and must already be validated.
func NewSession(id string, prof *model.SportProfile) *Session {
	now := time.Now().UTC()
	return &Session{
		id:             id,
		prof:           prof,
		sc:             newScorer(prof),
		state:          model.StateCreated,
		createdAt:      now,
		lastSeen:       now,
		ring:           make([]entry, constant.HistoryCapacity),
		dimSums:        make(map[model.Dimension]float64, len(model.Dimensions)),
		dimCounts:      make(map[model.Dimension]int, len(model.Dimensions)),
		jointDevSums:   make(map[string]float64, len(prof.Joints)),
		jointDevCounts: make(map[string]int, len(prof.Joints)),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Sport() model.Sport {
	return s.prof.Sport
}

// State returns the current lifecycle state.
func (s *Session) State() model.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastSeen returns the time of the last state-changing call, for idle
// reaping.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Start transitions CREATED to RUNNING.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != model.StateCreated {
		return errors.Wrapf(ErrInvalidState, "cannot start session in state %q", s.state)
	}
	s.state = model.StateRunning
	s.lastSeen = time.Now().UTC()
	return nil
}

// Ingest scores one frame and appends it to the rolling history. Valid
// only while RUNNING; calls in any other state fail without mutating
// history. A frame with no detected pose still counts towards the frame
// total but contributes to no dimension average.
func (s *Session) Ingest(frame *model.Frame) (*model.ScoreBreakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.StateRunning {
		return nil, errors.Wrapf(ErrInvalidState, "cannot ingest frame in state %q", s.state)
	}

	angles := ComputeAngles(frame, s.prof)
	comX, comY, comOK := centerOfMass(frame)
	smp := sample{
		seq:    frame.Seq,
		ts:     frame.Timestamp,
		angles: angles,
		comX:   comX,
		comY:   comY,
		comOK:  comOK,
	}

	s.push(entry{s: smp})
	history := s.samples()

	scores, metrics, contrib := s.sc.score(history)
	breakdown := model.ScoreBreakdown{
		Seq:        frame.Seq,
		Timestamp:  frame.Timestamp,
		Composite:  util.RoundFloat64(clamp01(scores.Weighted(s.prof.Weights)/100)*100, 2),
		Dimensions: scores,
		Metrics:    metrics,
	}

	last := s.lastEntry()
	last.breakdown = breakdown
	last.contrib = contrib

	s.frameCount++
	if contrib.any() {
		s.compositeSum += breakdown.Composite
		s.compositeCount++
	}
	for _, d := range model.Dimensions {
		if contrib.of(d) {
			s.dimSums[d] += scores.Of(d)
			s.dimCounts[d]++
		}
	}
	for name, def := range s.prof.Joints {
		a, ok := angles[name]
		if !ok || !a.Detectable {
			continue
		}
		s.jointDevSums[name] += rangeDeviation(a.Value, def)
		s.jointDevCounts[name]++
	}

	s.lastSeen = time.Now().UTC()
	return &breakdown, nil
}

// Stop freezes the history, mines it for weaknesses, generates feedback
// and transitions to REPORTED. Idempotent: once reported, the same cached
// report is returned on every subsequent call.
func (s *Session) Stop() (*model.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == model.StateReported {
		return s.report, nil
	}
	if s.state != model.StateRunning {
		return nil, errors.Wrapf(ErrInvalidState, "cannot stop session in state %q", s.state)
	}

	s.state = model.StateStopped
	s.stoppedAt = time.Now().UTC()
	s.lastSeen = s.stoppedAt

	windows := make([]scoredWindow, 0, s.size)
	for _, e := range s.entries() {
		windows = append(windows, scoredWindow{
			ts:      e.s.ts,
			scores:  e.breakdown.Dimensions,
			contrib: e.contrib,
		})
	}

	averages := s.dimensionAverages()
	weaknesses := detectWeaknesses(windows, s.prof, s.jointMeanDeviations())
	feedback := generateFeedback(weaknesses, averages, s.dimCounts, s.frameCount, s.prof)

	composite := 0.0
	if s.compositeCount > 0 {
		composite = util.RoundFloat64(s.compositeSum/float64(s.compositeCount), 2)
	}

	s.report = &model.Report{
		SessionID:         s.id,
		Sport:             s.prof.Sport,
		CreatedAt:         s.createdAt,
		StoppedAt:         s.stoppedAt,
		FrameCount:        s.frameCount,
		Composite:         composite,
		DimensionAverages: averages,
		Level:             levelOf(composite),
		Weaknesses:        weaknesses,
		Feedback:          feedback,
	}
	s.state = model.StateReported

	return s.report, nil
}

// Stats returns the running composite, per-dimension rolling averages and
// frame count. Valid in RUNNING and later; never blocks on future frames.
func (s *Session) Stats() (*model.SessionStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == model.StateCreated || s.state == model.StateFailed {
		return nil, errors.Wrapf(ErrInvalidState, "no stats for session in state %q", s.state)
	}

	composite := 0.0
	if s.compositeCount > 0 {
		composite = util.RoundFloat64(s.compositeSum/float64(s.compositeCount), 2)
	}
	return &model.SessionStats{
		SessionID:         s.id,
		Sport:             s.prof.Sport,
		State:             s.state,
		FrameCount:        s.frameCount,
		Composite:         composite,
		DimensionAverages: s.dimensionAverages(),
	}, nil
}

// Fail moves the session to the terminal FAILED state. Reachable from any
// state on unrecoverable internal error.
func (s *Session) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = model.StateFailed
	s.lastSeen = time.Now().UTC()
}

// push appends to the ring, evicting the oldest entry once capacity is
// exceeded. Strict FIFO, no reordering.
func (s *Session) push(e entry) {
	if s.size < len(s.ring) {
		s.ring[(s.start+s.size)%len(s.ring)] = e
		s.size++
		return
	}
	s.ring[s.start] = e
	s.start = (s.start + 1) % len(s.ring)
}

func (s *Session) lastEntry() *entry {
	return &s.ring[(s.start+s.size-1)%len(s.ring)]
}

// entries returns the ring contents oldest first.
func (s *Session) entries() []entry {
	out := make([]entry, 0, s.size)
	for i := 0; i < s.size; i++ {
		out = append(out, s.ring[(s.start+i)%len(s.ring)])
	}
	return out
}

func (s *Session) samples() []sample {
	out := make([]sample, 0, s.size)
	for i := 0; i < s.size; i++ {
		out = append(out, s.ring[(s.start+i)%len(s.ring)].s)
	}
	return out
}

// dimensionAverages returns per-dimension means over contributing
// windows. A dimension with no contributing window reports the neutral
// value its per-frame breakdowns carried.
func (s *Session) dimensionAverages() model.DimensionScores {
	avg := func(d model.Dimension) float64 {
		if s.dimCounts[d] == 0 {
			if d == model.DimensionTiming {
				return constant.TimingNeutralScore
			}
			return constant.NeutralScore
		}
		return util.RoundFloat64(s.dimSums[d]/float64(s.dimCounts[d]), 2)
	}
	return model.DimensionScores{
		Accuracy: avg(model.DimensionAccuracy),
		Fluidity: avg(model.DimensionFluidity),
		Balance:  avg(model.DimensionBalance),
		Timing:   avg(model.DimensionTiming),
	}
}

func (s *Session) jointMeanDeviations() map[string]float64 {
	out := make(map[string]float64, len(s.jointDevSums))
	for name, sum := range s.jointDevSums {
		if n := s.jointDevCounts[name]; n > 0 {
			out[name] = sum / float64(n)
		}
	}
	return out
}

func levelOf(composite float64) model.Level {
	switch {
	case composite >= constant.LevelExcellentThreshold:
		return model.LevelExcellent
	case composite >= constant.LevelGoodThreshold:
		return model.LevelGood
	case composite >= constant.LevelFairThreshold:
		return model.LevelFair
	}
	return model.LevelNeedsImprovement
}
