package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/model"
)

func TestSessionLifecycle(t *testing.T) {
	s := NewSession("sess-1", testProfile())
	assert.Equal(t, model.StateCreated, s.State())
	assert.Equal(t, "sess-1", s.ID())
	assert.Equal(t, model.SportBadminton, s.Sport())

	// frames and stop are rejected before start
	_, err := s.Ingest(frameWithElbows(0, 0, 120, 120))
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = s.Stop()
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = s.Stats()
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, model.StateCreated, s.State())

	require.NoError(t, s.Start())
	assert.Equal(t, model.StateRunning, s.State())
	assert.ErrorIs(t, s.Start(), ErrInvalidState)

	_, err = s.Ingest(frameWithElbows(0, 0, 120, 120))
	require.NoError(t, err)

	report, err := s.Stop()
	require.NoError(t, err)
	assert.Equal(t, model.StateReported, s.State())
	assert.Equal(t, 1, report.FrameCount)

	// ingest and start are rejected after stop
	_, err = s.Ingest(frameWithElbows(1, 0.1, 120, 120))
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.ErrorIs(t, s.Start(), ErrInvalidState)
	assert.Equal(t, 1, s.frameCount)
}

func TestSessionStopIdempotent(t *testing.T) {
	s := NewSession("sess-2", testProfile())
	require.NoError(t, s.Start())
	for i := 0; i < 15; i++ {
		_, err := s.Ingest(frameWithElbows(int64(i), float64(i)*0.1, 120, 120))
		require.NoError(t, err)
	}

	first, err := s.Stop()
	require.NoError(t, err)
	second, err := s.Stop()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestSessionIngestReturnsBreakdown(t *testing.T) {
	s := NewSession("sess-3", testProfile())
	require.NoError(t, s.Start())

	breakdown, err := s.Ingest(frameWithElbows(4, 0.4, 120, 120))
	require.NoError(t, err)
	assert.Equal(t, int64(4), breakdown.Seq)
	assert.Equal(t, 0.4, breakdown.Timestamp)
	assert.Equal(t, 100.0, breakdown.Dimensions.Accuracy)
	assert.InDelta(t, 0.0, breakdown.Metrics.MeanAngleDeviation, 1e-9)
	assert.GreaterOrEqual(t, breakdown.Composite, 0.0)
	assert.LessOrEqual(t, breakdown.Composite, 100.0)
}

func TestSessionUndetectedFrameCounts(t *testing.T) {
	s := NewSession("sess-4", testProfile())
	require.NoError(t, s.Start())

	_, err := s.Ingest(undetectedFrame(0, 0))
	require.NoError(t, err)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FrameCount)
	// nothing contributed, so averages report the neutral values and the
	// frame's neutral breakdown stays out of the composite mean
	assert.Zero(t, stats.Composite)
	assert.Equal(t, constant.NeutralScore, stats.DimensionAverages.Accuracy)
	assert.Equal(t, constant.TimingNeutralScore, stats.DimensionAverages.Timing)
	for _, d := range model.Dimensions {
		assert.Zero(t, s.dimCounts[d], "dimension %q", d)
	}
}

// A session that never saw a usable pose must not roll its per-frame
// neutral breakdowns into a glowing report.
func TestSessionUndetectedFramesDoNotInflateComposite(t *testing.T) {
	s := NewSession("sess-9", testProfile())
	require.NoError(t, s.Start())

	for i := 0; i < 30; i++ {
		_, err := s.Ingest(undetectedFrame(int64(i), float64(i)*0.1))
		require.NoError(t, err)
	}

	report, err := s.Stop()
	require.NoError(t, err)

	assert.Equal(t, 30, report.FrameCount)
	assert.Zero(t, report.Composite)
	assert.Equal(t, model.LevelNeedsImprovement, report.Level)
	assert.Empty(t, report.Feedback.Strengths)
}

func TestSessionHistoryEviction(t *testing.T) {
	s := NewSession("sess-5", testProfile())
	require.NoError(t, s.Start())

	total := constant.HistoryCapacity + 5
	for i := 0; i < total; i++ {
		_, err := s.Ingest(frameWithElbows(int64(i), float64(i)*0.1, 120, 120))
		require.NoError(t, err)
	}

	assert.Equal(t, total, s.frameCount)
	entries := s.entries()
	require.Len(t, entries, constant.HistoryCapacity)
	// strict FIFO: the five oldest frames are gone, order preserved
	assert.Equal(t, int64(5), entries[0].s.seq)
	assert.Equal(t, int64(total-1), entries[len(entries)-1].s.seq)
	for i := 1; i < len(entries); i++ {
		assert.Equal(t, entries[i-1].s.seq+1, entries[i].s.seq)
	}
}

func TestSessionFail(t *testing.T) {
	s := NewSession("sess-6", testProfile())
	require.NoError(t, s.Start())
	s.Fail()

	assert.Equal(t, model.StateFailed, s.State())
	_, err := s.Stats()
	assert.ErrorIs(t, err, ErrInvalidState)
	_, err = s.Stop()
	assert.ErrorIs(t, err, ErrInvalidState)
}

// A clean badminton rally: both elbows sweep a smooth one-second cycle
// well inside the optimal range, torso steady. The report should praise
// accuracy and fluidity and find nothing to fix.
func TestSessionReportSmoothMotion(t *testing.T) {
	s := NewSession("sess-7", testProfile())
	require.NoError(t, s.Start())

	for i := 0; i < 30; i++ {
		ts := float64(i) * 0.1
		angle := 120 + 15*math.Cos(2*math.Pi*ts)
		_, err := s.Ingest(frameWithElbows(int64(i), ts, angle, angle))
		require.NoError(t, err)
	}

	report, err := s.Stop()
	require.NoError(t, err)

	assert.Equal(t, 30, report.FrameCount)
	assert.Greater(t, report.Composite, 85.0)
	assert.Equal(t, model.LevelExcellent, report.Level)
	assert.Empty(t, report.Weaknesses)
	assert.Equal(t, 100.0, report.DimensionAverages.Accuracy)
	assert.Greater(t, report.DimensionAverages.Fluidity, 85.0)

	require.NotEmpty(t, report.Feedback.Strengths)
	assert.Contains(t, report.Feedback.Strengths, strengthNotes[model.DimensionAccuracy])
	assert.Contains(t, report.Feedback.Strengths, strengthNotes[model.DimensionFluidity])
}

// A collapsed right elbow held 40 degrees below range: accuracy is weak
// in every window and the report names the offending joint.
func TestSessionReportWeakElbow(t *testing.T) {
	s := NewSession("sess-8", testProfile())
	require.NoError(t, s.Start())

	for i := 0; i < 30; i++ {
		_, err := s.Ingest(frameWithElbows(int64(i), float64(i)*0.1, 120, 50))
		require.NoError(t, err)
	}

	report, err := s.Stop()
	require.NoError(t, err)

	var accuracy *model.Weakness
	for i := range report.Weaknesses {
		if report.Weaknesses[i].Dimension == model.DimensionAccuracy {
			accuracy = &report.Weaknesses[i]
		}
	}
	require.NotNil(t, accuracy, "expected an accuracy weakness")
	assert.Equal(t, 1.0, accuracy.Occurrence)
	assert.Equal(t, []string{"right_elbow"}, accuracy.Joints)
	require.NotEmpty(t, accuracy.Ranges)

	var found bool
	for _, sug := range report.Feedback.Suggestions {
		if sug.Dimension == model.DimensionAccuracy {
			found = true
			assert.Contains(t, sug.Description, "right elbow")
		}
	}
	assert.True(t, found, "expected an accuracy suggestion")
}
