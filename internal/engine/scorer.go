package engine

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/formsight/backend/internal/constant"
	"github.com/formsight/backend/internal/model"
	"github.com/formsight/backend/internal/util"
)

// sample is one scored instant kept in the session history: the angle set
// plus the center-of-mass estimate the balance dimension needs.
type sample struct {
	seq    int64
	ts     float64
	angles model.JointAngleSet
	comX   float64
	comY   float64
	comOK  bool
}

// contributions records which dimensions were actually computable for a
// window. Non-contributing windows carry a neutral score and are excluded
// from session aggregates, weakness mining and feedback.
type contributions struct {
	accuracy bool
	fluidity bool
	balance  bool
	timing   bool
}

func (c contributions) any() bool {
	return c.accuracy || c.fluidity || c.balance || c.timing
}

func (c contributions) of(d model.Dimension) bool {
	switch d {
	case model.DimensionAccuracy:
		return c.accuracy
	case model.DimensionFluidity:
		return c.fluidity
	case model.DimensionBalance:
		return c.balance
	case model.DimensionTiming:
		return c.timing
	}
	return false
}

type scorer struct {
	prof *model.SportProfile
}

func newScorer(prof *model.SportProfile) *scorer {
	return &scorer{prof: prof}
}

// score computes the four dimensions from the session history. Accuracy,
// fluidity and balance use the most recent scoring window; timing scans
// the whole retained history for motion cycles.
func (sc *scorer) score(history []sample) (model.DimensionScores, model.RawMetrics, contributions) {
	var (
		scores  model.DimensionScores
		metrics model.RawMetrics
		contrib contributions
	)

	window := history
	if len(window) > constant.ScoringWindow {
		window = window[len(window)-constant.ScoringWindow:]
	}

	scores.Accuracy, metrics.MeanAngleDeviation, contrib.accuracy = sc.accuracy(window[len(window)-1])
	scores.Fluidity, metrics.VelocityVariance, contrib.fluidity = sc.fluidity(window)
	scores.Balance, metrics.SymmetryIndex, contrib.balance = sc.balance(window)
	scores.Timing, metrics.RhythmDeviation, contrib.timing = sc.timing(history)

	return scores, metrics, contrib
}

// accuracy scores the latest angle set against the profile's optimal
// ranges: zero penalty inside the range, proportional penalty outside,
// capped at MaxDeviationCap degrees.
func (sc *scorer) accuracy(latest sample) (score, meanDeviation float64, ok bool) {
	sum, devSum := 0.0, 0.0
	n := 0
	for name, def := range sc.prof.Joints {
		angle, present := latest.angles[name]
		if !present || !angle.Detectable {
			continue
		}
		dev := rangeDeviation(angle.Value, def)
		penalty := math.Min(dev/constant.MaxDeviationCap, 1)
		sum += 1 - penalty
		devSum += dev
		n++
	}
	if n == 0 {
		return constant.NeutralScore, 0, false
	}
	return util.RoundFloat64(100*sum/float64(n), 2), util.RoundFloat64(devSum/float64(n), 2), true
}

// fluidity penalizes jerky motion: the RMS of the discrete second
// derivative of the mean joint angle trajectory, scaled by the sport's
// jerk tolerance. Short windows score neutral instead of failing.
func (sc *scorer) fluidity(window []sample) (score, velocityVariance float64, ok bool) {
	if len(window) < constant.MinFluiditySamples {
		return constant.NeutralScore, 0, false
	}

	// per-step mean angular velocity across joints detectable in both
	// bounding samples
	velocities := make([]float64, 0, len(window)-1)
	midTimes := make([]float64, 0, len(window)-1)
	for i := 1; i < len(window); i++ {
		prev, curr := window[i-1], window[i]
		dt := curr.ts - prev.ts
		if dt <= 0 {
			continue
		}
		sum, n := 0.0, 0
		for name, a := range curr.angles {
			b, present := prev.angles[name]
			if !present || !a.Detectable || !b.Detectable {
				continue
			}
			sum += math.Abs(a.Value-b.Value) / dt
			n++
		}
		if n == 0 {
			continue
		}
		velocities = append(velocities, sum/float64(n))
		midTimes = append(midTimes, (prev.ts+curr.ts)/2)
	}
	if len(velocities) < 2 {
		return constant.NeutralScore, 0, false
	}

	jerkSquares := 0.0
	jerks := 0
	for i := 1; i < len(velocities); i++ {
		dt := midTimes[i] - midTimes[i-1]
		if dt <= 0 {
			continue
		}
		jerk := (velocities[i] - velocities[i-1]) / dt
		jerkSquares += jerk * jerk
		jerks++
	}
	if jerks == 0 {
		return constant.NeutralScore, 0, false
	}

	jerkRMS := math.Sqrt(jerkSquares / float64(jerks))
	score = 100 * clamp01(1-jerkRMS/sc.prof.JerkTolerance)
	return util.RoundFloat64(score, 2), util.RoundFloat64(stat.Variance(velocities, nil), 2), true
}

// balance averages two sub-measures: center-of-mass stability over the
// window, and left-right symmetry of mirrored joint pairs. Whichever is
// measurable contributes; with neither measurable the score is neutral.
func (sc *scorer) balance(window []sample) (score, symmetryIndex float64, ok bool) {
	stability, stabilityOK := sc.comStability(window)

	diffs := make([]float64, 0, len(sc.prof.SymmetryPairs)*len(window))
	for _, s := range window {
		for _, pair := range sc.prof.SymmetryPairs {
			left, lok := s.angles[pair[0]]
			right, rok := s.angles[pair[1]]
			if !lok || !rok || !left.Detectable || !right.Detectable {
				continue
			}
			diffs = append(diffs, math.Abs(left.Value-right.Value))
		}
	}

	symmetry, symmetryOK := 0.0, false
	if len(diffs) > 0 {
		symmetryIndex = stat.Mean(diffs, nil)
		symmetry = 100 * clamp01(1-symmetryIndex/constant.MaxDeviationCap)
		symmetryOK = true
	}

	switch {
	case stabilityOK && symmetryOK:
		score = (stability + symmetry) / 2
	case stabilityOK:
		score = stability
	case symmetryOK:
		score = symmetry
	default:
		return constant.NeutralScore, 0, false
	}
	return util.RoundFloat64(score, 2), util.RoundFloat64(symmetryIndex, 2), true
}

func (sc *scorer) comStability(window []sample) (score float64, ok bool) {
	xs := make([]float64, 0, len(window))
	ys := make([]float64, 0, len(window))
	for _, s := range window {
		if !s.comOK {
			continue
		}
		xs = append(xs, s.comX)
		ys = append(ys, s.comY)
	}
	if len(xs) < 2 {
		return 0, false
	}
	spread := math.Sqrt(stat.Variance(xs, nil) + stat.Variance(ys, nil))
	return 100 * clamp01(1-spread/sc.prof.ComTolerance), true
}

// timing compares the observed motion-cycle cadence, estimated from peaks
// of the primary joint angle series, against the sport's expected period.
// Acyclic sports and histories with too few cycles score the fixed
// neutral value.
func (sc *scorer) timing(history []sample) (score, rhythmDeviation float64, ok bool) {
	if sc.prof.CadencePeriod <= 0 || sc.prof.PrimaryJoint == "" {
		return constant.TimingNeutralScore, 0, false
	}

	times := make([]float64, 0, len(history))
	values := make([]float64, 0, len(history))
	for _, s := range history {
		a, present := s.angles[sc.prof.PrimaryJoint]
		if !present || !a.Detectable {
			continue
		}
		times = append(times, s.ts)
		values = append(values, a.Value)
	}

	peaks := peakTimes(times, values)
	if len(peaks) < constant.MinTimingPeaks {
		return constant.TimingNeutralScore, 0, false
	}

	intervals := make([]float64, 0, len(peaks)-1)
	for i := 1; i < len(peaks); i++ {
		intervals = append(intervals, peaks[i]-peaks[i-1])
	}

	rhythmDeviation = math.Abs(stat.Mean(intervals, nil)-sc.prof.CadencePeriod) / sc.prof.CadencePeriod
	score = 100 * clamp01(1-rhythmDeviation/sc.prof.CadenceTolerance)
	return util.RoundFloat64(score, 2), util.RoundFloat64(rhythmDeviation, 4), true
}

// peakTimes returns the timestamps of local maxima that rise at least
// PeakProminence degrees above the series minimum.
func peakTimes(times, values []float64) []float64 {
	if len(values) < 3 {
		return nil
	}
	floor := values[0]
	for _, v := range values[1:] {
		floor = math.Min(floor, v)
	}

	peaks := make([]float64, 0, 4)
	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1] && values[i] >= values[i+1] &&
			values[i]-floor >= constant.PeakProminence {
			peaks = append(peaks, times[i])
		}
	}
	return peaks
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
