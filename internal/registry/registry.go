// Package registry holds the static per-sport configuration: optimal
// joint-angle ranges, dimension weights and cadence tolerances. Profiles
// are versioned data, not code paths; adding a sport touches nothing but
// this package.
package registry

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/formsight/backend/internal/engine"
	"github.com/formsight/backend/internal/model"
)

// Registry is an immutable sport-to-profile lookup table, constructed
// once at process start and shared read-only by all sessions.
type Registry struct {
	profiles map[model.Sport]*model.SportProfile
}

// New builds and validates the built-in profiles. A profile failing
// validation aborts startup with ErrCorruptProfile.
func New() (*Registry, error) {
	profiles := map[model.Sport]*model.SportProfile{
		model.SportBadminton:  badminton(),
		model.SportTennis:     tennis(),
		model.SportBasketball: basketball(),
		model.SportGolf:       golf(),
		model.SportYoga:       yoga(),
		model.SportRunning:    running(),
	}
	for sport, prof := range profiles {
		if err := Validate(prof); err != nil {
			return nil, errors.Wrapf(err, "profile %q", sport)
		}
	}
	return &Registry{profiles: profiles}, nil
}

// Get returns the profile of a sport, or ErrUnsupportedSport.
func (r *Registry) Get(sport model.Sport) (*model.SportProfile, error) {
	prof, ok := r.profiles[sport]
	if !ok {
		return nil, errors.Wrapf(engine.ErrUnsupportedSport, "unknown sport %q", sport)
	}
	return prof, nil
}

// List returns all profiles sorted by sport identifier.
func (r *Registry) List() []*model.SportProfile {
	out := make([]*model.SportProfile, 0, len(r.profiles))
	for _, prof := range r.profiles {
		out = append(out, prof)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Sport < out[j].Sport
	})
	return out
}

const weightEpsilon = 1e-9

// Validate checks a profile's internal consistency. Dimension weights
// must sum to exactly 1.0 (within epsilon) and every referenced joint
// must exist with a sane optimal range.
func Validate(prof *model.SportProfile) error {
	if sum := prof.Weights.Sum(); sum < 1-weightEpsilon || sum > 1+weightEpsilon {
		return errors.Wrapf(engine.ErrCorruptProfile, "dimension weights sum to %v, want 1.0", sum)
	}
	if len(prof.Joints) == 0 {
		return errors.Wrap(engine.ErrCorruptProfile, "no joints defined")
	}
	for name, def := range prof.Joints {
		if def.OptimalMin < 0 || def.OptimalMax > 180 || def.OptimalMin >= def.OptimalMax {
			return errors.Wrapf(engine.ErrCorruptProfile, "joint %q has invalid optimal range [%v,%v]", name, def.OptimalMin, def.OptimalMax)
		}
	}
	if prof.CadencePeriod > 0 {
		if _, ok := prof.Joints[prof.PrimaryJoint]; !ok {
			return errors.Wrapf(engine.ErrCorruptProfile, "primary joint %q not defined", prof.PrimaryJoint)
		}
		if prof.CadenceTolerance <= 0 {
			return errors.Wrap(engine.ErrCorruptProfile, "cyclic profile without cadence tolerance")
		}
	}
	for _, pair := range prof.SymmetryPairs {
		for _, name := range pair {
			if _, ok := prof.Joints[name]; !ok {
				return errors.Wrapf(engine.ErrCorruptProfile, "symmetry pair references undefined joint %q", name)
			}
		}
	}
	if prof.JerkTolerance <= 0 || prof.ComTolerance <= 0 {
		return errors.Wrap(engine.ErrCorruptProfile, "missing fluidity or balance tolerance")
	}
	return nil
}
