package registry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formsight/backend/internal/engine"
	"github.com/formsight/backend/internal/model"
)

func TestNewLoadsAllSports(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	sports := []model.Sport{
		model.SportBadminton,
		model.SportTennis,
		model.SportBasketball,
		model.SportGolf,
		model.SportYoga,
		model.SportRunning,
	}
	for _, sport := range sports {
		prof, err := reg.Get(sport)
		require.NoError(t, err, "sport %q", sport)
		assert.Equal(t, sport, prof.Sport)
		assert.InDelta(t, 1.0, prof.Weights.Sum(), 1e-9)
		assert.NotEmpty(t, prof.Joints)
		assert.NotEmpty(t, prof.DisplayName)
	}

	listed := reg.List()
	assert.Len(t, listed, len(sports))
	for i := 1; i < len(listed); i++ {
		assert.Less(t, string(listed[i-1].Sport), string(listed[i].Sport))
	}
}

func TestGetUnknownSport(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	_, err = reg.Get(model.Sport("curling"))
	assert.True(t, errors.Is(err, engine.ErrUnsupportedSport))
}

func TestValidateRejectsBadWeights(t *testing.T) {
	prof := badminton()
	prof.Weights.Timing = 0.5

	err := Validate(prof)
	assert.True(t, errors.Is(err, engine.ErrCorruptProfile))
}

func TestValidateRejectsInvalidRange(t *testing.T) {
	prof := tennis()
	def := prof.Joints[JointLeftElbow]
	def.OptimalMin, def.OptimalMax = 150, 90
	prof.Joints[JointLeftElbow] = def

	err := Validate(prof)
	assert.True(t, errors.Is(err, engine.ErrCorruptProfile))
}

func TestValidateRejectsMissingPrimaryJoint(t *testing.T) {
	prof := running()
	prof.PrimaryJoint = "left_ear"

	err := Validate(prof)
	assert.True(t, errors.Is(err, engine.ErrCorruptProfile))
}

func TestValidateAllowsAcyclicProfile(t *testing.T) {
	prof := yoga()
	require.Zero(t, prof.CadencePeriod)
	assert.NoError(t, Validate(prof))
}
