package solver

import (
	"testing"

	"github.com/fieldglass/ballistics/wind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindSegmentsRequiresAtLeastOne(t *testing.T) {
	_, err := CalculateTrajectoryWithWindSegments(referenceRifle(), referenceAmmo(), ShotParameters{DistanceYd: 500}, isaAtmosphere(), nil)
	require.Error(t, err)
	var solverErr *Error
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, InvalidInput, solverErr.Kind)
}

func TestWindSegmentsAgreeWithConstantWindCase(t *testing.T) {
	rifle, ammo, atmo := referenceRifle(), referenceAmmo(), isaAtmosphere()
	shot := ShotParameters{DistanceYd: 500}

	flat, err := CalculateBallisticSolution(rifle, ammo, ShotParameters{DistanceYd: 500, WindSpeedMph: 10, WindDirectionDeg: 90}, atmo, false)
	require.NoError(t, err)

	segmented, err := CalculateTrajectoryWithWindSegments(rifle, ammo, shot, atmo, []wind.Segment{
		{UntilDistanceYd: 500, SpeedMph: 10, DirectionDeg: 90},
	})
	require.NoError(t, err)

	assert.InDelta(t, flat.WindageIn, segmented.WindageIn, 1.0)
}

func TestWindSegmentsSwitchPocketPastRidge(t *testing.T) {
	rifle, ammo, atmo := referenceRifle(), referenceAmmo(), isaAtmosphere()
	shot := ShotParameters{DistanceYd: 500}

	segmented, err := CalculateTrajectoryWithWindSegments(rifle, ammo, shot, atmo, []wind.Segment{
		{UntilDistanceYd: 250, SpeedMph: 0, DirectionDeg: 90},
		{UntilDistanceYd: 500, SpeedMph: 20, DirectionDeg: 90},
	})
	require.NoError(t, err)
	assert.Greater(t, segmented.WindageIn, 0.0)
	require.NotEmpty(t, segmented.Trajectory)
}
