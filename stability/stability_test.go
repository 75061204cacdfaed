package stability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTwistRate(t *testing.T) {
	n, err := ParseTwistRate("1:10")
	require.NoError(t, err)
	assert.Equal(t, 10.0, n)

	n, err = ParseTwistRate("1:10.5")
	require.NoError(t, err)
	assert.InDelta(t, 10.5, n, 1e-9)

	_, err = ParseTwistRate("10:1")
	assert.Error(t, err)

	_, err = ParseTwistRate("garbage")
	assert.Error(t, err)
}

func TestGetBulletDiameterTableAndFallback(t *testing.T) {
	d, err := GetBulletDiameter(".308 Winchester")
	require.NoError(t, err)
	assert.InDelta(t, 0.308, d, 1e-9)

	d, err = GetBulletDiameter(".30")
	require.NoError(t, err)
	assert.InDelta(t, 0.30, d, 1e-9)

	_, err = GetBulletDiameter("not a caliber at all")
	assert.Error(t, err)
}

func TestStabilityFactorMatchesMillerFixture(t *testing.T) {
	// 168gr .308 bullet, 1.240in length, 1:10 twist - this formula gives SG ~2.36
	sg := CalculateStabilityFactor(168, 0.308, 1.240, 10)
	assert.Greater(t, sg, 1.0)
	assert.Less(t, sg, 2.5)
}

func TestSpinDriftSignFollowsTwist(t *testing.T) {
	sg := 1.5
	right := CalculateSpinDrift(sg, 1.65, true)
	left := CalculateSpinDrift(sg, 1.65, false)
	assert.Greater(t, right, 0.0)
	assert.InDelta(t, -right, left, 1e-9)
}

func TestSpinDriftCompleteScenario(t *testing.T) {
	res, err := CalculateSpinDriftComplete(SpinDriftInputs{
		WeightGrains: 175,
		Caliber:      ".308 Win",
		TwistInches:  10,
		TimeOfFlightS: 1.65,
		RightHand:    true,
	})
	require.NoError(t, err)
	assert.Greater(t, res.SpinDriftInches, 3.0)
	assert.Less(t, res.SpinDriftInches, 25.0)
}

func TestAeroJumpDirection(t *testing.T) {
	res := CalculateAeroJump(AeroJumpParams{
		MuzzleVelocityFps: 2700,
		CrosswindFps:      14.67,
		SG:                1.5,
		RightHand:         true,
	}, 500)
	assert.Equal(t, JumpUp, res.Direction)
	assert.Greater(t, res.VerticalOffsetIn, 0.0)
}
