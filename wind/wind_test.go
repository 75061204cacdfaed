package wind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeHeadwindAtZeroDegrees(t *testing.T) {
	c := Decompose(10, 0)
	assert.InDelta(t, 10*1.467, c.HeadwindFps, 1e-6)
	assert.InDelta(t, 0, c.CrosswindFps, 1e-6)
}

func TestDecomposeCrosswindAtNinetyDegrees(t *testing.T) {
	c := Decompose(10, 90)
	assert.InDelta(t, 10*1.467, c.CrosswindFps, 1e-6)
	assert.InDelta(t, 0, c.HeadwindFps, 1e-6)
}

func TestDriftMonotonicWithSpeed(t *testing.T) {
	prev := 0.0
	for _, mph := range []float64{0, 5, 10, 15, 20} {
		d := math.Abs(Drift(1.2, mph, 90))
		assert.GreaterOrEqual(t, d, prev)
		prev = d
	}
}

func TestDriftNegligibleHeadOn(t *testing.T) {
	cross := math.Abs(Drift(1.2, 10, 90))
	head := math.Abs(Drift(1.2, 10, 0))
	assert.Less(t, head, 0.1*cross)
}

func TestSegmentLookup(t *testing.T) {
	segs := []Segment{
		{UntilDistanceYd: 300, SpeedMph: 5, DirectionDeg: 90},
		{UntilDistanceYd: 1000, SpeedMph: 15, DirectionDeg: 270},
	}
	assert.Equal(t, 5.0, AtDistance(segs, 100).SpeedMph)
	assert.Equal(t, 15.0, AtDistance(segs, 500).SpeedMph)
	assert.Equal(t, 15.0, AtDistance(segs, 5000).SpeedMph)
}
