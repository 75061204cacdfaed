package coriolis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalSymmetryAboutEquator(t *testing.T) {
	h1 := HorizontalDeflection(45, 1.65, 2075)
	h2 := HorizontalDeflection(-45, 1.65, 2075)
	assert.InDelta(t, h1, -h2, 1e-9)
}

func TestHorizontalInExpectedRangeForLongRangeFixture(t *testing.T) {
	h := HorizontalDeflection(45, 1.65, 2075)
	assert.Greater(t, h, 2.0)
	assert.Less(t, h, 10.0)
}

func TestVerticalAzimuthSymmetryAndPeriodicity(t *testing.T) {
	v90 := VerticalDeflection(45, 90, 1.65, 2075)
	v270 := VerticalDeflection(45, 270, 1.65, 2075)
	assert.InDelta(t, v90, -v270, 1e-9)

	vWrapped := VerticalDeflection(45, 90+360, 1.65, 2075)
	assert.InDelta(t, v90, vWrapped, 1e-9)

	assert.Greater(t, v90, 0.0)
	assert.Less(t, v270, 0.0)
}

func TestCalculateOmitsVerticalWithoutAzimuth(t *testing.T) {
	r := Calculate(Params{LatitudeDeg: 45, TimeOfFlightS: 1.65, MeanVelocityFps: 2075})
	assert.False(t, r.HasVertical)
	assert.NotZero(t, r.HorizontalInches)
}

func TestLatitudeClamped(t *testing.T) {
	h1 := HorizontalDeflection(120, 1.65, 2075)
	h2 := HorizontalDeflection(90, 1.65, 2075)
	assert.InDelta(t, h1, h2, 1e-9)
}
