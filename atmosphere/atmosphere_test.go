package atmosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressureAltitudeIdentityAtStandardPressure(t *testing.T) {
	for _, alt := range []float64{0, 1000, 5280, 9000} {
		assert.InDelta(t, alt, PressureAltitude(29.92, alt), 1e-9)
	}
}

func TestDensityAltitudeNearZeroAtISA(t *testing.T) {
	da := DensityAltitude(59, 29.92, 0)
	assert.InDelta(t, 0, da, 50)
}

func TestStandardAtmosphereReferenceValues(t *testing.T) {
	s := Standard()
	assert.InDelta(t, 0.0765, s.DensityLbFt3, 0.0005)
	assert.InDelta(t, 1116, s.SpeedOfSoundFps, 2)
}

func TestAirDensityDecreasesWithTemperature(t *testing.T) {
	warm := AirDensity(90, 29.92)
	cold := AirDensity(30, 29.92)
	assert.Less(t, warm, cold)
}
