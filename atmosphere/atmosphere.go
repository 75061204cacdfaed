// Package atmosphere computes pressure altitude, density altitude, speed
// of sound, and air density from station temperature, pressure and
// altitude, following the dry-air ideal-gas approximation used throughout
// the core.
package atmosphere

import "math"

// Standard sea-level reference values.
const (
	StandardTemperatureF = 59.0
	StandardPressureInHg = 29.92
	StandardDensityLbFt3 = 0.0765
	StandardSpeedOfSound = 1116.0
)

// Conditions describes the atmosphere at the firing point, plus the
// fields derived from it by Calculate.
type Conditions struct {
	TemperatureF float64
	PressureInHg float64
	AltitudeFt   float64
	HumidityPct  float64 // optional, 0 if unset; unused by AirDensity (documented limitation)

	PressureAltitudeFt float64
	DensityAltitudeFt  float64
	SpeedOfSoundFps    float64
	DensityLbFt3       float64
}

// PressureAltitude returns the pressure altitude in feet for a station
// pressure P (inHg) at station altitude alt (feet).
func PressureAltitude(pressureInHg, altitudeFt float64) float64 {
	return altitudeFt + (29.92-pressureInHg)*1000
}

// DensityAltitude returns the density altitude in feet.
func DensityAltitude(temperatureF, pressureInHg, altitudeFt float64) float64 {
	pa := PressureAltitude(pressureInHg, altitudeFt)
	return pa + 120*(temperatureF-(59-0.00356*pa))
}

// SpeedOfSound returns the speed of sound in fps for a given temperature
// in degrees Fahrenheit.
func SpeedOfSound(temperatureF float64) float64 {
	return 49.02 * math.Sqrt(temperatureF+459.67)
}

// AirDensity returns the dry-air density in lb/ft^3 for the given
// temperature (F) and station pressure (inHg). Humidity is not modeled;
// see spec for the documented limitation.
func AirDensity(temperatureF, pressureInHg float64) float64 {
	return (pressureInHg * 0.491154 * 144) / (53.352 * (temperatureF + 459.67))
}

// Calculate resolves the derived fields on a copy of c and returns the
// fully-resolved Conditions; the caller's value is not modified.
func Calculate(c Conditions) Conditions {
	c.PressureAltitudeFt = PressureAltitude(c.PressureInHg, c.AltitudeFt)
	c.DensityAltitudeFt = DensityAltitude(c.TemperatureF, c.PressureInHg, c.AltitudeFt)
	c.SpeedOfSoundFps = SpeedOfSound(c.TemperatureF)
	c.DensityLbFt3 = AirDensity(c.TemperatureF, c.PressureInHg)
	return c
}

// Standard returns the ICAO/US-standard sea-level atmosphere, fully
// resolved.
func Standard() Conditions {
	return Calculate(Conditions{
		TemperatureF: StandardTemperatureF,
		PressureInHg: StandardPressureInHg,
		AltitudeFt:   0,
	})
}
