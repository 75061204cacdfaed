package solver

import (
	"math"

	"github.com/fieldglass/ballistics/drag"
)

const (
	zeroStepS          = 0.001
	zeroMaxIterations  = 50
	zeroToleranceIn    = 0.01
	zeroHardFailureIn  = 1.0 // NotConverged boundary per spec §7
)

// findZeroAngle solves for the launch angle (radians, relative to
// horizontal) such that the point-mass height at zeroDistanceFt equals
// zero (on the line of sight), using level-ground gravity. It always
// returns its best-effort angle plus the final residual error in
// inches; the caller decides whether that residual is acceptable.
func findZeroAngle(muzzleVelocityFps, sightHeightFt, zeroDistanceFt float64, m drag.Model, bcEff, c float64) (thetaRad, residualIn float64) {
	theta := math.Atan(sightHeightFt/zeroDistanceFt) + 0.01

	for i := 0; i < zeroMaxIterations; i++ {
		s := state{x: 0, y: -sightHeightFt, vx: muzzleVelocityFps * math.Cos(theta), vy: muzzleVelocityFps * math.Sin(theta)}

		for s.x < zeroDistanceFt {
			next := rk4Step(s, zeroStepS, m, bcEff, c, gravityFtS2)
			if !next.finite() {
				return theta, math.Abs(s.y * 12)
			}
			if math.Hypot(next.vx, next.vy) < 1 {
				break
			}
			s = next
		}

		errorIn := s.y * 12
		if math.Abs(errorIn) < zeroToleranceIn {
			return theta, math.Abs(errorIn)
		}
		theta -= 0.5 * math.Atan(errorIn/(zeroDistanceFt*12))
		residualIn = math.Abs(errorIn)
	}
	return theta, residualIn
}
