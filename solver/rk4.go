package solver

import (
	"math"

	"github.com/fieldglass/ballistics/drag"
)

// gravityFtS2 is standard gravity, feet per second squared.
const gravityFtS2 = 32.174

// retardationK is the empirical scaling constant coupling drag
// coefficient, velocity, and air-density-adjusted BC into a
// deceleration. It is not independently derivable from the rest of the
// model; it must be held fixed at 3200 to reproduce reference outputs.
const retardationK = 3200.0

// standardDensityLbFt3 is the reference air density the published BC is
// adjusted against.
const standardDensityLbFt3 = 0.0765

// state is the RK4 state vector: downrange/vertical position (ft) and
// velocity (ft/s). It is never mutated in place; every step produces a
// new state value.
type state struct {
	x, y, vx, vy float64
}

func (s state) finite() bool {
	return !math.IsNaN(s.x) && !math.IsInf(s.x, 0) &&
		!math.IsNaN(s.y) && !math.IsInf(s.y, 0) &&
		!math.IsNaN(s.vx) && !math.IsInf(s.vx, 0) &&
		!math.IsNaN(s.vy) && !math.IsInf(s.vy, 0)
}

// effectiveBC adjusts a published BC for the actual air density,
// relative to the standard density the BC was measured against.
func effectiveBC(publishedBC, densityLbFt3 float64) float64 {
	if densityLbFt3 <= 0 {
		return publishedBC
	}
	return publishedBC * (standardDensityLbFt3 / densityLbFt3)
}

// retardation returns the deceleration magnitude along the velocity
// vector for a point-mass bullet at speed v (fps), under drag model m,
// with air-density-adjusted BC bcEff, at speed of sound c (fps). It
// returns the sentinel 0 instead of failing for v<=0, a non-positive
// BC, or non-finite input; the integration loops treat a speed below
// 1 fps as a termination condition.
func retardation(v float64, m drag.Model, bcEff, c float64) float64 {
	if v <= 0 || bcEff <= 0 || !isFinite(v) || !isFinite(bcEff) {
		return 0
	}
	cd := drag.GetDragCoefficient(v, m, c)
	return v * v * cd / (bcEff * retardationK)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func acceleration(vx, vy float64, m drag.Model, bcEff, c, gEff float64) (ax, ay float64) {
	v := math.Hypot(vx, vy)
	if v <= 0 {
		return 0, -gEff
	}
	r := retardation(v, m, bcEff, c)
	return -vx / v * r, -gEff - vy/v*r
}

// rk4Step advances s by dt under gravity gEff, drag model m, effective
// BC bcEff and speed of sound c, using a classic fourth-order
// Runge-Kutta step. If the current speed is below 1 fps the state is
// returned unchanged; callers treat this as a termination condition.
func rk4Step(s state, dt float64, m drag.Model, bcEff, c, gEff float64) state {
	v := math.Hypot(s.vx, s.vy)
	if v < 1 {
		return s
	}

	ax1, ay1 := acceleration(s.vx, s.vy, m, bcEff, c, gEff)

	vx2, vy2 := s.vx+ax1*dt/2, s.vy+ay1*dt/2
	ax2, ay2 := acceleration(vx2, vy2, m, bcEff, c, gEff)

	vx3, vy3 := s.vx+ax2*dt/2, s.vy+ay2*dt/2
	ax3, ay3 := acceleration(vx3, vy3, m, bcEff, c, gEff)

	vx4, vy4 := s.vx+ax3*dt, s.vy+ay3*dt
	ax4, ay4 := acceleration(vx4, vy4, m, bcEff, c, gEff)

	newVx := s.vx + (dt/6)*(ax1+2*ax2+2*ax3+ax4)
	newVy := s.vy + (dt/6)*(ay1+2*ay2+2*ay3+ay4)
	newX := s.x + (dt/6)*(s.vx+2*vx2+2*vx3+vx4)
	newY := s.y + (dt/6)*(s.vy+2*vy2+2*vy3+vy4)

	return state{x: newX, y: newY, vx: newVx, vy: newVy}
}
