package solver

import (
	"math"

	"github.com/fieldglass/ballistics/wind"
)

// CalculateTrajectoryWithWindSegments is the multi-segment-wind
// counterpart to CalculateBallisticSolution: instead of one constant
// wind for the whole shot, the crosswind contribution is looked up per
// step from segments (by current downrange distance) and integrated
// along the path, the way a range day with a wind that changes past a
// ridgeline or tree line actually behaves. shot.WindSpeedMph and
// shot.WindDirectionDeg are ignored; segments is the sole wind input.
// Unlike CalculateBallisticSolution it does not compute the MIL/MOA
// corrections, spin drift, or Coriolis (those fields are left zero, as
// are each point's ElevationMIL and WindageCorrMIL), and it always
// returns the sampled trajectory.
func CalculateTrajectoryWithWindSegments(rifle RifleConfig, ammo AmmoConfig, shot ShotParameters, atmo AtmosphericConditions, segments []wind.Segment) (BallisticSolution, error) {
	if err := validateInputs(rifle, ammo, shot); err != nil {
		return BallisticSolution{}, err
	}
	if len(segments) == 0 {
		return BallisticSolution{}, invalidInput("at least one wind segment is required")
	}

	atmo = ResolveAtmosphere(atmo)
	c := atmo.SpeedOfSoundFps
	bcEff := effectiveBC(ammo.BallisticCoefficient, atmo.DensityLbFt3)

	sightHeightFt := rifle.SightHeightIn / 12
	zeroDistanceFt := rifle.ZeroDistanceYd * 3
	distanceFt := shot.DistanceYd * 3

	thetaZero, residualIn := findZeroAngle(ammo.MuzzleVelocityFps, sightHeightFt, zeroDistanceFt, ammo.DragModel, bcEff, c)
	if residualIn > zeroHardFailureIn {
		return BallisticSolution{}, notConverged("zero-angle search did not converge: residual %.3f in after %d iterations", residualIn, zeroMaxIterations)
	}

	gEff := gravityFtS2 * math.Cos(shot.AngleDeg*math.Pi/180)

	s := state{x: 0, y: -sightHeightFt, vx: ammo.MuzzleVelocityFps * math.Cos(thetaZero), vy: ammo.MuzzleVelocityFps * math.Sin(thetaZero)}

	var points []TrajectoryPoint
	nextSampleFt := 0.0
	timeS := 0.0
	windageIn := 0.0
	maxOrdinateIn := -math.MaxFloat64
	maxOrdinateYd := 0.0
	steps := 0

	for s.x < distanceFt && steps < maxIntegrationSteps {
		if s.x >= nextSampleFt {
			p := timePoint(s, ammo, timeS)
			p.WindageIn = windageIn
			points = append(points, p)
			if p.DropIn > maxOrdinateIn {
				maxOrdinateIn, maxOrdinateYd = p.DropIn, p.DistanceYd
			}
			nextSampleFt += defaultSampleYd * 3
		}

		seg := wind.AtDistance(segments, s.x/3)
		crosswind := wind.Decompose(seg.SpeedMph, seg.DirectionDeg).CrosswindFps

		next := rk4Step(s, integrationStepS, ammo.DragModel, bcEff, c, gEff)
		if !next.finite() {
			return BallisticSolution{}, integrationDiverged("non-finite state encountered at x=%.1fft", s.x)
		}
		if math.Hypot(next.vx, next.vy) < 1 {
			break
		}
		windageIn += crosswind * integrationStepS * 12
		timeS += integrationStepS
		s = next
		steps++
	}

	if steps >= maxIntegrationSteps && s.x < distanceFt {
		return BallisticSolution{}, integrationDiverged("integration hit the %d-step safety cap before reaching target distance", maxIntegrationSteps)
	}

	finalPoint := timePoint(s, ammo, timeS)
	finalPoint.DistanceYd = shot.DistanceYd // clamp to the requested distance; drop is taken as-is from the overshot state
	finalPoint.WindageIn = windageIn
	points = append(points, finalPoint)
	if finalPoint.DropIn > maxOrdinateIn {
		maxOrdinateIn, maxOrdinateYd = finalPoint.DropIn, finalPoint.DistanceYd
	}

	sol := BallisticSolution{
		Rifle:                 rifle,
		Ammo:                  ammo,
		Shot:                  shot,
		Atmo:                  atmo,
		DropIn:                finalPoint.DropIn,
		WindageIn:             windageIn,
		VelocityFps:           finalPoint.VelocityFps,
		EnergyFtLbf:           finalPoint.EnergyFtLbf,
		TimeOfFlightS:         timeS,
		ZeroAngleRad:          thetaZero,
		MaxOrdinateIn:         maxOrdinateIn,
		MaxOrdinateDistanceYd: maxOrdinateYd,
		Trajectory:            points,
	}
	return sol, nil
}
