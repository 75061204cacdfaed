package solver

import (
	"math"

	"github.com/fieldglass/ballistics/atmosphere"
	"github.com/fieldglass/ballistics/coriolis"
	"github.com/fieldglass/ballistics/stability"
	"github.com/fieldglass/ballistics/units"
	"github.com/fieldglass/ballistics/wind"
)

const (
	maxIntegrationSteps = 100000
	integrationStepS    = 0.001
	defaultSampleYd     = 25.0
)

// ResolveAtmosphere fills the derived fields (speed of sound, air
// density) of an AtmosphericConditions. Pressure altitude and density
// altitude are not carried over, and humidity is not passed on.
func ResolveAtmosphere(a AtmosphericConditions) AtmosphericConditions {
	c := atmosphere.Calculate(atmosphere.Conditions{
		TemperatureF: a.TemperatureF,
		PressureInHg: a.PressureInHg,
		AltitudeFt:   a.AltitudeFt,
	})
	a.SpeedOfSoundFps = c.SpeedOfSoundFps
	a.DensityLbFt3 = c.DensityLbFt3
	return a
}

func validateInputs(rifle RifleConfig, ammo AmmoConfig, shot ShotParameters) error {
	if ammo.BallisticCoefficient <= 0 || !isFinite(ammo.BallisticCoefficient) {
		return invalidInput("ballistic coefficient must be positive and finite, got %v", ammo.BallisticCoefficient)
	}
	if ammo.MuzzleVelocityFps <= 0 || !isFinite(ammo.MuzzleVelocityFps) {
		return invalidInput("muzzle velocity must be positive and finite, got %v", ammo.MuzzleVelocityFps)
	}
	if shot.DistanceYd <= 0 {
		return invalidInput("shot distance must be positive, got %v", shot.DistanceYd)
	}
	if rifle.ZeroDistanceYd <= 0 {
		return invalidInput("zero distance must be positive, got %v", rifle.ZeroDistanceYd)
	}
	if math.Abs(shot.AngleDeg) >= 90 {
		return invalidInput("shot angle must satisfy |angle|<90, got %v", shot.AngleDeg)
	}
	return nil
}

func energyFtLbf(bulletWeightGrains, velocityFps float64) float64 {
	massSlugs := bulletWeightGrains / 7000 / gravityFtS2
	return 0.5 * massSlugs * velocityFps * velocityFps
}

func optimalGameWeightLb(bulletWeightGrains, velocityFps float64) float64 {
	return math.Pow(bulletWeightGrains, 2) * math.Pow(velocityFps, 3) * 1.5e-12
}

// CalculateTrajectory runs the zero-angle search and integrates the
// full trajectory out to shot.DistanceYd, sampling every 25 yards (plus
// a final point at exactly the target distance). It is a thin
// convenience wrapper over CalculateBallisticSolution for callers that
// only want the sampled points.
func CalculateTrajectory(rifle RifleConfig, ammo AmmoConfig, shot ShotParameters, atmo AtmosphericConditions) ([]TrajectoryPoint, error) {
	sol, err := CalculateBallisticSolution(rifle, ammo, shot, atmo, true)
	if err != nil {
		return nil, err
	}
	return sol.Trajectory, nil
}

// CalculateBallisticSolution runs the full solve: zero-angle search,
// trajectory integration, wind drift, optional spin drift, optional
// Coriolis, and angular-correction conversion.
func CalculateBallisticSolution(rifle RifleConfig, ammo AmmoConfig, shot ShotParameters, atmo AtmosphericConditions, includeTrajectory bool) (BallisticSolution, error) {
	if err := validateInputs(rifle, ammo, shot); err != nil {
		return BallisticSolution{}, err
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
	maxOrdinateIn := -math.MaxFloat64
	maxOrdinateYd := 0.0
	steps := 0

	for s.x < distanceFt && steps < maxIntegrationSteps {
		if s.x >= nextSampleFt {
			p := timePoint(s, ammo, timeS)
			points = append(points, p)
			if p.DropIn > maxOrdinateIn {
				maxOrdinateIn, maxOrdinateYd = p.DropIn, p.DistanceYd
			}
			nextSampleFt += defaultSampleYd * 3
		}

		next := rk4Step(s, integrationStepS, ammo.DragModel, bcEff, c, gEff)
		if !next.finite() {
			return BallisticSolution{}, integrationDiverged("non-finite state encountered at x=%.1fft", s.x)
		}
		speed := math.Hypot(next.vx, next.vy)
		if speed < 1 {
			break
		}
		dt := integrationStepS
		timeS += dt
		s = next
		steps++
	}

	if steps >= maxIntegrationSteps && s.x < distanceFt {
		return BallisticSolution{}, integrationDiverged("integration hit the %d-step safety cap before reaching target distance", maxIntegrationSteps)
	}

	finalPoint := timePoint(s, ammo, timeS)
	finalPoint.DistanceYd = shot.DistanceYd // clamp to the requested distance; drop is taken as-is from the overshot state
	points = append(points, finalPoint)
	if finalPoint.DropIn > maxOrdinateIn {
		maxOrdinateIn, maxOrdinateYd = finalPoint.DropIn, finalPoint.DistanceYd
	}

	windageTotalIn := wind.Drift(timeS, shot.WindSpeedMph, shot.WindDirectionDeg)

	for i := range points {
		frac := 0.0
		if shot.DistanceYd > 0 {
			frac = points[i].DistanceYd / shot.DistanceYd
		}
		points[i].WindageIn = windageTotalIn * frac
		elevMil, _ := units.InchesToCorrection(-points[i].DropIn, points[i].DistanceYd, units.MIL)
		windMil, _ := units.InchesToCorrection(-points[i].WindageIn, points[i].DistanceYd, units.MIL)
		points[i].ElevationMIL = elevMil
		points[i].WindageCorrMIL = windMil
	}

	sol := BallisticSolution{
		Rifle:         rifle,
		Ammo:          ammo,
		Shot:          shot,
		Atmo:          atmo,
		DropIn:        finalPoint.DropIn,
		WindageIn:     windageTotalIn,
		VelocityFps:   finalPoint.VelocityFps,
		EnergyFtLbf:   finalPoint.EnergyFtLbf,
		TimeOfFlightS: timeS,
		ZeroAngleRad:  thetaZero,
		MaxOrdinateIn: maxOrdinateIn,
		MaxOrdinateDistanceYd: maxOrdinateYd,
	}

	elevMil, _ := units.InchesToCorrection(-sol.DropIn, shot.DistanceYd, units.MIL)
	elevMoa, _ := units.InchesToCorrection(-sol.DropIn, shot.DistanceYd, units.MOA)
	windMil, _ := units.InchesToCorrection(-sol.WindageIn, shot.DistanceYd, units.MIL)
	windMoa, _ := units.InchesToCorrection(-sol.WindageIn, shot.DistanceYd, units.MOA)
	sol.ElevationMIL, sol.ElevationMOA = elevMil, elevMoa
	sol.WindageMIL, sol.WindageMOA = windMil, windMoa

	if rifle.Caliber != "" {
		diam, err := stability.GetBulletDiameter(rifle.Caliber)
		if err == nil {
			if n, twistErr := stability.ParseTwistRate(rifle.TwistRate); twistErr == nil {
				length := stability.EstimateBulletLength(ammo.BulletWeightGrains, diam)
				sg := stability.CalculateStabilityFactor(ammo.BulletWeightGrains, diam, length, n)
				sol.StabilityFactor = sg
				sol.HasSpinDrift = true
				sol.SpinDriftIn = stability.CalculateSpinDrift(sg, timeS, rifle.IsRightHandTwist)
				sol.SpinDriftMIL, _ = units.InchesToCorrection(-sol.SpinDriftIn, shot.DistanceYd, units.MIL)
				sol.SpinDriftMOA, _ = units.InchesToCorrection(-sol.SpinDriftIn, shot.DistanceYd, units.MOA)
			}
		}
	}

	if shot.HasLatitude {
		meanV := (ammo.MuzzleVelocityFps + finalPoint.VelocityFps) / 2
		cr := coriolis.Calculate(coriolis.Params{
			LatitudeDeg:     shot.LatitudeDeg,
			HasAzimuth:      shot.HasAzimuth,
			AzimuthDeg:      shot.AzimuthDeg,
			TimeOfFlightS:   timeS,
			MeanVelocityFps: meanV,
		})
		sol.HasCoriolisHorizontal = true
		sol.CoriolisHorizontalIn = cr.HorizontalInches
		sol.CoriolisHorizontalMIL, _ = units.InchesToCorrection(-sol.CoriolisHorizontalIn, shot.DistanceYd, units.MIL)
		sol.CoriolisHorizontalMOA, _ = units.InchesToCorrection(-sol.CoriolisHorizontalIn, shot.DistanceYd, units.MOA)
		if cr.HasVertical {
			sol.HasCoriolisVertical = true
			sol.CoriolisVerticalIn = cr.VerticalInches
			sol.CoriolisVerticalMIL, _ = units.InchesToCorrection(-sol.CoriolisVerticalIn, shot.DistanceYd, units.MIL)
			sol.CoriolisVerticalMOA, _ = units.InchesToCorrection(-sol.CoriolisVerticalIn, shot.DistanceYd, units.MOA)
		}
	}

	if includeTrajectory {
		sol.Trajectory = points
	}

	return sol, nil
}

func timePoint(s state, ammo AmmoConfig, timeS float64) TrajectoryPoint {
	v := math.Hypot(s.vx, s.vy)
	return TrajectoryPoint{
		DistanceYd:          s.x / 3,
		TimeS:               timeS,
		VelocityFps:         v,
		EnergyFtLbf:         energyFtLbf(ammo.BulletWeightGrains, v),
		DropIn:              s.y * 12,
		OptimalGameWeightLb: optimalGameWeightLb(ammo.BulletWeightGrains, v),
	}
}

// WindTableEntry is one row of a generated dope-card wind table.
type WindTableEntry struct {
	WindSpeedMph     float64
	WindDirectionDeg float64
	WindDriftIn      float64
	WindageMIL       float64
	WindageMOA       float64
}

// WindTableOptions configures GenerateWindTable.
type WindTableOptions struct {
	WindSpeedsMph    []float64
	WindDirectionDeg float64
}

// GenerateWindTable computes, for each requested wind speed, the
// resulting windage at distanceYd using the same solved trajectory's
// time of flight at zero wind.
func GenerateWindTable(rifle RifleConfig, ammo AmmoConfig, distanceYd float64, atmo AtmosphericConditions, opts WindTableOptions) ([]WindTableEntry, error) {
	baseShot := ShotParameters{DistanceYd: distanceYd}
	sol, err := CalculateBallisticSolution(rifle, ammo, baseShot, atmo, false)
	if err != nil {
		return nil, err
	}

	entries := make([]WindTableEntry, 0, len(opts.WindSpeedsMph))
	for _, speed := range opts.WindSpeedsMph {
		driftIn := wind.Drift(sol.TimeOfFlightS, speed, opts.WindDirectionDeg)
		mil, _ := units.InchesToCorrection(-driftIn, distanceYd, units.MIL)
		moa, _ := units.InchesToCorrection(-driftIn, distanceYd, units.MOA)
		entries = append(entries, WindTableEntry{
			WindSpeedMph:     speed,
			WindDirectionDeg: opts.WindDirectionDeg,
			WindDriftIn:      driftIn,
			WindageMIL:       mil,
			WindageMOA:       moa,
		})
	}
	return entries, nil
}
