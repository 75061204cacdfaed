package stability

import "math"

// CalculateSpinDrift returns the Litz empirical spin-drift estimate, in
// inches, for a gyroscopic stability factor SG and time of flight (s).
// Positive values are drift to the right (right-hand twist); pass
// rightHand=false for a left-hand-twist barrel to negate the sign.
func CalculateSpinDrift(sg, timeOfFlightS float64, rightHand bool) float64 {
	drift := 1.25 * (sg + 1.2) * math.Pow(timeOfFlightS, 1.83)
	if !rightHand {
		drift = -drift
	}
	return drift
}

// SpinDriftInputs bundles the parameters needed to resolve bullet
// dimensions, stability, and spin drift from a caliber name rather than
// from pre-measured bullet dimensions.
type SpinDriftInputs struct {
	WeightGrains   float64
	Caliber        string // used only if DiameterInches is zero
	DiameterInches float64
	LengthInches   float64 // optional; estimated from weight+diameter if zero
	TwistInches    float64
	TimeOfFlightS  float64
	RightHand      bool
}

// SpinDriftResult is the full composed spin-drift/stability output.
type SpinDriftResult struct {
	SpinDriftInches   float64
	SG                float64
	BulletLengthInches float64
	TwistInches       float64
	IsStable          bool
	IsIdeallyStable   bool
}

// CalculateSpinDriftComplete resolves bullet diameter (from caliber, if
// not given directly), estimates length if not supplied, computes SG,
// and returns the full spin-drift composition. It fails if the caliber
// cannot be resolved to a diameter.
func CalculateSpinDriftComplete(in SpinDriftInputs) (SpinDriftResult, error) {
	diameter := in.DiameterInches
	if diameter <= 0 {
		d, err := GetBulletDiameter(in.Caliber)
		if err != nil {
			return SpinDriftResult{}, err
		}
		diameter = d
	}

	length := in.LengthInches
	if length <= 0 {
		length = EstimateBulletLength(in.WeightGrains, diameter)
	}

	sg := CalculateStabilityFactor(in.WeightGrains, diameter, length, in.TwistInches)
	drift := CalculateSpinDrift(sg, in.TimeOfFlightS, in.RightHand)

	return SpinDriftResult{
		SpinDriftInches:    drift,
		SG:                 sg,
		BulletLengthInches: length,
		TwistInches:        in.TwistInches,
		IsStable:           sg > 1.0,
		IsIdeallyStable:    sg >= 1.5,
	}, nil
}
