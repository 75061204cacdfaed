// Package drag holds the G1/G7 tabulated drag functions and the
// curve-fit reference drag functions (G2, G5, G6, G8, GI, GL), plus the
// interpolation, regime classification, and subsonic BC-adjustment logic
// the solver needs to turn a published ballistic coefficient into an
// instantaneous drag coefficient at a given Mach number.
package drag

import "math"

// Model names a standard drag-function reference. G1 and G7 are the two
// the solver requires (spec); the rest are curve-fit reference functions
// carried over from the wider small-arms/artillery literature.
type Model int

const (
	G1 Model = iota
	G2
	G5
	G6
	G7
	G8
	GI
	GL
)

// Regime classifies a Mach number into the three aerodynamic regimes the
// solver cares about.
type Regime int

const (
	Subsonic Regime = iota
	Transonic
	Supersonic
)

func (r Regime) String() string {
	switch r {
	case Subsonic:
		return "subsonic"
	case Transonic:
		return "transonic"
	case Supersonic:
		return "supersonic"
	default:
		return "unknown"
	}
}

// referenceMach is used by GetSubsonicBCAdjustment as the "fully
// supersonic, table-faithful" reference point.
const referenceMach = 2.0

// ClassifyRegime returns the aerodynamic regime for a Mach number using
// the closed intervals: subsonic < 0.8, transonic in [0.8, 1.2],
// supersonic > 1.2.
func ClassifyRegime(mach float64) Regime {
	switch {
	case mach < 0.8:
		return Subsonic
	case mach <= 1.2:
		return Transonic
	default:
		return Supersonic
	}
}

// getDragFromTable linearly interpolates Cd at the given Mach number
// within a tabulated drag function, clamping to the endpoints outside
// the table's domain.
func getDragFromTable(mach float64, table []point) float64 {
	if mach <= table[0].Mach {
		return table[0].Cd
	}
	last := len(table) - 1
	if mach >= table[last].Mach {
		return table[last].Cd
	}
	for i := 0; i < last; i++ {
		lo, hi := table[i], table[i+1]
		if mach >= lo.Mach && mach <= hi.Mach {
			frac := (mach - lo.Mach) / (hi.Mach - lo.Mach)
			return lo.Cd + frac*(hi.Cd-lo.Cd)
		}
	}
	return table[last].Cd
}

// curveFit evaluates the teacher's polynomial curve-fit drag functions
// for the reference projectiles that are not carried as Mach/Cd tables.
func curveFit(model Model, mach float64) float64 {
	switch model {
	case G2:
		switch {
		case mach > 2.5:
			return 0.4465610 + mach*(-0.0958548+mach*0.00799645)
		case mach > 1.2:
			return 0.7016110 + mach*(-0.3075100+mach*0.05192560)
		case mach > 1.0:
			return -1.105010 + mach*(2.77195000-mach*1.26667000)
		case mach > 0.9:
			return -2.240370 + mach*2.63867000
		case mach >= 0.7:
			return 0.9099690 + mach*(-1.9017100+mach*1.21524000)
		default:
			return 0.2302760 + mach*(0.000210564-mach*0.1275050)
		}
	case G5:
		switch {
		case mach > 2.0:
			return 0.671388 + mach*(-0.185208+mach*0.0204508)
		case mach > 1.1:
			return 0.134374 + mach*(0.4378330-mach*0.1570190)
		case mach > 0.9:
			return -0.924258 + mach*1.24904
		case mach >= 0.6:
			return 0.654405 + mach*(-1.4275000+mach*0.998463)
		default:
			return 0.186386 + mach*(-0.0342136-mach*0.035691)
		}
	case G6:
		switch {
		case mach > 2.0:
			return 0.746228 + mach*(-0.255926+mach*0.0291726)
		case mach > 1.1:
			return 0.513638 + mach*(-0.015269-mach*0.0331221)
		case mach > 0.9:
			return -0.908802 + mach*1.25814
		case mach >= 0.6:
			return 0.366723 + mach*(-0.458435+mach*0.337906)
		default:
			return 0.264481 + mach*(-0.157237+mach*0.117441)
		}
	case G8:
		switch {
		case mach > 1.1:
			return 0.639096 + mach*(-0.197471+mach*0.0216221)
		case mach >= 0.925:
			return -12.9053 + mach*(24.9181-mach*11.6191)
		default:
			return 0.210589 + mach*(-0.00184895+mach*0.00211107)
		}
	case GI:
		switch {
		case mach > 1.65:
			return 0.845362 + mach*(-0.143989+mach*0.0113272)
		case mach > 1.2:
			return 0.630556 + mach*0.00701308
		case mach >= 0.7:
			return 0.531976 + mach*(-1.28079+mach*1.17628)
		default:
			return 0.2282
		}
	case GL:
		switch {
		case mach > 1.0:
			return 0.286629 + mach*(0.3588930-mach*0.0610598)
		case mach >= 0.8:
			return 1.59969 + mach*(-3.9465500+mach*2.831370)
		default:
			return 0.333118 + mach*(-0.498448+mach*0.474774)
		}
	default:
		return 0
	}
}

// cdAt returns Cd(mach) for any supported model, dispatching to the
// tabulated interpolation for G1/G7 and the polynomial fit otherwise.
func cdAt(model Model, mach float64) float64 {
	switch model {
	case G1:
		return getDragFromTable(mach, g1Table)
	case G7:
		return getDragFromTable(mach, g7Table)
	default:
		return curveFit(model, mach)
	}
}

// GetDragCoefficient returns Cd at the given velocity (fps) for the
// given drag model, using the supplied speed of sound (fps) to derive
// Mach. speedOfSoundFps defaults to 1116 (standard atmosphere) when the
// caller has none available.
func GetDragCoefficient(velocityFps float64, model Model, speedOfSoundFps float64) float64 {
	if speedOfSoundFps <= 0 {
		speedOfSoundFps = atmosphereStandardSpeedOfSound
	}
	return cdAt(model, velocityFps/speedOfSoundFps)
}

const atmosphereStandardSpeedOfSound = 1116.0

// GetSubsonicBCAdjustment returns Cd(referenceMach) / Cd(mach), used to
// correct a published BC (measured near the reference Mach) for use at a
// lower, subsonic Mach where the drag curve has departed from its
// supersonic shape. Returns 1.0 if Cd(mach) is non-positive (never
// happens on the tables/curve-fits above, but keeps the function total).
func GetSubsonicBCAdjustment(mach float64, model Model) float64 {
	cdMach := cdAt(model, mach)
	if cdMach <= 0 {
		return 1.0
	}
	return cdAt(model, referenceMach) / cdMach
}

// GetEffectiveBC applies the subsonic BC correction
// (GetSubsonicBCAdjustment) to a published BC at the given velocity. No
// air-density adjustment is made here.
func GetEffectiveBC(publishedBC, velocityFps float64, model Model, speedOfSoundFps float64) float64 {
	if speedOfSoundFps <= 0 {
		speedOfSoundFps = atmosphereStandardSpeedOfSound
	}
	mach := velocityFps / speedOfSoundFps
	return publishedBC * GetSubsonicBCAdjustment(mach, model)
}

// GetDragChangeRate returns a centered finite-difference estimate of
// dCd/dMach (not dCd/dVelocity) at the given velocity, using a step of
// 0.01 Mach. A per-Mach rate is used deliberately instead of the literal
// per-fps reading: dCd/dMach is O(1) across the transonic rise, while
// dCd/dVelocity is smaller by a factor of the speed of sound (~1116),
// which would make AnalyzeDrag's |rate|>0.05 instability threshold
// unreachable and IsUnstable permanently false.
func GetDragChangeRate(velocityFps float64, model Model, speedOfSoundFps float64) float64 {
	if speedOfSoundFps <= 0 {
		speedOfSoundFps = atmosphereStandardSpeedOfSound
	}
	mach := velocityFps / speedOfSoundFps
	delta := 0.01
	return (cdAt(model, mach+delta) - cdAt(model, mach-delta)) / (2 * delta)
}

// GetMaxDragMach scans the table for the Mach number of maximum Cd. Only
// meaningful for the tabulated models (G1, G7); for curve-fit models it
// scans a dense Mach sweep instead.
func GetMaxDragMach(model Model) float64 {
	switch model {
	case G1:
		return maxMachOf(g1Table)
	case G7:
		return maxMachOf(g7Table)
	default:
		bestMach, bestCd := 0.0, math.Inf(-1)
		for m := 0.0; m <= 5.0; m += 0.01 {
			cd := curveFit(model, m)
			if cd > bestCd {
				bestCd, bestMach = cd, m
			}
		}
		return bestMach
	}
}

func maxMachOf(table []point) float64 {
	bestMach, bestCd := table[0].Mach, table[0].Cd
	for _, p := range table {
		if p.Cd > bestCd {
			bestCd, bestMach = p.Cd, p.Mach
		}
	}
	return bestMach
}

// unstableChangeRateThreshold flags a shot as transonically unstable when
// the drag-change-rate magnitude exceeds this value.
const unstableChangeRateThreshold = 0.05

// Analysis is the result of AnalyzeDrag: a full drag-regime snapshot at
// one velocity.
type Analysis struct {
	Mach         float64
	Regime       Regime
	Cd           float64
	CdChangeRate float64
	BCAdjustment float64
	IsUnstable   bool
}

// AnalyzeDrag computes the full drag snapshot (Mach, regime, Cd, drag
// change rate, subsonic BC adjustment, transonic-instability flag) for a
// velocity under a given drag model.
func AnalyzeDrag(velocityFps float64, model Model, speedOfSoundFps float64) Analysis {
	if speedOfSoundFps <= 0 {
		speedOfSoundFps = atmosphereStandardSpeedOfSound
	}
	mach := velocityFps / speedOfSoundFps
	rate := GetDragChangeRate(velocityFps, model, speedOfSoundFps)
	return Analysis{
		Mach:         mach,
		Regime:       ClassifyRegime(mach),
		Cd:           cdAt(model, mach),
		CdChangeRate: rate,
		BCAdjustment: GetSubsonicBCAdjustment(mach, model),
		IsUnstable:   math.Abs(rate) > unstableChangeRateThreshold,
	}
}
