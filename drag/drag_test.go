package drag

import (
	"math"
	"testing"
)

func assertEqual(t *testing.T, a, b, accuracy float64, name string) {
	t.Helper()
	if math.Abs(a-b) > accuracy {
		t.Errorf("Assertion %s failed (%f/%f)", name, a, b)
	}
}

func TestRegimeClassificationBoundaries(t *testing.T) {
	assertEqual(t, float64(ClassifyRegime(0.79)), float64(Subsonic), 0, "0.79")
	assertEqual(t, float64(ClassifyRegime(0.8)), float64(Transonic), 0, "0.8")
	assertEqual(t, float64(ClassifyRegime(1.2)), float64(Transonic), 0, "1.2")
	assertEqual(t, float64(ClassifyRegime(1.21)), float64(Supersonic), 0, "1.21")
}

func TestDragCoefficientInRange(t *testing.T) {
	for _, v := range []float64{500, 1000, 1500, 2000, 3000} {
		for _, m := range []Model{G1, G7} {
			cd := GetDragCoefficient(v, m, 1116)
			if !(cd > 0 && cd < 1) {
				t.Errorf("Cd out of (0,1) for v=%v model=%v: %v", v, m, cd)
			}
		}
	}
}

func TestG7LowerThanG1AtHighSupersonic(t *testing.T) {
	v := 1500.0
	cdG1 := GetDragCoefficient(v, G1, 1116)
	cdG7 := GetDragCoefficient(v, G7, 1116)
	if cdG7 >= cdG1 {
		t.Errorf("expected G7 Cd < G1 Cd at v=%v, got G1=%v G7=%v", v, cdG1, cdG7)
	}
}

func TestTableEndpointClamping(t *testing.T) {
	lowCd := GetDragCoefficient(0, G1, 1116)
	assertEqual(t, lowCd, 0.2629, 1e-9, "low clamp")
	highCd := GetDragCoefficient(1116*10, G1, 1116)
	assertEqual(t, highCd, 0.4988, 1e-9, "high clamp")
}

func TestAnalyzeDragFlagsTransonicInstability(t *testing.T) {
	a := AnalyzeDrag(0.975*1116, G7, 1116)
	if !a.IsUnstable {
		t.Errorf("expected G7 near Mach 0.975 to be flagged unstable, rate=%v", a.CdChangeRate)
	}
}

func TestCurveFitModelsProduceFiniteCd(t *testing.T) {
	for _, m := range []Model{G2, G5, G6, G8, GI, GL} {
		for _, mach := range []float64{0.3, 0.8, 1.0, 1.5, 3.0} {
			cd := GetDragCoefficient(mach*1116, m, 1116)
			if math.IsNaN(cd) || math.IsInf(cd, 0) {
				t.Errorf("model %v mach %v produced non-finite Cd", m, mach)
			}
		}
	}
}
