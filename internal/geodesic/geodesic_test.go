package geodesic

import (
	"math"
	"testing"

	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/bhconst"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/metric"
)

func testMetric() metric.Schwarzschild {
	return metric.New(bhconst.NewBlackHole(10.0))
}

func TestInitialStateSatisfiesNullConditionApproximately(t *testing.T) {
	m := testMetric()
	r := 100 * m.Rs
	thetaObs := math.Pi / 2

	x := InitialState(m, r, thetaObs, 0, 0)
	residual := m.NullResidual(x)
	scale := x[metric.IUt] * x[metric.IUt]

	if math.Abs(residual) > 1e-10*scale {
		t.Errorf("null residual = %v, want ~0 relative to scale %v", residual, scale)
	}
}

func TestInitialStateRadialShotHasNoAngularVelocity(t *testing.T) {
	m := testMetric()
	r := 100 * m.Rs
	x := InitialState(m, r, math.Pi/2, 0, 0)

	if x[metric.IUTheta] != 0 || x[metric.IUPhi] != 0 {
		t.Errorf("alpha=beta=0 should give zero angular velocity, got utheta=%v uphi=%v",
			x[metric.IUTheta], x[metric.IUPhi])
	}
	if x[metric.IUr] >= 0 {
		t.Errorf("radial shot should be inbound (u^r < 0), got %v", x[metric.IUr])
	}
}

func TestStepSizeShrinksNearHorizon(t *testing.T) {
	rs := 1.0
	far := StepSize(100*rs, rs)
	near := StepSize(1.01*rs, rs)

	if !(near < far) {
		t.Errorf("expected near-horizon step %v to be smaller than far-field step %v", near, far)
	}
}

func TestReflectPolarBelowZero(t *testing.T) {
	x := make([]float64, metric.Dim)
	x[metric.ITheta] = -0.3
	x[metric.IUTheta] = 0.5

	r := ReflectPolar(x)

	if r[metric.ITheta] != 0.3 {
		t.Errorf("theta = %v, want 0.3", r[metric.ITheta])
	}
	if r[metric.IUTheta] != -0.5 {
		t.Errorf("u^theta = %v, want -0.5 (flipped)", r[metric.IUTheta])
	}
}

func TestReflectPolarAbovePi(t *testing.T) {
	x := make([]float64, metric.Dim)
	x[metric.ITheta] = math.Pi + 0.3
	x[metric.IUTheta] = -0.2

	r := ReflectPolar(x)

	want := 2*math.Pi - (math.Pi + 0.3)
	if math.Abs(r[metric.ITheta]-want) > 1e-12 {
		t.Errorf("theta = %v, want %v", r[metric.ITheta], want)
	}
	if r[metric.IUTheta] != 0.2 {
		t.Errorf("u^theta = %v, want 0.2 (flipped)", r[metric.IUTheta])
	}
}

func TestReflectPolarWithinRangeIsUnchanged(t *testing.T) {
	x := make([]float64, metric.Dim)
	x[metric.ITheta] = math.Pi / 2
	x[metric.IUTheta] = 0.1

	r := ReflectPolar(x)
	if r[metric.ITheta] != math.Pi/2 || r[metric.IUTheta] != 0.1 {
		t.Errorf("in-range theta should pass through unchanged, got theta=%v utheta=%v",
			r[metric.ITheta], r[metric.IUTheta])
	}
}

func TestStepperAdvanceProducesValidState(t *testing.T) {
	m := testMetric()
	s := NewStepper(m)

	x := InitialState(m, 100*m.Rs, math.Pi/2, 0, 0)
	next := s.Advance(x, 0)

	if !next.IsValid() {
		t.Fatalf("Advance produced an invalid state: %v", next)
	}
	if next[metric.IR] >= x[metric.IR] {
		t.Errorf("radially inbound photon should have decreasing r: before=%v after=%v",
			x[metric.IR], next[metric.IR])
	}
}
