// Package geodesic builds initial photon states and advances them
// along a Schwarzschild geodesic, handling the step-size adaptation
// and polar-coordinate reflection the raw RK4 stepper knows nothing
// about.
package geodesic

import (
	"math"

	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/dynamo"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/integrators"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/metric"
)

// BaseStep is h_0 in h = h_0 * sqrt(r/r_s): the far-field step size
// before radial scaling, in geometric units.
const BaseStep = 0.1

// InitialState constructs the 8-vector photon state launched inbound
// from an observer at (r, thetaObs) toward impact parameters (alpha,
// beta), per the camera-to-ray mapping. f = 1 - r_s/r must be
// positive; callers keep the observer strictly outside the horizon.
func InitialState(m metric.Schwarzschild, r, thetaObs, alpha, beta float64) dynamo.State {
	f := 1 - m.Rs/r
	sinTheta := math.Sin(thetaObs)

	ut := 1 / f
	uTheta := beta / r
	uPhi := alpha / (r * sinTheta)

	urSq := f * (f*ut*ut - r*r*uTheta*uTheta - r*r*sinTheta*sinTheta*uPhi*uPhi)
	ur := -math.Sqrt(math.Max(0, urSq))

	s := make(dynamo.State, metric.Dim)
	s[metric.IT] = 0
	s[metric.IR] = r
	s[metric.ITheta] = thetaObs
	s[metric.IPhi] = 0
	s[metric.IUt] = ut
	s[metric.IUr] = ur
	s[metric.IUTheta] = uTheta
	s[metric.IUPhi] = uPhi
	return s
}

// StepSize returns h_0 * sqrt(r/r_s): far-field steps are large, steps
// near the horizon shrink.
func StepSize(r, rs float64) float64 {
	return BaseStep * math.Sqrt(r/rs)
}

// ReflectPolar keeps theta within [0, pi] by reflecting across the
// pole, flipping u^theta's sign to preserve the geodesic. It is exact
// for the spherical coordinate system and is applied after every step.
func ReflectPolar(x dynamo.State) dynamo.State {
	theta := x[metric.ITheta]
	switch {
	case theta < 0:
		x[metric.ITheta] = -theta
		x[metric.IUTheta] = -x[metric.IUTheta]
	case theta > math.Pi:
		x[metric.ITheta] = 2*math.Pi - theta
		x[metric.IUTheta] = -x[metric.IUTheta]
	}
	return x
}

// Stepper advances a photon state through one RK4 step at the
// adaptive step size appropriate to its current radius, then applies
// the polar reflection. It holds no per-ray state beyond the RK4
// scratch buffers, so a single Stepper may be reused sequentially for
// many rays within one worker goroutine, but must not be shared
// across goroutines.
type Stepper struct {
	m   metric.Schwarzschild
	rk4 *integrators.RK4
}

func NewStepper(m metric.Schwarzschild) *Stepper {
	return &Stepper{m: m, rk4: integrators.NewRK4()}
}

// Advance returns the state one adaptive step beyond x.
func (s *Stepper) Advance(x dynamo.State, lambda float64) dynamo.State {
	h := StepSize(x[metric.IR], s.m.Rs)
	next := s.rk4.Step(s.m, x, nil, lambda, h)
	return ReflectPolar(next)
}
