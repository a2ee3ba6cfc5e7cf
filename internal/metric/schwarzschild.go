// Package metric implements the Schwarzschild spacetime: the metric's
// non-zero Christoffel symbols and the geodesic right-hand side they
// define. A Schwarzschild value is a dynamo.System, so the generic RK4
// stepper in internal/integrators advances photon states without
// knowing anything about general relativity.
package metric

import (
	"math"

	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/bhconst"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/dynamo"
)

// State index layout for the 8-dimensional photon world-line:
// (t, r, theta, phi, u^t, u^r, u^theta, u^phi).
const (
	IT = iota
	IR
	ITheta
	IPhi
	IUt
	IUr
	IUTheta
	IUPhi
	Dim
)

// Schwarzschild is the non-rotating vacuum solution around a black
// hole of Schwarzschild radius Rs. It is immutable after construction
// and safe to share across worker goroutines.
type Schwarzschild struct {
	Rs float64
}

func New(bh bhconst.BlackHole) Schwarzschild {
	return Schwarzschild{Rs: bh.SchwarzschildRadius}
}

func (s Schwarzschild) StateDim() int   { return Dim }
func (s Schwarzschild) ControlDim() int { return 0 }

// Christoffels evaluates the non-zero connection coefficients at
// (r, theta). Per the failure policy in the geodesic equation, every
// symbol that diverges at r <= r_s is returned as 0 instead: the
// metric signals nothing, it is the integrator's job to notice
// r <= r_s and terminate the ray.
type Christoffels struct {
	TTr         float64 // Gamma^t_tr
	Rtt         float64 // Gamma^r_tt
	Rrr         float64 // Gamma^r_rr
	RThetaTheta float64 // Gamma^r_thetatheta
	RPhiPhi     float64 // Gamma^r_phiphi
	ThetaRTheta float64 // Gamma^theta_rtheta
	ThetaPhiPhi float64 // Gamma^theta_phiphi
	PhiRPhi     float64 // Gamma^phi_rphi
	PhiThetaPhi float64 // Gamma^phi_thetaphi
}

func (s Schwarzschild) Christoffels(r, theta float64) Christoffels {
	if r <= s.Rs {
		return Christoffels{}
	}

	rs := s.Rs
	diff := r - rs
	sinTheta := math.Sin(theta)
	cosTheta := math.Cos(theta)

	return Christoffels{
		TTr:         rs / (2 * r * diff),
		Rtt:         rs * diff / (2 * r * r * r),
		Rrr:         -rs / (2 * r * diff),
		RThetaTheta: -diff,
		RPhiPhi:     -diff * sinTheta * sinTheta,
		ThetaRTheta: 1 / r,
		ThetaPhiPhi: -sinTheta * cosTheta,
		PhiRPhi:     1 / r,
		PhiThetaPhi: cosTheta / sinTheta,
	}
}

// Derive implements dynamo.System: it returns the 8-tuple
// (u^t, u^r, u^theta, u^phi, a^t, a^r, a^theta, a^phi) where
// a^mu = -Gamma^mu_{alpha beta} u^alpha u^beta, symmetric pairs doubled.
func (s Schwarzschild) Derive(x dynamo.State, u dynamo.Control, lambda float64) dynamo.State {
	r := x[IR]
	theta := x[ITheta]
	ut := x[IUt]
	ur := x[IUr]
	uTheta := x[IUTheta]
	uPhi := x[IUPhi]

	g := s.Christoffels(r, theta)

	at := -2 * g.TTr * ut * ur
	ar := -(g.Rtt*ut*ut + g.Rrr*ur*ur + g.RThetaTheta*uTheta*uTheta + g.RPhiPhi*uPhi*uPhi)
	aTheta := -(2*g.ThetaRTheta*ur*uTheta + g.ThetaPhiPhi*uPhi*uPhi)
	aPhi := -(2*g.PhiRPhi*ur*uPhi + 2*g.PhiThetaPhi*uTheta*uPhi)

	return dynamo.State{ut, ur, uTheta, uPhi, at, ar, aTheta, aPhi}
}

// NullResidual evaluates g_mu_nu u^mu u^nu for a photon state. It
// should be ~0 at construction; the integrator never re-projects onto
// it, so growth over a ray is a diagnostic quantity, not something the
// stepper enforces.
func (s Schwarzschild) NullResidual(x dynamo.State) float64 {
	r := x[IR]
	theta := x[ITheta]
	f := 1 - s.Rs/r
	ut := x[IUt]
	ur := x[IUr]
	uTheta := x[IUTheta]
	uPhi := x[IUPhi]
	sinTheta := math.Sin(theta)

	return -f*ut*ut + ur*ur/f + r*r*uTheta*uTheta + r*r*sinTheta*sinTheta*uPhi*uPhi
}
