// Package integrators provides the numerical stepper used to advance a
// photon's state vector along its geodesic.
package integrators

import "github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/dynamo"

// RK4 is a classical fourth-order Runge-Kutta stepper. It reuses its
// k1..k4 and scratch buffers across calls of the same dimension; each
// Step still allocates the State it returns.
type RK4 struct {
	k1, k2, k3, k4 dynamo.State
	scratch        dynamo.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(dynamo.State, n)
		r.k2 = make(dynamo.State, n)
		r.k3 = make(dynamo.State, n)
		r.k4 = make(dynamo.State, n)
		r.scratch = make(dynamo.State, n)
	}
}

// Step advances x by one affine-parameter interval h, evaluating dyn at
// the midpoint and endpoint per the standard RK4 tableau.
func (r *RK4) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, lambda, h float64) dynamo.State {
	n := len(x)
	r.ensureScratch(n)

	k1 := dyn.Derive(x, u, lambda)
	copy(r.k1, k1)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*0.5*r.k1[i]
	}
	k2 := dyn.Derive(r.scratch, u, lambda+h*0.5)
	copy(r.k2, k2)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*0.5*r.k2[i]
	}
	k3 := dyn.Derive(r.scratch, u, lambda+h*0.5)
	copy(r.k3, k3)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*r.k3[i]
	}
	k4 := dyn.Derive(r.scratch, u, lambda+h)
	copy(r.k4, k4)

	result := make(dynamo.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + h6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}
