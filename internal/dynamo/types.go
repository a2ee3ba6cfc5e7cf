// Package dynamo provides the generic state-vector and ODE system
// primitives shared by the geodesic integrator.
//
// The package defines the fundamental interfaces for numerically
// integrating an autonomous first-order system dX/dλ = f(X):
//
//   - [State]: vector representing a point in phase space
//   - [System]: interface for the right-hand side of the ODE
//   - [Integrator]: numerical stepper interface
//
// Photon geodesics have no control input; [Control] stays in the
// signature so a [System] reads the same way the stepper calls it, but
// every implementation in this module returns ControlDim() == 0.
package dynamo

import "math"

// State is a point in phase space. It is a pure value: methods return a
// new State rather than mutating the receiver.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every component is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Control is a control input. Geodesic systems declare ControlDim() == 0
// and ignore it; it is kept so System satisfies one shape regardless of
// whether the underlying physics is actuated.
type Control []float64

// System is the right-hand side of dX/dλ = f(X, u, λ).
type System interface {
	Derive(x State, u Control, lambda float64) State
	StateDim() int
	ControlDim() int
}

// Integrator advances a System's state by one step of size h.
type Integrator interface {
	Step(dyn System, x State, u Control, lambda, h float64) State
}
