package raytracer

import "math"

// Camera holds the observer's fixed viewing geometry. It is built once
// per run and never mutated afterward; ObserverRadius is scaled into
// metres at construction, so constructing a second Camera from the
// same raw inputs is the only supported way to "change" one — scaling
// twice would double-scale the radius.
type Camera struct {
	ObserverRadius float64 // metres, already multiplied by r_s
	Inclination    float64 // theta_obs, radians
	FovH           float64 // radians
	FovV           float64 // radians, scaled by aspect ratio
	Width, Height  int
}

// NewCamera builds a Camera from run-configuration units: observer
// radius in units of r_s, inclination and horizontal field of view in
// degrees.
func NewCamera(rs, observerRadiusInRs, inclinationDeg, fovHDeg float64, width, height int) Camera {
	thetaObs := (90 - inclinationDeg) * math.Pi / 180
	fovH := fovHDeg * math.Pi / 180
	fovV := fovH * float64(height) / float64(width)

	return Camera{
		ObserverRadius: observerRadiusInRs * rs,
		Inclination:    thetaObs,
		FovH:           fovH,
		FovV:           fovV,
		Width:          width,
		Height:         height,
	}
}

// ImpactParameters maps a pixel (i, j) to the impact parameters
// (alpha, beta) of the ray launched through it.
func (c Camera) ImpactParameters(i, j int) (alpha, beta float64) {
	alpha = ((float64(i) - float64(c.Width)/2) / float64(c.Width)) * c.FovH * c.ObserverRadius
	beta = ((float64(j) - float64(c.Height)/2) / float64(c.Height)) * c.FovV * c.ObserverRadius
	return alpha, beta
}
