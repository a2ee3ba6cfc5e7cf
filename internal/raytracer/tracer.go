// Package raytracer assembles the metric, the disk, and a camera into
// the per-pixel photon trace and the parallel row-block renderer that
// drives it over a full image.
package raytracer

import (
	"math"

	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/disk"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/geodesic"
	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/metric"
)

// MaxSteps bounds the per-pixel integration loop; hitting it is a
// diagnostic-only event that must never occur on well-posed inputs.
const MaxSteps = 10000

const (
	horizonFactor = 1.001
	diskThetaTol  = 0.01
	escapeFactor  = 2.0
)

// Sentinel is the magenta pixel written when a ray exhausts MaxSteps
// without triggering horizon capture, disk intersection, or escape.
var Sentinel = [3]float64{1, 0, 1}

// Black is the pixel written on horizon capture.
var Black = [3]float64{0, 0, 0}

// Tracer traces individual photon geodesics from the camera to their
// terminating event. A Tracer is immutable after construction and
// safe to share across worker goroutines; HasDisk being false means
// the disk-intersection termination event never fires.
type Tracer struct {
	Metric     metric.Schwarzschild
	Disk       disk.Disk
	HasDisk    bool
	Camera     Camera
	Background CelestialBackground
}

func NewTracer(m metric.Schwarzschild, d disk.Disk, hasDisk bool, cam Camera) Tracer {
	return Tracer{Metric: m, Disk: d, HasDisk: hasDisk, Camera: cam}
}

// TracePixel integrates the ray launched through pixel (i, j) and
// returns the resulting color. It allocates its own Stepper so it may
// be called concurrently from different goroutines with no shared
// mutable state.
func (tr Tracer) TracePixel(i, j int) [3]float64 {
	alpha, beta := tr.Camera.ImpactParameters(i, j)
	x := geodesic.InitialState(tr.Metric, tr.Camera.ObserverRadius, tr.Camera.Inclination, alpha, beta)
	stepper := geodesic.NewStepper(tr.Metric)

	rs := tr.Metric.Rs
	horizonRadius := rs * horizonFactor
	escapeRadius := tr.Camera.ObserverRadius * escapeFactor

	lambda := 0.0
	for step := 0; step < MaxSteps; step++ {
		r := x[metric.IR]
		theta := x[metric.ITheta]
		phi := x[metric.IPhi]

		if r < horizonRadius {
			return Black
		}
		if tr.HasDisk && math.Abs(theta-math.Pi/2) < diskThetaTol && tr.Disk.InDisk(r) {
			return tr.Disk.ObservedIntensity(r, phi)
		}
		if r > escapeRadius {
			return tr.Background.Color(theta, phi)
		}

		x = stepper.Advance(x, lambda)
		if !x.IsValid() {
			return Sentinel
		}
		lambda += geodesic.StepSize(r, rs)
	}

	return Sentinel
}
