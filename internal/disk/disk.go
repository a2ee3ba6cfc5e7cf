// Package disk models the geometrically thin, optically thick
// accretion disk in the equatorial plane: its temperature profile,
// blackbody-to-RGB color mapping, and the relativistic corrections
// (gravitational redshift, Doppler beaming) applied to turn emitted
// color into observed intensity.
package disk

import (
	"math"

	"github.com/wilckeluiztiago-dotcom/blackhole-raytracer/internal/bhconst"
)

// Disk is a Shakura-Sunyaev thin disk around a black hole of mass
// massKg and Schwarzschild radius rs. It is immutable after
// construction and safe to share across worker goroutines.
type Disk struct {
	MassKg          float64
	Rs              float64
	InnerRadius     float64 // ISCO, 3*Rs for Schwarzschild
	OuterRadius     float64 // 500*Rs
	AccretionRate   float64 // Mdot, kg/s
	peakTemperature float64
}

// NewDisk derives the disk's geometry and accretion rate from the
// hole's mass and an Eddington accretion fraction. eddingtonFraction
// and efficiency must be positive; efficiency is fixed at 0.1 per the
// standard thin-disk radiative efficiency assumption.
func NewDisk(massKg, rs, eddingtonFraction float64) Disk {
	const efficiency = 0.1

	lEdd := 1.26e38 * (massKg / bhconst.SolarMassKg)
	mdot := eddingtonFraction * lEdd / (efficiency * bhconst.SpeedOfLight * bhconst.SpeedOfLight)

	innerRadius := 3 * rs
	d := Disk{
		MassKg:        massKg,
		Rs:            rs,
		InnerRadius:   innerRadius,
		OuterRadius:   500 * rs,
		AccretionRate: mdot,
	}
	d.peakTemperature = d.centralTemperature()
	return d
}

// centralTemperature is T_* = [3 G M Mdot / (8 pi sigma r_in^3)]^(1/4).
func (d Disk) centralTemperature() float64 {
	num := 3 * bhconst.GravConstant * d.MassKg * d.AccretionRate
	den := 8 * math.Pi * bhconst.StefanBoltzmann * d.InnerRadius * d.InnerRadius * d.InnerRadius
	return math.Pow(num/den, 0.25)
}

// InDisk reports whether r lies within the disk's radial annulus.
func (d Disk) InDisk(r float64) bool {
	return r >= d.InnerRadius && r <= d.OuterRadius
}

// Temperature returns T(r) = T_* (r/r_in)^(-3/4) [1 - sqrt(r_in/r)]^(1/4)
// for r in the annulus, and 0 outside it.
func (d Disk) Temperature(r float64) float64 {
	if !d.InDisk(r) {
		return 0
	}
	radialFactor := math.Pow(r/d.InnerRadius, -0.75)
	edgeFactor := math.Pow(1-math.Sqrt(d.InnerRadius/r), 0.25)
	return d.peakTemperature * radialFactor * edgeFactor
}

// Luminosity is the total disk luminosity eta*Mdot*c^2 with
// eta = 1 - sqrt(r_s/r_in), the radiative efficiency of accretion down
// to the inner edge.
func (d Disk) Luminosity() float64 {
	eta := 1 - math.Sqrt(d.Rs/d.InnerRadius)
	return eta * d.AccretionRate * bhconst.SpeedOfLight * bhconst.SpeedOfLight
}

// KeplerianSpeed is v_K(r) = sqrt(GM/r), the circular orbital speed at
// radius r.
func (d Disk) KeplerianSpeed(r float64) float64 {
	return math.Sqrt(bhconst.GravConstant * d.MassKg / r)
}

// RedshiftFactor is z(r) = sqrt(1 - r_s/r) for r > r_s, and 0 at or
// below the horizon.
func (d Disk) RedshiftFactor(r float64) float64 {
	if r <= d.Rs {
		return 0
	}
	return math.Sqrt(1 - d.Rs/r)
}

// DopplerFactor is D(r, phi) = 1 / (gamma (1 - beta cos(phi))) for the
// Keplerian orbital velocity at r, with phi the in-plane sight angle.
// beta = v_K/c directly, an approximation valid only near the
// equatorial plane; preserved as specified rather than corrected.
func (d Disk) DopplerFactor(r, phi float64) float64 {
	beta := d.KeplerianSpeed(r) / bhconst.SpeedOfLight
	gamma := 1 / math.Sqrt(1-beta*beta)
	return 1 / (gamma * (1 - beta*math.Cos(phi)))
}

// ObservedIntensity composes the disk's emitted blackbody color at r
// with the D^4 Doppler beaming and gravitational redshift, applied
// channel-wise.
func (d Disk) ObservedIntensity(r, phi float64) [3]float64 {
	temp := d.Temperature(r)
	emitted := BlackbodyRGB(temp)
	doppler := d.DopplerFactor(r, phi)
	redshift := d.RedshiftFactor(r)
	factor := doppler * redshift
	factor4 := factor * factor * factor * factor

	return [3]float64{
		clamp01(emitted[0] * factor4),
		clamp01(emitted[1] * factor4),
		clamp01(emitted[2] * factor4),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// BlackbodyRGB is a closed-form blackbody-to-RGB approximation in t =
// T/100, with separate piecewise branches per channel. Each channel is
// clamped to [0, 1].
func BlackbodyRGB(temperature float64) [3]float64 {
	if temperature <= 0 {
		return [3]float64{0, 0, 0}
	}

	t := temperature / 100

	var red float64
	if t <= 66 {
		red = 1
	} else {
		red = 1.292936186 * math.Pow(t-60, -0.133205)
	}

	var green float64
	if t <= 66 {
		green = 0.390081579*math.Log(t) - 0.631841444
	} else {
		green = 1.129890861 * math.Pow(t-60, -0.075515)
	}

	var blue float64
	switch {
	case t >= 66:
		blue = 1
	case t > 19:
		blue = 0.543206789*math.Log(t-10) - 1.19625409
	default:
		blue = 0
	}

	return [3]float64{clamp01(red), clamp01(green), clamp01(blue)}
}
