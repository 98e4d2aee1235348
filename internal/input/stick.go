package input

import "math"

// Stick is an analog 2D axis pair normalized post-deadzone (spec §3).
type Stick struct {
	X, Y      float64
	Angle     float64
	Magnitude float64
}

// Deadzone holds the inner/outer radii used to rescale a raw stick
// reading (spec §4.5 step 3, §6 controller.{inner,outer}_deadzone).
type Deadzone struct {
	Inner, Outer float64
}

// apply computes a Stick from a raw (rawX, rawY) axis pair: magnitudes
// below Inner collapse to exactly zero (spec §8 boundary); the
// remaining range up to (1-Outer) is rescaled to [0,1], preserving
// angle.
func (d Deadzone) apply(rawX, rawY float64) Stick {
	mag := math.Hypot(rawX, rawY)
	angle := math.Atan2(rawY, rawX)

	if mag < d.Inner {
		return Stick{X: 0, Y: 0, Angle: angle, Magnitude: 0}
	}

	rng := 1 - d.Inner - d.Outer
	if rng <= 0 {
		rng = 1
	}
	scaled := (mag - d.Inner) / rng
	if scaled > 1 {
		scaled = 1
	}
	if scaled < 0 {
		scaled = 0
	}

	return Stick{
		X:         scaled * math.Cos(angle),
		Y:         scaled * math.Sin(angle),
		Angle:     angle,
		Magnitude: scaled,
	}
}

// applyScalar normalizes a single-axis trigger reading the same way a
// stick magnitude is normalized (spec §4.5 step 4).
func (d Deadzone) applyScalar(raw float64) float64 {
	if raw < 0 {
		raw = 0
	}
	if raw < d.Inner {
		return 0
	}
	rng := 1 - d.Inner - d.Outer
	if rng <= 0 {
		rng = 1
	}
	v := (raw - d.Inner) / rng
	if v > 1 {
		v = 1
	}
	return v
}
