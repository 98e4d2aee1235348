package generators

import "math"

// WaveKind names a waveform shape.
type WaveKind int

const (
	WaveSine WaveKind = iota
	WaveSquare
	WaveTriangle
	WaveSawtooth
	WaveRandom
)

// Wave samples a periodic waveform at a given phase in [0,1) scaled by
// amplitude (spec §4.6 generators.wave).
type Wave struct {
	Kind      WaveKind
	Amplitude float64
	Period    float64
	rng       *Noise
}

// NewWave creates a wave sampler with the given period in seconds. For
// WaveRandom, the period index floor(t/period) is fed through a noise
// field seeded from amplitude and period, so the same (amplitude,
// period) pair reproduces the same step sequence.
func NewWave(kind WaveKind, amplitude, period float64) *Wave {
	if period <= 0 {
		period = 1
	}
	w := &Wave{Kind: kind, Amplitude: amplitude, Period: period}
	if kind == WaveRandom {
		w.rng = NewNoise(NoiseCellular, int64(amplitude*1000+period*31))
	}
	return w
}

// At samples the waveform at time t seconds.
func (w *Wave) At(t float64) float64 {
	phase := math.Mod(t, w.Period) / w.Period
	if phase < 0 {
		phase += 1
	}
	switch w.Kind {
	case WaveSquare:
		if phase < 0.5 {
			return w.Amplitude
		}
		return -w.Amplitude
	case WaveTriangle:
		if phase < 0.5 {
			return w.Amplitude * (4*phase - 1)
		}
		return w.Amplitude * (3 - 4*phase)
	case WaveSawtooth:
		return w.Amplitude * (2*phase - 1)
	case WaveRandom:
		step := math.Floor(t / w.Period)
		return w.Amplitude * (2*w.rng.Generate(step, 0, 0) - 1)
	default:
		return w.Amplitude * math.Sin(2*math.Pi*phase)
	}
}
