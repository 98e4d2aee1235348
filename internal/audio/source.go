package audio

import "math"

// Kind names the streaming source flavor (spec §3): music, sample, or
// tracker module. The decoder behind each kind is an out-of-scope
// external collaborator (spec §1); Source only needs the Decoder
// contract below.
type Kind int

const (
	KindMusic Kind = iota
	KindSample
	KindModule
)

// Decoder is the streaming contract a codec backend must satisfy,
// bound to a VFS handle by the caller (spec §4.4). Generate writes up
// to frames stereo frames (interleaved L,R) starting at out[0] and
// returns how many frames it actually produced plus whether the stream
// has ended.
type Decoder interface {
	Reset() error
	Generate(out []float32, frames int) (written int, eof bool)
}

// Source is a streaming audio handle, jointly owned by the script
// object and (while tracked) the mixer (spec §3).
type Source struct {
	Kind    Kind
	decoder Decoder

	looped  bool
	group   int
	mix     Matrix2x2
	pan     float32 // -1..1
	balance float32 // -1..1
	gain    float32
	speed   float32

	scratch []float32
}

// NewSource wraps decoder as a streaming Source with neutral defaults.
func NewSource(kind Kind, decoder Decoder) *Source {
	return &Source{
		Kind:    kind,
		decoder: decoder,
		mix:     IdentityMatrix(),
		gain:    1,
		speed:   1,
	}
}

func (s *Source) Reset() error { return s.decoder.Reset() }

func (s *Source) SetLooped(looped bool)      { s.looped = looped }
func (s *Source) Looped() bool               { return s.looped }
func (s *Source) SetGroup(group int)         { s.group = group }
func (s *Source) Group() int                 { return s.group }
func (s *Source) SetMix(m Matrix2x2)         { s.mix = m }
func (s *Source) Mix() Matrix2x2             { return s.mix }

// SetGain clamps to [0, +inf): negative gain makes no physical sense.
func (s *Source) SetGain(gain float32) {
	if gain < 0 {
		gain = 0
	}
	s.gain = gain
}
func (s *Source) Gain() float32 { return s.gain }

// SetPan clamps to [-1, 1].
func (s *Source) SetPan(pan float32) { s.pan = clamp(pan, -1, 1) }
func (s *Source) Pan() float32       { return s.pan }

// SetBalance clamps to [-1, 1].
func (s *Source) SetBalance(balance float32) { s.balance = clamp(balance, -1, 1) }
func (s *Source) Balance() float32           { return s.balance }

// SetSpeed clamps to (0, +inf); zero or negative speed would stall or
// reverse decoding, which the streaming contract does not support.
func (s *Source) SetSpeed(speed float32) {
	if speed <= 0 {
		speed = 0.001
	}
	s.speed = speed
}
func (s *Source) Speed() float32 { return s.speed }

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// panMatrix returns the effective per-source routing, combining pan and
// balance into the source's own 2x2 before the group matrix is applied.
func (s *Source) panMatrix() Matrix2x2 {
	l := float32(1)
	r := float32(1)
	if s.pan < 0 {
		r = 1 + s.pan
	} else if s.pan > 0 {
		l = 1 - s.pan
	}
	bl := float32(1)
	br := float32(1)
	if s.balance < 0 {
		br = 1 + s.balance
	} else if s.balance > 0 {
		bl = 1 - s.balance
	}
	return Matrix2x2{
		{l * bl, 0},
		{0, r * br},
	}
}

// render decodes up to frames stereo frames into out (interleaved),
// applying gain, pan, and balance, and reports whether the source is
// exhausted and should be untracked (spec §4.4: "Sources that return
// end-of-stream when not looped are untracked").
func (s *Source) render(out []float32, frames int) (untrack bool) {
	if cap(s.scratch) < frames*2 {
		s.scratch = make([]float32, frames*2)
	}
	buf := s.scratch[:frames*2]
	for i := range buf {
		buf[i] = 0
	}

	n, eof := s.decoder.Generate(buf, frames)
	pm := s.panMatrix()
	for i := 0; i < n; i++ {
		l, r := buf[i*2], buf[i*2+1]
		out[i*2] += (l*pm[0][0] + r*pm[0][1]) * s.gain
		out[i*2+1] += (l*pm[1][0] + r*pm[1][1]) * s.gain
	}

	if eof {
		if s.looped {
			s.decoder.Reset()
			return false
		}
		return true
	}
	return false
}

// SineDecoder is a minimal Decoder useful for tests and as a default
// sound-effect generator when no codec-backed source is available.
type SineDecoder struct {
	SampleRate float64
	Freq       float64
	phase      float64
	Frames     int // total frames to produce, 0 = infinite
	produced   int
}

func (d *SineDecoder) Reset() error { d.phase = 0; d.produced = 0; return nil }

func (d *SineDecoder) Generate(out []float32, frames int) (int, bool) {
	remaining := frames
	if d.Frames > 0 {
		left := d.Frames - d.produced
		if left < remaining {
			remaining = left
		}
	}
	step := 2 * math.Pi * d.Freq / d.SampleRate
	for i := 0; i < remaining; i++ {
		v := float32(math.Sin(d.phase))
		out[i*2] = v
		out[i*2+1] = v
		d.phase += step
		d.produced++
	}
	eof := d.Frames > 0 && d.produced >= d.Frames
	return remaining, eof
}
