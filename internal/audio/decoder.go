package audio

import "math"

// PCMDecoder streams a fixed, fully-buffered interleaved stereo
// float32 sample (spec §4.4 "Decoder ... bound to a VFS handle by the
// caller"): the simplest concrete Decoder a script-loaded blob resource
// can wrap without pulling in a codec library.
type PCMDecoder struct {
	Samples []float32 // interleaved L,R
	pos     int
}

func (d *PCMDecoder) Reset() error { d.pos = 0; return nil }

func (d *PCMDecoder) Generate(out []float32, frames int) (int, bool) {
	total := len(d.Samples) / 2
	remaining := total - d.pos
	if remaining < 0 {
		remaining = 0
	}
	n := frames
	if n > remaining {
		n = remaining
	}
	copy(out[:n*2], d.Samples[d.pos*2:(d.pos+n)*2])
	d.pos += n
	return n, d.pos >= total
}

// DecodePCMBytes interprets raw bytes as little-endian interleaved
// stereo float32 samples (the spec §4.1 VFS blob convention for raw
// audio assets).
func DecodePCMBytes(data []byte) []float32 {
	n := len(data) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		bits := uint32(data[i*4]) | uint32(data[i*4+1])<<8 | uint32(data[i*4+2])<<16 | uint32(data[i*4+3])<<24
		out[i] = math.Float32frombits(bits)
	}
	return out
}
