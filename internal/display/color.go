// Package display implements the indexed-color rasterizer: the pixel
// surface, its rendering-state stack, the copperlist display program,
// and the RGBA present pipeline (spec §3, §4.2, §4.3).
package display

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// MaxPaletteSize is the largest number of colors a Palette can hold.
const MaxPaletteSize = 256

// Palette is an ordered sequence of up to 256 colors. Unused entries
// are filled with the last valid color so nearest-match stays a
// well-defined, pure function of its RGBA input (spec §3, §8).
type Palette struct {
	colors [MaxPaletteSize]Color
	size   int
}

// NewPalette builds a palette from an RGB(A) color list, capping at 256
// entries (spec §8 boundary: constructing from 300 triples stores the
// first 256 and reports size 256).
func NewPalette(colors []Color) *Palette {
	p := &Palette{}
	n := len(colors)
	if n > MaxPaletteSize {
		n = MaxPaletteSize
	}
	for i := 0; i < n; i++ {
		p.colors[i] = colors[i]
	}
	p.size = n
	fill := Color{0, 0, 0, 255}
	if n > 0 {
		fill = colors[n-1]
	}
	for i := n; i < MaxPaletteSize; i++ {
		p.colors[i] = fill
	}
	return p
}

// Size reports the effective (non-filler) palette length.
func (p *Palette) Size() int { return p.size }

// At returns the color stored at index (always defined, even past Size,
// thanks to the filler policy).
func (p *Palette) At(index uint8) Color { return p.colors[index] }

// Set assigns index unconditionally, including filler slots (used by
// the copperlist's COLOR instruction and by script palette edits).
func (p *Palette) Set(index uint8, c Color) {
	p.colors[index] = c
	if int(index) >= p.size {
		p.size = int(index) + 1
	}
}

// Clone returns an independent copy, used by the copperlist interpreter
// to build a per-frame working palette without mutating the display's
// persistent one.
func (p *Palette) Clone() *Palette {
	cp := *p
	return &cp
}

// NearestMatch returns the index of the palette entry closest to c by
// squared Euclidean RGB distance. It is a pure function of c and the
// palette contents: identical inputs always yield the same index
// (spec §8 invariant).
func (p *Palette) NearestMatch(c Color) uint8 {
	best := 0
	bestDist := int64(-1)
	for i := 0; i < p.size; i++ {
		pc := p.colors[i]
		dr := int64(pc.R) - int64(c.R)
		dg := int64(pc.G) - int64(c.G)
		db := int64(pc.B) - int64(c.B)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return uint8(best)
}
