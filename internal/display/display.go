package display

// Display owns the screen surface, its palette, its display-level
// shifting map, and an optional copperlist program, and converts the
// surface to RGBA once per frame (spec §4.3).
type Display struct {
	Surface    *Surface
	Palette    *Palette
	Shifting   ShiftingMap
	Copperlist *Copperlist

	vram []Color // width*height RGBA staging buffer

	// ShakeOffsetX/Y is the per-frame integer screen-space offset
	// applied by the presenter for shake effects.
	ShakeOffsetX, ShakeOffsetY int
}

// NewDisplay creates a Display over a width×height surface with an
// identity display-level shifting map and the given starting palette.
func NewDisplay(width, height int, palette *Palette) *Display {
	return &Display{
		Surface:  NewSurface(width, height),
		Palette:  palette,
		Shifting: IdentityShiftingMap(),
		vram:     make([]Color, width*height),
	}
}

// VRAM returns the RGBA staging buffer produced by the last Convert.
func (d *Display) VRAM() []Color { return d.vram }

// Convert runs the copperlist (if any) per scanline and converts the
// indexed surface into the RGBA staging buffer, per the algorithm of
// spec §4.3: shifting is applied source-side by the copperlist's
// working shifting map, then the display's own shifting map is applied
// last. MODULO/OFFSET bend the row's horizontal read pointer: each
// output pixel x samples source column (x+state.offset) wrapped modulo
// the surface width, so OFFSET(n) shifts a row sideways and MODULO(n)
// makes that shift grow by n on every subsequent scanline.
func (d *Display) Convert() {
	w, h := d.Surface.Width(), d.Surface.Height()
	pix := d.Surface.Pixels()

	commit := func(y int, state rasterState) {
		rowStart := y * w
		for x := 0; x < w; x++ {
			sx := (x + state.offset) % w
			if sx < 0 {
				sx += w
			}
			idx := pix[rowStart+sx]
			idx = state.shifting[idx]
			idx = d.Shifting[idx]
			d.vram[rowStart+x] = state.palette.At(idx)
		}
	}

	if d.Copperlist == nil || len(d.Copperlist.Instructions) == 0 {
		state := rasterState{palette: d.Palette, shifting: IdentityShiftingMap()}
		for y := 0; y < h; y++ {
			commit(y, state)
		}
		return
	}

	initial := rasterState{palette: d.Palette.Clone(), shifting: IdentityShiftingMap()}
	d.Copperlist.run(h, initial, commit)
}
