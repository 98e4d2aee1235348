package display

// Blit copies a source sub-rectangle into target at tgtPt, applying the
// source surface's shifting map and the target surface's transparency
// table (spec §4.2).
func Blit(target *Surface, tgtPt Point2, source *Surface, srcRect Rect) {
	srcState := source.State()
	tgtState := target.State()
	for y := 0; y < srcRect.H; y++ {
		sy := srcRect.Y + y
		ty := tgtPt.Y + y
		if sy < 0 || sy >= source.height {
			continue
		}
		for x := 0; x < srcRect.W; x++ {
			sx := srcRect.X + x
			tx := tgtPt.X + x
			if sx < 0 || sx >= source.width {
				continue
			}
			idx := srcState.Shifting[source.Peek(sx, sy)]
			if tgtState.Transparent[idx] {
				continue
			}
			target.Poke(tx, ty, idx)
		}
	}
}

// Copy blits without shifting or transparency — a raw rectangle copy.
func Copy(target *Surface, tgtPt Point2, source *Surface, srcRect Rect) {
	for y := 0; y < srcRect.H; y++ {
		sy := srcRect.Y + y
		ty := tgtPt.Y + y
		if sy < 0 || sy >= source.height {
			continue
		}
		for x := 0; x < srcRect.W; x++ {
			sx := srcRect.X + x
			tx := tgtPt.X + x
			if sx < 0 || sx >= source.width {
				continue
			}
			target.Poke(tx, ty, source.Peek(sx, sy))
		}
	}
}

// Tile blits with the source sampled modulo (srcRect.W, srcRect.H) from
// offset, wrapping the source rectangle as a repeating pattern.
func Tile(target *Surface, tgtPt Point2, source *Surface, srcRect Rect, offset Point2) {
	srcState := source.State()
	tgtState := target.State()
	for y := 0; y < srcRect.H; y++ {
		ty := tgtPt.Y + y
		sy := srcRect.Y + mod(y+offset.Y, srcRect.H)
		if sy < 0 || sy >= source.height {
			continue
		}
		for x := 0; x < srcRect.W; x++ {
			tx := tgtPt.X + x
			sx := srcRect.X + mod(x+offset.X, srcRect.W)
			if sx < 0 || sx >= source.width {
				continue
			}
			idx := srcState.Shifting[source.Peek(sx, sy)]
			if tgtState.Transparent[idx] {
				continue
			}
			target.Poke(tx, ty, idx)
		}
	}
}

func mod(a, n int) int {
	if n == 0 {
		return 0
	}
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// WrapMode selects how XForm samples outside [0, srcRect) on each axis.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapEdge
	WrapBorder
	WrapNone
)

// XForm is an affine per-scanline transform with eight registers and a
// wrap mode, plus an optional per-output-row register override table
// (spec §3).
type XForm struct {
	H, V             float64
	A, B, C, D       float64
	X, Y             float64
	Wrap             WrapMode
	BorderIndex      uint8
	ScanlineOverride map[int]XForm // keyed by output y
}

// XFormBlit samples source through xform's affine registers into
// target starting at tgtPt, one output scanline at a time, honoring the
// wrap mode and any per-scanline register table (spec §4.2).
func XFormBlit(xf XForm, target *Surface, tgtPt Point2, source *Surface, srcRect Rect) {
	srcState := source.State()
	tgtState := target.State()
	for row := 0; row < srcRect.H; row++ {
		ty := tgtPt.Y + row
		reg := xf
		if xf.ScanlineOverride != nil {
			if o, ok := xf.ScanlineOverride[ty]; ok {
				reg = o
			}
		}
		for col := 0; col < srcRect.W; col++ {
			tx := tgtPt.X + col
			u := reg.A*float64(col) + reg.B*float64(row) + reg.X
			v := reg.C*float64(col) + reg.D*float64(row) + reg.Y

			sx, sy, ok := sampleWrapped(u, v, srcRect, reg.Wrap)
			if !ok {
				if reg.Wrap == WrapBorder {
					if !tgtState.Transparent[reg.BorderIndex] {
						target.Poke(tx, ty, reg.BorderIndex)
					}
				}
				continue
			}
			if sx < 0 || sx >= source.width || sy < 0 || sy >= source.height {
				continue
			}
			idx := srcState.Shifting[source.Peek(sx, sy)]
			if tgtState.Transparent[idx] {
				continue
			}
			target.Poke(tx, ty, idx)
		}
	}
}

func sampleWrapped(u, v float64, rect Rect, wrap WrapMode) (int, int, bool) {
	ix, iy := int(u), int(v)
	switch wrap {
	case WrapRepeat:
		return rect.X + mod(ix, rect.W), rect.Y + mod(iy, rect.H), true
	case WrapEdge:
		if ix < 0 {
			ix = 0
		} else if ix >= rect.W {
			ix = rect.W - 1
		}
		if iy < 0 {
			iy = 0
		} else if iy >= rect.H {
			iy = rect.H - 1
		}
		return rect.X + ix, rect.Y + iy, true
	case WrapBorder:
		if ix < 0 || ix >= rect.W || iy < 0 || iy >= rect.H {
			return 0, 0, false
		}
		return rect.X + ix, rect.Y + iy, true
	default: // WrapNone
		if ix < 0 || ix >= rect.W || iy < 0 || iy >= rect.H {
			return 0, 0, false
		}
		return rect.X + ix, rect.Y + iy, true
	}
}

// Comparator names a stencil-test predicate (spec §4.2).
type Comparator int

const (
	CompareNever Comparator = iota
	CompareLess
	CompareLessEqual
	CompareGreater
	CompareGreaterEqual
	CompareEqual
	CompareNotEqual
	CompareAlways
)

func (c Comparator) eval(a, b uint8) bool {
	switch c {
	case CompareNever:
		return false
	case CompareLess:
		return a < b
	case CompareLessEqual:
		return a <= b
	case CompareGreater:
		return a > b
	case CompareGreaterEqual:
		return a >= b
	case CompareEqual:
		return a == b
	case CompareNotEqual:
		return a != b
	case CompareAlways:
		return true
	}
	return false
}

// Stencil copies a source pixel to target only where
// comparator(mask[targetPixel], threshold) holds.
func Stencil(target *Surface, tgtPt Point2, source *Surface, srcRect Rect, mask *Surface, comparator Comparator, threshold uint8) {
	for y := 0; y < srcRect.H; y++ {
		sy := srcRect.Y + y
		ty := tgtPt.Y + y
		for x := 0; x < srcRect.W; x++ {
			sx := srcRect.X + x
			tx := tgtPt.X + x
			if sx < 0 || sx >= source.width || sy < 0 || sy >= source.height {
				continue
			}
			maskPixel := mask.Peek(tx, ty)
			if !comparator.eval(maskPixel, threshold) {
				continue
			}
			target.Poke(tx, ty, source.Peek(sx, sy))
		}
	}
}

// BlendFunc names a component-wise combine function evaluated through
// the palette's RGB (spec §4.2).
type BlendFunc int

const (
	BlendReplace BlendFunc = iota
	BlendAdd
	BlendAddClamped
	BlendSubtract
	BlendSubtractClamped
	BlendReverseSubtract
	BlendReverseSubtractClamped
	BlendMultiply
	BlendMultiplyClamped
	BlendMin
	BlendMax
)

func combine(fn BlendFunc, dst, src uint8) uint8 {
	d, s := int(dst), int(src)
	var v int
	switch fn {
	case BlendReplace:
		v = s
	case BlendAdd, BlendAddClamped:
		v = d + s
	case BlendSubtract, BlendSubtractClamped:
		v = d - s
	case BlendReverseSubtract, BlendReverseSubtractClamped:
		v = s - d
	case BlendMultiply, BlendMultiplyClamped:
		v = (d * s) / 255
	case BlendMin:
		v = min(d, s)
	case BlendMax:
		v = max(d, s)
	default:
		v = s
	}
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Blend combines source pixels into target through the palette's RGB
// channels using fn, writing back the nearest palette match.
func Blend(target *Surface, tgtPt Point2, source *Surface, srcRect Rect, palette *Palette, fn BlendFunc) {
	for y := 0; y < srcRect.H; y++ {
		sy := srcRect.Y + y
		ty := tgtPt.Y + y
		for x := 0; x < srcRect.W; x++ {
			sx := srcRect.X + x
			tx := tgtPt.X + x
			if sx < 0 || sx >= source.width || sy < 0 || sy >= source.height {
				continue
			}
			srcColor := palette.At(source.Peek(sx, sy))
			dstColor := palette.At(target.Peek(tx, ty))
			blended := Color{
				R: combine(fn, dstColor.R, srcColor.R),
				G: combine(fn, dstColor.G, srcColor.G),
				B: combine(fn, dstColor.B, srcColor.B),
				A: 255,
			}
			target.Poke(tx, ty, palette.NearestMatch(blended))
		}
	}
}

// Process invokes fn(x,y,from,to) for every source pixel and writes its
// result into target at the matching destination position.
func Process(target *Surface, tgtPt Point2, source *Surface, srcRect Rect, fn func(x, y int, from, to uint8) uint8) {
	for y := 0; y < srcRect.H; y++ {
		sy := srcRect.Y + y
		ty := tgtPt.Y + y
		if sy < 0 || sy >= source.height {
			continue
		}
		for x := 0; x < srcRect.W; x++ {
			sx := srcRect.X + x
			tx := tgtPt.X + x
			if sx < 0 || sx >= source.width {
				continue
			}
			from := source.Peek(sx, sy)
			to := target.Peek(tx, ty)
			target.Poke(tx, ty, fn(x, y, from, to))
		}
	}
}
