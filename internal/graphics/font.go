package graphics

import "github.com/retrograde-labs/pixelforge/internal/display"

// Font is a bitmap font: a Bank specialized with a glyph→cell map and
// optional per-glyph advance widths (kerning), rendered glyph-by-glyph
// through the same Bank/Batch blit primitives (spec SPEC_FULL §Feature
// Supplements, grounded on original_source's src/modules/font.c).
type Font struct {
	bank    *Bank
	glyphs  map[rune]int
	advance map[rune]int
	defaultAdvance int
}

// NewFont builds a Font over bank using glyphs (rune→cell id).
// defaultAdvance is the advance applied to runes with no mapped cell;
// mapped glyphs advance by their cell width unless SetAdvance overrides
// it.
func NewFont(bank *Bank, glyphs map[rune]int, defaultAdvance int) *Font {
	return &Font{bank: bank, glyphs: glyphs, advance: map[rune]int{}, defaultAdvance: defaultAdvance}
}

// SetAdvance overrides one glyph's advance width.
func (f *Font) SetAdvance(r rune, width int) { f.advance[r] = width }

// Write blits text onto target starting at (x,y), left to right,
// skipping glyphs with no mapped cell.
func (f *Font) Write(target *display.Surface, x, y int, text string) {
	cursor := x
	for _, r := range text {
		cellID, ok := f.glyphs[r]
		if !ok {
			cursor += f.defaultAdvance
			continue
		}
		rect := f.bank.Cell(cellID)
		display.Blit(target, display.Point2{X: cursor, Y: y}, f.bank.Atlas, rect)
		if w, ok := f.advance[r]; ok {
			cursor += w
		} else {
			cursor += rect.W
		}
	}
}

// Measure returns the pixel width text would occupy if written.
func (f *Font) Measure(text string) int {
	width := 0
	for _, r := range text {
		cellID, ok := f.glyphs[r]
		if !ok {
			width += f.defaultAdvance
			continue
		}
		if w, ok := f.advance[r]; ok {
			width += w
		} else {
			width += f.bank.Cell(cellID).W
		}
	}
	return width
}
