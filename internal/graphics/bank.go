// Package graphics holds the script-facing graphics façades (Bank,
// Batch, Font) that sit on top of the indexed-color surface model in
// internal/display (spec §3, §4.2, §9 "Bank→Atlas" ref-counted
// back-pointer pattern).
package graphics

import "github.com/retrograde-labs/pixelforge/internal/display"

// Bank is a Surface plus a cell addressing scheme: either a uniform
// grid or an explicit table of rectangles (spec §3). Cells are
// addressed by a non-negative integer; a negative id selects cell 0
// (the "nil cell" sentinel).
type Bank struct {
	Atlas *display.Surface
	cells []display.Rect
}

// NewUniformBank builds a Bank whose cells are a regular cellW×cellH
// grid tiling the atlas.
func NewUniformBank(atlas *display.Surface, cellW, cellH int) *Bank {
	b := &Bank{Atlas: atlas}
	cols := atlas.Width() / cellW
	rows := atlas.Height() / cellH
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			b.cells = append(b.cells, display.Rect{X: c * cellW, Y: r * cellH, W: cellW, H: cellH})
		}
	}
	return b
}

// NewExplicitBank builds a Bank from an explicit cell rectangle table,
// as decoded from the little-endian {x,y,w,h} uint32 packed format of
// spec §6.
func NewExplicitBank(atlas *display.Surface, cells []display.Rect) *Bank {
	return &Bank{Atlas: atlas, cells: cells}
}

// DecodeCellTable parses the packed little-endian uint32 {x,y,w,h}
// array format used for bank cell tables (spec §6).
func DecodeCellTable(data []byte) []display.Rect {
	const recordSize = 16
	n := len(data) / recordSize
	out := make([]display.Rect, n)
	for i := 0; i < n; i++ {
		off := i * recordSize
		out[i] = display.Rect{
			X: int(le32(data[off:])),
			Y: int(le32(data[off+4:])),
			W: int(le32(data[off+8:])),
			H: int(le32(data[off+12:])),
		}
	}
	return out
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// CellCount reports how many addressable cells this bank has.
func (b *Bank) CellCount() int { return len(b.cells) }

// Cell resolves a cell id to its source rectangle, clamping negative
// and out-of-range ids to cell 0 (the "nil cell" sentinel, spec §3).
func (b *Bank) Cell(id int) display.Rect {
	if len(b.cells) == 0 {
		return display.Rect{}
	}
	if id < 0 || id >= len(b.cells) {
		return b.cells[0]
	}
	return b.cells[id]
}
