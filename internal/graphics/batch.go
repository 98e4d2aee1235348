package graphics

import (
	"math"

	"github.com/retrograde-labs/pixelforge/internal/display"
)

// DrawRequest is one queued sprite draw (spec §3).
type DrawRequest struct {
	CellID               int
	X, Y                 float64
	ScaleX, ScaleY        float64
	Rotation              float64 // radians
	AnchorX, AnchorY      float64 // 0..1, fraction of the cell
}

// Batch is a resizable queue of sprite draw requests bound to a Bank
// (spec §3). A Batch holds a shared reference to its Bank (spec §3
// ownership: Bank is reference-counted through the script VM).
type Batch struct {
	Bank     *Bank
	requests []DrawRequest
}

// NewBatch creates an empty batch over bank.
func NewBatch(bank *Bank) *Batch { return &Batch{Bank: bank} }

// Push enqueues one sprite draw request.
func (b *Batch) Push(req DrawRequest) { b.requests = append(b.requests, req) }

// Clear empties the queue without discarding capacity.
func (b *Batch) Clear() { b.requests = b.requests[:0] }

// Len reports the number of queued requests.
func (b *Batch) Len() int { return len(b.requests) }

// Flush draws every queued request onto target in FIFO order and
// empties the queue.
func (b *Batch) Flush(target *display.Surface) {
	for _, req := range b.requests {
		drawSprite(target, b.Bank, req)
	}
	b.Clear()
}

// drawSprite composites one cell of bank onto target at req's
// transform. Unlike XFormBlit (which maps a source rectangle onto a
// same-sized destination for raster effects), a sprite's destination
// footprint changes with scale and rotation, so this walks the
// destination bounding box and inverse-samples the source cell
// directly, skipping the transparent index like Blit does.
func drawSprite(target *display.Surface, bank *Bank, req DrawRequest) {
	rect := bank.Cell(req.CellID)
	sx, sy := req.ScaleX, req.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	anchorPxX := req.AnchorX * float64(rect.W)
	anchorPxY := req.AnchorY * float64(rect.H)

	sin, cos := math.Sincos(req.Rotation)
	halfW := (math.Abs(float64(rect.W)*sx*cos) + math.Abs(float64(rect.H)*sy*sin)) / 2
	halfH := (math.Abs(float64(rect.W)*sx*sin) + math.Abs(float64(rect.H)*sy*cos)) / 2

	originX := req.X - anchorPxX*sx*cos + anchorPxY*sy*sin
	originY := req.Y - anchorPxX*sx*sin - anchorPxY*sy*cos

	// Centre of the transformed cell: origin plus the rotated, scaled
	// half-extent vector.
	hx, hy := float64(rect.W)*sx/2, float64(rect.H)*sy/2
	centreX := originX + hx*cos - hy*sin
	centreY := originY + hx*sin + hy*cos

	minX, maxX := int(centreX-halfW-1), int(centreX+halfW+1)
	minY, maxY := int(centreY-halfH-1), int(centreY+halfH+1)

	tgtState := target.State()
	for ty := minY; ty <= maxY; ty++ {
		for tx := minX; tx <= maxX; tx++ {
			dx, dy := float64(tx)-originX, float64(ty)-originY
			// Inverse rotate+scale back into cell-local coordinates.
			localX := (dx*cos + dy*sin) / sx
			localY := (-dx*sin + dy*cos) / sy
			cx, cy := int(localX), int(localY)
			if cx < 0 || cy < 0 || cx >= rect.W || cy >= rect.H {
				continue
			}
			idx := bank.Atlas.Peek(rect.X+cx, rect.Y+cy)
			if tgtState.Transparent[idx] {
				continue
			}
			target.Poke(tx, ty, idx)
		}
	}
}
