package graphics

import (
	"testing"

	"github.com/retrograde-labs/pixelforge/internal/display"
)

func TestUniformBankCellCount(t *testing.T) {
	atlas := display.NewSurface(32, 16)
	bank := NewUniformBank(atlas, 8, 8)
	if got := bank.CellCount(); got != 8 {
		t.Fatalf("CellCount() = %d, want 8", got)
	}
}

func TestNilCellSelectsCellZero(t *testing.T) {
	atlas := display.NewSurface(16, 8)
	bank := NewUniformBank(atlas, 8, 8)
	if bank.Cell(-1) != bank.Cell(0) {
		t.Fatalf("negative cell id should resolve to cell 0")
	}
	if bank.Cell(99) != bank.Cell(0) {
		t.Fatalf("out-of-range cell id should resolve to cell 0")
	}
}

func TestBatchFlushEmptiesQueue(t *testing.T) {
	atlas := display.NewSurface(8, 8)
	atlas.Clear(2)
	bank := NewUniformBank(atlas, 8, 8)
	batch := NewBatch(bank)
	batch.Push(DrawRequest{CellID: 0, X: 0, Y: 0, ScaleX: 1, ScaleY: 1})
	target := display.NewSurface(8, 8)
	batch.Flush(target)
	if batch.Len() != 0 {
		t.Fatalf("Flush should empty the queue, got len=%d", batch.Len())
	}
}
