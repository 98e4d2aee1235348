package generators

import (
	"math"
	"testing"
)

func TestNoiseDeterministicForSameSeed(t *testing.T) {
	a := NewNoise(NoisePerlin, 42)
	b := NewNoise(NoisePerlin, 42)
	if a.Generate(1.5, 2.5, 0) != b.Generate(1.5, 2.5, 0) {
		t.Fatalf("expected identical seeds to reproduce the same field")
	}
}

func TestNoiseDiffersForDifferentSeeds(t *testing.T) {
	a := NewNoise(NoisePerlin, 1)
	b := NewNoise(NoisePerlin, 2)
	if a.Generate(1.5, 2.5, 0) == b.Generate(1.5, 2.5, 0) {
		t.Fatalf("expected different seeds to (almost certainly) diverge")
	}
}

func TestTweenerReachesEndpointsAtBounds(t *testing.T) {
	tw := NewTweener(Linear, 2, 0, 10)
	if v := tw.Value(); v != 0 {
		t.Fatalf("expected start value 0, got %v", v)
	}
	tw.Advance(2)
	if v := tw.Value(); v != 10 {
		t.Fatalf("expected end value 10, got %v", v)
	}
	if !tw.Done() {
		t.Fatalf("expected tweener done at duration")
	}
}

func TestTweenerClampsPastDuration(t *testing.T) {
	tw := NewTweener(Linear, 1, 0, 5)
	tw.Advance(10)
	if v := tw.Value(); v != 5 {
		t.Fatalf("expected clamped value 5, got %v", v)
	}
}

func TestWaveSquareAlternates(t *testing.T) {
	w := NewWave(WaveSquare, 1, 1)
	if w.At(0.1) != 1 {
		t.Fatalf("expected +amplitude in first half of period")
	}
	if w.At(0.6) != -1 {
		t.Fatalf("expected -amplitude in second half of period")
	}
}

func TestWaveSineBounded(t *testing.T) {
	w := NewWave(WaveSine, 2, 1)
	for i := 0; i < 100; i++ {
		v := w.At(float64(i) * 0.01)
		if math.Abs(v) > 2.0001 {
			t.Fatalf("sine wave exceeded amplitude: %v", v)
		}
	}
}

func TestGridSetGetRoundTrip(t *testing.T) {
	g := NewGrid(4, 3, -1)
	if err := g.Set(2, 1, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := g.Get(2, 1)
	if err != nil || v != 7 {
		t.Fatalf("expected 7, got %v err=%v", v, err)
	}
}

func TestGridOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2, 0)
	if _, err := g.Get(5, 5); err == nil {
		t.Fatalf("expected error for out-of-bounds access")
	}
}

func TestGridFill(t *testing.T) {
	g := NewGrid(3, 3, 0)
	g.Fill(9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			v, _ := g.Get(col, row)
			if v != 9 {
				t.Fatalf("expected all cells filled with 9, got %v at (%d,%d)", v, col, row)
			}
		}
	}
}
