package display

import "testing"

func grayscalePalette() *Palette {
	colors := make([]Color, 256)
	for i := range colors {
		colors[i] = Color{uint8(i), uint8(i), uint8(i), 255}
	}
	return NewPalette(colors)
}

func TestClearThenConvertSetsPixel(t *testing.T) {
	d := NewDisplay(320, 200, grayscalePalette())
	d.Surface.Clear(5)
	d.Convert()

	got := d.VRAM()[0]
	want := d.Palette.At(5)
	if got != want {
		t.Fatalf("upper-left pixel = %+v, want %+v", got, want)
	}
}

func TestBlitWithTransparencyOnlyChangesOnePixel(t *testing.T) {
	source := NewSurface(16, 16)
	source.Clear(0)
	source.Poke(8, 8, 7)

	target := NewSurface(16, 16)
	target.Clear(3)
	before := append([]uint8(nil), target.Pixels()...)

	target.SetTransparent(0, true)
	Blit(target, Point2{0, 0}, source, Rect{0, 0, 16, 16})

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			idx := y*16 + x
			got := target.Pixels()[idx]
			if x == 8 && y == 8 {
				if got != 7 {
					t.Fatalf("expected (8,8) == 7, got %d", got)
				}
				continue
			}
			if got != before[idx] {
				t.Fatalf("pixel (%d,%d) changed unexpectedly: %d -> %d", x, y, before[idx], got)
			}
		}
	}
}

func TestCopperlistGradient(t *testing.T) {
	d := NewDisplay(4, 200, grayscalePalette())
	prog := NewProgram().Gradient(1, []ColorStop{
		{Line: 0, Color: Color{0, 0, 0, 0}},
		{Line: 199, Color: Color{255, 255, 255, 255}},
	})
	d.Copperlist = prog.Copperlist()
	d.Surface.Clear(1)
	d.Convert()

	for _, y := range []int{0, 50, 100, 199} {
		want := uint8(y * 255 / 199)
		got := d.VRAM()[y*4]
		if diff := int(got.R) - int(want); diff < -1 || diff > 1 {
			t.Fatalf("row %d: got R=%d, want ~%d", y, got.R, want)
		}
	}
}

func TestCopperlistOffsetShiftsRow(t *testing.T) {
	d := NewDisplay(4, 2, grayscalePalette())
	for x := 0; x < 4; x++ {
		d.Surface.Poke(x, 0, uint8(x))
		d.Surface.Poke(x, 1, uint8(x))
	}
	prog := NewProgram().Wait(0, 0).Offset(1).Wait(0, 1).Offset(0)
	d.Copperlist = prog.Copperlist()
	d.Convert()

	// Row 0 reads source column (x+1) mod 4: 1,2,3,0.
	want0 := []uint8{1, 2, 3, 0}
	for x, w := range want0 {
		if got := d.VRAM()[x].R; got != w {
			t.Fatalf("row 0 x=%d: got %d, want %d", x, got, w)
		}
	}
	// Row 1 offset reset to 0: identity.
	for x := 0; x < 4; x++ {
		if got := d.VRAM()[4+x].R; got != uint8(x) {
			t.Fatalf("row 1 x=%d: got %d, want %d", x, got, x)
		}
	}
}

func TestCopperlistModuloAdvancesOffsetPerLine(t *testing.T) {
	d := NewDisplay(4, 3, grayscalePalette())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			d.Surface.Poke(x, y, uint8(x))
		}
	}
	prog := NewProgram().Wait(0, 0).Modulo(1)
	d.Copperlist = prog.Copperlist()
	d.Convert()

	// offset starts at 0 and advances by 1 after each committed row, so
	// row y samples source column (x+y) mod 4.
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := uint8((x + y) % 4)
			if got := d.VRAM()[y*4+x].R; got != want {
				t.Fatalf("row %d x=%d: got %d, want %d", y, x, got, want)
			}
		}
	}
}

func TestPushPopBalancedRestoresState(t *testing.T) {
	s := NewSurface(8, 8)
	before := *s.State()

	s.Push()
	s.SetClip(Rect{1, 1, 2, 2})
	s.Push()
	s.SetTransparent(5, true)
	s.Pop(2)

	after := *s.State()
	if before.Clip != after.Clip {
		t.Fatalf("clip not restored: %+v vs %+v", before.Clip, after.Clip)
	}
	if before.Transparent != after.Transparent {
		t.Fatalf("transparency map not restored")
	}
}

func TestPopZeroDropsToReset(t *testing.T) {
	s := NewSurface(8, 8)
	s.Push()
	s.Push()
	s.Push()
	if s.StackDepth() != 4 {
		t.Fatalf("expected depth 4, got %d", s.StackDepth())
	}
	s.Pop(0)
	if s.StackDepth() != 1 {
		t.Fatalf("pop(0) should collapse to the reset entry, depth=%d", s.StackDepth())
	}
}

func TestPaletteCapsAt256(t *testing.T) {
	colors := make([]Color, 300)
	for i := range colors {
		colors[i] = Color{uint8(i), 0, 0, 255}
	}
	p := NewPalette(colors)
	if p.Size() != 256 {
		t.Fatalf("Size() = %d, want 256", p.Size())
	}
	if p.At(0) != colors[0] {
		t.Fatalf("first entry mismatch")
	}
}

func TestNearestMatchIsPure(t *testing.T) {
	p := grayscalePalette()
	c := Color{130, 130, 130, 255}
	a := p.NearestMatch(c)
	b := p.NearestMatch(c)
	if a != b {
		t.Fatalf("NearestMatch not deterministic: %d vs %d", a, b)
	}
}

func TestClipFullyOutsideIsNoOp(t *testing.T) {
	s := NewSurface(8, 8)
	s.SetClip(Rect{0, 0, 4, 4})
	before := append([]uint8(nil), s.Pixels()...)
	s.FilledRectangle(5, 5, 2, 2, 9)
	after := s.Pixels()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("clip did not block out-of-bounds draw at index %d", i)
		}
	}
}
