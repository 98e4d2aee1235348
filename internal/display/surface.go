package display

// Surface is a width×height array of 8-bit pixel indices with a stack
// of mutable rendering state (spec §3, §4.2).
type Surface struct {
	width, height int
	pix           []uint8
	stack         *stateStack
}

// NewSurface allocates a width×height surface, fully transparent
// (index 0) to start, with a single reset state on the stack.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
		stack:  newStateStack(width, height),
	}
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Pixels exposes the raw backing buffer (row-major, width*height
// bytes), used by the present pipeline.
func (s *Surface) Pixels() []uint8 { return s.pix }

// State returns the effective (topmost) rendering state.
func (s *Surface) State() *State { return s.stack.top() }

// Push duplicates the current rendering state onto the stack.
func (s *Surface) Push() { s.stack.push() }

// Pop drops n entries (or the whole stack down to the reset entry when
// n is 0).
func (s *Surface) Pop(n int) { s.stack.pop(n) }

// StackDepth reports the current stack depth, for testing the push/pop
// balance invariant.
func (s *Surface) StackDepth() int { return s.stack.depth() }

// SetClip narrows the effective clipping rectangle.
func (s *Surface) SetClip(r Rect) { s.stack.top().Clip = r }

// ResetClip restores the full-surface clip.
func (s *Surface) ResetClip() { s.stack.top().Clip = Rect{0, 0, s.width, s.height} }

// SetShifting overrides selected shifting-map entries; an empty pairs
// slice restores identity (spec §4.2).
func (s *Surface) SetShifting(pairs [][2]uint8) {
	top := s.stack.top()
	if len(pairs) == 0 {
		top.Shifting = IdentityShiftingMap()
		return
	}
	for _, p := range pairs {
		top.Shifting[p[0]] = p[1]
	}
}

// SetTransparent marks index transparent or opaque as a source pixel.
func (s *Surface) SetTransparent(index uint8, transparent bool) {
	s.stack.top().Transparent[index] = transparent
}

func (s *Surface) at(x, y int) int { return y*s.width + x }

func (s *Surface) clipped(x, y int) bool {
	return !s.stack.top().Clip.Contains(x, y)
}

// Peek reads the pixel index at (x,y), ignoring clipping (a query, not
// a write).
func (s *Surface) Peek(x, y int) uint8 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.pix[s.at(x, y)]
}

// Poke writes a single pixel, honoring the clip rectangle.
func (s *Surface) Poke(x, y int, index uint8) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	if s.clipped(x, y) {
		return
	}
	s.pix[s.at(x, y)] = index
}

// Clear fills the entire surface with index, honoring the clip rect.
func (s *Surface) Clear(index uint8) {
	clip := s.stack.top().Clip
	for y := clip.Y; y < clip.Y+clip.H && y < s.height; y++ {
		if y < 0 {
			continue
		}
		rowStart := s.at(max(clip.X, 0), y)
		rowEnd := s.at(min(clip.X+clip.W, s.width), y)
		for i := rowStart; i < rowEnd; i++ {
			s.pix[i] = index
		}
	}
}

// Point plots a single pixel (alias of Poke, kept for script-surface
// naming parity with spec §4.2).
func (s *Surface) Point(x, y int, index uint8) { s.Poke(x, y, index) }

// HLine draws a horizontal line from x0 to x1 inclusive at row y.
func (s *Surface) HLine(x0, x1, y int, index uint8) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		s.Poke(x, y, index)
	}
}

// VLine draws a vertical line from y0 to y1 inclusive at column x.
func (s *Surface) VLine(x, y0, y1 int, index uint8) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		s.Poke(x, y, index)
	}
}

// Line draws a line with Bresenham's algorithm.
func (s *Surface) Line(x0, y0, x1, y1 int, index uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		s.Poke(x0, y0, index)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Point2 is an (x,y) pair used by Polyline.
type Point2 struct{ X, Y int }

// Polyline draws connected line segments through points.
func (s *Surface) Polyline(points []Point2, index uint8) {
	for i := 0; i+1 < len(points); i++ {
		s.Line(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, index)
	}
}

// StrokedRectangle draws a rectangle outline.
func (s *Surface) StrokedRectangle(x, y, w, h int, index uint8) {
	s.HLine(x, x+w-1, y, index)
	s.HLine(x, x+w-1, y+h-1, index)
	s.VLine(x, y, y+h-1, index)
	s.VLine(x+w-1, y, y+h-1, index)
}

// FilledRectangle fills a solid rectangle.
func (s *Surface) FilledRectangle(x, y, w, h int, index uint8) {
	for row := y; row < y+h; row++ {
		s.HLine(x, x+w-1, row, index)
	}
}

// StrokedTriangle draws a triangle outline.
func (s *Surface) StrokedTriangle(x0, y0, x1, y1, x2, y2 int, index uint8) {
	s.Line(x0, y0, x1, y1, index)
	s.Line(x1, y1, x2, y2, index)
	s.Line(x2, y2, x0, y0, index)
}

// FilledTriangle scans and fills a triangle using edge functions.
func (s *Surface) FilledTriangle(x0, y0, x1, y1, x2, y2 int, index uint8) {
	minX, maxX := minOf3(x0, x1, x2), maxOf3(x0, x1, x2)
	minY, maxY := minOf3(y0, y1, y2), maxOf3(y0, y1, y2)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if pointInTriangle(x, y, x0, y0, x1, y1, x2, y2) {
				s.Poke(x, y, index)
			}
		}
	}
}

// StrokedCircle draws a circle outline with the midpoint algorithm.
func (s *Surface) StrokedCircle(cx, cy, radius int, index uint8) {
	x, y, d := radius, 0, 1-radius
	for x >= y {
		s.octantPoints(cx, cy, x, y, index, false)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FilledCircle fills a disc.
func (s *Surface) FilledCircle(cx, cy, radius int, index uint8) {
	x, y, d := radius, 0, 1-radius
	for x >= y {
		s.HLine(cx-x, cx+x, cy+y, index)
		s.HLine(cx-x, cx+x, cy-y, index)
		s.HLine(cx-y, cx+y, cy+x, index)
		s.HLine(cx-y, cx+y, cy-x, index)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func (s *Surface) octantPoints(cx, cy, x, y int, index uint8, _ bool) {
	s.Poke(cx+x, cy+y, index)
	s.Poke(cx-x, cy+y, index)
	s.Poke(cx+x, cy-y, index)
	s.Poke(cx-x, cy-y, index)
	s.Poke(cx+y, cy+x, index)
	s.Poke(cx-y, cy+x, index)
	s.Poke(cx+y, cy-x, index)
	s.Poke(cx-y, cy-x, index)
}

// Fill performs a 4-connected flood fill seeded at (x,y), matching
// pixels equal to the value currently at that position.
func (s *Surface) Fill(x, y int, index uint8) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	target := s.Peek(x, y)
	if target == index {
		return
	}
	stack := []Point2{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y >= s.height {
			continue
		}
		if s.Peek(p.X, p.Y) != target {
			continue
		}
		if s.clipped(p.X, p.Y) {
			continue
		}
		s.pix[s.at(p.X, p.Y)] = index
		stack = append(stack,
			Point2{p.X + 1, p.Y}, Point2{p.X - 1, p.Y},
			Point2{p.X, p.Y + 1}, Point2{p.X, p.Y - 1})
	}
}

// Scan invokes fn(x,y,index) for every pixel in rect and writes its
// return value back, honoring the clip rectangle.
func (s *Surface) Scan(rect Rect, fn func(x, y int, index uint8) uint8) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			if x < 0 || y < 0 || x >= s.width || y >= s.height || s.clipped(x, y) {
				continue
			}
			s.pix[s.at(x, y)] = fn(x, y, s.pix[s.at(x, y)])
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minOf3(a, b, c int) int { return min(a, min(b, c)) }
func maxOf3(a, b, c int) int { return max(a, max(b, c)) }

func pointInTriangle(px, py, x0, y0, x1, y1, x2, y2 int) bool {
	d1 := sign(px, py, x0, y0, x1, y1)
	d2 := sign(px, py, x1, y1, x2, y2)
	d3 := sign(px, py, x2, y2, x0, y0)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func sign(px, py, ax, ay, bx, by int) int {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}
