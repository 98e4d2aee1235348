package display

// Rect is an integer clipping rectangle, end-exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x,y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// ShiftingMap is a 256→256 pixel-index remap applied at sampling time.
type ShiftingMap [256]uint8

// IdentityShiftingMap returns a shifting map that remaps every index to
// itself.
func IdentityShiftingMap() ShiftingMap {
	var m ShiftingMap
	for i := range m {
		m[i] = uint8(i)
	}
	return m
}

// TransparencyMap is a 256→bool table; true means "skip this pixel"
// when sampled as a source index.
type TransparencyMap [256]bool

// DefaultTransparencyMap marks only index 0 transparent, per spec §3.
func DefaultTransparencyMap() TransparencyMap {
	var m TransparencyMap
	m[0] = true
	return m
}

// State is one entry of a Surface's rendering-state stack: clip
// rectangle, shifting map, and transparency map (spec §3).
type State struct {
	Clip        Rect
	Shifting    ShiftingMap
	Transparent TransparencyMap
}

// ResetState is the stack's permanent first entry: full clip, identity
// shifting, only index 0 transparent.
func ResetState(width, height int) State {
	return State{
		Clip:        Rect{0, 0, width, height},
		Shifting:    IdentityShiftingMap(),
		Transparent: DefaultTransparencyMap(),
	}
}

// stateStack is never empty; index 0 is always the reset state (spec §3
// invariant).
type stateStack struct {
	entries []State
}

func newStateStack(width, height int) *stateStack {
	return &stateStack{entries: []State{ResetState(width, height)}}
}

// top returns the effective (topmost) state.
func (s *stateStack) top() *State { return &s.entries[len(s.entries)-1] }

// push duplicates the current top.
func (s *stateStack) push() {
	s.entries = append(s.entries, *s.top())
}

// pop drops n entries, or the entire stack down to the reset entry when
// n is 0 (spec §3, §9 design note: pop(n) truncates to
// max(1, len-n), and n==0 truncates to 1).
func (s *stateStack) pop(n int) {
	if n <= 0 {
		s.entries = s.entries[:1]
		return
	}
	newLen := len(s.entries) - n
	if newLen < 1 {
		newLen = 1
	}
	s.entries = s.entries[:newLen]
}

func (s *stateStack) depth() int { return len(s.entries) }
