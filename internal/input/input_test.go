package input

import (
	"testing"
	"time"
)

func TestButtonEdgeDetection(t *testing.T) {
	var b Button
	b.update(false, true)
	if !b.Pressed || b.Released || !b.Down {
		t.Fatalf("expected pressed+down on rising edge, got %+v", b)
	}
	b.update(b.Is, true)
	if b.Pressed || b.Released || !b.Down {
		t.Fatalf("expected steady-down with no edges, got %+v", b)
	}
	b.update(b.Is, false)
	if b.Pressed || !b.Released || b.Down {
		t.Fatalf("expected released on falling edge, got %+v", b)
	}
}

func TestButtonNeverPressedAndReleasedSameFrame(t *testing.T) {
	var b Button
	for _, seq := range [][2]bool{{false, false}, {false, true}, {true, true}, {true, false}} {
		b.update(seq[0], seq[1])
		if b.Pressed && b.Released {
			t.Fatalf("pressed and released both true for was=%v is=%v", seq[0], seq[1])
		}
	}
}

func TestStickDeadzoneBoundary(t *testing.T) {
	dz := Deadzone{Inner: 0.2, Outer: 0.05}

	s := dz.apply(0.1, 0.0)
	if s.X != 0 || s.Y != 0 || s.Magnitude != 0 {
		t.Fatalf("expected zero stick below inner deadzone, got %+v", s)
	}

	s = dz.apply(0.95, 0.0)
	if s.Magnitude < 0.999 || s.Magnitude > 1.0001 {
		t.Fatalf("expected magnitude ~1.0 at 0.95 raw, got %v", s.Magnitude)
	}
}

func TestStickMagnitudeNeverNegativeOrOverOne(t *testing.T) {
	dz := Deadzone{Inner: 0.2, Outer: 0.05}
	for _, raw := range []float64{0, 0.19, 0.2, 0.5, 0.95, 1, 2} {
		s := dz.apply(raw, 0)
		if s.Magnitude < 0 || s.Magnitude > 1 {
			t.Fatalf("magnitude out of range for raw=%v: %v", raw, s.Magnitude)
		}
		if s.Magnitude == 0 && (s.X != 0 || s.Y != 0) {
			t.Fatalf("zero magnitude but nonzero vector for raw=%v: %+v", raw, s)
		}
	}
}

func TestCursorSetPositionClipsToBounds(t *testing.T) {
	var c Cursor
	c.SetBounds(Bounds{W: 320, H: 240})

	c.SetPosition(100, 50)
	if c.X != 100 || c.Y != 50 {
		t.Fatalf("expected exact position within bounds, got (%v,%v)", c.X, c.Y)
	}

	c.SetPosition(500, -10)
	if c.X != 320 || c.Y != 0 {
		t.Fatalf("expected clipped position, got (%v,%v)", c.X, c.Y)
	}
}

func TestKeyboardExitKey(t *testing.T) {
	var k Keyboard
	k.SetExitKey(KeyEscape)
	pressed := map[Key]bool{KeyEscape: true}
	k.update(func(key Key) bool { return pressed[key] })
	if !k.ExitRequested() {
		t.Fatalf("expected exit requested on bound key press")
	}
}

type fakePoller struct {
	keys      map[Key]bool
	mouse     bool
	cursorX   float64
	cursorY   float64
	joysticks []int
	jButtons  map[int]map[ControllerButton]bool
	jAxes     map[int][6]float64
}

func newFakePoller() *fakePoller {
	return &fakePoller{
		keys:     make(map[Key]bool),
		jButtons: make(map[int]map[ControllerButton]bool),
		jAxes:    make(map[int][6]float64),
	}
}

func (f *fakePoller) PollEvents()                                        {}
func (f *fakePoller) KeyPressed(k Key) bool                              { return f.keys[k] }
func (f *fakePoller) MouseEnabled() bool                                 { return f.mouse }
func (f *fakePoller) CursorPosition() (float64, float64)                 { return f.cursorX, f.cursorY }
func (f *fakePoller) CursorButtonPressed(CursorButton) bool              { return false }
func (f *fakePoller) ConnectedJoysticks() []int                          { return f.joysticks }
func (f *fakePoller) ControllerButtonPressed(id int, b ControllerButton) bool {
	return f.jButtons[id][b]
}
func (f *fakePoller) ControllerAxes(id int) (float64, float64, float64, float64, float64, float64) {
	a := f.jAxes[id]
	return a[0], a[1], a[2], a[3], a[4], a[5]
}

func TestControllerRescanBindsLowestFreeSlotFirst(t *testing.T) {
	a := NewAggregator()
	p := newFakePoller()
	p.joysticks = []int{7}

	a.Update(rescanInterval, p)

	if !a.Controllers[0].Connected {
		t.Fatalf("expected slot 0 bound after rescan, controllers=%+v", a.Controllers)
	}
	if a.boundJoysticks[0] != 7 {
		t.Fatalf("expected joystick 7 bound to slot 0, got %d", a.boundJoysticks[0])
	}
}

func TestControllerRescanUnbindsDisconnected(t *testing.T) {
	a := NewAggregator()
	p := newFakePoller()
	p.joysticks = []int{3}
	a.Update(rescanInterval, p)
	if a.boundJoysticks[0] != 3 {
		t.Fatalf("setup failed: expected joystick 3 bound")
	}

	p.joysticks = nil
	a.Update(rescanInterval, p)
	if a.boundJoysticks[0] != -1 {
		t.Fatalf("expected slot freed after disconnect, got %d", a.boundJoysticks[0])
	}
}

func TestControllerEmulationFromKeyboard(t *testing.T) {
	a := NewAggregator()
	a.EnableControllerFromKeyboard = true
	p := newFakePoller()

	p.keys[KeyD] = true
	a.Process(p)

	if !a.Controllers[0].Connected {
		t.Fatalf("expected controller 0 emulated as connected")
	}
	if a.Controllers[0].Left.X <= 0 {
		t.Fatalf("expected rightward stick from KeyD, got %+v", a.Controllers[0].Left)
	}
}

func TestCursorEmulationFromControllerStick(t *testing.T) {
	a := NewAggregator()
	a.Cursor.SetEnabled(true)
	a.Cursor.SetBounds(Bounds{W: 320, H: 240})
	a.CursorSpeed = 100
	p := newFakePoller()
	p.joysticks = []int{0}
	a.Update(rescanInterval, p)

	p.jAxes[0] = [6]float64{0, 0, 1, 0, 0, 0}
	a.Process(p)
	startX := a.Cursor.X
	a.Update(100*time.Millisecond, p)

	if a.Cursor.X <= startX {
		t.Fatalf("expected cursor to move right under stick emulation, got %v -> %v", startX, a.Cursor.X)
	}
}
