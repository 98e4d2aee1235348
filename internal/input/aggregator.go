package input

import "time"

// Poller is the platform abstraction the aggregator polls once per
// frame (spec §4.5 step 1-2). A real implementation wraps SDL2 event
// pumping and GetKeyboardState/joystick queries; tests and the engine
// loop can substitute a fake.
type Poller interface {
	PollEvents()

	KeyPressed(Key) bool

	MouseEnabled() bool
	CursorPosition() (x, y float64)
	CursorButtonPressed(CursorButton) bool

	ConnectedJoysticks() []int
	ControllerButtonPressed(joystickID int, button ControllerButton) bool
	ControllerAxes(joystickID int) (leftX, leftY, rightX, rightY, leftTrigger, rightTrigger float64)
}

const rescanInterval = 3 * time.Second

// Aggregator is the top-level input device set: one keyboard, one
// cursor, up to 4 controllers (spec §4.5).
type Aggregator struct {
	Keyboard    Keyboard
	Cursor      Cursor
	Controllers [maxControllers]Controller
	Deadzone    Deadzone

	CursorSpeed                 float64
	EnableControllerFromKeyboard bool

	boundJoysticks [maxControllers]int
	rescanAccum    time.Duration
}

// NewAggregator returns an aggregator with no joystick slots bound.
func NewAggregator() *Aggregator {
	a := &Aggregator{Deadzone: Deadzone{Inner: 0.2, Outer: 0.05}, CursorSpeed: 1}
	for i := range a.boundJoysticks {
		a.boundJoysticks[i] = -1
	}
	return a
}

// Process runs one frame's poll, edge detection, and normalization
// (spec §4.5 steps 1-5).
func (a *Aggregator) Process(p Poller) {
	p.PollEvents()

	a.Keyboard.update(p.KeyPressed)

	var raw [maxControllers]rawController
	for i, id := range a.boundJoysticks {
		if id < 0 {
			continue
		}
		raw[i] = readController(p, id)
	}

	if a.EnableControllerFromKeyboard {
		emulateControllersFromKeyboard(&a.Keyboard, a.boundJoysticks, &raw)
	}

	for i := range a.Controllers {
		a.Controllers[i].update(raw[i], a.Deadzone)
	}

	a.updateCursor(p)
}

func readController(p Poller, id int) rawController {
	lx, ly, rx, ry, lt, rt := p.ControllerAxes(id)
	r := rawController{
		connected: true, joystickID: id,
		leftX: lx, leftY: ly, rightX: rx, rightY: ry,
		leftTrigger: lt, rightTrigger: rt,
	}
	for b := ControllerButton(0); b < controllerButtonCount; b++ {
		r.buttons[b] = p.ControllerButtonPressed(id, b)
	}
	return r
}

func (a *Aggregator) updateCursor(p Poller) {
	if !a.Cursor.Enabled() {
		a.Cursor.update(a.Cursor.X, a.Cursor.Y, func(CursorButton) bool { return false })
		return
	}
	if p.MouseEnabled() {
		a.Cursor.emulated = false
		x, y := p.CursorPosition()
		a.Cursor.update(x, y, p.CursorButtonPressed)
		return
	}
	if a.Controllers[0].Connected {
		a.Cursor.emulated = true
		src := &a.Controllers[0]
		a.Cursor.update(a.Cursor.X, a.Cursor.Y, func(b CursorButton) bool {
			return emulatedCursorButton(src, b)
		})
		return
	}
	a.Cursor.emulated = false
	a.Cursor.update(a.Cursor.X, a.Cursor.Y, func(CursorButton) bool { return false })
}

// Update drives the 3-second joystick rescan counter and, when the
// cursor is being emulated from a controller, moves it by the right
// stick at the configured speed (spec §4.5, "Controller detection" and
// "Cursor emulation").
func (a *Aggregator) Update(delta time.Duration, p Poller) {
	a.rescanAccum += delta
	for a.rescanAccum >= rescanInterval {
		a.rescanAccum -= rescanInterval
		a.rescan(p)
	}

	if a.Cursor.emulated {
		stick := a.Controllers[0].Right
		a.Cursor.Move(stick.X*a.CursorSpeed*delta.Seconds(), stick.Y*a.CursorSpeed*delta.Seconds())
	}
}

// rescan marks disconnected any bound joystick no longer present and
// binds free joysticks to unbound controller slots, lowest slot first
// (spec §4.5 "Controller detection").
func (a *Aggregator) rescan(p Poller) {
	present := p.ConnectedJoysticks()
	presentSet := make(map[int]bool, len(present))
	for _, id := range present {
		presentSet[id] = true
	}

	for i, id := range a.boundJoysticks {
		if id >= 0 && !presentSet[id] {
			a.boundJoysticks[i] = -1
			a.Controllers[i] = Controller{}
		}
	}

	bound := make(map[int]bool, maxControllers)
	for _, id := range a.boundJoysticks {
		if id >= 0 {
			bound[id] = true
		}
	}

	for i := range a.boundJoysticks {
		if a.boundJoysticks[i] >= 0 {
			continue
		}
		for _, id := range present {
			if !bound[id] {
				a.boundJoysticks[i] = id
				a.Controllers[i].Connected = true
				a.Controllers[i].JoystickID = id
				bound[id] = true
				break
			}
		}
	}
}
