package platform

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrograde-labs/pixelforge/internal/input"
)

// keyScancodes maps the engine's 42 named keys onto SDL scancodes (spec
// §4.5).
var keyScancodes = map[input.Key]sdl.Scancode{
	input.KeyUp: sdl.SCANCODE_UP, input.KeyDown: sdl.SCANCODE_DOWN,
	input.KeyLeft: sdl.SCANCODE_LEFT, input.KeyRight: sdl.SCANCODE_RIGHT,
	input.KeyW: sdl.SCANCODE_W, input.KeyA: sdl.SCANCODE_A, input.KeyS: sdl.SCANCODE_S, input.KeyD: sdl.SCANCODE_D,
	input.KeyC: sdl.SCANCODE_C, input.KeyF: sdl.SCANCODE_F, input.KeyV: sdl.SCANCODE_V, input.KeyG: sdl.SCANCODE_G,
	input.KeyZ: sdl.SCANCODE_Z, input.KeyX: sdl.SCANCODE_X,
	input.KeyK: sdl.SCANCODE_K, input.KeyO: sdl.SCANCODE_O, input.KeyL: sdl.SCANCODE_L, input.KeyP: sdl.SCANCODE_P,
	input.KeyN: sdl.SCANCODE_N, input.KeyM: sdl.SCANCODE_M,
	input.KeyQ: sdl.SCANCODE_Q, input.KeyE: sdl.SCANCODE_E, input.KeyR: sdl.SCANCODE_R, input.KeyT: sdl.SCANCODE_T,
	input.KeyY: sdl.SCANCODE_Y, input.KeyU: sdl.SCANCODE_U, input.KeyI: sdl.SCANCODE_I, input.KeyJ: sdl.SCANCODE_J,
	input.KeyH: sdl.SCANCODE_H, input.KeyB: sdl.SCANCODE_B,
	input.Key0: sdl.SCANCODE_0, input.Key1: sdl.SCANCODE_1, input.Key2: sdl.SCANCODE_2,
	input.Key3: sdl.SCANCODE_3, input.Key4: sdl.SCANCODE_4, input.Key5: sdl.SCANCODE_5,
	input.KeyEnter: sdl.SCANCODE_RETURN, input.KeyEscape: sdl.SCANCODE_ESCAPE, input.KeySpace: sdl.SCANCODE_SPACE,
	input.KeyShift: sdl.SCANCODE_LSHIFT, input.KeyCtrl: sdl.SCANCODE_LCTRL, input.KeyAlt: sdl.SCANCODE_LALT,
}

// controllerButtons maps the engine's 14 tracked buttons onto SDL game
// controller buttons (spec §4.5, §6 "GameControllerDB format").
var controllerButtons = map[input.ControllerButton]sdl.GameControllerButton{
	input.ButtonA: sdl.CONTROLLER_BUTTON_A, input.ButtonB: sdl.CONTROLLER_BUTTON_B,
	input.ButtonX: sdl.CONTROLLER_BUTTON_X, input.ButtonY: sdl.CONTROLLER_BUTTON_Y,
	input.ButtonLeftShoulder:  sdl.CONTROLLER_BUTTON_LEFTSHOULDER,
	input.ButtonRightShoulder: sdl.CONTROLLER_BUTTON_RIGHTSHOULDER,
	input.ButtonBack:          sdl.CONTROLLER_BUTTON_BACK,
	input.ButtonStart:         sdl.CONTROLLER_BUTTON_START,
	input.ButtonLeftStick:     sdl.CONTROLLER_BUTTON_LEFTSTICK,
	input.ButtonRightStick:    sdl.CONTROLLER_BUTTON_RIGHTSTICK,
	input.ButtonDPadUp:        sdl.CONTROLLER_BUTTON_DPAD_UP,
	input.ButtonDPadDown:      sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	input.ButtonDPadLeft:      sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	input.ButtonDPadRight:     sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
}

// LoadMappings installs a GameControllerDB mapping string (spec §6
// "Input mappings").
func (p *Platform) LoadMappings(db string) error {
	if db == "" {
		return nil
	}
	if _, err := sdl.GameControllerAddMapping(db); err != nil {
		return errPlatform("load controller mappings", err)
	}
	return nil
}

// PollEvents pumps the SDL event queue, updating quit/focus state (spec
// §4.5 step 1, §4.7 event synthesis source).
func (p *Platform) PollEvents() {
	for {
		ev := sdl.PollEvent()
		if ev == nil {
			break
		}
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			p.shouldClose = true
		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				p.focusActive = true
			case sdl.WINDOWEVENT_FOCUS_LOST:
				p.focusActive = false
			case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
				p.recomputeDestRect()
			}
		}
	}
}

func (p *Platform) KeyPressed(k input.Key) bool {
	code, ok := keyScancodes[k]
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return state[code] != 0
}

// MouseEnabled reports whether a physical mouse is present. SDL always
// reports a mouse device on desktop platforms, so this is always true;
// the cursor.enabled config flag (handled by the aggregator) is what
// actually gates the cursor device (spec §4.5 "Cursor emulation").
func (p *Platform) MouseEnabled() bool { return true }

// CursorPosition returns the mouse position in physical window
// coordinates rescaled into virtual-screen coordinates (spec §4.5).
func (p *Platform) CursorPosition() (float64, float64) {
	x, y, _ := sdl.GetMouseState()
	rx := float64(x-p.destRect.X) * float64(p.canvasW) / float64(p.destRect.W)
	ry := float64(y-p.destRect.Y) * float64(p.canvasH) / float64(p.destRect.H)
	return rx, ry
}

func (p *Platform) CursorButtonPressed(b input.CursorButton) bool {
	_, _, mask := sdl.GetMouseState()
	switch b {
	case input.CursorLeft:
		return mask&sdl.ButtonLMask() != 0
	case input.CursorMiddle:
		return mask&sdl.ButtonMMask() != 0
	case input.CursorRight:
		return mask&sdl.ButtonRMask() != 0
	}
	return false
}

// ConnectedJoysticks rescans and (re)opens game controllers, returning
// the instance id of each currently connected controller (spec §4.5
// "Controller detection").
func (p *Platform) ConnectedJoysticks() []int {
	n := sdl.NumJoysticks()
	present := make(map[int32]bool, n)
	for i := 0; i < n; i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		if c, ok := p.openControllers[int32(i)]; ok {
			present[c.Joystick().InstanceID()] = true
			continue
		}
		if c := sdl.GameControllerOpen(i); c != nil {
			id := c.Joystick().InstanceID()
			p.openControllers[int32(i)] = c
			present[id] = true
		}
	}

	for idx, c := range p.openControllers {
		if !c.Joystick().Attached() {
			c.Close()
			delete(p.openControllers, idx)
		}
	}

	ids := make([]int, 0, len(present))
	for id := range present {
		ids = append(ids, int(id))
	}
	return ids
}

func (p *Platform) controllerFor(joystickID int) *sdl.GameController {
	for _, c := range p.openControllers {
		if int(c.Joystick().InstanceID()) == joystickID {
			return c
		}
	}
	return nil
}

func (p *Platform) ControllerButtonPressed(joystickID int, button input.ControllerButton) bool {
	c := p.controllerFor(joystickID)
	if c == nil {
		return false
	}
	sdlButton, ok := controllerButtons[button]
	if !ok {
		return false
	}
	return c.Button(sdlButton) != 0
}

const axisRange = 32767.0

func (p *Platform) ControllerAxes(joystickID int) (lx, ly, rx, ry, lt, rt float64) {
	c := p.controllerFor(joystickID)
	if c == nil {
		return 0, 0, 0, 0, 0, 0
	}
	axis := func(a sdl.GameControllerAxis) float64 { return float64(c.Axis(a)) / axisRange }
	return axis(sdl.CONTROLLER_AXIS_LEFTX), axis(sdl.CONTROLLER_AXIS_LEFTY),
		axis(sdl.CONTROLLER_AXIS_RIGHTX), axis(sdl.CONTROLLER_AXIS_RIGHTY),
		axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT), axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT)
}
