package input

// keymap binds one keyboard-emulated controller's stick and button keys
// (spec §4.5: "two fixed keymaps (WASD+CFVG+ZX and arrows+KOLP+NM)
// synthesize controllers 0 and 1").
type keymap struct {
	up, down, left, right Key
	a, b, x, y            Key
	back, start           Key
}

var keymaps = [2]keymap{
	{ // controller 0: WASD + CFVG + ZX
		up: KeyW, down: KeyS, left: KeyA, right: KeyD,
		a: KeyC, b: KeyF, x: KeyV, y: KeyG,
		back: KeyZ, start: KeyX,
	},
	{ // controller 1: arrows + KOLP + NM
		up: KeyUp, down: KeyDown, left: KeyLeft, right: KeyRight,
		a: KeyK, b: KeyO, x: KeyL, y: KeyP,
		back: KeyN, start: KeyM,
	},
}

// emulateControllersFromKeyboard fills slots 0 and 1 of raw with
// keyboard-derived readings whenever that slot has no physically bound
// joystick, leaving every other slot untouched.
func emulateControllersFromKeyboard(kb *Keyboard, bound [maxControllers]int, raw *[maxControllers]rawController) {
	for i, km := range keymaps {
		if bound[i] >= 0 {
			continue
		}
		r := rawController{connected: true, joystickID: -1}
		r.buttons[ButtonA] = kb.Button(km.a).Is
		r.buttons[ButtonB] = kb.Button(km.b).Is
		r.buttons[ButtonX] = kb.Button(km.x).Is
		r.buttons[ButtonY] = kb.Button(km.y).Is
		r.buttons[ButtonBack] = kb.Button(km.back).Is
		r.buttons[ButtonStart] = kb.Button(km.start).Is

		if kb.Button(km.left).Is {
			r.leftX -= 1
		}
		if kb.Button(km.right).Is {
			r.leftX += 1
		}
		if kb.Button(km.up).Is {
			r.leftY -= 1
		}
		if kb.Button(km.down).Is {
			r.leftY += 1
		}

		raw[i] = r
	}
}

// emulatedCursorButton maps a controller's face buttons onto the 3
// cursor buttons for controller-driven cursor emulation (spec §4.5,
// "Cursor emulation": "mapped controller buttons synthesize cursor
// buttons").
func emulatedCursorButton(c *Controller, b CursorButton) bool {
	switch b {
	case CursorLeft:
		return c.Button(ButtonA).Is
	case CursorRight:
		return c.Button(ButtonB).Is
	case CursorMiddle:
		return c.Button(ButtonX).Is
	}
	return false
}
