package input

// ControllerButton names one of the 14 tracked controller buttons
// (spec §4.5), following the common face/shoulder/stick/dpad layout a
// GameControllerDB mapping (spec §6 "Input mappings") exposes.
type ControllerButton int

const (
	ButtonA ControllerButton = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonBack
	ButtonStart
	ButtonLeftStick
	ButtonRightStick
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight

	controllerButtonCount
)

const maxControllers = 4

// Controller is one of up to 4 bound joystick devices: 14 buttons, 2
// sticks, 2 triggers (spec §4.5).
type Controller struct {
	Connected  bool
	JoystickID int // platform-assigned id of the bound joystick, valid while Connected

	buttons [controllerButtonCount]Button
	Left    Stick
	Right   Stick
	LeftTrigger  float64
	RightTrigger float64

	emulatedFromKeyboard bool
}

// Button returns the tracked state for btn.
func (c *Controller) Button(btn ControllerButton) Button {
	if btn < 0 || btn >= controllerButtonCount {
		return Button{}
	}
	return c.buttons[btn]
}

// rawController is what the platform layer reports for one controller
// slot in a single frame, prior to deadzone normalization.
type rawController struct {
	connected  bool
	joystickID int
	buttons    [controllerButtonCount]bool
	leftX, leftY   float64
	rightX, rightY float64
	leftTrigger, rightTrigger float64
}

// update applies deadzone normalization and edge detection to one
// frame's raw reading (spec §4.5 steps 3-5).
func (c *Controller) update(raw rawController, dz Deadzone) {
	c.Connected = raw.connected
	c.JoystickID = raw.joystickID
	if !raw.connected {
		*c = Controller{}
		return
	}
	for b := ControllerButton(0); b < controllerButtonCount; b++ {
		btn := &c.buttons[b]
		btn.update(btn.Is, raw.buttons[b])
	}
	c.Left = dz.apply(raw.leftX, raw.leftY)
	c.Right = dz.apply(raw.rightX, raw.rightY)
	c.LeftTrigger = dz.applyScalar(raw.leftTrigger)
	c.RightTrigger = dz.applyScalar(raw.rightTrigger)
}
