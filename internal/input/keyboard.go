package input

// Key names one of the keyboard's 42 tracked buttons (spec §4.5). The
// set covers the arrow keys, the letter keys used by the two
// keyboard-to-controller emulation keymaps (spec §4.5 last paragraph)
// and a few more, digits 0-5, and common action and modifier keys.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyC
	KeyF
	KeyV
	KeyG
	KeyZ
	KeyX
	KeyK
	KeyO
	KeyL
	KeyP
	KeyN
	KeyM
	KeyQ
	KeyE
	KeyR
	KeyT
	KeyY
	KeyU
	KeyI
	KeyJ
	KeyH
	KeyB
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	KeyEnter
	KeyEscape
	KeySpace
	KeyShift
	KeyCtrl
	KeyAlt

	keyCount
)

// Keyboard is the single keyboard device (spec §4.5: "1 keyboard (42
// named buttons)").
type Keyboard struct {
	buttons [keyCount]Button
	exitKey Key
	hasExit bool
}

// SetExitKey binds the configured `keyboard.exit_key` (spec §6); a zero
// value (no call) disables the exit-key behavior.
func (k *Keyboard) SetExitKey(key Key) {
	k.exitKey = key
	k.hasExit = true
}

// Button returns the tracked state for key.
func (k *Keyboard) Button(key Key) Button {
	if key < 0 || key >= keyCount {
		return Button{}
	}
	return k.buttons[key]
}

// ExitRequested reports whether the bound exit key was pressed this
// frame.
func (k *Keyboard) ExitRequested() bool {
	return k.hasExit && k.buttons[k.exitKey].Pressed
}

// update advances every button from the raw state the platform poller
// reports for this frame (spec §4.5 steps 2, 5).
func (k *Keyboard) update(raw func(Key) bool) {
	for key := Key(0); key < keyCount; key++ {
		b := &k.buttons[key]
		b.update(b.Is, raw(key))
	}
}
