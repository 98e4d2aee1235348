package input

// CursorButton names the 3 tracked mouse buttons (spec §4.5).
type CursorButton int

const (
	CursorLeft CursorButton = iota
	CursorMiddle
	CursorRight

	cursorButtonCount
)

// Cursor is the pointer device: position in virtual-screen coordinates,
// clipped to the canvas rectangle, plus 3 buttons (spec §4.5).
type Cursor struct {
	X, Y      float64
	buttons   [cursorButtonCount]Button
	enabled   bool
	hidden    bool
	bounds    Bounds
	emulated  bool
}

// Bounds is the virtual-screen clip rectangle a Cursor is confined to.
type Bounds struct {
	W, H float64
}

// SetEnabled toggles whether the cursor device participates in
// process() at all (spec §6 `cursor.enabled`).
func (c *Cursor) SetEnabled(enabled bool) { c.enabled = enabled }
func (c *Cursor) Enabled() bool           { return c.enabled }

// SetHidden toggles the platform pointer's visibility (spec §6
// `cursor.hide`); Cursor itself keeps tracking position regardless.
func (c *Cursor) SetHidden(hidden bool) { c.hidden = hidden }
func (c *Cursor) Hidden() bool          { return c.hidden }

// SetBounds installs the canvas rectangle position is clipped to.
func (c *Cursor) SetBounds(b Bounds) { c.bounds = b }

// Button returns the tracked state for btn.
func (c *Cursor) Button(btn CursorButton) Button {
	if btn < 0 || btn >= cursorButtonCount {
		return Button{}
	}
	return c.buttons[btn]
}

// SetPosition moves the cursor, clipping to the canvas rectangle (spec
// §8: "Cursor position after set_position(p) is exactly p when within
// the canvas rectangle; otherwise clipped.").
func (c *Cursor) SetPosition(x, y float64) {
	c.X, c.Y = c.clip(x, y)
}

func (c *Cursor) clip(x, y float64) (float64, float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	if c.bounds.W > 0 && x > c.bounds.W {
		x = c.bounds.W
	}
	if c.bounds.H > 0 && y > c.bounds.H {
		y = c.bounds.H
	}
	return x, y
}

// Move offsets the cursor by a delta, clipping the result (used by
// controller-driven cursor emulation, spec §4.5).
func (c *Cursor) Move(dx, dy float64) {
	c.SetPosition(c.X+dx, c.Y+dy)
}

// update advances button edge state from the raw platform reading, and
// (unless emulated by a controller this frame) overwrites position from
// the pointer position the poller reports, clipped to the bounds. No
// scaling happens here; the SDL poller already reports virtual-screen
// coordinates.
func (c *Cursor) update(physX, physY float64, raw func(CursorButton) bool) {
	for b := CursorButton(0); b < cursorButtonCount; b++ {
		btn := &c.buttons[b]
		btn.update(btn.Is, raw(b))
	}
	if !c.emulated {
		c.SetPosition(physX, physY)
	}
}
