// Package input implements the device aggregator: per-frame polling,
// edge detection, stick/trigger normalization, and controller/cursor
// emulation fallback (spec §3, §4.5).
package input

// Button is one binary input's edge-tracked state (spec §3).
type Button struct {
	Was, Is, Down, Pressed, Released bool
}

// update derives Down/Pressed/Released from the previous and current
// raw state (spec §4.5 step 5): down==is; pressed==!was&&is;
// released==was&&!is. pressed and released are never both true in the
// same frame (spec §8 invariant).
func (b *Button) update(was, is bool) {
	b.Was = was
	b.Is = is
	b.Down = is
	b.Pressed = !was && is
	b.Released = was && !is
}
