package audio

import (
	"sync"
	"time"
)

// Context owns the ordered set of tracked sources and the fixed mix
// groups (spec §4.4). All mutations from the main thread acquire the
// lock briefly; the device callback holds it for the whole mix.
type Context struct {
	mu      sync.Mutex
	sources []*Source
	groups  [NumGroups]Group

	sampleRate int

	idleSince     time.Time
	idleGrace     time.Duration
	deviceRunning bool
	startFn       func() error
	stopFn        func() error
}

// NewContext creates a mixer context for the given output sample rate.
func NewContext(sampleRate int) *Context {
	return &Context{
		groups:     newGroups(),
		sampleRate: sampleRate,
		idleGrace:  time.Second,
	}
}

// SetDeviceHooks installs the start/stop callbacks used for the
// optional start-on-first-track/stop-after-grace-period behavior (spec
// §4.4).
func (c *Context) SetDeviceHooks(start, stop func() error) {
	c.startFn = start
	c.stopFn = stop
}

// Group returns a copy of one group's state.
func (c *Context) Group(index int) Group {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.groups[index]
}

// SetGroup replaces one group's mix/gain.
func (c *Context) SetGroup(index int, g Group) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.groups[index] = g
}

// Track inserts source into the active set, optionally resetting it
// first (spec §4.4). Starts the device on the first tracked source.
func (c *Context) Track(source *Source, resetFirst bool) error {
	c.mu.Lock()
	if resetFirst {
		source.Reset()
	}
	wasEmpty := len(c.sources) == 0
	c.sources = append(c.sources, source)
	c.mu.Unlock()

	if wasEmpty && c.startFn != nil && !c.deviceRunning {
		if err := c.startFn(); err != nil {
			return err
		}
		c.deviceRunning = true
	}
	return nil
}

// Untrack removes source from the active set, if present.
func (c *Context) Untrack(source *Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.sources {
		if s == source {
			c.sources = append(c.sources[:i], c.sources[i+1:]...)
			return
		}
	}
}

// Halt removes every tracked source.
func (c *Context) Halt() {
	c.mu.Lock()
	c.sources = nil
	c.mu.Unlock()
}

// TrackedCount reports the number of currently tracked sources.
func (c *Context) TrackedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sources)
}

// Mix renders one block of device output (the platform calls it to top
// up the SDL audio queue; there is no device callback): it clears out to silence, asks
// each tracked source to render into it through its group's routing
// matrix and gain, and untracks sources that reached end-of-stream
// unlooped (spec §4.4). out is interleaved stereo float32.
func (c *Context) Mix(out []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range out {
		out[i] = 0
	}
	if len(c.sources) == 0 {
		c.handleIdle()
		return
	}

	frames := len(out) / 2
	groupBuf := make([]float32, len(out))
	alive := c.sources[:0]
	for _, s := range c.sources {
		for i := range groupBuf {
			groupBuf[i] = 0
		}
		untrack := s.render(groupBuf, frames)
		g := c.groups[s.group%NumGroups]
		for i := 0; i < frames; i++ {
			l, r := groupBuf[i*2], groupBuf[i*2+1]
			out[i*2] += (l*g.Mix[0][0] + r*g.Mix[0][1]) * g.Gain
			out[i*2+1] += (l*g.Mix[1][0] + r*g.Mix[1][1]) * g.Gain
		}
		if !untrack {
			alive = append(alive, s)
		}
	}
	c.sources = alive
	c.idleSince = time.Time{}
}

func (c *Context) handleIdle() {
	if c.idleSince.IsZero() {
		c.idleSince = time.Now()
		return
	}
	if c.deviceRunning && c.stopFn != nil && time.Since(c.idleSince) >= c.idleGrace {
		c.stopFn()
		c.deviceRunning = false
	}
}

// Update is called once per fixed timestep from the main loop (spec
// §4.7); the mixer itself is driven by the device callback, so Update
// is a no-op hook kept for symmetry with the other subsystems'
// lifecycle.
func (c *Context) Update(delta time.Duration) {}
