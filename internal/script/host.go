// Package script embeds the gopher-lua VM as the engine's scripting
// host: module registration, the boot sequence, and the per-phase
// process/update/render dispatch with an exception boundary (spec
// §4.6).
package script

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
	"github.com/retrograde-labs/pixelforge/internal/audio"
	"github.com/retrograde-labs/pixelforge/internal/display"
	"github.com/retrograde-labs/pixelforge/internal/engine"
	"github.com/retrograde-labs/pixelforge/internal/input"
	"github.com/retrograde-labs/pixelforge/internal/logging"
	"github.com/retrograde-labs/pixelforge/internal/physics"
	"github.com/retrograde-labs/pixelforge/internal/storage"
)

// GCMode selects one of the three GC strategies spec §4.6 names.
type GCMode int

const (
	GCAutomatic GCMode = iota
	GCPeriodic
	GCContinuous
)

// HostContext is the single value passed by borrowed reference into
// every module loader (spec §9 "Global subsystem singletons passed as
// upvalues to every binding"). Each loader closure captures the same
// pointer; it is not stored in the Lua registry and never duplicated.
type HostContext struct {
	Storage  *storage.Storage
	Display  *display.Display
	Mixer    *audio.Context
	Input    *input.Aggregator
	World    *physics.World
	Log      *logging.Logger
	Identity string

	StrictMethods bool // fail hard if process/update/render is missing
}

// Host owns the VM, the resolved game object, and the GC schedule.
type Host struct {
	L   *lua.LState
	ctx *HostContext

	gcMode     GCMode
	gcPeriod   time.Duration
	gcAccum    time.Duration
	gcStepSize int

	game *lua.LTable

	hasProcess, hasUpdate, hasRender bool
}

// NewHost creates a VM, installs the module searcher and every
// preloaded subsystem module, per spec §4.6 steps 1-3.
func NewHost(ctx *HostContext) *Host {
	L := lua.NewState(lua.Options{SkipOpenLibs: false})
	h := &Host{L: L, ctx: ctx, gcMode: GCAutomatic, gcPeriod: 5 * time.Second, gcStepSize: 2}

	installModuleSearcher(L, ctx.Storage)
	registerAllModules(L, ctx)

	return h
}

// SetGCMode configures the garbage-collection strategy (spec §4.6 "GC
// modes (configurable): automatic, periodic, continuous").
func (h *Host) SetGCMode(mode GCMode, period time.Duration, stepSize int) {
	h.gcMode = mode
	if period > 0 {
		h.gcPeriod = period
	}
	if stepSize > 0 {
		h.gcStepSize = stepSize
	}
}

// Boot runs `return require("<name>")`, resolving process/update/render
// on the returned table (spec §4.6 steps 4-5).
func (h *Host) Boot(bootModule string) error {
	fn, err := h.L.LoadString(fmt.Sprintf("return require(%q)", bootModule))
	if err != nil {
		return apperr.Wrap(apperr.ErrScript, "compile boot script", err)
	}
	h.L.Push(fn)
	if err := h.L.PCall(0, 1, nil); err != nil {
		return apperr.Wrap(apperr.ErrScript, "run boot script", err)
	}
	ret := h.L.Get(-1)
	h.L.Pop(1)

	game, ok := ret.(*lua.LTable)
	if !ok {
		return apperr.Wrap(apperr.ErrScript, "boot script must return the game object", nil)
	}
	h.game = game

	_, h.hasProcess = game.RawGetString("process").(*lua.LFunction)
	_, h.hasUpdate = game.RawGetString("update").(*lua.LFunction)
	_, h.hasRender = game.RawGetString("render").(*lua.LFunction)

	if h.ctx.StrictMethods && (!h.hasProcess || !h.hasUpdate || !h.hasRender) {
		return apperr.Wrap(apperr.ErrScript, "game object missing process/update/render", nil)
	}
	return nil
}

// call invokes one of the game object's lifecycle methods, catching any
// raised error at this phase boundary (spec §7 "Script" taxonomy: caught
// at each phase boundary, logged with traceback).
func (h *Host) call(name string, present bool, nargs int, push func()) (bool, error) {
	if !present {
		return true, nil
	}
	fn := h.game.RawGetString(name)
	h.L.Push(fn)
	h.L.Push(h.game)
	push()
	if err := h.L.PCall(nargs+1, 1, nil); err != nil {
		if h.ctx.Log != nil {
			h.ctx.Log.Logf(logging.ComponentScript, logging.LevelError, "%s: %v", name, err)
		}
		return false, apperr.Wrap(apperr.ErrScript, fmt.Sprintf("%s raised", name), err)
	}
	ret := h.L.Get(-1)
	h.L.Pop(1)
	if b, ok := ret.(lua.LBool); ok {
		return bool(b), nil
	}
	return true, nil
}

// Process dispatches game:process(events) (spec §4.7): each
// engine.Event becomes a Lua table {kind=..., slot=...} in a sequence
// table passed as the sole argument.
func (h *Host) Process(events []engine.Event) (bool, error) {
	return h.call("process", h.hasProcess, 1, func() {
		tbl := h.L.NewTable()
		for i, ev := range events {
			row := h.L.NewTable()
			row.RawSetString("kind", lua.LString(eventKindName(ev.Kind)))
			row.RawSetString("slot", lua.LNumber(ev.ControllerSlot))
			tbl.RawSetInt(i+1, row)
		}
		h.L.Push(tbl)
	})
}

func eventKindName(k engine.EventKind) string {
	switch k {
	case engine.EventFocusGained:
		return "focus_gained"
	case engine.EventFocusLost:
		return "focus_lost"
	case engine.EventControllerConnected:
		return "controller_connected"
	case engine.EventControllerDisconnected:
		return "controller_disconnected"
	default:
		return "unknown"
	}
}

// Update dispatches game:update(delta_time); a false return stops the
// loop (spec §4.6, §4.7).
func (h *Host) Update(dt time.Duration) (bool, error) {
	h.stepGC(dt)
	return h.call("update", h.hasUpdate, 1, func() {
		h.L.Push(lua.LNumber(dt.Seconds()))
	})
}

// Render dispatches game:render(ratio) where ratio = lag/fixed_dt (spec
// §4.7).
func (h *Host) Render(ratio float64) (bool, error) {
	return h.call("render", h.hasRender, 1, func() {
		h.L.Push(lua.LNumber(ratio))
	})
}

func (h *Host) stepGC(dt time.Duration) {
	switch h.gcMode {
	case GCPeriodic:
		h.gcAccum += dt
		if h.gcAccum >= h.gcPeriod {
			h.gcAccum -= h.gcPeriod
			h.L.DoString("collectgarbage()")
		}
	case GCContinuous:
		for i := 0; i < h.gcStepSize; i++ {
			h.L.DoString("collectgarbage('step')")
		}
	}
}

// Close releases the VM.
func (h *Host) Close() { h.L.Close() }
