package engine

import (
	"time"

	"github.com/retrograde-labs/pixelforge/internal/audio"
	"github.com/retrograde-labs/pixelforge/internal/display"
	"github.com/retrograde-labs/pixelforge/internal/input"
	"github.com/retrograde-labs/pixelforge/internal/storage"
)

// Interpreter is the narrow slice of the script host the engine's main
// loop drives each frame (spec §4.6 process/update/render dispatch). A
// concrete *script.Host satisfies this; the engine never imports the
// script package directly, mirroring spec §9's upvalue-context
// decoupling between the loop and the binding layer.
type Interpreter interface {
	Process(events []Event) (bool, error)
	Update(dt time.Duration) (bool, error)
	Render(ratio float64) (bool, error)
}

// Poller additionally exposes the two platform signals event synthesis
// needs (spec §4.7): whether the loop should stop, and whether the
// window currently has focus.
type Poller interface {
	input.Poller
	ShouldClose() bool
	FocusActive() bool
}

// Presenter is the platform's presentation half (spec §4.3).
type Presenter interface {
	Present(d *display.Display) error
}

// Config carries the spec §6 engine.* fields plus the derived fixed
// timestep.
type Config struct {
	FixedDT         time.Duration
	SkippableFrames int
	ReferenceTime   time.Duration // 0 disables frame-rate capping
}

// NewConfig derives a Config from spec §6 engine.{frames_per_second,
// skippable_frames, frames_limit}.
func NewConfig(fps, skippableFrames, framesLimit int) Config {
	if fps <= 0 {
		fps = 60
	}
	if skippableFrames <= 0 {
		skippableFrames = 1
	}
	cfg := Config{
		FixedDT:         time.Second / time.Duration(fps),
		SkippableFrames: skippableFrames,
	}
	if framesLimit > 0 {
		cfg.ReferenceTime = time.Second / time.Duration(framesLimit)
	}
	return cfg
}

// Engine runs the fixed-timestep main loop of spec §4.7, driving
// environment/input/script/audio/storage/display each frame.
type Engine struct {
	cfg         Config
	env         *Environment
	input       *input.Aggregator
	poller      Poller
	presenter   Presenter
	display     *display.Display
	mixer       *audio.Context
	pumpAudio   func(*audio.Context) error
	store       *storage.Storage
	interpreter Interpreter

	lag time.Duration
}

// New wires the subsystems the main loop drives. pumpAudio is called
// once per fixed timestep to top up the platform's audio queue (spec
// §4.4); it may be nil if no audio device was opened.
func New(cfg Config, env *Environment, agg *input.Aggregator, poller Poller, presenter Presenter,
	disp *display.Display, mixer *audio.Context, pumpAudio func(*audio.Context) error,
	store *storage.Storage, interp Interpreter) *Engine {
	return &Engine{
		cfg: cfg, env: env, input: agg, poller: poller, presenter: presenter,
		display: disp, mixer: mixer, pumpAudio: pumpAudio, store: store, interpreter: interp,
	}
}

// Run drives the main loop until the window closes, the script or
// platform requests a stop, or an unrecoverable error is raised (spec
// §4.7, §5 "within a frame, phases run strictly process → events →
// script.process → (update loop) → script.render → present → sleep").
func (e *Engine) Run() error {
	running := true
	previous := time.Now()

	for running && !e.poller.ShouldClose() {
		current := time.Now()
		elapsed := current.Sub(previous)
		previous = current

		e.input.Process(e.poller)

		var controllers [4]bool
		for i := range e.input.Controllers {
			controllers[i] = e.input.Controllers[i].Connected
		}
		events := e.env.Process(e.poller.FocusActive(), controllers)

		var err error
		running, err = e.interpreter.Process(events)
		if err != nil {
			return err
		}

		e.lag += elapsed
		frames := 0
		for running && e.lag >= e.cfg.FixedDT && frames < e.cfg.SkippableFrames {
			if running, err = e.interpreter.Update(e.cfg.FixedDT); err != nil {
				return err
			}
			e.input.Update(e.cfg.FixedDT, e.poller)
			e.store.Update(e.cfg.FixedDT)
			if e.pumpAudio != nil {
				if err := e.pumpAudio(e.mixer); err != nil {
					return err
				}
			}
			e.lag -= e.cfg.FixedDT
			frames++
		}

		ratio := float64(e.lag) / float64(e.cfg.FixedDT)
		if running {
			if running, err = e.interpreter.Render(ratio); err != nil {
				return err
			}
		}

		e.display.Convert()
		if err := e.presenter.Present(e.display); err != nil {
			return err
		}

		if e.cfg.ReferenceTime > 0 {
			spent := time.Since(current)
			if spent < e.cfg.ReferenceTime {
				time.Sleep(e.cfg.ReferenceTime - spent)
			}
		}
	}
	return nil
}
