package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/retrograde-labs/pixelforge/internal/apperr"
	"github.com/retrograde-labs/pixelforge/internal/audio"
	"github.com/retrograde-labs/pixelforge/internal/config"
	"github.com/retrograde-labs/pixelforge/internal/display"
	"github.com/retrograde-labs/pixelforge/internal/engine"
	"github.com/retrograde-labs/pixelforge/internal/input"
	"github.com/retrograde-labs/pixelforge/internal/logging"
	"github.com/retrograde-labs/pixelforge/internal/physics"
	"github.com/retrograde-labs/pixelforge/internal/platform"
	"github.com/retrograde-labs/pixelforge/internal/script"
	"github.com/retrograde-labs/pixelforge/internal/storage"
)

// engineVersion is this build's own {major,minor,revision}, checked
// against tofu.config's system.version (spec §6 "Engine
// version must be ≥ required version from config").
var engineVersion = config.Version{Major: 1, Minor: 0, Revision: 0}

const bootModule = "main"

func main() {
	dataPath := "."
	var overrides []string
	for _, arg := range os.Args[1:] {
		switch {
		case len(arg) >= 7 && arg[:7] == "--path=":
			dataPath = arg[7:]
		default:
			overrides = append(overrides, arg)
		}
	}

	if err := run(dataPath, overrides); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(dataPath string, overrides []string) error {
	log := logging.New(4096)
	log.SetEchoStderr(true)
	defer log.Shutdown()

	store := storage.New(log)
	store.MountCache()
	store.MountFolder(dataPath)

	cfg, err := loadConfig(store, overrides)
	if err != nil {
		return err
	}
	if err := config.RequireVersion(engineVersion, cfg.System.Version); err != nil {
		return err
	}
	if cfg.System.Identity != "" {
		if err := store.SetIdentity(engine.UserDir(), cfg.System.Identity); err != nil {
			return err
		}
	}

	plat, err := platform.Open(platform.WindowConfig{
		Title:        cfg.Display.Title,
		Width:        cfg.Display.Width,
		Height:       cfg.Display.Height,
		Scale:        cfg.Display.Scale,
		Fullscreen:   cfg.Display.Fullscreen,
		VerticalSync: cfg.Display.VerticalSync,
		Effect:       cfg.Display.Effect,
	})
	if err != nil {
		return err
	}
	defer plat.Close()

	if cfg.System.Mappings != "" {
		if mapData, err := store.Load(cfg.System.Mappings, storage.ResourceString); err == nil {
			if err := plat.LoadMappings(mapData.Text); err != nil {
				log.Logf(logging.ComponentEngine, logging.LevelWarning, "controller mappings: %v", err)
			}
		}
	}

	canvasW, canvasH := plat.CanvasSize()
	disp := display.NewDisplay(canvasW, canvasH, defaultPalette())

	mixer := audio.NewContext(44100)
	var pumpAudio func(*audio.Context) error
	if err := plat.OpenAudio(mixer); err != nil {
		log.Logf(logging.ComponentEngine, logging.LevelWarning, "audio device: %v", err)
	} else {
		pumpAudio = func(m *audio.Context) error { return plat.PumpAudio(m) }
	}

	agg := input.NewAggregator()
	agg.Keyboard.SetExitKey(keyboardExitKey(cfg.Keyboard.ExitKey))
	agg.Cursor.SetEnabled(cfg.Cursor.Enabled)
	agg.Cursor.SetHidden(cfg.Cursor.Hide)
	agg.CursorSpeed = cfg.Cursor.Speed
	agg.Deadzone = input.Deadzone{Inner: cfg.Controller.InnerDeadzone, Outer: cfg.Controller.OuterDeadzone}

	world := physics.NewWorld()

	hostCtx := &script.HostContext{
		Storage:       store,
		Display:       disp,
		Mixer:         mixer,
		Input:         agg,
		World:         world,
		Log:           log,
		Identity:      cfg.System.Identity,
		StrictMethods: cfg.System.Debug,
	}
	host := script.NewHost(hostCtx)
	defer host.Close()

	if err := host.Boot(bootModule); err != nil {
		return err
	}

	engCfg := engine.NewConfig(cfg.Engine.FramesPerSecond, cfg.Engine.SkippableFrames, cfg.Engine.FramesLimit)
	eng := engine.New(engCfg, engine.NewEnvironment(), agg, plat, plat, disp, mixer, pumpAudio, store, host)
	return eng.Run()
}

// loadConfig reads tofu.config from the data mount (spec §6), applying
// positional "section.key=value" CLI overrides on top.
func loadConfig(store *storage.Storage, overrides []string) (config.Config, error) {
	cfg := config.Default()
	if r, err := store.Load("tofu.config", storage.ResourceString); err == nil {
		decoded, err := config.Decode([]byte(r.Text))
		if err != nil {
			return config.Config{}, err
		}
		cfg = decoded
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return config.Config{}, err
	}

	for _, o := range overrides {
		if err := config.ApplyOverride(&cfg, o); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func keyboardExitKey(name string) input.Key {
	if name == "" {
		return input.KeyEscape
	}
	if k, ok := keyboardKeyNames[name]; ok {
		return k
	}
	return input.KeyEscape
}

var keyboardKeyNames = map[string]input.Key{
	"escape": input.KeyEscape, "enter": input.KeyEnter, "space": input.KeySpace,
}

// defaultPalette is the boot-time grayscale ramp used until the boot
// script installs its own via graphics.display.set_palette.
func defaultPalette() *display.Palette {
	colors := make([]display.Color, display.MaxPaletteSize)
	for i := range colors {
		v := uint8(i)
		colors[i] = display.Color{R: v, G: v, B: v, A: 255}
	}
	return display.NewPalette(colors)
}
