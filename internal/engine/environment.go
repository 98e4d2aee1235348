// Package engine implements the fixed-timestep main loop, the
// environment's per-phase state snapshot and event synthesis, and
// platform path resolution (spec §4.7, §4.9).
package engine

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// EventKind names one synthesized environment transition (spec §4.7
// "Event synthesis enumerates transitions ... into named events").
type EventKind int

const (
	EventFocusGained EventKind = iota
	EventFocusLost
	EventControllerConnected
	EventControllerDisconnected
)

// Event is one entry of the per-frame event sequence delivered to
// script's process() (spec §4.7).
type Event struct {
	Kind           EventKind
	ControllerSlot int // valid for Connected/Disconnected
}

// Environment tracks the prior frame's focus/controller state so
// Process can diff it against the current frame and synthesize events
// (spec §4.7 "Event synthesis").
type Environment struct {
	focusWas        bool
	controllerWas   [4]bool
	events          []Event // reused across frames, cleared not reallocated
}

// NewEnvironment returns an Environment assuming focus is initially
// active and no controllers connected.
func NewEnvironment() *Environment {
	return &Environment{focusWas: true}
}

// Process diffs this frame's focus/controller readings against the
// previous frame and returns the synthesized event sequence. The
// returned slice is reused across calls (spec §9 "zero-alloc per-frame
// event queue" design note) — callers must not retain it past the next
// Process call.
func (e *Environment) Process(focusIs bool, controllerIs [4]bool) []Event {
	e.events = e.events[:0]

	if focusIs && !e.focusWas {
		e.events = append(e.events, Event{Kind: EventFocusGained})
	} else if !focusIs && e.focusWas {
		e.events = append(e.events, Event{Kind: EventFocusLost})
	}
	e.focusWas = focusIs

	for i := range controllerIs {
		if controllerIs[i] && !e.controllerWas[i] {
			e.events = append(e.events, Event{Kind: EventControllerConnected, ControllerSlot: i})
		} else if !controllerIs[i] && e.controllerWas[i] {
			e.events = append(e.events, Event{Kind: EventControllerDisconnected, ControllerSlot: i})
		}
		e.controllerWas[i] = controllerIs[i]
	}

	return e.events
}

// UserDir returns the platform user-data root (spec §6 "Environment:
// HOME on POSIX or %AppData% on Windows"), used by storage.SetIdentity.
func UserDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("AppData"); appData != "" {
			return appData
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ExpandPath expands a leading "~" or "%AppData%" prefix (spec §6)
// against the platform user directory; other paths pass through
// unchanged.
func ExpandPath(path string) string {
	switch {
	case strings.HasPrefix(path, "~/"), path == "~":
		return filepath.Join(UserDir(), strings.TrimPrefix(path, "~"))
	case strings.HasPrefix(path, "%AppData%"):
		return filepath.Join(UserDir(), strings.TrimPrefix(path, "%AppData%"))
	default:
		return path
	}
}
