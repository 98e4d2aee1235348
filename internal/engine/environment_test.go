package engine

import "testing"

func TestEnvironmentSynthesizesFocusEvents(t *testing.T) {
	env := NewEnvironment()

	events := env.Process(false, [4]bool{})
	if len(events) != 1 || events[0].Kind != EventFocusLost {
		t.Fatalf("expected a single FocusLost event, got %+v", events)
	}

	events = env.Process(false, [4]bool{})
	if len(events) != 0 {
		t.Fatalf("expected no events on steady state, got %+v", events)
	}

	events = env.Process(true, [4]bool{})
	if len(events) != 1 || events[0].Kind != EventFocusGained {
		t.Fatalf("expected a single FocusGained event, got %+v", events)
	}
}

func TestEnvironmentSynthesizesControllerEvents(t *testing.T) {
	env := NewEnvironment()
	env.Process(true, [4]bool{})

	events := env.Process(true, [4]bool{true, false, false, false})
	if len(events) != 1 || events[0].Kind != EventControllerConnected || events[0].ControllerSlot != 0 {
		t.Fatalf("expected controller 0 connected event, got %+v", events)
	}

	events = env.Process(true, [4]bool{false, false, false, false})
	if len(events) != 1 || events[0].Kind != EventControllerDisconnected || events[0].ControllerSlot != 0 {
		t.Fatalf("expected controller 0 disconnected event, got %+v", events)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := UserDir()
	got := ExpandPath("~/saves")
	want := home + "/saves"
	if got != want {
		t.Fatalf("ExpandPath(~/saves) = %q, want %q", got, want)
	}
}
