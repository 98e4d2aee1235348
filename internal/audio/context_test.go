package audio

import "testing"

func TestTrackedSourcesContributeToMix(t *testing.T) {
	ctx := NewContext(44100)
	s1 := NewSource(KindSample, &SineDecoder{SampleRate: 44100, Freq: 440})
	s2 := NewSource(KindSample, &SineDecoder{SampleRate: 44100, Freq: 220})
	s1.SetLooped(true)
	s2.SetLooped(true)
	ctx.Track(s1, true)
	ctx.Track(s2, true)

	out := make([]float32, 64*2)
	ctx.Mix(out)

	silent := true
	for _, v := range out {
		if v != 0 {
			silent = false
			break
		}
	}
	if silent {
		t.Fatalf("expected non-silent output with two tracked sources")
	}
}

func TestHaltSilencesOutput(t *testing.T) {
	ctx := NewContext(44100)
	s := NewSource(KindSample, &SineDecoder{SampleRate: 44100, Freq: 440})
	s.SetLooped(true)
	ctx.Track(s, true)

	ctx.Halt()
	out := make([]float32, 32*2)
	ctx.Mix(out)
	for _, v := range out {
		if v != 0 {
			t.Fatalf("expected silence after Halt, got %v", v)
		}
	}
}

func TestUnloopedSourceUntracksAtEOF(t *testing.T) {
	ctx := NewContext(44100)
	s := NewSource(KindSample, &SineDecoder{SampleRate: 44100, Freq: 440, Frames: 8})
	s.SetLooped(false)
	ctx.Track(s, true)

	out := make([]float32, 16*2)
	ctx.Mix(out)

	if ctx.TrackedCount() != 0 {
		t.Fatalf("expected source to be untracked after EOF, count=%d", ctx.TrackedCount())
	}
}

func TestGainPanBalanceRoundTrip(t *testing.T) {
	s := NewSource(KindSample, &SineDecoder{})
	s.SetGain(0.5)
	if s.Gain() != 0.5 {
		t.Fatalf("gain round-trip failed: %v", s.Gain())
	}
	s.SetPan(-2) // out of range, should clamp to -1
	if s.Pan() != -1 {
		t.Fatalf("pan should clamp to -1, got %v", s.Pan())
	}
	s.SetBalance(0.3)
	if s.Balance() != 0.3 {
		t.Fatalf("balance round-trip failed: %v", s.Balance())
	}
}
