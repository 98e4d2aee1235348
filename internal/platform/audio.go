package platform

import (
	"encoding/binary"
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/retrograde-labs/pixelforge/internal/audio"
)

const (
	sampleRate   = 44100
	targetQueued = sampleRate / 5 // keep ~200ms of stereo frames queued
)

// OpenAudio opens the SDL audio output device in queue mode: rather
// than a C callback (which would need cgo export plumbing this repo's
// dependency graph doesn't carry), PumpAudio below tops the device's
// internal queue up from mixer.Mix once per fixed timestep (spec §4.4:
// "decoders must not block" — queuing amortizes generation the same
// way a callback would, without crossing the Go/C boundary per sample).
func (p *Platform) OpenAudio(mixer *audio.Context) error {
	spec := sdl.AudioSpec{
		Freq:     sampleRate,
		Format:   sdl.AUDIO_F32SYS,
		Channels: 2,
		Samples:  1024,
	}
	dev, err := sdl.OpenAudioDevice("", false, &spec, nil, 0)
	if err != nil {
		return errPlatform("open audio device", err)
	}
	p.audioDev = dev
	mixer.SetDeviceHooks(
		func() error { sdl.PauseAudioDevice(dev, false); return nil },
		func() error { sdl.PauseAudioDevice(dev, true); return nil },
	)
	sdl.PauseAudioDevice(dev, true)
	return nil
}

// PumpAudio tops up the device queue from mixer, called once per fixed
// timestep from the engine's audio phase (spec §4.7).
func (p *Platform) PumpAudio(mixer *audio.Context) error {
	if p.audioDev == 0 {
		return nil
	}
	queuedBytes := sdl.GetQueuedAudioSize(p.audioDev)
	queuedFrames := int(queuedBytes) / (4 * 2) // float32 stereo frames
	if queuedFrames >= targetQueued {
		return nil
	}
	frames := targetQueued - queuedFrames
	buf := make([]float32, frames*2)
	mixer.Mix(buf)

	raw := make([]byte, len(buf)*4)
	for i, s := range buf {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(s))
	}
	return errPlatform2(sdl.QueueAudio(p.audioDev, raw))
}

func errPlatform2(err error) error {
	if err == nil {
		return nil
	}
	return errPlatform("queue audio", err)
}
