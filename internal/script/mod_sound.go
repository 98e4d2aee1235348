package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/audio"
	"github.com/retrograde-labs/pixelforge/internal/storage"
)

const sourceTypeName = "pixelforge.source"

func checkSource(L *lua.LState, n int) *audio.Source {
	ud := L.CheckUserData(n)
	s, ok := ud.Value.(*audio.Source)
	if !ok {
		L.ArgError(n, "source expected")
	}
	return s
}

// soundSourceLoader exposes audio.Source as sound.source (spec §3,
// §4.4).
func soundSourceLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, sourceTypeName, map[string]lua.LGFunction{
			"reset": func(L *lua.LState) int {
				if err := checkSource(L, 1).Reset(); err != nil {
					L.Push(lua.LString(err.Error()))
					return 1
				}
				return 0
			},
			"set_looped": func(L *lua.LState) int {
				checkSource(L, 1).SetLooped(bool(L.CheckBool(2)))
				return 0
			},
			"looped": func(L *lua.LState) int {
				L.Push(lua.LBool(checkSource(L, 1).Looped()))
				return 1
			},
			"set_group": func(L *lua.LState) int {
				checkSource(L, 1).SetGroup(int(L.CheckNumber(2)))
				return 0
			},
			"group": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkSource(L, 1).Group()))
				return 1
			},
			"set_gain": func(L *lua.LState) int {
				checkSource(L, 1).SetGain(float32(L.CheckNumber(2)))
				return 0
			},
			"gain": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkSource(L, 1).Gain()))
				return 1
			},
			"set_pan": func(L *lua.LState) int {
				checkSource(L, 1).SetPan(float32(L.CheckNumber(2)))
				return 0
			},
			"pan": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkSource(L, 1).Pan()))
				return 1
			},
			"set_balance": func(L *lua.LState) int {
				checkSource(L, 1).SetBalance(float32(L.CheckNumber(2)))
				return 0
			},
			"balance": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkSource(L, 1).Balance()))
				return 1
			},
			"set_speed": func(L *lua.LState) int {
				checkSource(L, 1).SetSpeed(float32(L.CheckNumber(2)))
				return 0
			},
			"speed": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkSource(L, 1).Speed()))
				return 1
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new_tone": func(L *lua.LState) int {
				freq := float64(L.CheckNumber(1))
				frames := int(L.OptNumber(2, 0))
				decoder := &audio.SineDecoder{SampleRate: 44100, Freq: freq, Frames: frames}
				L.Push(newInstance(L, mt, audio.NewSource(audio.KindSample, decoder)))
				return 1
			},
			"new_pcm": func(L *lua.LState) int {
				name := L.CheckString(1)
				r, err := ctx.Storage.Load(name, storage.ResourceBlob)
				if err != nil {
					L.Push(lua.LNil)
					L.Push(lua.LString(err.Error()))
					return 2
				}
				decoder := &audio.PCMDecoder{Samples: audio.DecodePCMBytes(r.Blob)}
				L.Push(newInstance(L, mt, audio.NewSource(audio.KindMusic, decoder)))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

// soundSpeakersLoader exposes the shared audio.Context (carried on
// HostContext, spec §9 singleton-per-context) as sound.speakers: group
// routing and the track/untrack lifecycle (spec §4.4).
func soundSpeakersLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"play": func(L *lua.LState) int {
				resetFirst := L.OptBool(2, true)
				if err := ctx.Mixer.Track(checkSource(L, 1), resetFirst); err != nil {
					L.Push(lua.LString(err.Error()))
					return 1
				}
				return 0
			},
			"stop": func(L *lua.LState) int {
				ctx.Mixer.Untrack(checkSource(L, 1))
				return 0
			},
			"halt": func(L *lua.LState) int {
				ctx.Mixer.Halt()
				return 0
			},
			"tracked_count": func(L *lua.LState) int {
				L.Push(lua.LNumber(ctx.Mixer.TrackedCount()))
				return 1
			},
			"set_group_gain": func(L *lua.LState) int {
				idx := int(L.CheckNumber(1))
				g := ctx.Mixer.Group(idx)
				g.Gain = float32(L.CheckNumber(2))
				ctx.Mixer.SetGroup(idx, g)
				return 0
			},
			"group_gain": func(L *lua.LState) int {
				L.Push(lua.LNumber(ctx.Mixer.Group(int(L.CheckNumber(1))).Gain))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}
