package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/generators"
)

const (
	noiseTypeName   = "pixelforge.noise"
	tweenerTypeName = "pixelforge.tweener"
	waveTypeName    = "pixelforge.wave"
)

func checkNoise(L *lua.LState) *generators.Noise {
	ud := L.CheckUserData(1)
	n, ok := ud.Value.(*generators.Noise)
	if !ok {
		L.ArgError(1, "noise expected")
	}
	return n
}

func generatorsNoiseLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, noiseTypeName, map[string]lua.LGFunction{
			"generate": func(L *lua.LState) int {
				n := checkNoise(L)
				x := float64(L.CheckNumber(2))
				y := float64(L.CheckNumber(3))
				z := 0.0
				if L.GetTop() >= 4 {
					z = float64(L.CheckNumber(4))
				}
				L.Push(lua.LNumber(n.Generate(x, y, z)))
				return 1
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				kindName := L.CheckString(1)
				seed := int64(L.OptNumber(2, 1))
				var kind generators.NoiseKind
				switch kindName {
				case "simplex":
					kind = generators.NoiseSimplex
				case "cellular":
					kind = generators.NoiseCellular
				default:
					kind = generators.NoisePerlin
				}
				L.Push(newInstance(L, mt, generators.NewNoise(kind, seed)))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

func checkTweener(L *lua.LState) *generators.Tweener {
	ud := L.CheckUserData(1)
	t, ok := ud.Value.(*generators.Tweener)
	if !ok {
		L.ArgError(1, "tweener expected")
	}
	return t
}

var easingNames = map[string]generators.Easing{
	"linear": generators.Linear,
	"quadratic_in": generators.QuadraticIn, "quadratic_out": generators.QuadraticOut, "quadratic_in_out": generators.QuadraticInOut,
	"cubic_in": generators.CubicIn, "cubic_out": generators.CubicOut, "cubic_in_out": generators.CubicInOut,
	"quartic_in": generators.QuarticIn, "quartic_out": generators.QuarticOut, "quartic_in_out": generators.QuarticInOut,
	"quintic_in": generators.QuinticIn, "quintic_out": generators.QuinticOut, "quintic_in_out": generators.QuinticInOut,
	"sine_in": generators.SineIn, "sine_out": generators.SineOut, "sine_in_out": generators.SineInOut,
	"circular_in": generators.CircularIn, "circular_out": generators.CircularOut, "circular_in_out": generators.CircularInOut,
	"exponential_in": generators.ExponentialIn, "exponential_out": generators.ExponentialOut, "exponential_in_out": generators.ExponentialInOut,
	"elastic_in": generators.ElasticIn, "elastic_out": generators.ElasticOut, "elastic_in_out": generators.ElasticInOut,
	"back_in": generators.BackIn, "back_out": generators.BackOut, "back_in_out": generators.BackInOut,
	"bounce_in": generators.BounceIn, "bounce_out": generators.BounceOut, "bounce_in_out": generators.BounceInOut,
}

func generatorsTweenerLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, tweenerTypeName, map[string]lua.LGFunction{
			"advance": func(L *lua.LState) int {
				t := checkTweener(L)
				delta := float64(L.CheckNumber(2))
				L.Push(lua.LNumber(t.Advance(delta)))
				return 1
			},
			"value": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkTweener(L).Value()))
				return 1
			},
			"done": func(L *lua.LState) int {
				L.Push(lua.LBool(checkTweener(L).Done()))
				return 1
			},
			"reset": func(L *lua.LState) int {
				checkTweener(L).Reset()
				return 0
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				easing := easingNames[L.CheckString(1)]
				duration := float64(L.CheckNumber(2))
				from := float64(L.CheckNumber(3))
				to := float64(L.CheckNumber(4))
				L.Push(newInstance(L, mt, generators.NewTweener(easing, duration, from, to)))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

func checkWave(L *lua.LState) *generators.Wave {
	ud := L.CheckUserData(1)
	w, ok := ud.Value.(*generators.Wave)
	if !ok {
		L.ArgError(1, "wave expected")
	}
	return w
}

func generatorsWaveLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, waveTypeName, map[string]lua.LGFunction{
			"at": func(L *lua.LState) int {
				w := checkWave(L)
				L.Push(lua.LNumber(w.At(float64(L.CheckNumber(2)))))
				return 1
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				var kind generators.WaveKind
				switch L.CheckString(1) {
				case "square":
					kind = generators.WaveSquare
				case "triangle":
					kind = generators.WaveTriangle
				case "sawtooth":
					kind = generators.WaveSawtooth
				case "random":
					kind = generators.WaveRandom
				default:
					kind = generators.WaveSine
				}
				amplitude := float64(L.CheckNumber(2))
				period := float64(L.CheckNumber(3))
				L.Push(newInstance(L, mt, generators.NewWave(kind, amplitude, period)))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}
