package script

import (
	"math/rand"

	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/logging"
)

// coreLogLoader exposes the component-tagged logger to scripts as
// core.log.{error,warning,info,debug,trace}(message).
func coreLogLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		entry := func(lvl logging.Level) lua.LGFunction {
			return func(L *lua.LState) int {
				msg := L.CheckString(1)
				if ctx.Log != nil {
					ctx.Log.Log(logging.ComponentScript, lvl, msg, nil)
				}
				return 0
			}
		}
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"error":   entry(logging.LevelError),
			"warning": entry(logging.LevelWarning),
			"info":    entry(logging.LevelInfo),
			"debug":   entry(logging.LevelDebug),
			"trace":   entry(logging.LevelTrace),
		})
		L.Push(mod)
		return 1
	}
}

// coreMathLoader exposes deterministic-seedable randomness and a few
// numeric helpers the standard math library doesn't carry (spec §4.6
// "core.math: seeded PRNG, clamp/lerp/wrap").
func coreMathLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		rng := rand.New(rand.NewSource(1))
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"seed": func(L *lua.LState) int {
				rng = rand.New(rand.NewSource(int64(L.CheckNumber(1))))
				return 0
			},
			"random": func(L *lua.LState) int {
				switch L.GetTop() {
				case 0:
					L.Push(lua.LNumber(rng.Float64()))
				case 1:
					n := int(L.CheckNumber(1))
					L.Push(lua.LNumber(rng.Intn(n) + 1))
				default:
					lo := int(L.CheckNumber(1))
					hi := int(L.CheckNumber(2))
					L.Push(lua.LNumber(lo + rng.Intn(hi-lo+1)))
				}
				return 1
			},
			"clamp": func(L *lua.LState) int {
				v, lo, hi := float64(L.CheckNumber(1)), float64(L.CheckNumber(2)), float64(L.CheckNumber(3))
				if v < lo {
					v = lo
				}
				if v > hi {
					v = hi
				}
				L.Push(lua.LNumber(v))
				return 1
			},
			"lerp": func(L *lua.LState) int {
				a, b, t := float64(L.CheckNumber(1)), float64(L.CheckNumber(2)), float64(L.CheckNumber(3))
				L.Push(lua.LNumber(a + (b-a)*t))
				return 1
			},
			"wrap": func(L *lua.LState) int {
				v, lo, hi := float64(L.CheckNumber(1)), float64(L.CheckNumber(2)), float64(L.CheckNumber(3))
				span := hi - lo
				if span <= 0 {
					L.Push(lua.LNumber(lo))
					return 1
				}
				for v < lo {
					v += span
				}
				for v >= hi {
					v -= span
				}
				L.Push(lua.LNumber(v))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

// coreSystemLoader exposes boot-time identity (spec §4.6 "core.system").
func coreSystemLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"identity": func(L *lua.LState) int {
				L.Push(lua.LString(ctx.Identity))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}
