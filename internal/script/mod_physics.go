package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/physics"
)

const bodyTypeName = "pixelforge.body"

func checkBody(L *lua.LState, n int) *physics.Body {
	ud := L.CheckUserData(n)
	b, ok := ud.Value.(*physics.Body)
	if !ok {
		L.ArgError(n, "body expected")
	}
	return b
}

func vecArg(L *lua.LState, xi, yi int) physics.Vector {
	return physics.Vector{X: float64(L.CheckNumber(xi)), Y: float64(L.CheckNumber(yi))}
}

func pushVec(L *lua.LState, v physics.Vector) int {
	L.Push(lua.LNumber(v.X))
	L.Push(lua.LNumber(v.Y))
	return 2
}

// physicsBodyLoader exposes physics.Body as physics.body (spec §3
// "Physics façade").
func physicsBodyLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, bodyTypeName, map[string]lua.LGFunction{
			"set_type": func(L *lua.LState) int {
				var kind physics.Kind
				switch L.CheckString(2) {
				case "kinematic":
					kind = physics.Kinematic
				case "static":
					kind = physics.Static
				default:
					kind = physics.Dynamic
				}
				checkBody(L, 1).SetType(kind)
				return 0
			},
			"set_enabled": func(L *lua.LState) int {
				checkBody(L, 1).SetEnabled(bool(L.CheckBool(2)))
				return 0
			},
			"enabled": func(L *lua.LState) int {
				L.Push(lua.LBool(checkBody(L, 1).Enabled()))
				return 1
			},
			"set_mass": func(L *lua.LState) int {
				checkBody(L, 1).SetMass(float64(L.CheckNumber(2)))
				return 0
			},
			"mass": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkBody(L, 1).Mass()))
				return 1
			},
			"set_position": func(L *lua.LState) int {
				checkBody(L, 1).SetPosition(vecArg(L, 2, 3))
				return 0
			},
			"position": func(L *lua.LState) int { return pushVec(L, checkBody(L, 1).Position()) },
			"set_angle": func(L *lua.LState) int {
				checkBody(L, 1).SetAngle(float64(L.CheckNumber(2)))
				return 0
			},
			"angle": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkBody(L, 1).Angle()))
				return 1
			},
			"set_momentum": func(L *lua.LState) int {
				checkBody(L, 1).SetMomentum(float64(L.CheckNumber(2)))
				return 0
			},
			"momentum": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkBody(L, 1).Momentum()))
				return 1
			},
			"set_momentum_for_box": func(L *lua.LState) int {
				checkBody(L, 1).SetMomentumForBox(float64(L.CheckNumber(2)), float64(L.CheckNumber(3)), float64(L.CheckNumber(4)))
				return 0
			},
			"set_momentum_for_circle": func(L *lua.LState) int {
				checkBody(L, 1).SetMomentumForCircle(float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
				return 0
			},
			"set_velocity": func(L *lua.LState) int {
				checkBody(L, 1).SetVelocity(vecArg(L, 2, 3))
				return 0
			},
			"velocity": func(L *lua.LState) int { return pushVec(L, checkBody(L, 1).Velocity()) },
			"set_force": func(L *lua.LState) int {
				checkBody(L, 1).SetForce(vecArg(L, 2, 3))
				return 0
			},
			"set_angular_velocity": func(L *lua.LState) int {
				checkBody(L, 1).SetAngularVelocity(float64(L.CheckNumber(2)))
				return 0
			},
			"angular_velocity": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkBody(L, 1).AngularVelocity()))
				return 1
			},
			"set_torque": func(L *lua.LState) int {
				checkBody(L, 1).SetTorque(float64(L.CheckNumber(2)))
				return 0
			},
			"set_elasticity": func(L *lua.LState) int {
				checkBody(L, 1).SetElasticity(float64(L.CheckNumber(2)))
				return 0
			},
			"elasticity": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkBody(L, 1).Elasticity()))
				return 1
			},
			"set_density": func(L *lua.LState) int {
				checkBody(L, 1).SetDensity(float64(L.CheckNumber(2)))
				return 0
			},
			"density": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkBody(L, 1).Density()))
				return 1
			},
			"width":  func(L *lua.LState) int { L.Push(lua.LNumber(checkBody(L, 1).Width())); return 1 },
			"height": func(L *lua.LState) int { L.Push(lua.LNumber(checkBody(L, 1).Height())); return 1 },
			"radius": func(L *lua.LState) int { L.Push(lua.LNumber(checkBody(L, 1).Radius())); return 1 },
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new_box": func(L *lua.LState) int {
				w, h := float64(L.CheckNumber(1)), float64(L.CheckNumber(2))
				corner := float64(L.OptNumber(3, 0))
				L.Push(newInstance(L, mt, physics.NewBox(w, h, corner)))
				return 1
			},
			"new_circle": func(L *lua.LState) int {
				L.Push(newInstance(L, mt, physics.NewCircle(float64(L.CheckNumber(1)))))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

// physicsWorldLoader exposes the single shared physics.World carried on
// HostContext as physics.world (spec §3, §9 singleton-per-context).
func physicsWorldLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"set_gravity": func(L *lua.LState) int {
				ctx.World.SetGravity(vecArg(L, 1, 2))
				return 0
			},
			"gravity": func(L *lua.LState) int { return pushVec(L, ctx.World.Gravity()) },
			"set_damping": func(L *lua.LState) int {
				ctx.World.SetDamping(float64(L.CheckNumber(1)))
				return 0
			},
			"damping": func(L *lua.LState) int {
				L.Push(lua.LNumber(ctx.World.Damping()))
				return 1
			},
			"add_body": func(L *lua.LState) int {
				ctx.World.AddBody(checkBody(L, 1))
				return 0
			},
			"remove_body": func(L *lua.LState) int {
				ctx.World.RemoveBody(checkBody(L, 1))
				return 0
			},
			"body_count": func(L *lua.LState) int {
				L.Push(lua.LNumber(ctx.World.BodyCount()))
				return 1
			},
			"step": func(L *lua.LState) int {
				ctx.World.Update(float64(L.CheckNumber(1)))
				return 0
			},
		})
		L.Push(mod)
		return 1
	}
}
