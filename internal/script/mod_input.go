package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/input"
)

func pushButton(L *lua.LState, b input.Button) int {
	tbl := L.NewTable()
	tbl.RawSetString("down", lua.LBool(b.Down))
	tbl.RawSetString("pressed", lua.LBool(b.Pressed))
	tbl.RawSetString("released", lua.LBool(b.Released))
	L.Push(tbl)
	return 1
}

func pushStick(L *lua.LState, s input.Stick) int {
	tbl := L.NewTable()
	tbl.RawSetString("x", lua.LNumber(s.X))
	tbl.RawSetString("y", lua.LNumber(s.Y))
	tbl.RawSetString("angle", lua.LNumber(s.Angle))
	tbl.RawSetString("magnitude", lua.LNumber(s.Magnitude))
	L.Push(tbl)
	return 1
}

var keyNames = map[string]input.Key{
	"up": input.KeyUp, "down": input.KeyDown, "left": input.KeyLeft, "right": input.KeyRight,
	"w": input.KeyW, "a": input.KeyA, "s": input.KeyS, "d": input.KeyD,
	"c": input.KeyC, "f": input.KeyF, "v": input.KeyV, "g": input.KeyG,
	"z": input.KeyZ, "x": input.KeyX, "k": input.KeyK, "o": input.KeyO,
	"l": input.KeyL, "p": input.KeyP, "n": input.KeyN, "m": input.KeyM,
	"q": input.KeyQ, "e": input.KeyE, "r": input.KeyR, "t": input.KeyT,
	"y": input.KeyY, "u": input.KeyU, "i": input.KeyI, "j": input.KeyJ,
	"h": input.KeyH, "b": input.KeyB,
	"0": input.Key0, "1": input.Key1, "2": input.Key2, "3": input.Key3, "4": input.Key4, "5": input.Key5,
	"enter": input.KeyEnter, "escape": input.KeyEscape, "space": input.KeySpace,
	"shift": input.KeyShift, "ctrl": input.KeyCtrl, "alt": input.KeyAlt,
}

var controllerButtonNames = map[string]input.ControllerButton{
	"a": input.ButtonA, "b": input.ButtonB, "x": input.ButtonX, "y": input.ButtonY,
	"left_shoulder": input.ButtonLeftShoulder, "right_shoulder": input.ButtonRightShoulder,
	"back": input.ButtonBack, "start": input.ButtonStart,
	"left_stick": input.ButtonLeftStick, "right_stick": input.ButtonRightStick,
	"dpad_up": input.ButtonDPadUp, "dpad_down": input.ButtonDPadDown,
	"dpad_left": input.ButtonDPadLeft, "dpad_right": input.ButtonDPadRight,
}

var cursorButtonNames = map[string]input.CursorButton{
	"left": input.CursorLeft, "middle": input.CursorMiddle, "right": input.CursorRight,
}

// inputKeyboardLoader exposes the aggregator's Keyboard as
// input.keyboard (spec §4.5).
func inputKeyboardLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"button": func(L *lua.LState) int {
				return pushButton(L, ctx.Input.Keyboard.Button(keyNames[L.CheckString(1)]))
			},
			"set_exit_key": func(L *lua.LState) int {
				ctx.Input.Keyboard.SetExitKey(keyNames[L.CheckString(1)])
				return 0
			},
			"exit_requested": func(L *lua.LState) int {
				L.Push(lua.LBool(ctx.Input.Keyboard.ExitRequested()))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

// inputCursorLoader exposes the aggregator's Cursor as input.cursor
// (spec §4.5).
func inputCursorLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"position": func(L *lua.LState) int {
				L.Push(lua.LNumber(ctx.Input.Cursor.X))
				L.Push(lua.LNumber(ctx.Input.Cursor.Y))
				return 2
			},
			"set_position": func(L *lua.LState) int {
				ctx.Input.Cursor.SetPosition(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
				return 0
			},
			"button": func(L *lua.LState) int {
				return pushButton(L, ctx.Input.Cursor.Button(cursorButtonNames[L.CheckString(1)]))
			},
			"set_enabled": func(L *lua.LState) int {
				ctx.Input.Cursor.SetEnabled(bool(L.CheckBool(1)))
				return 0
			},
			"enabled": func(L *lua.LState) int {
				L.Push(lua.LBool(ctx.Input.Cursor.Enabled()))
				return 1
			},
			"set_hidden": func(L *lua.LState) int {
				ctx.Input.Cursor.SetHidden(bool(L.CheckBool(1)))
				return 0
			},
			"hidden": func(L *lua.LState) int {
				L.Push(lua.LBool(ctx.Input.Cursor.Hidden()))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

// inputControllerLoader exposes the aggregator's 4 controller slots as
// input.controller (spec §4.5).
func inputControllerLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"connected": func(L *lua.LState) int {
				slot := int(L.CheckNumber(1))
				if slot < 0 || slot >= len(ctx.Input.Controllers) {
					L.Push(lua.LBool(false))
					return 1
				}
				L.Push(lua.LBool(ctx.Input.Controllers[slot].Connected))
				return 1
			},
			"button": func(L *lua.LState) int {
				slot := int(L.CheckNumber(1))
				if slot < 0 || slot >= len(ctx.Input.Controllers) {
					return pushButton(L, input.Button{})
				}
				return pushButton(L, ctx.Input.Controllers[slot].Button(controllerButtonNames[L.CheckString(2)]))
			},
			"left_stick": func(L *lua.LState) int {
				slot := int(L.CheckNumber(1))
				if slot < 0 || slot >= len(ctx.Input.Controllers) {
					return pushStick(L, input.Stick{})
				}
				return pushStick(L, ctx.Input.Controllers[slot].Left)
			},
			"right_stick": func(L *lua.LState) int {
				slot := int(L.CheckNumber(1))
				if slot < 0 || slot >= len(ctx.Input.Controllers) {
					return pushStick(L, input.Stick{})
				}
				return pushStick(L, ctx.Input.Controllers[slot].Right)
			},
			"left_trigger": func(L *lua.LState) int {
				slot := int(L.CheckNumber(1))
				if slot < 0 || slot >= len(ctx.Input.Controllers) {
					L.Push(lua.LNumber(0))
					return 1
				}
				L.Push(lua.LNumber(ctx.Input.Controllers[slot].LeftTrigger))
				return 1
			},
			"right_trigger": func(L *lua.LState) int {
				slot := int(L.CheckNumber(1))
				if slot < 0 || slot >= len(ctx.Input.Controllers) {
					L.Push(lua.LNumber(0))
					return 1
				}
				L.Push(lua.LNumber(ctx.Input.Controllers[slot].RightTrigger))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}
