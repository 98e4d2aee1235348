package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/display"
)

const paletteTypeName = "pixelforge.palette"

func checkPalette(L *lua.LState, n int) *display.Palette {
	ud := L.CheckUserData(n)
	p, ok := ud.Value.(*display.Palette)
	if !ok {
		L.ArgError(n, "palette expected")
	}
	return p
}

func colorArg(L *lua.LState, ri, gi, bi, ai int) display.Color {
	a := uint8(255)
	if ai > 0 {
		a = uint8(L.OptNumber(ai, 255))
	}
	return display.Color{R: uint8(L.CheckNumber(ri)), G: uint8(L.CheckNumber(gi)), B: uint8(L.CheckNumber(bi)), A: a}
}

func pushColor(L *lua.LState, c display.Color) int {
	L.Push(lua.LNumber(c.R))
	L.Push(lua.LNumber(c.G))
	L.Push(lua.LNumber(c.B))
	L.Push(lua.LNumber(c.A))
	return 4
}

// graphicsPaletteLoader exposes display.Palette as graphics.palette
// (spec §3, §8).
func graphicsPaletteLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, paletteTypeName, map[string]lua.LGFunction{
			"size": func(L *lua.LState) int { L.Push(lua.LNumber(checkPalette(L, 1).Size())); return 1 },
			"at": func(L *lua.LState) int {
				return pushColor(L, checkPalette(L, 1).At(uint8(L.CheckNumber(2))))
			},
			"set": func(L *lua.LState) int {
				checkPalette(L, 1).Set(uint8(L.CheckNumber(2)), colorArg(L, 3, 4, 5, 6))
				return 0
			},
			"nearest_match": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkPalette(L, 1).NearestMatch(colorArg(L, 2, 3, 4, 5))))
				return 1
			},
			"clone": func(L *lua.LState) int {
				L.Push(newInstance(L, L.GetTypeMetatable(paletteTypeName).(*lua.LTable), checkPalette(L, 1).Clone()))
				return 1
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				tbl := L.CheckTable(1)
				var colors []display.Color
				tbl.ForEach(func(_ lua.LValue, v lua.LValue) {
					row, ok := v.(*lua.LTable)
					if !ok {
						return
					}
					colors = append(colors, display.Color{
						R: uint8(lua.LVAsNumber(row.RawGetInt(1))),
						G: uint8(lua.LVAsNumber(row.RawGetInt(2))),
						B: uint8(lua.LVAsNumber(row.RawGetInt(3))),
						A: 255,
					})
				})
				L.Push(newInstance(L, mt, display.NewPalette(colors)))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

// graphicsDisplayLoader exposes the shared display.Display singleton
// (spec §9 "Global subsystem singletons") as graphics.display: screen
// canvas access, palette swap, display-level shifting, and shake offset
// (spec §4.3).
func graphicsDisplayLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		canvasMT := L.GetTypeMetatable(canvasTypeName)
		paletteMT := L.GetTypeMetatable(paletteTypeName)

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"screen": func(L *lua.LState) int {
				L.Push(newInstance(L, canvasMT.(*lua.LTable), ctx.Display.Surface))
				return 1
			},
			"palette": func(L *lua.LState) int {
				L.Push(newInstance(L, paletteMT.(*lua.LTable), ctx.Display.Palette))
				return 1
			},
			"set_palette": func(L *lua.LState) int {
				ctx.Display.Palette = checkPalette(L, 1)
				return 0
			},
			"set_shifting": func(L *lua.LState) int {
				tbl := L.OptTable(1, nil)
				if tbl == nil {
					ctx.Display.Shifting = display.IdentityShiftingMap()
					return 0
				}
				tbl.ForEach(func(_ lua.LValue, v lua.LValue) {
					row, ok := v.(*lua.LTable)
					if !ok {
						return
					}
					from := uint8(lua.LVAsNumber(row.RawGetInt(1)))
					to := uint8(lua.LVAsNumber(row.RawGetInt(2)))
					ctx.Display.Shifting[from] = to
				})
				return 0
			},
			"set_shake": func(L *lua.LState) int {
				ctx.Display.ShakeOffsetX = int(L.CheckNumber(1))
				ctx.Display.ShakeOffsetY = int(L.CheckNumber(2))
				return 0
			},
			"set_program": func(L *lua.LState) int {
				ctx.Display.Copperlist = checkProgram(L, 1).Copperlist()
				return 0
			},
			"clear_program": func(L *lua.LState) int {
				ctx.Display.Copperlist = nil
				return 0
			},
		})
		L.Push(mod)
		return 1
	}
}

const programTypeName = "pixelforge.program"

func checkProgram(L *lua.LState, n int) *display.Program {
	ud := L.CheckUserData(n)
	p, ok := ud.Value.(*display.Program)
	if !ok {
		L.ArgError(n, "program expected")
	}
	return p
}

// graphicsProgramLoader exposes the display.Program copperlist builder
// as graphics.program (spec §4.3).
func graphicsProgramLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, programTypeName, map[string]lua.LGFunction{
			"wait": func(L *lua.LState) int {
				checkProgram(L, 1).Wait(int(L.CheckNumber(2)), int(L.CheckNumber(3)))
				L.Push(L.Get(1))
				return 1
			},
			"skip": func(L *lua.LState) int {
				checkProgram(L, 1).Skip(int(L.CheckNumber(2)), int(L.CheckNumber(3)))
				L.Push(L.Get(1))
				return 1
			},
			"modulo": func(L *lua.LState) int {
				checkProgram(L, 1).Modulo(int(L.CheckNumber(2)))
				L.Push(L.Get(1))
				return 1
			},
			"offset": func(L *lua.LState) int {
				checkProgram(L, 1).Offset(int(L.CheckNumber(2)))
				L.Push(L.Get(1))
				return 1
			},
			"color": func(L *lua.LState) int {
				checkProgram(L, 1).Color(uint8(L.CheckNumber(2)), colorArg(L, 3, 4, 5, 6))
				L.Push(L.Get(1))
				return 1
			},
			"shift": func(L *lua.LState) int {
				checkProgram(L, 1).Shift(uint8(L.CheckNumber(2)), uint8(L.CheckNumber(3)))
				L.Push(L.Get(1))
				return 1
			},
			"nop": func(L *lua.LState) int {
				checkProgram(L, 1).Nop()
				L.Push(L.Get(1))
				return 1
			},
			"gradient": func(L *lua.LState) int {
				p := checkProgram(L, 1)
				index := uint8(L.CheckNumber(2))
				tbl := L.CheckTable(3)
				var stops []display.ColorStop
				tbl.ForEach(func(_ lua.LValue, v lua.LValue) {
					row, ok := v.(*lua.LTable)
					if !ok {
						return
					}
					stops = append(stops, display.ColorStop{
						Line: int(lua.LVAsNumber(row.RawGetString("line"))),
						Color: display.Color{
							R: uint8(lua.LVAsNumber(row.RawGetString("r"))),
							G: uint8(lua.LVAsNumber(row.RawGetString("g"))),
							B: uint8(lua.LVAsNumber(row.RawGetString("b"))),
							A: 255,
						},
					})
				})
				p.Gradient(index, stops)
				L.Push(L.Get(1))
				return 1
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				L.Push(newInstance(L, mt, display.NewProgram()))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

// graphicsXFormLoader exposes the affine scanline compositor and the
// stencil/blend pixel combinators as graphics.xform (spec §4.2);
// display.Process is not exposed to scripts.
func graphicsXFormLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"blit": func(L *lua.LState) int {
				xf := display.XForm{
					A: float64(L.CheckNumber(6)), B: float64(L.CheckNumber(7)),
					C: float64(L.CheckNumber(8)), D: float64(L.CheckNumber(9)),
					X: float64(L.CheckNumber(10)), Y: float64(L.CheckNumber(11)),
					Wrap: display.WrapMode(int(L.OptNumber(12, 0))),
				}
				display.XFormBlit(xf, checkCanvas(L, 1), pt2(L, 2, 3), checkCanvas(L, 4), rectArg(L, 5))
				return 0
			},
			"stencil": func(L *lua.LState) int {
				display.Stencil(
					checkCanvas(L, 1), pt2(L, 2, 3), checkCanvas(L, 4), rectArg(L, 5),
					checkCanvas(L, 9), display.Comparator(int(L.CheckNumber(10))), uint8(L.CheckNumber(11)))
				return 0
			},
			"blend": func(L *lua.LState) int {
				display.Blend(
					checkCanvas(L, 1), pt2(L, 2, 3), checkCanvas(L, 4), rectArg(L, 5),
					checkPalette(L, 9), display.BlendFunc(int(L.CheckNumber(10))))
				return 0
			},
		})
		L.Push(mod)
		return 1
	}
}
