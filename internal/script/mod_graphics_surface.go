package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/display"
	"github.com/retrograde-labs/pixelforge/internal/graphics"
)

const canvasTypeName = "pixelforge.canvas"

func checkCanvas(L *lua.LState, n int) *display.Surface {
	ud := L.CheckUserData(n)
	s, ok := ud.Value.(*display.Surface)
	if !ok {
		L.ArgError(n, "canvas expected")
	}
	return s
}

// graphicsCanvasLoader exposes display.Surface's pixel operators as
// graphics.canvas (spec §4.2).
func graphicsCanvasLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, canvasTypeName, map[string]lua.LGFunction{
			"width":  func(L *lua.LState) int { L.Push(lua.LNumber(checkCanvas(L, 1).Width())); return 1 },
			"height": func(L *lua.LState) int { L.Push(lua.LNumber(checkCanvas(L, 1).Height())); return 1 },
			"push":   func(L *lua.LState) int { checkCanvas(L, 1).Push(); return 0 },
			"pop": func(L *lua.LState) int {
				checkCanvas(L, 1).Pop(int(L.OptNumber(2, 0)))
				return 0
			},
			"stack_depth": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkCanvas(L, 1).StackDepth()))
				return 1
			},
			"set_clip": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.SetClip(display.Rect{
					X: int(L.CheckNumber(2)), Y: int(L.CheckNumber(3)),
					W: int(L.CheckNumber(4)), H: int(L.CheckNumber(5)),
				})
				return 0
			},
			"reset_clip": func(L *lua.LState) int { checkCanvas(L, 1).ResetClip(); return 0 },
			"set_transparent": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.SetTransparent(uint8(L.CheckNumber(2)), bool(L.CheckBool(3)))
				return 0
			},
			"set_shifting": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				tbl := L.OptTable(2, nil)
				if tbl == nil {
					s.SetShifting(nil)
					return 0
				}
				var pairs [][2]uint8
				tbl.ForEach(func(_ lua.LValue, v lua.LValue) {
					row, ok := v.(*lua.LTable)
					if !ok {
						return
					}
					from := uint8(lua.LVAsNumber(row.RawGetInt(1)))
					to := uint8(lua.LVAsNumber(row.RawGetInt(2)))
					pairs = append(pairs, [2]uint8{from, to})
				})
				s.SetShifting(pairs)
				return 0
			},
			"peek": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				L.Push(lua.LNumber(s.Peek(int(L.CheckNumber(2)), int(L.CheckNumber(3)))))
				return 1
			},
			"poke": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.Poke(int(L.CheckNumber(2)), int(L.CheckNumber(3)), uint8(L.CheckNumber(4)))
				return 0
			},
			"clear": func(L *lua.LState) int {
				checkCanvas(L, 1).Clear(uint8(L.CheckNumber(2)))
				return 0
			},
			"point": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.Point(int(L.CheckNumber(2)), int(L.CheckNumber(3)), uint8(L.CheckNumber(4)))
				return 0
			},
			"hline": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.HLine(int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)), uint8(L.CheckNumber(5)))
				return 0
			},
			"vline": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.VLine(int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)), uint8(L.CheckNumber(5)))
				return 0
			},
			"line": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.Line(int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)), int(L.CheckNumber(5)), uint8(L.CheckNumber(6)))
				return 0
			},
			"stroked_rectangle": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.StrokedRectangle(int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)), int(L.CheckNumber(5)), uint8(L.CheckNumber(6)))
				return 0
			},
			"filled_rectangle": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.FilledRectangle(int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)), int(L.CheckNumber(5)), uint8(L.CheckNumber(6)))
				return 0
			},
			"stroked_triangle": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.StrokedTriangle(
					int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)),
					int(L.CheckNumber(5)), int(L.CheckNumber(6)), int(L.CheckNumber(7)),
					uint8(L.CheckNumber(8)))
				return 0
			},
			"filled_triangle": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.FilledTriangle(
					int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)),
					int(L.CheckNumber(5)), int(L.CheckNumber(6)), int(L.CheckNumber(7)),
					uint8(L.CheckNumber(8)))
				return 0
			},
			"stroked_circle": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.StrokedCircle(int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)), uint8(L.CheckNumber(5)))
				return 0
			},
			"filled_circle": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.FilledCircle(int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)), uint8(L.CheckNumber(5)))
				return 0
			},
			"fill": func(L *lua.LState) int {
				s := checkCanvas(L, 1)
				s.Fill(int(L.CheckNumber(2)), int(L.CheckNumber(3)), uint8(L.CheckNumber(4)))
				return 0
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				w, h := int(L.CheckNumber(1)), int(L.CheckNumber(2))
				L.Push(newInstance(L, mt, display.NewSurface(w, h)))
				return 1
			},
			"blit": func(L *lua.LState) int {
				display.Blit(checkCanvas(L, 1), pt2(L, 2, 3), checkCanvas(L, 4), rectArg(L, 5))
				return 0
			},
			"copy": func(L *lua.LState) int {
				display.Copy(checkCanvas(L, 1), pt2(L, 2, 3), checkCanvas(L, 4), rectArg(L, 5))
				return 0
			},
			"tile": func(L *lua.LState) int {
				display.Tile(checkCanvas(L, 1), pt2(L, 2, 3), checkCanvas(L, 4), rectArg(L, 5), pt2(L, 9, 10))
				return 0
			},
		})
		L.Push(mod)
		return 1
	}
}

func pt2(L *lua.LState, xi, yi int) display.Point2 {
	return display.Point2{X: int(L.CheckNumber(xi)), Y: int(L.CheckNumber(yi))}
}

func rectArg(L *lua.LState, base int) display.Rect {
	return display.Rect{
		X: int(L.CheckNumber(base)), Y: int(L.CheckNumber(base + 1)),
		W: int(L.CheckNumber(base + 2)), H: int(L.CheckNumber(base + 3)),
	}
}

const bankTypeName = "pixelforge.bank"

func checkBank(L *lua.LState, n int) *graphics.Bank {
	ud := L.CheckUserData(n)
	b, ok := ud.Value.(*graphics.Bank)
	if !ok {
		L.ArgError(n, "bank expected")
	}
	return b
}

// graphicsBankLoader exposes graphics.Bank as graphics.bank (spec §3,
// §4.2).
func graphicsBankLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, bankTypeName, map[string]lua.LGFunction{
			"cell_count": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkBank(L, 1).CellCount()))
				return 1
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new_uniform": func(L *lua.LState) int {
				atlas := checkCanvas(L, 1)
				cw, ch := int(L.CheckNumber(2)), int(L.CheckNumber(3))
				L.Push(newInstance(L, mt, graphics.NewUniformBank(atlas, cw, ch)))
				return 1
			},
			"new_explicit": func(L *lua.LState) int {
				atlas := checkCanvas(L, 1)
				tbl := L.CheckTable(2)
				var cells []display.Rect
				tbl.ForEach(func(_ lua.LValue, v lua.LValue) {
					row, ok := v.(*lua.LTable)
					if !ok {
						return
					}
					cells = append(cells, display.Rect{
						X: int(lua.LVAsNumber(row.RawGetString("x"))),
						Y: int(lua.LVAsNumber(row.RawGetString("y"))),
						W: int(lua.LVAsNumber(row.RawGetString("w"))),
						H: int(lua.LVAsNumber(row.RawGetString("h"))),
					})
				})
				L.Push(newInstance(L, mt, graphics.NewExplicitBank(atlas, cells)))
				return 1
			},
			"from_cell_table": func(L *lua.LState) int {
				atlas := checkCanvas(L, 1)
				data := []byte(L.CheckString(2))
				L.Push(newInstance(L, mt, graphics.NewExplicitBank(atlas, graphics.DecodeCellTable(data))))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

const batchTypeName = "pixelforge.batch"

func checkBatch(L *lua.LState, n int) *graphics.Batch {
	ud := L.CheckUserData(n)
	b, ok := ud.Value.(*graphics.Batch)
	if !ok {
		L.ArgError(n, "batch expected")
	}
	return b
}

// graphicsBatchLoader exposes graphics.Batch as graphics.batch (spec
// §3).
func graphicsBatchLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, batchTypeName, map[string]lua.LGFunction{
			"push": func(L *lua.LState) int {
				b := checkBatch(L, 1)
				req := graphics.DrawRequest{
					CellID:   int(L.CheckNumber(2)),
					X:        float64(L.CheckNumber(3)),
					Y:        float64(L.CheckNumber(4)),
					ScaleX:   float64(L.OptNumber(5, 1)),
					ScaleY:   float64(L.OptNumber(6, 1)),
					Rotation: float64(L.OptNumber(7, 0)),
					AnchorX:  float64(L.OptNumber(8, 0)),
					AnchorY:  float64(L.OptNumber(9, 0)),
				}
				b.Push(req)
				return 0
			},
			"clear": func(L *lua.LState) int { checkBatch(L, 1).Clear(); return 0 },
			"len":   func(L *lua.LState) int { L.Push(lua.LNumber(checkBatch(L, 1).Len())); return 1 },
			"flush": func(L *lua.LState) int {
				checkBatch(L, 1).Flush(checkCanvas(L, 2))
				return 0
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				L.Push(newInstance(L, mt, graphics.NewBatch(checkBank(L, 1))))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

const fontTypeName = "pixelforge.font"

func checkFont(L *lua.LState, n int) *graphics.Font {
	ud := L.CheckUserData(n)
	f, ok := ud.Value.(*graphics.Font)
	if !ok {
		L.ArgError(n, "font expected")
	}
	return f
}

// graphicsFontLoader exposes graphics.Font as graphics.font (spec
// Feature Supplements, grounded on original_source's font module).
func graphicsFontLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, fontTypeName, map[string]lua.LGFunction{
			"set_advance": func(L *lua.LState) int {
				f := checkFont(L, 1)
				glyph := []rune(L.CheckString(2))[0]
				f.SetAdvance(glyph, int(L.CheckNumber(3)))
				return 0
			},
			"write": func(L *lua.LState) int {
				f := checkFont(L, 1)
				target := checkCanvas(L, 2)
				f.Write(target, int(L.CheckNumber(3)), int(L.CheckNumber(4)), L.CheckString(5))
				return 0
			},
			"measure": func(L *lua.LState) int {
				f := checkFont(L, 1)
				L.Push(lua.LNumber(f.Measure(L.CheckString(2))))
				return 1
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				bank := checkBank(L, 1)
				glyphTable := L.CheckTable(2)
				defaultAdvance := int(L.OptNumber(3, 0))
				glyphs := map[rune]int{}
				glyphTable.ForEach(func(k lua.LValue, v lua.LValue) {
					key, ok := k.(lua.LString)
					if !ok {
						return
					}
					runes := []rune(string(key))
					if len(runes) == 0 {
						return
					}
					glyphs[runes[0]] = int(lua.LVAsNumber(v))
				})
				L.Push(newInstance(L, mt, graphics.NewFont(bank, glyphs, defaultAdvance)))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}
