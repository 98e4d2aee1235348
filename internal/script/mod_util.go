package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/generators"
)

const gridTypeName = "pixelforge.grid"

func checkGrid(L *lua.LState) *generators.Grid {
	ud := L.CheckUserData(1)
	g, ok := ud.Value.(*generators.Grid)
	if !ok {
		L.ArgError(1, "grid expected")
	}
	return g
}

func utilGridLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, gridTypeName, map[string]lua.LGFunction{
			"get": func(L *lua.LState) int {
				g := checkGrid(L)
				v, err := g.Get(int(L.CheckNumber(2)), int(L.CheckNumber(3)))
				if err != nil {
					L.Push(lua.LNil)
					L.Push(lua.LString(err.Error()))
					return 2
				}
				L.Push(lua.LNumber(v))
				return 1
			},
			"set": func(L *lua.LState) int {
				g := checkGrid(L)
				err := g.Set(int(L.CheckNumber(2)), int(L.CheckNumber(3)), int(L.CheckNumber(4)))
				if err != nil {
					L.Push(lua.LString(err.Error()))
					return 1
				}
				return 0
			},
			"fill": func(L *lua.LState) int {
				checkGrid(L).Fill(int(L.CheckNumber(2)))
				return 0
			},
			"is_valid": func(L *lua.LState) int {
				g := checkGrid(L)
				L.Push(lua.LBool(g.IsValid(int(L.CheckNumber(2)), int(L.CheckNumber(3)))))
				return 1
			},
			"stride": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkGrid(L).Stride()))
				return 1
			},
			"width": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkGrid(L).Width))
				return 1
			},
			"height": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkGrid(L).Height))
				return 1
			},
			"path": func(L *lua.LState) int {
				g := checkGrid(L)
				points := g.Path(
					int(L.CheckNumber(2)), int(L.CheckNumber(3)),
					int(L.CheckNumber(4)), int(L.CheckNumber(5)),
					int(L.CheckNumber(6)),
				)
				tbl := L.NewTable()
				for i, p := range points {
					row := L.NewTable()
					row.RawSetString("col", lua.LNumber(p.Col))
					row.RawSetString("row", lua.LNumber(p.Row))
					tbl.RawSetInt(i+1, row)
				}
				L.Push(tbl)
				return 1
			},
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"new": func(L *lua.LState) int {
				w := int(L.CheckNumber(1))
				h := int(L.CheckNumber(2))
				fill := int(L.OptNumber(3, 0))
				L.Push(newInstance(L, mt, generators.NewGrid(w, h, fill)))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}
