package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/display"
	"github.com/retrograde-labs/pixelforge/internal/storage"
)

// graphicsImageLoader loads a VFS image resource (decoded to RGBA8888
// by Storage.Load, spec §4.1) into a palette-indexed canvas surface,
// quantizing each pixel to its nearest palette entry (spec §3
// "NearestMatch").
func graphicsImageLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		canvasMT := L.GetTypeMetatable(canvasTypeName).(*lua.LTable)

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"load": func(L *lua.LState) int {
				name := L.CheckString(1)
				palette := checkPalette(L, 2)

				r, err := ctx.Storage.Load(name, storage.ResourceImage)
				if err != nil {
					L.Push(lua.LNil)
					L.Push(lua.LString(err.Error()))
					return 2
				}

				surface := display.NewSurface(r.Image.Width, r.Image.Height)
				pix := r.Image.Pixels
				for y := 0; y < r.Image.Height; y++ {
					for x := 0; x < r.Image.Width; x++ {
						off := (y*r.Image.Width + x) * 4
						c := display.Color{R: pix[off], G: pix[off+1], B: pix[off+2], A: pix[off+3]}
						surface.Poke(x, y, palette.NearestMatch(c))
					}
				}
				L.Push(newInstance(L, canvasMT, surface))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}
