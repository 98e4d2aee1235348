package script

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/storage"
)

// installModuleSearcher inserts a loader into package.loaders that
// translates a dotted module name `a.b.c` into the VFS path
// `/a/b/c.lua` and reads it through Storage, which takes the name
// without its leading slash (spec §4.6 step 2). It runs
// after gopher-lua's own file/preload searchers, so built-in modules
// registered via PreloadModule are always found first.
func installModuleSearcher(L *lua.LState, store *storage.Storage) {
	loaders, ok := L.GetField(L.GetGlobal("package"), "loaders").(*lua.LTable)
	if !ok {
		return
	}
	loader := L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		path := "/" + strings.ReplaceAll(name, ".", "/") + ".lua"

		h, err := store.Open(strings.TrimPrefix(path, "/"))
		if err != nil {
			L.Push(lua.LString("\n\tno VFS file '" + path + "'"))
			return 1
		}
		defer h.Close()
		data, err := storage.ReadAll(h)
		if err != nil {
			L.Push(lua.LString("\n\t" + err.Error()))
			return 1
		}
		fn, err := L.LoadString(string(data))
		if err != nil {
			L.Push(lua.LString("\n\t" + err.Error()))
			return 1
		}
		L.Push(fn)
		return 1
	})
	loaders.Append(loader)
}

// moduleEntry names one of spec §4.6's "flat table of {name, loader}"
// registered modules.
type moduleEntry struct {
	name   string
	loader lua.LGFunction
}

// registerAllModules preloads every script-facing module of spec §4.6
// (each carries ctx as an upvalue, spec §9).
func registerAllModules(L *lua.LState, ctx *HostContext) {
	entries := []moduleEntry{
		{"core.log", coreLogLoader(ctx)},
		{"core.math", coreMathLoader(ctx)},
		{"core.system", coreSystemLoader(ctx)},

		{"generators.noise", generatorsNoiseLoader(ctx)},
		{"generators.tweener", generatorsTweenerLoader(ctx)},
		{"generators.wave", generatorsWaveLoader(ctx)},

		{"graphics.bank", graphicsBankLoader(ctx)},
		{"graphics.batch", graphicsBatchLoader(ctx)},
		{"graphics.canvas", graphicsCanvasLoader(ctx)},
		{"graphics.display", graphicsDisplayLoader(ctx)},
		{"graphics.font", graphicsFontLoader(ctx)},
		{"graphics.image", graphicsImageLoader(ctx)},
		{"graphics.palette", graphicsPaletteLoader(ctx)},
		{"graphics.program", graphicsProgramLoader(ctx)},
		{"graphics.xform", graphicsXFormLoader(ctx)},

		{"input.controller", inputControllerLoader(ctx)},
		{"input.cursor", inputCursorLoader(ctx)},
		{"input.keyboard", inputKeyboardLoader(ctx)},

		{"io.file", ioFileLoader(ctx)},
		{"io.storage", ioStorageLoader(ctx)},

		{"physics.body", physicsBodyLoader(ctx)},
		{"physics.world", physicsWorldLoader(ctx)},

		{"sound.source", soundSourceLoader(ctx)},
		{"sound.speakers", soundSpeakersLoader(ctx)},

		{"util.grid", utilGridLoader(ctx)},
	}
	for _, e := range entries {
		L.PreloadModule(e.name, e.loader)
	}
}

// newType registers a userdata metatable named name with the given
// method table and an index metamethod, returning the metatable so
// callers can attach a __gc finalizer (spec §4.6 "object constructors
// allocate userdata ... register a __gc finalizer").
func newType(L *lua.LState, name string, methods map[string]lua.LGFunction) *lua.LTable {
	mt := L.NewTypeMetatable(name)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	return mt
}

// newInstance wraps value in a fresh LUserData carrying mt as its
// metatable.
func newInstance(L *lua.LState, mt *lua.LTable, value interface{}) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = value
	L.SetMetatable(ud, mt)
	return ud
}

// setGCFinalizer installs a __gc metamethod on mt that calls fn with
// the released userdata's Go value, mirroring spec §4.6's finalizer
// contract for Storage/Display/Bank-owned handles.
func setGCFinalizer(L *lua.LState, mt *lua.LTable, fn func(interface{})) {
	L.SetField(mt, "__gc", L.NewFunction(func(L *lua.LState) int {
		ud := L.CheckUserData(1)
		fn(ud.Value)
		return 0
	}))
}
