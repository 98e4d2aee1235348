package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/retrograde-labs/pixelforge/internal/storage"
)

const fileTypeName = "pixelforge.file"

func checkFile(L *lua.LState) storage.Handle {
	ud := L.CheckUserData(1)
	h, ok := ud.Value.(storage.Handle)
	if !ok {
		L.ArgError(1, "file expected")
	}
	return h
}

// ioFileLoader exposes the VFS stream handle as io.file.{open, read,
// seek, tell, eof, size, close} (spec §4.1).
func ioFileLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mt := newType(L, fileTypeName, map[string]lua.LGFunction{
			"read": func(L *lua.LState) int {
				h := checkFile(L)
				n := int(L.OptNumber(2, 4096))
				buf := make([]byte, n)
				read, err := h.Read(buf)
				if err != nil && read == 0 {
					L.Push(lua.LNil)
					return 1
				}
				L.Push(lua.LString(buf[:read]))
				return 1
			},
			"read_all": func(L *lua.LState) int {
				h := checkFile(L)
				data, err := storage.ReadAll(h)
				if err != nil {
					L.Push(lua.LNil)
					L.Push(lua.LString(err.Error()))
					return 2
				}
				L.Push(lua.LString(data))
				return 1
			},
			"seek": func(L *lua.LState) int {
				h := checkFile(L)
				offset := int64(L.CheckNumber(2))
				whence := storage.SeekSet
				switch L.OptString(3, "set") {
				case "cur":
					whence = storage.SeekCur
				case "end":
					whence = storage.SeekEnd
				}
				pos, err := h.Seek(offset, whence)
				if err != nil {
					L.Push(lua.LNil)
					L.Push(lua.LString(err.Error()))
					return 2
				}
				L.Push(lua.LNumber(pos))
				return 1
			},
			"tell": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkFile(L).Tell()))
				return 1
			},
			"eof": func(L *lua.LState) int {
				L.Push(lua.LBool(checkFile(L).Eof()))
				return 1
			},
			"size": func(L *lua.LState) int {
				L.Push(lua.LNumber(checkFile(L).Size()))
				return 1
			},
			"close": func(L *lua.LState) int {
				checkFile(L).Close()
				return 0
			},
		})
		setGCFinalizer(L, mt, func(v interface{}) {
			if h, ok := v.(storage.Handle); ok {
				h.Close()
			}
		})

		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"open": func(L *lua.LState) int {
				name := L.CheckString(1)
				h, err := ctx.Storage.Open(name)
				if err != nil {
					L.Push(lua.LNil)
					L.Push(lua.LString(err.Error()))
					return 2
				}
				L.Push(newInstance(L, mt, h))
				return 1
			},
		})
		L.Push(mod)
		return 1
	}
}

// ioStorageLoader exposes the resource cache and in-memory injectable
// mount as io.storage.{load_string, load_blob, save_string, save_blob,
// inject_raw, inject_base64, inject_ascii85, flush} (spec §4.1).
func ioStorageLoader(ctx *HostContext) lua.LGFunction {
	return func(L *lua.LState) int {
		mod := L.NewTable()
		L.SetFuncs(mod, map[string]lua.LGFunction{
			"load_string": func(L *lua.LState) int {
				name := L.CheckString(1)
				r, err := ctx.Storage.Load(name, storage.ResourceString)
				if err != nil {
					L.Push(lua.LNil)
					L.Push(lua.LString(err.Error()))
					return 2
				}
				L.Push(lua.LString(r.Text))
				return 1
			},
			"load_blob": func(L *lua.LState) int {
				name := L.CheckString(1)
				r, err := ctx.Storage.Load(name, storage.ResourceBlob)
				if err != nil {
					L.Push(lua.LNil)
					L.Push(lua.LString(err.Error()))
					return 2
				}
				L.Push(lua.LString(r.Blob))
				return 1
			},
			"save_string": func(L *lua.LState) int {
				name, text := L.CheckString(1), L.CheckString(2)
				err := ctx.Storage.Store(name, &storage.Resource{Name: name, Type: storage.ResourceString, Text: text})
				if err != nil {
					L.Push(lua.LString(err.Error()))
					return 1
				}
				return 0
			},
			"save_blob": func(L *lua.LState) int {
				name, data := L.CheckString(1), L.CheckString(2)
				err := ctx.Storage.Store(name, &storage.Resource{Name: name, Type: storage.ResourceBlob, Blob: []byte(data)})
				if err != nil {
					L.Push(lua.LString(err.Error()))
					return 1
				}
				return 0
			},
			"inject_raw": func(L *lua.LState) int {
				ctx.Storage.MountCache().InjectRaw(L.CheckString(1), []byte(L.CheckString(2)))
				return 0
			},
			"inject_base64": func(L *lua.LState) int {
				err := ctx.Storage.MountCache().InjectBase64(L.CheckString(1), []byte(L.CheckString(2)))
				if err != nil {
					L.Push(lua.LString(err.Error()))
					return 1
				}
				return 0
			},
			"inject_ascii85": func(L *lua.LState) int {
				err := ctx.Storage.MountCache().InjectAscii85(L.CheckString(1), []byte(L.CheckString(2)))
				if err != nil {
					L.Push(lua.LString(err.Error()))
					return 1
				}
				return 0
			},
			"flush": func(L *lua.LState) int {
				ctx.Storage.Flush()
				return 0
			},
		})
		L.Push(mod)
		return 1
	}
}
