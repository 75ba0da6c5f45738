package xdgshell

/*
#include "xdg-shell-protocol.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

// callbackMap maps native proxy handles to their Go wrappers. Storing Go
// pointers in C user data is forbidden, so the proxy pointer doubles as the
// lookup key.
var callbackMap sync.Map

func callbackStore(k unsafe.Pointer, v interface{}) {
	callbackMap.Store(k, v)
}

func callbackLoad(k unsafe.Pointer) interface{} {
	v, exists := callbackMap.Load(k)
	if !exists {
		panic("xdgshell: missing callback entry")
	}
	return v
}

func callbackDelete(k unsafe.Pointer) {
	callbackMap.Delete(k)
}

//export nyaXdgWmBasePing
func nyaXdgWmBasePing(data unsafe.Pointer, wmBase *C.struct_xdg_wm_base, serial C.uint32_t) {
	callbackLoad(data).(*WmBase).dispatchPing(uint32(serial))
}

//export nyaXdgSurfaceConfigure
func nyaXdgSurfaceConfigure(data unsafe.Pointer, surface *C.struct_xdg_surface, serial C.uint32_t) {
	callbackLoad(data).(*Surface).dispatchConfigure(uint32(serial))
}

//export nyaXdgToplevelConfigure
func nyaXdgToplevelConfigure(data unsafe.Pointer, toplevel *C.struct_xdg_toplevel,
	width, height C.int32_t, states *C.struct_wl_array) {
	callbackLoad(data).(*Toplevel).dispatchConfigure(int32(width), int32(height))
}

//export nyaXdgToplevelClose
func nyaXdgToplevelClose(data unsafe.Pointer, toplevel *C.struct_xdg_toplevel) {
	callbackLoad(data).(*Toplevel).dispatchClose()
}
