package wayland

/*
#include "registry.h"
*/
import "C"

import (
	"sync"
	"unsafe"
)

// callbackMap maps native proxy handles to their Go wrappers, because Go
// pointers must not be stored in C user data.
var callbackMap sync.Map

func callbackStore(k unsafe.Pointer, v interface{}) {
	callbackMap.Store(k, v)
}

func callbackLoad(k unsafe.Pointer) interface{} {
	v, exists := callbackMap.Load(k)
	if !exists {
		panic("wayland: missing callback entry")
	}
	return v
}

//export nyaRegistryGlobal
func nyaRegistryGlobal(data unsafe.Pointer, registry *C.struct_wl_registry,
	name C.uint32_t, cintf *C.char, version C.uint32_t) {
	res := callbackLoad(data).(*resolver)
	res.global(C.GoString(cintf), uint32(name), uint32(version))
}

//export nyaRegistryGlobalRemove
func nyaRegistryGlobalRemove(data unsafe.Pointer, registry *C.struct_wl_registry, name C.uint32_t) {
	// No hot-unplug story; a removed global surfaces as a protocol error on
	// the next request against it.
}
