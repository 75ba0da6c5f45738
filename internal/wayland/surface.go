package wayland

/*
#cgo linux pkg-config: wayland-client
#include <wayland-client.h>
*/
import "C"

import (
	"errors"
	"unsafe"
)

// compositorMaxVersion caps the bind at the highest wl_compositor version
// this client understands.
const compositorMaxVersion = 4

// Compositor is the bound wl_compositor proxy.
type Compositor struct {
	ptr *C.struct_wl_compositor
}

func bindCompositor(registry *C.struct_wl_registry, name, version uint32) (*Compositor, error) {
	if version > compositorMaxVersion {
		version = compositorMaxVersion
	}
	ptr := (*C.struct_wl_compositor)(C.wl_registry_bind(registry, C.uint32_t(name),
		&C.wl_compositor_interface, C.uint32_t(version)))
	if ptr == nil {
		return nil, errors.New("bind wl_compositor failed")
	}
	return &Compositor{ptr: ptr}, nil
}

// CreateSurface asks the compositor for a new base surface.
func (c *Compositor) CreateSurface() (*Surface, error) {
	ptr := C.wl_compositor_create_surface(c.ptr)
	if ptr == nil {
		return nil, errors.New("create surface failed")
	}
	return &Surface{ptr: ptr}, nil
}

// Surface is a wl_surface proxy.
type Surface struct {
	ptr *C.struct_wl_surface
}

// Native returns the wl_surface handle for the xdg-shell and EGL layers.
func (s *Surface) Native() unsafe.Pointer {
	return unsafe.Pointer(s.ptr)
}

// Commit applies the pending surface state.
func (s *Surface) Commit() error {
	C.wl_surface_commit(s.ptr)
	return nil
}

// Destroy destroys the surface. The shell surface wrapping it must already
// be gone.
func (s *Surface) Destroy() error {
	C.wl_surface_destroy(s.ptr)
	s.ptr = nil
	return nil
}
