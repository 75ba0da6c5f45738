// Package xdgshell wraps the client side of the stable xdg-shell protocol
// (xdg_wm_base, xdg_surface, xdg_toplevel): enough to give one surface
// toplevel window semantics. The wire work is done by libwayland-client
// through the in-tree protocol glue; this package owns the typed proxies
// and fans events out to handler interfaces.
package xdgshell

/*
#cgo linux pkg-config: wayland-client
#include <stdlib.h>
#include "xdg-shell-protocol.h"
*/
import "C"

import (
	"errors"
	"unsafe"
)

// InterfaceName is the registry interface name of the shell global.
const InterfaceName = "xdg_wm_base"

// maxVersion is the protocol version the in-tree glue describes; the bind
// never asks the compositor for more.
const maxVersion = 6

// PingEvent is the shell's liveness probe. It must be answered with a pong
// carrying the same serial or the compositor may deem the client dead.
type PingEvent struct {
	Serial uint32
}

// PingHandler handles xdg_wm_base ping events.
type PingHandler interface {
	HandleWmBasePing(PingEvent)
}

// WmBase is the bound xdg_wm_base proxy.
type WmBase struct {
	ptr          *C.struct_xdg_wm_base
	pingHandlers []PingHandler
}

// BindWmBase binds the advertised xdg_wm_base global and registers its
// event listener. The registry handle is the raw wl_registry proxy.
func BindWmBase(registry unsafe.Pointer, name, version uint32) (*WmBase, error) {
	if version > maxVersion {
		version = maxVersion
	}
	ptr := C.nya_xdg_wm_base_bind((*C.struct_wl_registry)(registry),
		C.uint32_t(name), C.uint32_t(version))
	if ptr == nil {
		return nil, errors.New("bind xdg_wm_base failed")
	}
	b := &WmBase{ptr: ptr}
	callbackStore(unsafe.Pointer(ptr), b)
	C.nya_xdg_wm_base_add_listener(ptr, &C.nya_xdg_wm_base_listener, unsafe.Pointer(ptr))
	return b, nil
}

// AddPingHandler registers a handler for ping events.
func (b *WmBase) AddPingHandler(h PingHandler) {
	b.pingHandlers = append(b.pingHandlers, h)
}

func (b *WmBase) dispatchPing(serial uint32) {
	for _, h := range b.pingHandlers {
		h.HandleWmBasePing(PingEvent{Serial: serial})
	}
}

// Pong answers a ping.
func (b *WmBase) Pong(serial uint32) error {
	C.nya_xdg_wm_base_pong(b.ptr, C.uint32_t(serial))
	return nil
}

// GetXdgSurface wraps a wl_surface (by native proxy handle) into an
// xdg_surface.
func (b *WmBase) GetXdgSurface(wlSurface unsafe.Pointer) (*Surface, error) {
	ptr := C.nya_xdg_wm_base_get_xdg_surface(b.ptr, (*C.struct_wl_surface)(wlSurface))
	if ptr == nil {
		return nil, errors.New("get xdg_surface failed")
	}
	s := &Surface{ptr: ptr}
	callbackStore(unsafe.Pointer(ptr), s)
	C.nya_xdg_surface_add_listener(ptr, &C.nya_xdg_surface_listener, unsafe.Pointer(ptr))
	return s, nil
}

// Destroy destroys the xdg_wm_base proxy.
func (b *WmBase) Destroy() error {
	callbackDelete(unsafe.Pointer(b.ptr))
	C.nya_xdg_wm_base_destroy(b.ptr)
	b.ptr = nil
	return nil
}

// ConfigureEvent proposes a new surface state. The serial must be acked
// before the state is considered adopted.
type ConfigureEvent struct {
	Serial uint32
}

// ConfigureHandler handles xdg_surface configure events.
type ConfigureHandler interface {
	HandleSurfaceConfigure(ConfigureEvent)
}

// Surface is an xdg_surface proxy.
type Surface struct {
	ptr               *C.struct_xdg_surface
	configureHandlers []ConfigureHandler
}

// AddConfigureHandler registers a handler for configure events.
func (s *Surface) AddConfigureHandler(h ConfigureHandler) {
	s.configureHandlers = append(s.configureHandlers, h)
}

func (s *Surface) dispatchConfigure(serial uint32) {
	for _, h := range s.configureHandlers {
		h.HandleSurfaceConfigure(ConfigureEvent{Serial: serial})
	}
}

// Ack acknowledges a configure event by serial.
func (s *Surface) Ack(serial uint32) error {
	C.nya_xdg_surface_ack_configure(s.ptr, C.uint32_t(serial))
	return nil
}

// GetToplevel assigns the toplevel role to the surface.
func (s *Surface) GetToplevel() (*Toplevel, error) {
	ptr := C.nya_xdg_surface_get_toplevel(s.ptr)
	if ptr == nil {
		return nil, errors.New("get xdg_toplevel failed")
	}
	t := &Toplevel{ptr: ptr}
	callbackStore(unsafe.Pointer(ptr), t)
	C.nya_xdg_toplevel_add_listener(ptr, &C.nya_xdg_toplevel_listener, unsafe.Pointer(ptr))
	return t, nil
}

// Destroy destroys the xdg_surface proxy. Its toplevel must be destroyed
// first.
func (s *Surface) Destroy() error {
	callbackDelete(unsafe.Pointer(s.ptr))
	C.nya_xdg_surface_destroy(s.ptr)
	s.ptr = nil
	return nil
}

// ToplevelConfigureEvent proposes a new window size. A zero dimension means
// "use current size".
type ToplevelConfigureEvent struct {
	Width  int32
	Height int32
}

// ToplevelConfigureHandler handles xdg_toplevel configure events.
type ToplevelConfigureHandler interface {
	HandleToplevelConfigure(ToplevelConfigureEvent)
}

// CloseEvent asks the client to close its window.
type CloseEvent struct{}

// CloseHandler handles xdg_toplevel close events.
type CloseHandler interface {
	HandleToplevelClose(CloseEvent)
}

// Toplevel is an xdg_toplevel proxy.
type Toplevel struct {
	ptr               *C.struct_xdg_toplevel
	configureHandlers []ToplevelConfigureHandler
	closeHandlers     []CloseHandler
}

// AddConfigureHandler registers a handler for configure events.
func (t *Toplevel) AddConfigureHandler(h ToplevelConfigureHandler) {
	t.configureHandlers = append(t.configureHandlers, h)
}

// AddCloseHandler registers a handler for close events.
func (t *Toplevel) AddCloseHandler(h CloseHandler) {
	t.closeHandlers = append(t.closeHandlers, h)
}

func (t *Toplevel) dispatchConfigure(width, height int32) {
	// The states array carries window state flags this client does not
	// interpret.
	for _, h := range t.configureHandlers {
		h.HandleToplevelConfigure(ToplevelConfigureEvent{Width: width, Height: height})
	}
}

func (t *Toplevel) dispatchClose() {
	for _, h := range t.closeHandlers {
		h.HandleToplevelClose(CloseEvent{})
	}
}

// SetTitle sets the window title.
func (t *Toplevel) SetTitle(title string) error {
	ctitle := C.CString(title)
	defer C.free(unsafe.Pointer(ctitle))
	C.nya_xdg_toplevel_set_title(t.ptr, ctitle)
	return nil
}

// Destroy destroys the xdg_toplevel proxy.
func (t *Toplevel) Destroy() error {
	callbackDelete(unsafe.Pointer(t.ptr))
	C.nya_xdg_toplevel_destroy(t.ptr)
	t.ptr = nil
	return nil
}
