// Package wayland is the client layer: it owns the libwayland compositor
// connection, resolves the required globals from the registry, and wraps the
// core protocol objects (wl_compositor, wl_surface) the rest of nya
// consumes. Shell semantics live in internal/protocols/xdgshell.
package wayland

/*
#cgo linux pkg-config: wayland-client
#include <wayland-client.h>
#include "registry.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/bnema/nya/internal/logging"
	"github.com/bnema/nya/internal/protocols/xdgshell"
)

// Conn manages the compositor connection.
type Conn struct {
	display  *C.struct_wl_display
	registry *C.struct_wl_registry
	log      zerolog.Logger
}

// Connect dials the compositor socket named by the environment
// (WAYLAND_DISPLAY / XDG_RUNTIME_DIR).
func Connect() (*Conn, error) {
	display, err := C.wl_display_connect(nil)
	if display == nil {
		return nil, fmt.Errorf("connect to compositor: %w", err)
	}

	return &Conn{
		display: display,
		log:     logging.Component("wayland"),
	}, nil
}

// Native exposes the wl_display handle for the EGL platform layer.
func (c *Conn) Native() unsafe.Pointer {
	return unsafe.Pointer(c.display)
}

// Dispatch reads and dispatches the next batch of compositor events.
// It blocks until the compositor sends something.
func (c *Conn) Dispatch() error {
	if n, err := C.wl_display_dispatch(c.display); n < 0 {
		return fmt.Errorf("dispatch: %w", err)
	}
	return nil
}

// Roundtrip blocks until the compositor has processed every request sent so
// far and all resulting events have been dispatched.
func (c *Conn) Roundtrip() error {
	if n, err := C.wl_display_roundtrip(c.display); n < 0 {
		return fmt.Errorf("roundtrip: %w", err)
	}
	return nil
}

// Flush writes buffered requests out to the compositor without blocking for
// events. Needed when requests are issued outside a dispatch call.
func (c *Conn) Flush() error {
	if n, err := C.wl_display_flush(c.display); n < 0 && !errors.Is(err, unix.EAGAIN) {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Close disconnects from the compositor.
func (c *Conn) Close() error {
	C.wl_display_disconnect(c.display)
	c.display = nil
	return nil
}

// Globals holds the two capability bindings nya needs before any surface
// can exist.
type Globals struct {
	Compositor *Compositor
	WmBase     *xdgshell.WmBase
}

// resolver collects bindings while the registry listener runs. The bind
// functions are injected so the advertisement bookkeeping is testable
// without a compositor.
type resolver struct {
	log            zerolog.Logger
	globals        *Globals
	bindErr        error
	bindCompositor func(name, version uint32) (*Compositor, error)
	bindShell      func(name, version uint32) (*xdgshell.WmBase, error)
}

// global handles one registry advertisement. The first advertisement of a
// role wins; rebinding would leak the bound proxy. A failed bind is
// recorded once and never assigns a nil proxy.
func (r *resolver) global(iface string, name, version uint32) {
	switch Role(iface) {
	case RoleCompositor:
		if r.globals.Compositor != nil {
			return
		}
		r.log.Debug().Uint32("name", name).Uint32("version", version).Msg("binding wl_compositor")
		comp, err := r.bindCompositor(name, version)
		if err != nil {
			if r.bindErr == nil {
				r.bindErr = err
			}
			return
		}
		r.globals.Compositor = comp
	case RoleShell:
		if r.globals.WmBase != nil {
			return
		}
		r.log.Debug().Uint32("name", name).Uint32("version", version).Msg("binding xdg_wm_base")
		wmBase, err := r.bindShell(name, version)
		if err != nil {
			if r.bindErr == nil {
				r.bindErr = err
			}
			return
		}
		r.globals.WmBase = wmBase
	}
}

// Resolve enumerates the compositor-advertised globals and binds the
// compositing and shell authorities. It performs one blocking roundtrip so
// every global known at connect time has been seen, then fails fast with
// MissingGlobalError if a required role stayed unbound.
//
// Globals other than the two required roles are ignored, a duplicate
// advertisement of a bound role is skipped, and global_remove is not
// handled: this client has no hot-unplug story.
func (c *Conn) Resolve() (*Globals, error) {
	registry, err := C.wl_display_get_registry(c.display)
	if registry == nil {
		return nil, fmt.Errorf("get registry: %w", err)
	}
	c.registry = registry

	res := &resolver{
		log:     c.log,
		globals: &Globals{},
		bindCompositor: func(name, version uint32) (*Compositor, error) {
			return bindCompositor(registry, name, version)
		},
		bindShell: func(name, version uint32) (*xdgshell.WmBase, error) {
			return xdgshell.BindWmBase(unsafe.Pointer(registry), name, version)
		},
	}
	callbackStore(unsafe.Pointer(registry), res)
	C.wl_registry_add_listener(registry, &C.nya_registry_listener, unsafe.Pointer(registry))

	if err := c.Roundtrip(); err != nil {
		return nil, fmt.Errorf("registry roundtrip: %w", err)
	}
	if res.bindErr != nil {
		return nil, res.bindErr
	}
	if err := res.globals.Validate(); err != nil {
		return nil, err
	}

	return res.globals, nil
}

// Validate reports the first missing required role, if any.
func (g *Globals) Validate() error {
	if g.Compositor == nil {
		return &MissingGlobalError{Role: RoleCompositor}
	}
	if g.WmBase == nil {
		return &MissingGlobalError{Role: RoleShell}
	}
	return nil
}
