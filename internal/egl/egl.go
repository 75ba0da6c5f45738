// Package egl binds a Wayland surface to an EGL window surface and GLES2
// context through the native wayland-egl glue.
package egl

/*
#cgo linux pkg-config: egl wayland-egl
#cgo CFLAGS: -DMESA_EGL_NO_X11_HEADERS -DEGL_NO_X11 -DWL_EGL_PLATFORM
#include <EGL/egl.h>
#include <wayland-egl.h>
*/
import "C"

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/bnema/nya/internal/logging"
)

// Binding is an attached graphics surface: the native window, the EGL window
// surface and the context, with the context current on the calling thread.
type Binding struct {
	disp C.EGLDisplay
	surf C.EGLSurface
	ctx  C.EGLContext
	win  *C.struct_wl_egl_window
	log  zerolog.Logger
}

func eglError(call string) error {
	return fmt.Errorf("egl: %s failed: 0x%04x", call, uint32(C.eglGetError()))
}

// Attach initializes EGL on the client's wl_display, wraps its wl_surface
// in a native window of the given size, and brings up a current GLES2
// context on it. Both handles are the raw libwayland proxies the connection
// layer exposes. On any failure everything created so far is torn down
// before returning.
func Attach(display, surface unsafe.Pointer, width, height int, opts Options) (*Binding, error) {
	log := logging.Component("egl")

	disp := C.eglGetDisplay(C.EGLNativeDisplayType(display))
	if disp == C.EGLDisplay(unsafe.Pointer(nil)) {
		return nil, errors.New("egl: no EGL display for connection")
	}
	var major, minor C.EGLint
	if C.eglInitialize(disp, &major, &minor) == C.EGL_FALSE {
		return nil, eglError("eglInitialize")
	}
	log.Debug().
		Int("major", int(major)).
		Int("minor", int(minor)).
		Msg("egl initialized")

	attribs := configAttributes(opts.RequireAlpha)
	var cfg C.EGLConfig
	var matched C.EGLint
	if C.eglChooseConfig(disp, (*C.EGLint)(unsafe.Pointer(&attribs[0])), &cfg, 1, &matched) == C.EGL_FALSE {
		return nil, eglError("eglChooseConfig")
	}
	if matched == 0 {
		return nil, errors.New("egl: no framebuffer config matches the requested attributes")
	}

	win := C.wl_egl_window_create((*C.struct_wl_surface)(surface), C.int(width), C.int(height))
	if win == nil {
		return nil, errors.New("egl: wl_egl_window_create failed")
	}

	surf := C.eglCreateWindowSurface(disp, cfg, C.EGLNativeWindowType(unsafe.Pointer(win)), nil)
	if surf == C.EGLSurface(nil) {
		C.wl_egl_window_destroy(win)
		return nil, eglError("eglCreateWindowSurface")
	}

	ctxAttribs := contextAttributes()
	ctx := C.eglCreateContext(disp, cfg, C.EGLContext(nil), (*C.EGLint)(unsafe.Pointer(&ctxAttribs[0])))
	if ctx == C.EGLContext(nil) {
		C.eglDestroySurface(disp, surf)
		C.wl_egl_window_destroy(win)
		return nil, eglError("eglCreateContext")
	}

	if C.eglMakeCurrent(disp, surf, surf, ctx) == C.EGL_FALSE {
		err := eglError("eglMakeCurrent")
		C.eglDestroyContext(disp, ctx)
		C.eglDestroySurface(disp, surf)
		C.wl_egl_window_destroy(win)
		return nil, err
	}

	if C.eglSwapInterval(disp, C.EGLint(opts.SwapInterval)) == C.EGL_FALSE {
		log.Warn().Int("interval", opts.SwapInterval).Msg("eglSwapInterval rejected, keeping driver default")
	}

	log.Info().
		Int("width", width).
		Int("height", height).
		Bool("alpha", opts.RequireAlpha).
		Msg("graphics surface attached")

	return &Binding{disp: disp, surf: surf, ctx: ctx, win: win, log: log}, nil
}

// Resize resizes the native window in place. The EGL surface picks up the
// new size on the next buffer swap.
func (b *Binding) Resize(width, height int) error {
	C.wl_egl_window_resize(b.win, C.int(width), C.int(height), 0, 0)
	b.log.Debug().Int("width", width).Int("height", height).Msg("native window resized")
	return nil
}

// SwapBuffers presents the back buffer. A swap failure means the surface is
// gone and rendering cannot continue.
func (b *Binding) SwapBuffers() error {
	if C.eglSwapBuffers(b.disp, b.surf) == C.EGL_FALSE {
		return eglError("eglSwapBuffers")
	}
	return nil
}

// Detach releases the context and destroys the EGL surface, the context and
// the native window, in that order. Each step runs regardless of earlier
// failures; the first error is returned.
func (b *Binding) Detach() error {
	var firstErr error
	fail := func(call string) {
		err := eglError(call)
		b.log.Warn().Err(err).Msg("teardown step failed")
		if firstErr == nil {
			firstErr = err
		}
	}

	if C.eglMakeCurrent(b.disp, C.EGLSurface(nil), C.EGLSurface(nil), C.EGLContext(nil)) == C.EGL_FALSE {
		fail("eglMakeCurrent")
	}
	if C.eglDestroySurface(b.disp, b.surf) == C.EGL_FALSE {
		fail("eglDestroySurface")
	}
	if C.eglDestroyContext(b.disp, b.ctx) == C.EGL_FALSE {
		fail("eglDestroyContext")
	}
	C.wl_egl_window_destroy(b.win)

	b.log.Debug().Msg("graphics surface detached")
	return firstErr
}
