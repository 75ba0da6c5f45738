package app

import (
	"errors"
	"fmt"

	"github.com/bnema/nya/internal/egl"
	"github.com/bnema/nya/internal/logging"
	"github.com/bnema/nya/internal/wayland"
)

// Options configures the bootstrap.
type Options struct {
	Title    string
	Width    int32
	Height   int32
	Graphics egl.Options
}

// Bootstrap connects to the display, binds the compositor and shell
// globals, builds the window up to its first acknowledged configure, then
// attaches the graphics surface and compiles the shader program. The
// returned App is fully sealed; on any failure everything constructed so
// far is torn down in reverse order.
func Bootstrap(opts Options, renderer Renderer, vert, frag []byte) (a *App, err error) {
	log := logging.Component("bootstrap")

	conn, err := wayland.Connect()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			conn.Close()
		}
	}()

	globals, err := conn.Resolve()
	if err != nil {
		return nil, err
	}

	surface, err := globals.Compositor.CreateSurface()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			surface.Destroy()
		}
	}()

	shell, err := globals.WmBase.GetXdgSurface(surface.Native())
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			shell.Destroy()
		}
	}()

	toplevel, err := shell.GetToplevel()
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			toplevel.Destroy()
		}
	}()

	if err = toplevel.SetTitle(opts.Title); err != nil {
		return nil, fmt.Errorf("set title: %w", err)
	}

	a = &App{
		log:         logging.Component("app"),
		conn:        conn,
		surface:     surface,
		shell:       shell,
		toplevel:    toplevel,
		wmBase:      globals.WmBase,
		renderer:    renderer,
		dispatchErr: make(chan error, 1),
		width:       opts.Width,
		height:      opts.Height,
	}
	globals.WmBase.AddPingHandler(a)
	shell.AddConfigureHandler(a)
	toplevel.AddConfigureHandler(a)
	toplevel.AddCloseHandler(a)

	if err = surface.Commit(); err != nil {
		return nil, fmt.Errorf("initial commit: %w", err)
	}

	// The surface has no buffer yet, so events are pumped inline here; the
	// dispatch goroutine only starts once the loop runs.
	log.Debug().Msg("awaiting initial configure")
	for !a.configured {
		if err = conn.Dispatch(); err != nil {
			return nil, fmt.Errorf("awaiting initial configure: %w", err)
		}
		if err = a.applyBatch(a.queue.drain()); err != nil {
			return nil, err
		}
		if a.closed {
			err = errors.New("window closed during bootstrap")
			return nil, err
		}
	}

	binding, err := egl.Attach(conn.Native(), surface.Native(), int(a.width), int(a.height), opts.Graphics)
	if err != nil {
		return nil, err
	}
	a.binding = binding

	program, err := renderer.CompileAndLink(vert, frag)
	if err != nil {
		if detachErr := binding.Detach(); detachErr != nil {
			log.Warn().Err(detachErr).Msg("detach after failed shader link")
		}
		a.binding = nil
		return nil, err
	}
	a.program = program

	log.Info().
		Str("title", opts.Title).
		Int32("width", a.width).
		Int32("height", a.height).
		Msg("window ready")
	return a, nil
}
