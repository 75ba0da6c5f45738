// Package app owns the window lifecycle: the configure/ack handshake, the
// ping/pong liveness protocol, the present loop and the teardown order. It
// talks to the protocol and graphics layers through narrow interfaces so the
// state machine can be driven in tests without a compositor.
package app

// Program is an opaque handle to a linked shader program.
type Program uint32

// Renderer compiles shaders and draws a frame into the current context.
type Renderer interface {
	CompileAndLink(vert, frag []byte) (Program, error)
	Draw(p Program, width, height int)
	Release(p Program)
}

// Conn is the display connection.
type Conn interface {
	// Dispatch blocks until at least one event has been read and its
	// handlers have run.
	Dispatch() error
	// Flush writes buffered requests without blocking for events.
	Flush() error
	Close() error
}

// Surface is the base surface the window is built on.
type Surface interface {
	Commit() error
	Destroy() error
}

// ShellSurface is the shell wrapper that carries the configure handshake.
type ShellSurface interface {
	Ack(serial uint32) error
	Destroy() error
}

// Toplevel is the window role of the surface.
type Toplevel interface {
	SetTitle(title string) error
	Destroy() error
}

// WmBase is the shell authority that probes client liveness.
type WmBase interface {
	Pong(serial uint32) error
	Destroy() error
}

// GraphicsBinding is the attached graphics surface.
type GraphicsBinding interface {
	Resize(width, height int) error
	SwapBuffers() error
	Detach() error
}
