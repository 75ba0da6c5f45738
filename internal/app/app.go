package app

import (
	"github.com/rs/zerolog"

	"github.com/bnema/nya/internal/protocols/xdgshell"
)

// App is the sealed application state: every handle is bound, the initial
// configure has been acknowledged and the graphics surface is attached.
// All state mutation happens on the loop thread.
type App struct {
	log zerolog.Logger

	conn     Conn
	surface  Surface
	shell    ShellSurface
	toplevel Toplevel
	wmBase   WmBase
	binding  GraphicsBinding
	renderer Renderer
	program  Program

	queue       eventQueue
	dispatchErr chan error

	width         int32
	height        int32
	pendingWidth  int32
	pendingHeight int32
	configured    bool
	running       bool
	closed        bool
}

// Size reports the current window dimensions.
func (a *App) Size() (width, height int32) {
	return a.width, a.height
}

// The handler methods below run on the dispatch goroutine and only enqueue;
// they never touch window state directly.

// HandleWmBasePing implements xdgshell.PingHandler.
func (a *App) HandleWmBasePing(ev xdgshell.PingEvent) {
	a.queue.push(protoEvent{kind: evPing, serial: ev.Serial})
}

// HandleSurfaceConfigure implements xdgshell.ConfigureHandler.
func (a *App) HandleSurfaceConfigure(ev xdgshell.ConfigureEvent) {
	a.queue.push(protoEvent{kind: evSurfaceConfigure, serial: ev.Serial})
}

// HandleToplevelConfigure implements xdgshell.ToplevelConfigureHandler.
func (a *App) HandleToplevelConfigure(ev xdgshell.ToplevelConfigureEvent) {
	a.queue.push(protoEvent{kind: evToplevelConfigure, width: ev.Width, height: ev.Height})
}

// HandleToplevelClose implements xdgshell.CloseHandler.
func (a *App) HandleToplevelClose(xdgshell.CloseEvent) {
	a.queue.push(protoEvent{kind: evClose})
}
