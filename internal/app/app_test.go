package app

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/nya/internal/protocols/xdgshell"
)

type trace struct {
	steps []string
}

func (tr *trace) add(step string) { tr.steps = append(tr.steps, step) }

type fakeConn struct {
	tr       *trace
	dispatch func() error
	flushes  int
}

func (c *fakeConn) Dispatch() error {
	if c.dispatch != nil {
		return c.dispatch()
	}
	select {}
}

func (c *fakeConn) Flush() error {
	c.flushes++
	return nil
}

func (c *fakeConn) Close() error {
	c.tr.add("conn")
	return nil
}

type fakeSurface struct {
	tr      *trace
	commits int
}

func (s *fakeSurface) Commit() error { s.commits++; return nil }
func (s *fakeSurface) Destroy() error {
	s.tr.add("surface")
	return nil
}

type fakeShell struct {
	tr    *trace
	acked []uint32
}

func (s *fakeShell) Ack(serial uint32) error {
	s.acked = append(s.acked, serial)
	return nil
}

func (s *fakeShell) Destroy() error {
	s.tr.add("shell")
	return nil
}

type fakeToplevel struct {
	tr         *trace
	destroyErr error
}

func (t *fakeToplevel) SetTitle(string) error { return nil }
func (t *fakeToplevel) Destroy() error {
	t.tr.add("toplevel")
	return t.destroyErr
}

type fakeWmBase struct {
	tr    *trace
	pongs []uint32
}

func (b *fakeWmBase) Pong(serial uint32) error {
	b.pongs = append(b.pongs, serial)
	return nil
}

func (b *fakeWmBase) Destroy() error {
	b.tr.add("wm_base")
	return nil
}

type fakeBinding struct {
	tr      *trace
	resizes [][2]int
	swaps   int
	swapErr error
}

func (b *fakeBinding) Resize(w, h int) error {
	b.resizes = append(b.resizes, [2]int{w, h})
	return nil
}

func (b *fakeBinding) SwapBuffers() error {
	b.swaps++
	return b.swapErr
}

func (b *fakeBinding) Detach() error {
	b.tr.add("graphics")
	return nil
}

type fakeRenderer struct {
	tr    *trace
	draws int
}

func (r *fakeRenderer) CompileAndLink([]byte, []byte) (Program, error) { return 1, nil }
func (r *fakeRenderer) Draw(Program, int, int)                         { r.draws++ }
func (r *fakeRenderer) Release(Program)                                { r.tr.add("program") }

type fixtures struct {
	tr       *trace
	conn     *fakeConn
	surface  *fakeSurface
	shell    *fakeShell
	toplevel *fakeToplevel
	wmBase   *fakeWmBase
	binding  *fakeBinding
	renderer *fakeRenderer
}

func newTestApp() (*App, *fixtures) {
	tr := &trace{}
	f := &fixtures{
		tr:       tr,
		conn:     &fakeConn{tr: tr},
		surface:  &fakeSurface{tr: tr},
		shell:    &fakeShell{tr: tr},
		toplevel: &fakeToplevel{tr: tr},
		wmBase:   &fakeWmBase{tr: tr},
		binding:  &fakeBinding{tr: tr},
		renderer: &fakeRenderer{tr: tr},
	}
	a := &App{
		log:         zerolog.Nop(),
		conn:        f.conn,
		surface:     f.surface,
		shell:       f.shell,
		toplevel:    f.toplevel,
		wmBase:      f.wmBase,
		binding:     f.binding,
		renderer:    f.renderer,
		program:     1,
		dispatchErr: make(chan error, 1),
		width:       320,
		height:      240,
		configured:  true,
	}
	return a, f
}

func TestApplyBatch_AcksEachConfigureSerial(t *testing.T) {
	a, f := newTestApp()

	err := a.applyBatch([]protoEvent{
		{kind: evSurfaceConfigure, serial: 5},
		{kind: evSurfaceConfigure, serial: 6},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint32{5, 6}, f.shell.acked)
}

func TestApplyBatch_PongsEveryPing(t *testing.T) {
	a, f := newTestApp()

	err := a.applyBatch([]protoEvent{
		{kind: evPing, serial: 11},
		{kind: evPing, serial: 12},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint32{11, 12}, f.wmBase.pongs)
}

func TestApplyBatch_PongsEvenAfterClose(t *testing.T) {
	a, f := newTestApp()

	err := a.applyBatch([]protoEvent{
		{kind: evClose},
		{kind: evPing, serial: 99},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint32{99}, f.wmBase.pongs)
	assert.False(t, a.running)
}

func TestApplyBatch_ResizesAndCommitsOnce(t *testing.T) {
	a, f := newTestApp()

	// A zero-dimension proposal followed by a real one: only the real one
	// must reach the graphics surface.
	err := a.applyBatch([]protoEvent{
		{kind: evToplevelConfigure, width: 0, height: 480},
		{kind: evToplevelConfigure, width: 800, height: 600},
		{kind: evSurfaceConfigure, serial: 9},
	})

	require.NoError(t, err)
	assert.Equal(t, [][2]int{{800, 600}}, f.binding.resizes)
	assert.Equal(t, 1, f.surface.commits)
	assert.Equal(t, []uint32{9}, f.shell.acked)

	w, h := a.Size()
	assert.Equal(t, int32(800), w)
	assert.Equal(t, int32(600), h)
}

func TestApplyBatch_UnchangedSizeIsNoop(t *testing.T) {
	a, f := newTestApp()

	err := a.applyBatch([]protoEvent{
		{kind: evToplevelConfigure, width: 320, height: 240},
		{kind: evSurfaceConfigure, serial: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, []uint32{3}, f.shell.acked)
	assert.Empty(t, f.binding.resizes)
	assert.Zero(t, f.surface.commits)
}

func TestApplyBatch_ResizeWaitsForAck(t *testing.T) {
	a, f := newTestApp()

	// A size proposal alone must not touch the surface; it is adopted only
	// once its configure has been acknowledged.
	err := a.applyBatch([]protoEvent{
		{kind: evToplevelConfigure, width: 800, height: 600},
	})

	require.NoError(t, err)
	assert.Empty(t, f.binding.resizes)
	assert.Zero(t, f.surface.commits)

	err = a.applyBatch([]protoEvent{
		{kind: evSurfaceConfigure, serial: 4},
	})

	require.NoError(t, err)
	assert.Equal(t, [][2]int{{800, 600}}, f.binding.resizes)
	assert.Equal(t, 1, f.surface.commits)
}

func TestApplyBatch_DropsWindowEventsAfterClose(t *testing.T) {
	a, f := newTestApp()

	err := a.applyBatch([]protoEvent{
		{kind: evClose},
		{kind: evToplevelConfigure, width: 1024, height: 768},
	})

	require.NoError(t, err)
	assert.Empty(t, f.binding.resizes)

	w, h := a.Size()
	assert.Equal(t, int32(320), w)
	assert.Equal(t, int32(240), h)
}

func TestRun_StopsOnCloseWithoutRendering(t *testing.T) {
	a, f := newTestApp()
	a.queue.push(protoEvent{kind: evClose})

	require.NoError(t, a.Run())
	assert.Zero(t, f.renderer.draws)
	assert.Zero(t, f.binding.swaps)
	// The final replies still go out before the loop exits.
	assert.NotZero(t, f.conn.flushes)
}

func TestRun_StopsOnSwapFailure(t *testing.T) {
	a, f := newTestApp()
	f.binding.swapErr = errors.New("surface lost")

	err := a.Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, "present")
	assert.Equal(t, 1, f.renderer.draws)
}

func TestRun_ReportsDispatchFailure(t *testing.T) {
	a, f := newTestApp()
	f.conn.dispatch = func() error { return errors.New("broken pipe") }

	err := a.Run()
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection lost")
}

func TestClose_TeardownOrder(t *testing.T) {
	a, f := newTestApp()

	require.NoError(t, a.Close())
	assert.Equal(t,
		[]string{"program", "graphics", "toplevel", "shell", "surface", "wm_base", "conn"},
		f.tr.steps)
}

func TestClose_ContinuesPastFailures(t *testing.T) {
	a, f := newTestApp()
	f.toplevel.destroyErr = errors.New("already gone")

	err := a.Close()
	assert.ErrorContains(t, err, "already gone")
	assert.Contains(t, f.tr.steps, "conn")
}

func TestHandlers_OnlyEnqueue(t *testing.T) {
	a, f := newTestApp()

	a.HandleWmBasePing(xdgshell.PingEvent{Serial: 1})
	a.HandleSurfaceConfigure(xdgshell.ConfigureEvent{Serial: 2})
	a.HandleToplevelConfigure(xdgshell.ToplevelConfigureEvent{Width: 3, Height: 4})
	a.HandleToplevelClose(xdgshell.CloseEvent{})

	assert.Empty(t, f.wmBase.pongs)
	assert.Empty(t, f.shell.acked)

	events := a.queue.drain()
	require.Len(t, events, 4)
	assert.Equal(t, evPing, events[0].kind)
	assert.Equal(t, evSurfaceConfigure, events[1].kind)
	assert.Equal(t, evToplevelConfigure, events[2].kind)
	assert.Equal(t, evClose, events[3].kind)
}
