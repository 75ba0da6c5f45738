package app

import "fmt"

// applyBatch applies a drained batch of protocol events. Pings are answered
// first: liveness must not wait behind window-state work, and a close in the
// same batch must not swallow a pending pong. After a close the remaining
// window-state events are dropped.
func (a *App) applyBatch(events []protoEvent) error {
	for _, ev := range events {
		if ev.kind != evPing {
			continue
		}
		if err := a.wmBase.Pong(ev.serial); err != nil {
			return fmt.Errorf("pong: %w", err)
		}
	}
	for _, ev := range events {
		if ev.kind == evPing {
			continue
		}
		if a.closed {
			a.log.Debug().Msg("dropping event after close")
			continue
		}
		if err := a.apply(ev); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) apply(ev protoEvent) error {
	switch ev.kind {
	case evToplevelConfigure:
		// A proposal only. Zero dimensions mean "keep the current size";
		// nothing is touched until the configure is acked.
		if ev.width == 0 || ev.height == 0 {
			return nil
		}
		a.pendingWidth, a.pendingHeight = ev.width, ev.height
	case evSurfaceConfigure:
		if err := a.shell.Ack(ev.serial); err != nil {
			return fmt.Errorf("ack configure: %w", err)
		}
		a.configured = true
		return a.adoptPendingSize()
	case evClose:
		a.log.Info().Msg("close requested")
		a.closed = true
		a.running = false
	}
	return nil
}

// adoptPendingSize applies the last proposed size after its configure has
// been acked. An unchanged size is a no-op so repeated configures don't
// churn the graphics surface.
func (a *App) adoptPendingSize() error {
	if a.pendingWidth == 0 || a.pendingHeight == 0 {
		return nil
	}
	width, height := a.pendingWidth, a.pendingHeight
	a.pendingWidth, a.pendingHeight = 0, 0

	if width == a.width && height == a.height {
		return nil
	}
	a.width, a.height = width, height
	a.log.Debug().Int32("width", width).Int32("height", height).Msg("window resized")

	if a.binding == nil {
		return nil
	}
	if err := a.binding.Resize(int(width), int(height)); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	if err := a.surface.Commit(); err != nil {
		return fmt.Errorf("commit after resize: %w", err)
	}
	return nil
}
