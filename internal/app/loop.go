package app

import "fmt"

// Run drives the present loop: pump queued protocol events, render, swap.
// It returns nil after a close request and an error when the connection or
// the swap chain fails. Must be called from the thread that attached the
// graphics context.
func (a *App) Run() error {
	a.running = true
	go a.pump()

	a.log.Info().Int32("width", a.width).Int32("height", a.height).Msg("entering present loop")

	for a.running {
		select {
		case err := <-a.dispatchErr:
			return fmt.Errorf("connection lost: %w", err)
		default:
		}

		if err := a.applyBatch(a.queue.drain()); err != nil {
			return err
		}
		// Replies (pongs, acks, commits) are marshaled on this thread while
		// the dispatch goroutine sits in a blocking read, so they must be
		// flushed explicitly.
		if err := a.conn.Flush(); err != nil {
			return err
		}
		if !a.running {
			break
		}

		a.renderer.Draw(a.program, int(a.width), int(a.height))
		if err := a.binding.SwapBuffers(); err != nil {
			return fmt.Errorf("present: %w", err)
		}
	}
	return nil
}

// pump feeds the event queue from the blocking dispatch loop. It runs on its
// own goroutine because the client library only exposes blocking reads.
func (a *App) pump() {
	for {
		if err := a.conn.Dispatch(); err != nil {
			select {
			case a.dispatchErr <- err:
			default:
			}
			return
		}
	}
}
