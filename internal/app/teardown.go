package app

// Close tears the window down in strict reverse order of construction:
// shader program, graphics binding, toplevel role, shell surface, base
// surface, shell authority, connection. Every step runs even when an
// earlier one fails; the first error is returned.
func (a *App) Close() error {
	var firstErr error
	fail := func(step string, err error) {
		a.log.Warn().Err(err).Str("step", step).Msg("teardown step failed")
		if firstErr == nil {
			firstErr = err
		}
	}

	if a.program != 0 {
		a.renderer.Release(a.program)
		a.program = 0
	}
	if a.binding != nil {
		if err := a.binding.Detach(); err != nil {
			fail("detach graphics", err)
		}
		a.binding = nil
	}
	if err := a.toplevel.Destroy(); err != nil {
		fail("destroy toplevel", err)
	}
	if err := a.shell.Destroy(); err != nil {
		fail("destroy shell surface", err)
	}
	if err := a.surface.Destroy(); err != nil {
		fail("destroy surface", err)
	}
	if err := a.wmBase.Destroy(); err != nil {
		fail("destroy shell authority", err)
	}
	if err := a.conn.Close(); err != nil {
		fail("close connection", err)
	}

	a.log.Info().Msg("window torn down")
	return firstErr
}
