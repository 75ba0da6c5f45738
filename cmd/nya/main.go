// nya is a minimal Wayland client: one toplevel window, cleared and drawn
// with a single GLES2 triangle until the compositor asks it to close.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/nya/internal/app"
	"github.com/bnema/nya/internal/config"
	"github.com/bnema/nya/internal/egl"
	"github.com/bnema/nya/internal/logging"
	"github.com/bnema/nya/internal/render"
)

// Build-time variables set via ldflags
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

const (
	windowTitle   = "Nya"
	initialWidth  = 320
	initialHeight = 240
)

func init() {
	// The EGL context is bound to the thread that created it.
	runtime.LockOSThread()
}

var rootCmd = &cobra.Command{
	Use:           "nya",
	Short:         "Minimal Wayland toplevel drawing a GLES2 triangle",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nya %s (commit %s, built %s)\n", version, commit, buildDate)
	},
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logging.DefaultConfig().TimeFormat,
	})
	logging.SetDefault(logger)

	a, err := app.Bootstrap(app.Options{
		Title:  windowTitle,
		Width:  initialWidth,
		Height: initialHeight,
		Graphics: egl.Options{
			RequireAlpha: cfg.Graphics.RequireAlpha,
			SwapInterval: cfg.Graphics.SwapInterval,
		},
	}, render.New(), render.VertexShader, render.FragmentShader)
	if err != nil {
		return err
	}

	runErr := a.Run()
	if closeErr := a.Close(); closeErr != nil && runErr == nil {
		runErr = closeErr
	}
	return runErr
}

func main() {
	rootCmd.AddCommand(versionCmd)
	if err := rootCmd.Execute(); err != nil {
		log := logging.Logger()
		log.Error().Err(err).Msg("nya exited with error")
		os.Exit(1)
	}
}
