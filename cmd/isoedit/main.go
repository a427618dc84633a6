package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"isoedit/internal/config"
	"isoedit/internal/editor"
	"isoedit/internal/input"
	"isoedit/internal/logging"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := config.NewLaunch()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "isoedit:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Launch) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	cfg.Apply()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer window.Destroy()

	comps, err := setupEditor()
	if err != nil {
		return err
	}
	defer comps.Renderer.Dispose()

	ed := editor.New(cfg)
	im := input.NewInputManager()

	loop := NewEditLoop(window, comps, ed, im, cfg.SnapshotPath)
	setupInputHandlers(window, loop, im)
	loop.SyncViewport()

	logging.Logger().Info("editor started",
		"width", cfg.Width,
		"height", cfg.Height,
		"threshold", config.GetThreshold(),
		"fps_limit", config.GetFPSLimit(),
	)
	loop.Run()
	return nil
}
