//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"isoedit/internal/app"
	"isoedit/internal/config"
	"isoedit/internal/editor"
	"isoedit/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := config.NewLaunch()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logging.SetLogger(logger)
	cfg.Apply()

	game := app.New(editor.New(cfg), cfg.SnapshotPath)

	ebiten.SetWindowTitle("isoedit")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.FPS > 0 {
		ebiten.SetTPS(cfg.FPS)
	} else {
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
