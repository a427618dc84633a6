// Command isoedit-tui edits a field in the terminal. Each character cell
// shows a 2x2 block of the rasterised contour.
package main

import (
	"flag"
	"fmt"
	"os"

	"isoedit/internal/config"
	"isoedit/internal/logging"
)

func main() {
	cfg := config.NewLaunch()
	// a terminal grid is a few hundred pixels wide at most
	cfg.CellScale = 3
	cfg.OffsetX = 0
	cfg.Bind(flag.CommandLine)
	logFile := flag.String("log-file", "", "write logs to this file (the terminal is busy)")
	flag.Parse()

	if err := run(cfg, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, "isoedit-tui:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Launch, logFile string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger, err := logging.New(f, cfg.LogLevel)
		if err != nil {
			return err
		}
		logging.SetLogger(logger)
	}
	cfg.Apply()

	t, err := newTerminal(cfg)
	if err != nil {
		return err
	}
	defer t.cleanup()

	t.run()
	return nil
}
