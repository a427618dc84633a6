package config

import (
	"errors"
	"flag"
	"fmt"
)

var (
	ErrInvalidThreshold = errors.New("threshold out of range")
	ErrInvalidBrush     = errors.New("brush out of range")
	ErrInvalidSize      = errors.New("window size must be positive")
	ErrInvalidScale     = errors.New("cell scale must be positive")
	ErrInvalidFPS       = errors.New("fps limit out of range")
)

// Launch represents the command-line parameters shared by every frontend.
type Launch struct {
	Width  int
	Height int

	Threshold float64
	Brush     float64

	// Field placement in world space: local -> Translate(OffsetX, OffsetY) * Scale(CellScale).
	CellScale float64
	OffsetX   float64
	OffsetY   float64

	FPS          int
	LogLevel     string
	SnapshotPath string
	Seed         bool
	Sound        bool
}

// NewLaunch returns a Launch populated with the editor defaults.
func NewLaunch() *Launch {
	return &Launch{
		Width:        900,
		Height:       600,
		Threshold:    0.5,
		Brush:        1.0,
		CellScale:    5,
		OffsetX:      -150,
		OffsetY:      0,
		FPS:          120,
		LogLevel:     "info",
		SnapshotPath: "isoedit.png",
		Seed:         true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Launch) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "isovalue; samples strictly above it are inside")
	fs.Float64Var(&c.Brush, "brush", c.Brush, "value painted by the left mouse button")
	fs.Float64Var(&c.CellScale, "cell-scale", c.CellScale, "world units per field cell")
	fs.Float64Var(&c.OffsetX, "offset-x", c.OffsetX, "field placement x in world units")
	fs.Float64Var(&c.OffsetY, "offset-y", c.OffsetY, "field placement y in world units")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frame cap, 0 for uncapped")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.StringVar(&c.SnapshotPath, "snapshot", c.SnapshotPath, "PNG path written by the snapshot key")
	fs.BoolVar(&c.Seed, "seed", c.Seed, "start with a 2x2 block at the origin")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "click on every painted cell (terminal editor)")
}

// Validate checks the parsed values.
func (c *Launch) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.Threshold < MinThreshold || c.Threshold > MaxThreshold {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrInvalidThreshold, c.Threshold, MinThreshold, MaxThreshold)
	}
	if c.Brush < MinBrush || c.Brush > MaxBrush {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrInvalidBrush, c.Brush, MinBrush, MaxBrush)
	}
	if c.CellScale <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidScale, c.CellScale)
	}
	if c.FPS < 0 || c.FPS > MaxFPSLimit {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	return nil
}

// Apply copies the runtime-tunable values into the live settings.
func (c *Launch) Apply() {
	SetThreshold(float32(c.Threshold))
	SetBrush(float32(c.Brush))
	SetFPSLimit(c.FPS)
}
