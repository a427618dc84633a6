// Command isosnap marches a generated field without a window and writes the
// contour to a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"runtime"
	"time"

	"isoedit/internal/config"
	"isoedit/internal/field"
	"isoedit/internal/fieldgen"
	"isoedit/internal/logging"
	"isoedit/internal/meshing"
	"isoedit/internal/raster"
)

type options struct {
	disc      int
	noise     bool
	noiseSeed int64
	margin    int
	workers   int
}

func main() {
	cfg := config.NewLaunch()
	cfg.Width, cfg.Height = 512, 512
	cfg.SnapshotPath = "isosnap.png"
	cfg.Bind(flag.CommandLine)

	var opts options
	flag.IntVar(&opts.disc, "disc", 8, "radius of the painted disc, in samples")
	flag.BoolVar(&opts.noise, "noise", false, "fill the disc with value noise")
	flag.Int64Var(&opts.noiseSeed, "noise-seed", 1, "value noise seed")
	flag.IntVar(&opts.margin, "margin", 16, "image margin in pixels")
	flag.IntVar(&opts.workers, "workers", runtime.NumCPU(), "marching goroutines, 1 marches inline")
	flag.Parse()

	if err := run(cfg, opts); err != nil {
		fmt.Fprintln(os.Stderr, "isosnap:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Launch, opts options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if opts.disc < 0 {
		return fmt.Errorf("disc radius must be non-negative, got %d", opts.disc)
	}
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.SetLogger(logger)
	cfg.Apply()

	f := buildField(opts.disc, opts.noise, opts.noiseSeed)
	if cfg.Seed && f.Len() == 0 {
		f.Set(field.Coord{}, config.GetBrush())
	}

	start := time.Now()
	m, err := march(f, opts.workers)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	b := f.Bounds()
	logging.Logger().Info("marched",
		"samples", f.Len(),
		"bounds", fmt.Sprintf("[%d,%d]-[%d,%d]", b.Min.X, b.Min.Y, b.Max.X, b.Max.Y),
		"threshold", config.GetThreshold(),
		"vertices", m.VertexCount(),
		"triangles", m.TriangleCount(),
		"took", elapsed,
	)

	img := raster.Snapshot(m, raster.Fit(m, cfg.Width, cfg.Height, opts.margin), cfg.Width, cfg.Height,
		color.RGBA{R: 0xe6, G: 0xb4, B: 0x3c, A: 0xff},
		color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff},
	)
	if err := raster.WritePNG(cfg.SnapshotPath, img); err != nil {
		return err
	}
	logging.Logger().Info("snapshot written", "path", cfg.SnapshotPath)
	return nil
}

func march(f *field.Field, workers int) (*meshing.Mesh, error) {
	if workers <= 1 {
		return f.March(config.GetThreshold()), nil
	}
	pool := meshing.NewWorkerPool(workers, workers)
	defer pool.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return pool.March(ctx, f, config.GetThreshold())
}

// buildField paints a filled disc of radius r around the origin at the
// current brush value. With noise, the disc carries seeded value noise that
// fades toward the rim, so the threshold cuts ragged blobs.
func buildField(r int, noise bool, seed int64) *field.Field {
	f := field.New()
	if noise {
		fieldgen.NoisyDisc(f, field.Coord{}, r, config.GetBrush(), fieldgen.DefaultNoise(seed))
	} else {
		fieldgen.Disc(f, field.Coord{}, r, config.GetBrush())
	}
	return f
}
