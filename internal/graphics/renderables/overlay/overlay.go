// Package overlay draws the editor status and frame timings over the field.
package overlay

import (
	"fmt"
	"time"

	"isoedit/internal/config"
	"isoedit/internal/graphics"
	renderer "isoedit/internal/graphics/renderer"
	"isoedit/internal/profiling"
	"isoedit/internal/raster"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	fontPixels = 14
	margin     = 10
	helpLine   = "LMB paint  RMB erase  wheel pan  ctrl+wheel zoom  [ ] threshold  - = brush  R reset  P snapshot  B bounds  F1 overlay"
)

// Overlay renders a few lines of text in the top-left corner
type Overlay struct {
	font   *graphics.FontRenderer
	panel  *panel
	frames *profiling.FrameStats
	hidden bool
	lines  []string
}

// NewOverlay creates a new overlay renderable
func NewOverlay() *Overlay {
	return &Overlay{frames: profiling.NewFrameStats(60)}
}

// Init bakes the font and uploads it
func (o *Overlay) Init() error {
	atlas, err := raster.BakeGlyphs(gomono.TTF, fontPixels)
	if err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	o.font, err = graphics.NewFontRenderer(atlas)
	if err != nil {
		return err
	}
	o.panel, err = newPanel()
	return err
}

// Toggle shows or hides the overlay
func (o *Overlay) Toggle() {
	o.hidden = !o.hidden
}

// RecordFrame feeds one whole-frame duration into the timing line
func (o *Overlay) RecordFrame(d time.Duration) {
	o.frames.Record(d)
}

// Render draws the text lines
func (o *Overlay) Render(ctx renderer.RenderContext) {
	if o.hidden {
		return
	}
	defer profiling.Track("renderer.overlay")()

	vp := ctx.Editor.Viewport()
	o.font.SetViewport(vp.Width, vp.Height)

	lo, avg, hi := o.frames.Summary()
	b := ctx.Editor.Field().Bounds()
	o.lines = append(o.lines[:0],
		fmt.Sprintf("threshold %.2f  brush %.2f  zoom %.2f", config.GetThreshold(), config.GetBrush(), 1/vp.Scale),
		fmt.Sprintf("samples %d  bounds [%d,%d]-[%d,%d]  triangles %d",
			ctx.Editor.Field().Len(), b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, ctx.Mesh.TriangleCount()),
		fmt.Sprintf("frame %s  min %s  avg %s  max %s",
			profiling.FormatMs(o.frames.Last()), profiling.FormatMs(lo), profiling.FormatMs(avg), profiling.FormatMs(hi)),
		profiling.TopN(3),
		helpLine,
	)

	step := o.font.LineHeight() + 2
	var width float32
	for _, line := range o.lines {
		w, _ := o.font.Measure(line, 1)
		width = max(width, w)
	}
	o.panel.drawRect(margin/2, margin/2, width+margin, step*float32(len(o.lines))+margin,
		vp.Width, vp.Height, mgl32.Vec3{0, 0, 0}, 0.55)
	o.font.RenderLines(o.lines, margin, margin+step, step, 1, mgl32.Vec3{0.85, 0.87, 0.9})
}

// Dispose cleans up OpenGL resources
func (o *Overlay) Dispose() {
	if o.font != nil {
		o.font.Dispose()
	}
	if o.panel != nil {
		o.panel.dispose()
	}
}
