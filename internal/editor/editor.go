// Package editor holds the frontend-independent state of the field editor:
// the field itself, the camera and the field placement, plus the pointer and
// wheel operations every frontend maps its input onto.
package editor

import (
	"fmt"
	"math"

	"isoedit/internal/config"
	"isoedit/internal/field"
	"isoedit/internal/logging"
	"isoedit/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// Editor is owned by the frontend's loop goroutine.
type Editor struct {
	field    *field.Field
	viewport *Viewport
	model    mgl32.Mat4
	inverse  mgl32.Mat4
	seed     bool
}

// New builds an editor from the launch configuration.
func New(cfg *config.Launch) *Editor {
	s := float32(cfg.CellScale)
	model := mgl32.Translate3D(float32(cfg.OffsetX), float32(cfg.OffsetY), 0).
		Mul4(mgl32.Scale3D(s, s, s))

	e := &Editor{
		viewport: NewViewport(cfg.Width, cfg.Height),
		model:    model,
		inverse:  model.Inv(),
		seed:     cfg.Seed,
	}
	e.Reset()
	return e
}

// Reset replaces the field with a fresh one, seeded if configured.
func (e *Editor) Reset() {
	e.field = field.New()
	if e.seed {
		for _, c := range []field.Coord{{0, 0}, {1, 0}, {1, 1}, {0, 1}} {
			e.field.Set(c, 1)
		}
	}
	logging.Logger().Info("field reset", "seeded", e.seed)
}

// Field returns the edited field.
func (e *Editor) Field() *field.Field { return e.field }

// Viewport returns the camera.
func (e *Editor) Viewport() *Viewport { return e.viewport }

// Model returns the field-local -> world placement.
func (e *Editor) Model() mgl32.Mat4 { return e.model }

// MVP returns the field-local -> clip space transform.
func (e *Editor) MVP() mgl32.Mat4 {
	return e.viewport.Proj().Mul4(e.model)
}

// PixelTransform returns the field-local -> y-down pixel transform used by
// CPU renderers.
func (e *Editor) PixelTransform() mgl32.Mat4 {
	return e.viewport.ClipToPixels().Mul4(e.MVP())
}

// ScreenToField returns the lattice point nearest to a pointer position.
func (e *Editor) ScreenToField(sx, sy float64) field.Coord {
	w := e.viewport.ScreenToWorld(sx, sy)
	local := e.inverse.Mul4x1(mgl32.Vec4{w[0], w[1], 0, 1})
	return field.Coord{
		X: int32(math.Round(float64(local[0]))),
		Y: int32(math.Round(float64(local[1]))),
	}
}

// SamplePosition returns where the mesher draws sample c, in field-local
// units: the top-left corner of the cell anchored at c.
func (e *Editor) SamplePosition(c field.Coord) mgl32.Vec2 {
	return mgl32.Vec2{float32(c.X), float32(c.Y)}.Add(meshing.TopLeft)
}

// Paint writes the brush value at the pointer.
func (e *Editor) Paint(sx, sy float64) field.Coord {
	c := e.ScreenToField(sx, sy)
	e.field.Set(c, config.GetBrush())
	return c
}

// Erase resets the sample at the pointer to the default.
func (e *Editor) Erase(sx, sy float64) field.Coord {
	c := e.ScreenToField(sx, sy)
	e.field.Set(c, 0)
	return c
}

// Stroke writes v at every lattice point on the segment between two pointer
// positions, so fast drags leave no gaps. It returns the number of points set.
func (e *Editor) Stroke(x0, y0, x1, y1 float64, v float32) int {
	a := e.ScreenToField(x0, y0)
	b := e.ScreenToField(x1, y1)
	n := 0
	walkLine(a, b, func(c field.Coord) {
		e.field.Set(c, v)
		n++
	})
	return n
}

// Domain returns the field-local rectangle covered by the cells March
// visits: the bounds grown by one cell, each cell spanning half a unit
// around its anchor.
func (e *Editor) Domain() (lo, hi mgl32.Vec2) {
	d := e.field.Bounds().Expand(1)
	lo = mgl32.Vec2{float32(d.Min.X) - 0.5, float32(d.Min.Y) - 0.5}
	hi = mgl32.Vec2{float32(d.Max.X) + 0.5, float32(d.Max.Y) + 0.5}
	return lo, hi
}

// Scroll routes a wheel event: zoom with the modifier held, pan otherwise.
func (e *Editor) Scroll(dy float64, zoomModifier bool) {
	if zoomModifier {
		e.viewport.Zoom(dy)
		return
	}
	e.viewport.Pan(dy)
}

// Resize updates the viewport dimensions.
func (e *Editor) Resize(width, height int) {
	e.viewport.Resize(width, height)
}

// NudgeThreshold shifts the isovalue by delta.
func (e *Editor) NudgeThreshold(delta float32) {
	config.SetThreshold(config.GetThreshold() + delta)
}

// NudgeBrush shifts the painted value by delta.
func (e *Editor) NudgeBrush(delta float32) {
	config.SetBrush(config.GetBrush() + delta)
}

// Mesh re-marches the whole field at the current threshold.
func (e *Editor) Mesh() *meshing.Mesh {
	return e.field.March(config.GetThreshold())
}

// Status summarises the editor state for a title bar or status line.
func (e *Editor) Status(m *meshing.Mesh) string {
	b := e.field.Bounds()
	return fmt.Sprintf("threshold %.2f  brush %.2f  samples %d  bounds [%d,%d]-[%d,%d]  triangles %d",
		config.GetThreshold(), config.GetBrush(), e.field.Len(),
		b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, m.TriangleCount())
}

// walkLine visits every lattice point of a 4-connected line from a to b,
// endpoints included. It takes |dx|+|dy| steps.
func walkLine(a, b field.Coord, visit func(field.Coord)) {
	dx := abs(int64(b.X) - int64(a.X))
	dy := abs(int64(b.Y) - int64(a.Y))
	sx, sy := int32(1), int32(1)
	if b.X < a.X {
		sx = -1
	}
	if b.Y < a.Y {
		sy = -1
	}
	c := a
	visit(c)
	for ix, iy := int64(0), int64(0); ix < dx || iy < dy; {
		// advance whichever axis crosses its next cell boundary first
		if (1+2*ix)*dy < (1+2*iy)*dx {
			c.X += sx
			ix++
		} else {
			c.Y += sy
			iy++
		}
		visit(c)
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
