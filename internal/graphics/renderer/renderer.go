package renderer

import (
	"isoedit/internal/editor"
	"isoedit/internal/meshing"
	"isoedit/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	clear       [4]float32
}

// NewRenderer creates a new renderer with the given renderables
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	// Contour triangles come in both windings
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		renderables: rs,
		clear:       [4]float32{0.08, 0.09, 0.11, 1.0},
	}

	for i, rb := range rs {
		if err := rb.Init(); err != nil {
			// dispose what was already initialised
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, err
		}
	}

	return r, nil
}

// Render draws one frame of m through every renderable
func (r *Renderer) Render(e *editor.Editor, m *meshing.Mesh, hover Hover) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	ctx := RenderContext{
		Editor: e,
		Mesh:   m,
		MVP:    e.MVP(),
		Hover:  hover,
	}
	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport to the framebuffer
func (r *Renderer) UpdateViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}
