package bounds

import (
	_ "embed"

	"isoedit/internal/graphics"
	renderer "isoedit/internal/graphics/renderer"
	"isoedit/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed bounds.vert
	vertexSrc string
	//go:embed bounds.frag
	fragmentSrc string
)

// Bounds outlines the cells the mesher visits: the field bounds grown by one
type Bounds struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	hidden bool
}

// NewBounds creates a new bounds renderable
func NewBounds() *Bounds {
	return &Bounds{}
}

// Toggle shows or hides the outline
func (b *Bounds) Toggle() {
	b.hidden = !b.hidden
}

// Init initializes the outline rendering system
func (b *Bounds) Init() error {
	var err error
	b.shader, err = graphics.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	// unit square, scaled onto the domain by the model matrix
	vertices := []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)

	gl.BindVertexArray(0)
	return nil
}

// Render draws the outline around the iteration domain
func (b *Bounds) Render(ctx renderer.RenderContext) {
	if b.hidden {
		return
	}
	defer profiling.Track("renderer.bounds")()

	lo, hi := ctx.Editor.Domain()
	size := hi.Sub(lo)
	model := mgl32.Translate3D(lo[0], lo[1], 0).Mul4(mgl32.Scale3D(size[0], size[1], 1))
	mvp := ctx.MVP.Mul4(model)

	b.shader.Use()
	b.shader.SetMatrix4("mvp", &mvp[0])
	b.shader.SetVector3("color", 0.35, 0.38, 0.45)

	gl.BindVertexArray(b.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINE_LOOP, 0, 4)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (b *Bounds) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.shader != nil {
		b.shader.Delete()
	}
}
