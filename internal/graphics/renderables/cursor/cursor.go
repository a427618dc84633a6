package cursor

import (
	_ "embed"

	"isoedit/internal/graphics"
	renderer "isoedit/internal/graphics/renderer"
	"isoedit/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed cursor.vert
	vertexSrc string
	//go:embed cursor.frag
	fragmentSrc string
)

// Vertices is a plus sign half a sample wide, centered on the origin
var Vertices = []float32{
	-0.25, 0.0,
	0.25, 0.0,
	0.0, -0.25,
	0.0, 0.25,
}

// Cursor marks the sample a click would write
type Cursor struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewCursor creates a new cursor renderable
func NewCursor() *Cursor {
	return &Cursor{}
}

// Init initializes the cursor rendering system
func (c *Cursor) Init() error {
	var err error
	c.shader, err = graphics.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	return nil
}

// Render draws the marker at the hovered sample
func (c *Cursor) Render(ctx renderer.RenderContext) {
	if !ctx.Hover.Active {
		return
	}
	defer profiling.Track("renderer.cursor")()

	p := ctx.Editor.SamplePosition(ctx.Hover.Coord)
	mvp := ctx.MVP.Mul4(mgl32.Translate3D(p[0], p[1], 0))

	c.shader.Use()
	c.shader.SetMatrix4("mvp", &mvp[0])
	c.shader.SetVector3("color", 1.0, 1.0, 1.0)

	gl.BindVertexArray(c.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 4)
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (c *Cursor) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}
