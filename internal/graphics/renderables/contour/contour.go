// Package contour draws the marched mesh of the edited field.
package contour

import (
	_ "embed"

	"isoedit/internal/graphics"
	renderer "isoedit/internal/graphics/renderer"
	"isoedit/internal/meshing"
	"isoedit/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
)

var (
	//go:embed contour.vert
	vertexSrc string
	//go:embed contour.frag
	fragmentSrc string
)

// Contour uploads the mesh each frame and draws it as indexed triangles
type Contour struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	ebo    uint32

	vboCap int
	eboCap int
}

// NewContour creates a new contour renderable
func NewContour() *Contour {
	return &Contour{}
}

// Init compiles the shader and sets up the vertex layout
func (c *Contour) Init() error {
	var err error
	c.shader, err = graphics.NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)

	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.GenBuffers(1, &c.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.ebo)

	stride := int32(meshing.VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)
	return nil
}

// Render uploads and draws ctx.Mesh
func (c *Contour) Render(ctx renderer.RenderContext) {
	if ctx.Mesh == nil || ctx.Mesh.IsEmpty() {
		return
	}
	defer profiling.Track("renderer.contour")()

	c.upload(ctx.Mesh)

	c.shader.Use()
	c.shader.SetMatrix4("mvp", &ctx.MVP[0])
	c.shader.SetVector3("color", 0.90, 0.71, 0.24)

	gl.BindVertexArray(c.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(ctx.Mesh.Indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// upload grows the buffers only when the mesh outgrows them
func (c *Contour) upload(m *meshing.Mesh) {
	vertices := m.Interleaved()

	gl.BindVertexArray(c.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	if size := len(vertices) * 4; size > c.vboCap {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		c.vboCap = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(vertices))
	}

	if size := len(m.Indices) * 4; size > c.eboCap {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, size, gl.Ptr(m.Indices), gl.DYNAMIC_DRAW)
		c.eboCap = size
	} else {
		gl.BufferSubData(gl.ELEMENT_ARRAY_BUFFER, 0, size, gl.Ptr(m.Indices))
	}
}

// Dispose cleans up OpenGL resources
func (c *Contour) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.ebo != 0 {
		gl.DeleteBuffers(1, &c.ebo)
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}
