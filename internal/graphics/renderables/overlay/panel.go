package overlay

import (
	_ "embed"

	"isoedit/internal/graphics"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed panel.vert
	panelVertexSrc string
	//go:embed panel.frag
	panelFragmentSrc string
)

// panel draws translucent screen-space rectangles behind the text
type panel struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func newPanel() (*panel, error) {
	shader, err := graphics.NewShader(panelVertexSrc, panelFragmentSrc)
	if err != nil {
		return nil, err
	}
	p := &panel{shader: shader}

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return p, nil
}

// drawRect fills a rectangle given in pixels, top-left origin, on a
// viewport of winW x winH pixels
func (p *panel) drawRect(x, y, w, h float32, winW, winH int, color mgl32.Vec3, alpha float32) {
	if winW <= 0 || winH <= 0 {
		return
	}
	// Convert to NDC [-1,1]
	x0 := (x/float32(winW))*2 - 1
	y0 := 1 - (y/float32(winH))*2
	x1 := ((x+w)/float32(winW))*2 - 1
	y1 := 1 - ((y+h)/float32(winH))*2
	verts := []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}

	p.shader.Use()
	p.shader.SetVector4("uColor", color.X(), color.Y(), color.Z(), alpha)

	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func (p *panel) dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	p.shader.Delete()
}
