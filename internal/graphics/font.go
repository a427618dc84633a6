package graphics

import (
	_ "embed"
	"fmt"

	"isoedit/internal/raster"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	//go:embed font.vert
	fontVertexSrc string
	//go:embed font.frag
	fontFragmentSrc string
)

// FontRenderer draws text from a baked glyph atlas in pixel coordinates,
// origin top-left
type FontRenderer struct {
	atlas      *raster.GlyphAtlas
	texture    uint32
	shader     *Shader
	projection mgl32.Mat4
	vao        uint32
	vbo        uint32
	vertices   []float32
}

// NewFontRenderer uploads the atlas as a single-channel texture
func NewFontRenderer(atlas *raster.GlyphAtlas) (*FontRenderer, error) {
	if atlas == nil || len(atlas.Glyphs) == 0 {
		return nil, fmt.Errorf("invalid font atlas")
	}
	shader, err := NewShader(fontVertexSrc, fontFragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("font shader: %w", err)
	}
	fr := &FontRenderer{
		atlas:      atlas,
		shader:     shader,
		projection: mgl32.Ortho(0, 1, 1, 0, 0, 1),
	}
	fr.initGL()
	return fr, nil
}

func (fr *FontRenderer) initGL() {
	b := fr.atlas.Image.Bounds()
	gl.GenTextures(1, &fr.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	// Ensure tight byte alignment for single-channel (alpha) upload
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(b.Dx()), int32(b.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(fr.atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.GenVertexArrays(1, &fr.vao)
	gl.GenBuffers(1, &fr.vbo)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// SetViewport updates the pixel projection
func (fr *FontRenderer) SetViewport(width, height int) {
	fr.projection = mgl32.Ortho(0, float32(width), float32(height), 0, 0, 1)
}

// LineHeight returns the baked line height at scale 1
func (fr *FontRenderer) LineHeight() float32 {
	return float32(fr.atlas.LineHeight)
}

// Measure returns the width and height in pixels the text will occupy at the given scale
func (fr *FontRenderer) Measure(text string, scale float32) (float32, float32) {
	return fr.atlas.Measure(text, scale)
}

// RenderLines draws multiple lines of text in a single pass. Lines start at
// (x, yStart) on the baseline and step down by lineStep pixels.
func (fr *FontRenderer) RenderLines(lines []string, x, yStart, lineStep, scale float32, color mgl32.Vec3) {
	fr.vertices = fr.vertices[:0]
	y := yStart
	for _, line := range lines {
		fr.vertices = fr.atlas.Quads(fr.vertices, line, x, y, scale)
		y += lineStep
	}
	if len(fr.vertices) == 0 {
		return
	}

	fr.shader.Use()
	fr.shader.SetVector3("textColor", color.X(), color.Y(), color.Z())
	fr.shader.SetMatrix4("projection", &fr.projection[0])
	fr.shader.SetInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, fr.texture)
	gl.BindVertexArray(fr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, fr.vbo)

	// Orphan the buffer to avoid GPU stalls on dynamic updates
	size := len(fr.vertices) * 4
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(fr.vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(fr.vertices)/4))

	gl.BindVertexArray(0)
}

// Dispose releases the texture, buffers and program
func (fr *FontRenderer) Dispose() {
	if fr.vao != 0 {
		gl.DeleteVertexArrays(1, &fr.vao)
	}
	if fr.vbo != 0 {
		gl.DeleteBuffers(1, &fr.vbo)
	}
	if fr.texture != 0 {
		gl.DeleteTextures(1, &fr.texture)
	}
	fr.shader.Delete()
}
