package renderer

import (
	"isoedit/internal/editor"
	"isoedit/internal/field"
	"isoedit/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Editor *editor.Editor
	Mesh   *meshing.Mesh
	MVP    mgl32.Mat4
	Hover  Hover
}

// Hover is the lattice point under the pointer, if the pointer is inside
// the window
type Hover struct {
	Coord  field.Coord
	Active bool
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
}
