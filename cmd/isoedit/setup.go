package main

import (
	"fmt"

	"isoedit/internal/graphics/renderables/bounds"
	"isoedit/internal/graphics/renderables/contour"
	"isoedit/internal/graphics/renderables/cursor"
	"isoedit/internal/graphics/renderables/overlay"
	renderer "isoedit/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(width, height int) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(width, height, "isoedit", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	// Disable V-Sync; the FPS limiter paces frames
	glfw.SwapInterval(0)

	return window, nil
}

// EditorComponents holds the initialized rendering components
type EditorComponents struct {
	Renderer *renderer.Renderer
	Contour  *contour.Contour
	Bounds   *bounds.Bounds
	Overlay  *overlay.Overlay
}

func setupEditor() (*EditorComponents, error) {
	contourRenderer := contour.NewContour()
	boundsRenderer := bounds.NewBounds()
	cursorRenderer := cursor.NewCursor()
	overlayRenderer := overlay.NewOverlay()

	r, err := renderer.NewRenderer(
		contourRenderer,
		boundsRenderer,
		cursorRenderer,
		overlayRenderer,
	)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	return &EditorComponents{
		Renderer: r,
		Contour:  contourRenderer,
		Bounds:   boundsRenderer,
		Overlay:  overlayRenderer,
	}, nil
}
