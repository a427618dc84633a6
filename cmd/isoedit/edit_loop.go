package main

import (
	"image/color"
	"time"

	"isoedit/internal/app"
	"isoedit/internal/config"
	"isoedit/internal/editor"
	renderer "isoedit/internal/graphics/renderer"
	"isoedit/internal/input"
	"isoedit/internal/logging"
	"isoedit/internal/meshing"
	"isoedit/internal/profiling"
	"isoedit/internal/raster"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	thresholdStep = 0.1
	brushStep     = 0.25
)

// EditLoop manages the main editor loop state
type EditLoop struct {
	window       *glfw.Window
	comps        *EditorComponents
	editor       *editor.Editor
	inputManager *input.InputManager
	fpsLimiter   *app.FPSLimiter
	snapshotPath string

	// Pointer position of the previous painted frame
	lastX, lastY float64
	stroking     bool

	// Timing
	frames           int
	lastFPSCheckTime time.Time
	lastTitle        time.Time
}

// NewEditLoop creates a new edit loop with all components
func NewEditLoop(window *glfw.Window, comps *EditorComponents, ed *editor.Editor, im *input.InputManager, snapshotPath string) *EditLoop {
	return &EditLoop{
		window:           window,
		comps:            comps,
		editor:           ed,
		inputManager:     im,
		fpsLimiter:       app.NewFPSLimiter(),
		snapshotPath:     snapshotPath,
		lastFPSCheckTime: time.Now(),
	}
}

// Run starts the main loop
func (l *EditLoop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *EditLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()

	// Poll events at start
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	l.handleInputActions()
	l.handlePointer()

	m := l.renderFrame()

	// Present
	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()

	// Clear edge flags at end of frame
	l.inputManager.PostUpdate()

	l.updateProfiling(now, m)

	l.fpsLimiter.Wait()
}

func (l *EditLoop) handleInputActions() {
	im := l.inputManager

	if im.JustPressed(input.ActionQuit) {
		l.window.SetShouldClose(true)
	}
	if im.JustPressed(input.ActionReset) {
		l.editor.Reset()
	}
	if im.JustPressed(input.ActionThresholdUp) {
		l.editor.NudgeThreshold(thresholdStep)
	}
	if im.JustPressed(input.ActionThresholdDown) {
		l.editor.NudgeThreshold(-thresholdStep)
	}
	if im.JustPressed(input.ActionBrushUp) {
		l.editor.NudgeBrush(brushStep)
	}
	if im.JustPressed(input.ActionBrushDown) {
		l.editor.NudgeBrush(-brushStep)
	}
	if im.JustPressed(input.ActionToggleBounds) {
		l.comps.Bounds.Toggle()
	}
	if im.JustPressed(input.ActionToggleOverlay) {
		l.comps.Overlay.Toggle()
	}
	if im.JustPressed(input.ActionSnapshot) {
		l.writeSnapshot()
	}

	if dy := im.Scroll(); dy != 0 {
		l.editor.Scroll(dy, im.IsActive(input.ActionZoomModifier))
	}
}

// handlePointer paints or erases along the pointer path since the last frame
func (l *EditLoop) handlePointer() {
	im := l.inputManager

	var value float32
	switch {
	case im.IsActive(input.ActionPaint):
		value = config.GetBrush()
	case im.IsActive(input.ActionErase):
		value = 0
	default:
		l.stroking = false
		return
	}

	x, y := l.window.GetCursorPos()
	if !l.stroking {
		l.lastX, l.lastY = x, y
		l.stroking = true
	}
	func() {
		defer profiling.Track("editor.Stroke")()
		l.editor.Stroke(l.lastX, l.lastY, x, y, value)
	}()
	l.lastX, l.lastY = x, y
}

func (l *EditLoop) renderFrame() *meshing.Mesh {
	m := l.editor.Mesh()
	l.comps.Renderer.Render(l.editor, m, l.hover())
	l.frames++
	return m
}

func (l *EditLoop) hover() renderer.Hover {
	x, y := l.window.GetCursorPos()
	w, h := l.window.GetSize()
	if x < 0 || y < 0 || x >= float64(w) || y >= float64(h) {
		return renderer.Hover{}
	}
	return renderer.Hover{Coord: l.editor.ScreenToField(x, y), Active: true}
}

// RefreshRender redraws while the window is being resized
func (l *EditLoop) RefreshRender() {
	l.renderFrame()
	l.window.SwapBuffers()
}

// SyncViewport pulls the current window and framebuffer sizes
func (l *EditLoop) SyncViewport() {
	winW, winH := l.window.GetSize()
	l.editor.Resize(winW, winH)
	fbW, fbH := l.window.GetFramebufferSize()
	l.comps.Renderer.UpdateViewport(fbW, fbH)
}

func (l *EditLoop) writeSnapshot() {
	defer profiling.Track("editor.Snapshot")()

	m := l.editor.Mesh()
	vp := l.editor.Viewport()
	img := raster.Snapshot(m, l.editor.PixelTransform(), vp.Width, vp.Height,
		color.RGBA{R: 0xe6, G: 0xb4, B: 0x3c, A: 0xff},
		color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff},
	)
	if err := raster.WritePNG(l.snapshotPath, img); err != nil {
		logging.Logger().Error("snapshot failed", "error", err)
		return
	}
	logging.Logger().Info("snapshot written", "path", l.snapshotPath, "triangles", m.TriangleCount())
}

func (l *EditLoop) updateProfiling(frameStart time.Time, m *meshing.Mesh) {
	l.comps.Overlay.RecordFrame(time.Since(frameStart))

	// Title updates are slow on some platforms
	if time.Since(l.lastTitle) >= 250*time.Millisecond {
		title := "isoedit  " + l.editor.Status(m)
		if top := profiling.TopN(2); top != "" {
			title += "  [" + top + "]"
		}
		l.window.SetTitle(title)
		l.lastTitle = time.Now()
	}

	if time.Since(l.lastFPSCheckTime) >= time.Second {
		logging.Logger().Debug("frame stats",
			"fps", l.frames,
			"frame_ms", profiling.FormatMs(time.Since(frameStart)),
			"march_ms", profiling.FormatMs(profiling.SumWithPrefix("meshing.")),
		)
		l.frames = 0
		l.lastFPSCheckTime = time.Now()
	}
}
