package main

import (
	"fmt"
	"image/color"
	"time"

	"isoedit/internal/config"
	"isoedit/internal/editor"
	"isoedit/internal/logging"
	"isoedit/internal/meshing"
	"isoedit/internal/profiling"
	"isoedit/internal/raster"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	thresholdStep = 0.1
	brushStep     = 0.25

	// snapshot pixels per terminal sub-pixel
	snapshotScale = 4
)

type terminal struct {
	screen tcell.Screen
	editor *editor.Editor
	click  *clicker

	snapshotPath string

	cols, rows int
	dirty      bool

	// last painted sub-pixel while a button is held
	lastX, lastY int
	stroking     bool
}

func newTerminal(cfg *config.Launch) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &terminal{
		screen:       screen,
		editor:       editor.New(cfg),
		snapshotPath: cfg.SnapshotPath,
		dirty:        true,
	}
	if cfg.Sound {
		t.click = newClicker()
		if err := t.click.init(); err != nil {
			// non-fatal, editing works without sound
			logging.Logger().Warn("audio init failed", "error", err)
		}
	}
	t.resize()
	return t, nil
}

func (t *terminal) cleanup() {
	t.click.close()
	t.screen.Fini()
}

// resize maps the terminal to the viewport; the last row is the status line.
func (t *terminal) resize() {
	t.cols, t.rows = t.screen.Size()
	t.editor.Resize(t.cols*2, (t.rows-1)*2)
	t.dirty = true
}

func (t *terminal) run() {
	ticker := time.NewTicker(time.Second / 30)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			if t.dirty {
				t.draw()
				t.dirty = false
			}
		}
	}
}

func (t *terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

func (t *terminal) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
	case ']':
		t.editor.NudgeThreshold(thresholdStep)
	case '[':
		t.editor.NudgeThreshold(-thresholdStep)
	case '=', '+':
		t.editor.NudgeBrush(brushStep)
	case '-':
		t.editor.NudgeBrush(-brushStep)
	case 'r':
		t.editor.Reset()
	case 'p':
		t.writeSnapshot()
	default:
		return true
	}
	t.dirty = true
	return true
}

func (t *terminal) handleMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	btn := ev.Buttons()

	switch {
	case btn&tcell.WheelUp != 0:
		t.editor.Scroll(1, ev.Modifiers()&tcell.ModCtrl != 0)
		t.dirty = true
	case btn&tcell.WheelDown != 0:
		t.editor.Scroll(-1, ev.Modifiers()&tcell.ModCtrl != 0)
		t.dirty = true
	}

	if cy >= t.rows-1 {
		t.stroking = false
		return
	}
	// center of the cell in sub-pixel coordinates
	px, py := cx*2+1, cy*2+1

	var value float32
	switch {
	case btn&tcell.Button1 != 0:
		value = config.GetBrush()
	case btn&tcell.Button2 != 0:
		value = 0
	default:
		t.stroking = false
		return
	}

	if !t.stroking {
		t.lastX, t.lastY = px, py
		t.stroking = true
	}
	n := t.editor.Stroke(float64(t.lastX), float64(t.lastY), float64(px), float64(py), value)
	t.lastX, t.lastY = px, py
	t.dirty = true
	if n > 0 {
		t.click.play()
	}
}

func (t *terminal) draw() {
	profiling.ResetFrame()

	m := t.editor.Mesh()
	vp := t.editor.Viewport()
	glyphs := func() [][]rune {
		defer profiling.Track("raster.Coverage")()
		return raster.Quadrants(raster.Coverage(m, t.editor.PixelTransform(), vp.Width, vp.Height), 0x80)
	}()

	fill := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xe6, 0xb4, 0x3c))
	for y, row := range glyphs {
		for x, r := range row {
			t.screen.SetContent(x, y, r, nil, fill)
		}
	}
	t.drawStatus(m)
	t.screen.Show()
}

func (t *terminal) drawStatus(m *meshing.Mesh) {
	style := tcell.StyleDefault.Reverse(true)
	line := []rune(" " + t.editor.Status(m) + "  " + profiling.TopN(1))
	y := t.rows - 1
	for x := 0; x < t.cols; x++ {
		r := ' '
		if x < len(line) {
			r = line[x]
		}
		t.screen.SetContent(x, y, r, nil, style)
	}
}

func (t *terminal) writeSnapshot() {
	m := t.editor.Mesh()
	vp := t.editor.Viewport()
	xf := mgl32.Scale3D(snapshotScale, snapshotScale, 1).Mul4(t.editor.PixelTransform())
	img := raster.Snapshot(m, xf, vp.Width*snapshotScale, vp.Height*snapshotScale,
		color.RGBA{R: 0xe6, G: 0xb4, B: 0x3c, A: 0xff}, color.Black)
	if err := raster.WritePNG(t.snapshotPath, img); err != nil {
		logging.Logger().Error("snapshot failed", "error", err)
		return
	}
	logging.Logger().Info("snapshot written", "path", t.snapshotPath, "triangles", m.TriangleCount())
}
