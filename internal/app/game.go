//go:build ebiten

package app

import (
	"image"
	"image/color"

	"isoedit/internal/config"
	"isoedit/internal/editor"
	"isoedit/internal/logging"
	"isoedit/internal/meshing"
	"isoedit/internal/profiling"
	"isoedit/internal/raster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// trianglesPerBatch keeps each DrawTriangles call under the uint16 index limit.
const trianglesPerBatch = 65535 / 3

// Game adapts an editor to the ebiten.Game interface.
type Game struct {
	editor   *editor.Editor
	snapshot string

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16

	fill       color.RGBA
	background color.RGBA

	lastX, lastY int
	dragging     bool
}

// New constructs a Game around ed. Snapshots are written to snapshotPath.
func New(ed *editor.Editor, snapshotPath string) *Game {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Game{
		editor:     ed,
		snapshot:   snapshotPath,
		white:      img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		fill:       color.RGBA{R: 0xe6, G: 0xb4, B: 0x3c, A: 0xff},
		background: color.RGBA{R: 0x14, G: 0x16, B: 0x1c, A: 0xff},
	}
}

// Update handles keyboard, wheel and pointer input.
func (g *Game) Update() error {
	profiling.ResetFrame()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.editor.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.editor.NudgeThreshold(-0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.editor.NudgeThreshold(0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.editor.NudgeBrush(-0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.editor.NudgeBrush(0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.writeSnapshot()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.editor.Scroll(dy, ebiten.IsKeyPressed(ebiten.KeyControl))
	}

	x, y := ebiten.CursorPosition()
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.stroke(x, y, config.GetBrush())
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		g.stroke(x, y, 0)
	default:
		g.dragging = false
	}
	return nil
}

func (g *Game) stroke(x, y int, v float32) {
	if !g.dragging {
		g.lastX, g.lastY = x, y
		g.dragging = true
	}
	g.editor.Stroke(float64(g.lastX), float64(g.lastY), float64(x), float64(y), v)
	g.lastX, g.lastY = x, y
}

func (g *Game) writeSnapshot() {
	m := g.editor.Mesh()
	vp := g.editor.Viewport()
	img := raster.Snapshot(m, g.editor.PixelTransform(), vp.Width, vp.Height, g.fill, g.background)
	if err := raster.WritePNG(g.snapshot, img); err != nil {
		logging.Logger().Error("snapshot failed", "error", err)
		return
	}
	logging.Logger().Info("snapshot written", "path", g.snapshot, "triangles", m.TriangleCount())
}

// Draw re-marches the field and fills the contour.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)

	m := g.editor.Mesh()
	g.drawMesh(screen, m)
	ebiten.SetWindowTitle("isoedit  " + g.editor.Status(m))
}

func (g *Game) drawMesh(screen *ebiten.Image, m *meshing.Mesh) {
	defer profiling.Track("app.drawMesh")()

	xf := g.editor.PixelTransform()
	r := float32(g.fill.R) / 0xff
	gr := float32(g.fill.G) / 0xff
	b := float32(g.fill.B) / 0xff

	for start := 0; start < len(m.Indices); start += trianglesPerBatch * 3 {
		end := min(start+trianglesPerBatch*3, len(m.Indices))

		g.vertices = g.vertices[:0]
		g.indices = g.indices[:0]
		for k, idx := range m.Indices[start:end] {
			v := xf.Mul4x1(m.Positions[idx].Vec4(1))
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX: v[0], DstY: v[1],
				SrcX: 1.5, SrcY: 1.5,
				ColorR: r, ColorG: gr, ColorB: b, ColorA: 1,
			})
			g.indices = append(g.indices, uint16(k))
		}
		screen.DrawTriangles(g.vertices, g.indices, g.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

// Layout follows the window size so the viewport tracks resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.editor.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
