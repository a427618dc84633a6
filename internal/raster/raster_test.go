package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"isoedit/internal/field"
	"isoedit/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
)

func blockMesh() *meshing.Mesh {
	f := field.New()
	for _, c := range []field.Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		f.Set(c, 1)
	}
	return f.March(0.5)
}

func TestCoverageOfBlock(t *testing.T) {
	m := blockMesh()
	a := Coverage(m, Fit(m, 40, 40, 0), 40, 40)

	if got := a.AlphaAt(20, 20).A; got < 0xf0 {
		t.Errorf("center alpha = %#x, want full coverage", got)
	}
	// the one-corner cells clip the image corners
	for _, p := range []image.Point{{0, 0}, {39, 0}, {0, 39}, {39, 39}} {
		if got := a.AlphaAt(p.X, p.Y).A; got != 0 {
			t.Errorf("corner %v alpha = %#x, want 0", p, got)
		}
	}
	// edge midpoints are covered by the two-corner cells
	for _, p := range []image.Point{{20, 1}, {1, 20}, {38, 20}, {20, 38}} {
		if got := a.AlphaAt(p.X, p.Y).A; got < 0xf0 {
			t.Errorf("edge %v alpha = %#x, want full coverage", p, got)
		}
	}
}

func TestCoverageEmpty(t *testing.T) {
	a := Coverage(&meshing.Mesh{}, mgl32.Ident4(), 8, 8)
	for _, v := range a.Pix {
		if v != 0 {
			t.Fatal("empty mesh produced coverage")
		}
	}
}

func TestFitKeepsAspect(t *testing.T) {
	m := &meshing.Mesh{Positions: []mgl32.Vec3{{0, 0, 0}, {4, 0, 0}, {0, 2, 0}}}
	xf := Fit(m, 100, 100, 10)

	lo := xf.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	hi := xf.Mul4x1(mgl32.Vec4{4, 2, 0, 1})
	if lo[0] != 10 || hi[0] != 90 {
		t.Fatalf("x mapped to %v..%v, want 10..90", lo[0], hi[0])
	}
	// y is flipped and centered: 2 units tall at 20 px/unit
	if lo[1] != 70 || hi[1] != 30 {
		t.Fatalf("y mapped to %v..%v, want 70..30", lo[1], hi[1])
	}
}

func TestQuadrants(t *testing.T) {
	a := image.NewAlpha(image.Rect(0, 0, 5, 3))
	a.SetAlpha(0, 0, color.Alpha{A: 0xff})
	a.SetAlpha(1, 1, color.Alpha{A: 0xff})
	a.SetAlpha(2, 0, color.Alpha{A: 0x40})
	a.SetAlpha(3, 1, color.Alpha{A: 0xff})
	a.SetAlpha(4, 2, color.Alpha{A: 0xff})

	got := Quadrants(a, 0x80)
	want := [][]rune{
		{'▚', '▗', ' '},
		{' ', ' ', '▘'},
	}
	if len(got) != len(want) {
		t.Fatalf("rows = %d, want %d", len(got), len(want))
	}
	for r := range want {
		if string(got[r]) != string(want[r]) {
			t.Errorf("row %d = %q, want %q", r, string(got[r]), string(want[r]))
		}
	}
}

func TestWritePNG(t *testing.T) {
	m := blockMesh()
	img := Snapshot(m, Fit(m, 32, 24, 2), 32, 24, color.White, color.Black)
	path := filepath.Join(t.TempDir(), "snap.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Fatalf("decoded size %v", b)
	}
	r, _, _, _ := decoded.At(16, 12).RGBA()
	if r < 0xf000 {
		t.Fatalf("center pixel red = %#x, want white", r)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "missing", "snap.png"), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
