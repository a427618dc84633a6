// Package raster draws contour meshes on the CPU, for PNG snapshots and for
// the terminal editor.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"isoedit/internal/meshing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Coverage rasterises every triangle of m, transformed by xf into pixel
// space, into an alpha mask of w x h pixels.
func Coverage(m *meshing.Mesh, xf mgl32.Mat4, w, h int) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if m.IsEmpty() || w <= 0 || h <= 0 {
		return dst
	}

	z := vector.NewRasterizer(w, h)
	for i := 0; i+2 < len(m.Positions); i += 3 {
		a := project(xf, m.Positions[i])
		b := project(xf, m.Positions[i+1])
		c := project(xf, m.Positions[i+2])

		// The pattern table mixes windings and the rasterizer sums signed
		// area, so flip clockwise triangles to keep shared edges from cancelling.
		cross := (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
		if cross == 0 {
			continue
		}
		if cross < 0 {
			b, c = c, b
		}
		z.MoveTo(a[0], a[1])
		z.LineTo(b[0], b[1])
		z.LineTo(c[0], c[1])
		z.ClosePath()
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func project(xf mgl32.Mat4, p mgl32.Vec3) mgl32.Vec2 {
	v := xf.Mul4x1(p.Vec4(1))
	return mgl32.Vec2{v[0], v[1]}
}

// Fit returns a transform that maps the mesh extent into a w x h image with
// margin pixels on every side, y pointing down, aspect preserved.
func Fit(m *meshing.Mesh, w, h, margin int) mgl32.Mat4 {
	lo, hi, ok := m.Bounds()
	if !ok {
		return mgl32.Ident4()
	}
	span := hi.Sub(lo)
	availW := float32(w - 2*margin)
	availH := float32(h - 2*margin)
	s := float32(math.Min(float64(availW/span[0]), float64(availH/span[1])))

	// center the scaled extent
	ox := float32(margin) + (availW-span[0]*s)/2
	oy := float32(margin) + (availH-span[1]*s)/2

	return mgl32.Translate3D(ox, float32(h)-oy, 0).
		Mul4(mgl32.Scale3D(s, -s, 1)).
		Mul4(mgl32.Translate3D(-lo[0], -lo[1], 0))
}

// Snapshot renders m in fg over a bg background.
func Snapshot(m *meshing.Mesh, xf mgl32.Mat4, w, h int, fg, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	mask := Coverage(m, xf, w, h)
	draw.DrawMask(img, img.Bounds(), image.NewUniform(fg), image.Point{}, mask, image.Point{}, draw.Over)
	return img
}

// WritePNG encodes img to path, replacing any existing file.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode snapshot %s: %w", path, err)
	}
	return nil
}
