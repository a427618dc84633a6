package editor

import "github.com/go-gl/mathgl/mgl32"

// Zoom limits, in world units per pixel.
const (
	MinScale = 0.02
	MaxScale = 50
)

// Viewport is an orthographic 2D camera. Screen space is y-down with the
// origin at the top-left pixel; world space is y-up.
type Viewport struct {
	Center mgl32.Vec2
	Scale  float32 // world units per pixel
	Width  int
	Height int
}

// NewViewport returns a camera at the world origin, one world unit per pixel.
func NewViewport(width, height int) *Viewport {
	return &Viewport{Scale: 1, Width: width, Height: height}
}

func (v *Viewport) halfExtent() (float32, float32) {
	return float32(v.Width) / 2 * v.Scale, float32(v.Height) / 2 * v.Scale
}

// Proj returns the world -> clip space projection.
func (v *Viewport) Proj() mgl32.Mat4 {
	hw, hh := v.halfExtent()
	return mgl32.Ortho2D(v.Center[0]-hw, v.Center[0]+hw, v.Center[1]-hh, v.Center[1]+hh)
}

// ScreenToWorld converts a pointer position to world space.
func (v *Viewport) ScreenToWorld(sx, sy float64) mgl32.Vec2 {
	return mgl32.Vec2{
		v.Center[0] + (float32(sx)-float32(v.Width)/2)*v.Scale,
		v.Center[1] + (float32(v.Height)/2-float32(sy))*v.Scale,
	}
}

// WorldToScreen is the inverse of ScreenToWorld.
func (v *Viewport) WorldToScreen(w mgl32.Vec2) (float64, float64) {
	sx := (w[0]-v.Center[0])/v.Scale + float32(v.Width)/2
	sy := float32(v.Height)/2 - (w[1]-v.Center[1])/v.Scale
	return float64(sx), float64(sy)
}

// ClipToPixels maps clip space to y-down pixel coordinates.
func (v *Viewport) ClipToPixels() mgl32.Mat4 {
	hw, hh := float32(v.Width)/2, float32(v.Height)/2
	return mgl32.Translate3D(hw, hh, 0).Mul4(mgl32.Scale3D(hw, -hh, 1))
}

// Zoom scales the view by 10% per wheel notch; positive notches zoom in.
func (v *Viewport) Zoom(notches float64) {
	s := v.Scale - v.Scale*float32(notches)*0.1
	if s < MinScale {
		s = MinScale
	}
	if s > MaxScale {
		s = MaxScale
	}
	v.Scale = s
}

// Pan moves the camera 50 world units along y per wheel notch.
func (v *Viewport) Pan(notches float64) {
	v.Center[1] += float32(notches) * 50
}

// Resize updates the pixel dimensions, ignoring degenerate sizes such as a
// minimised window.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.Width, v.Height = width, height
}
