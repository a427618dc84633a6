package field

import "isoedit/internal/meshing"

// Coord identifies a lattice point in field space.
type Coord struct {
	X, Y int32
}

// Rect is an inclusive integer rectangle.
type Rect struct {
	Min, Max Coord
}

// Union returns the smallest rect containing r and c.
func (r Rect) Union(c Coord) Rect {
	if c.X < r.Min.X {
		r.Min.X = c.X
	}
	if c.Y < r.Min.Y {
		r.Min.Y = c.Y
	}
	if c.X > r.Max.X {
		r.Max.X = c.X
	}
	if c.Y > r.Max.Y {
		r.Max.Y = c.Y
	}
	return r
}

// Contains reports whether c lies inside r, edges included.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Min.X && c.X <= r.Max.X && c.Y >= r.Min.Y && c.Y <= r.Max.Y
}

// Expand grows every side of r by n cells.
func (r Rect) Expand(n int32) Rect {
	return Rect{
		Min: Coord{r.Min.X - n, r.Min.Y - n},
		Max: Coord{r.Max.X + n, r.Max.Y + n},
	}
}

// Field is a sparse scalar grid over integer coordinates. Unset samples read
// as zero. The bounding box only ever grows.
//
// A Field is not safe for concurrent use; the owner serialises Set and March.
type Field struct {
	samples map[Coord]float32
	bounds  Rect
	written bool
}

// New returns an empty field whose bounds are the degenerate rect at the origin.
func New() *Field {
	return &Field{samples: make(map[Coord]float32)}
}

// Set stores v at c and extends the bounds to cover c.
func (f *Field) Set(c Coord, v float32) {
	if !f.written {
		// the origin placeholder is not a written coordinate
		f.bounds = Rect{Min: c, Max: c}
		f.written = true
	} else {
		f.bounds = f.bounds.Union(c)
	}
	f.samples[c] = v
}

// Get returns the sample at c, or 0 if c was never set.
func (f *Field) Get(c Coord) float32 {
	return f.samples[c]
}

// Bounds returns the rectangle covering every coordinate ever set.
func (f *Field) Bounds() Rect { return f.bounds }

// Len returns the number of stored samples.
func (f *Field) Len() int { return len(f.samples) }

// At implements meshing.Sampler.
func (f *Field) At(x, y int32) float32 {
	return f.samples[Coord{x, y}]
}

// Extent implements meshing.Sampler.
func (f *Field) Extent() (minX, minY, maxX, maxY int32) {
	return f.bounds.Min.X, f.bounds.Min.Y, f.bounds.Max.X, f.bounds.Max.Y
}

// March triangulates the region where samples exceed threshold.
func (f *Field) March(threshold float32) *meshing.Mesh {
	return meshing.March(f, threshold)
}
