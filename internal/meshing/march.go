package meshing

import (
	"isoedit/internal/logging"
	"isoedit/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// Sampler is a sparse scalar grid with a known occupied extent. Samples
// outside the extent must read as zero.
type Sampler interface {
	At(x, y int32) float32
	Extent() (minX, minY, maxX, maxY int32)
}

var upNormal = mgl32.Vec3{0, 0, 1}

// March triangulates the region of s whose samples are strictly greater than
// threshold. Every cell of the extent plus a one-cell margin is classified,
// x outer and y inner, and each triangle corner is emitted as its own vertex.
// The result depends only on the samples and the threshold.
func March(s Sampler, threshold float32) *Mesh {
	defer profiling.Track("meshing.March")()

	minX, minY, maxX, maxY := s.Extent()
	// int64 so the margin cannot overflow at the edges of the int32 range
	m, cells := marchColumns(s, threshold, int64(minX)-1, int64(maxX)+1, int64(minY)-1, int64(maxY)+1)

	logging.Logger().Debug("marched field",
		"cells", cells,
		"triangles", m.TriangleCount(),
		"threshold", threshold,
	)
	return m
}

// marchColumns triangulates the cells of columns x0..x1 and rows y0..y1,
// all inclusive. Indices start at zero.
func marchColumns(s Sampler, threshold float32, x0, x1, y0, y1 int64) (*Mesh, int) {
	m := &Mesh{}
	var next uint32
	cells := 0

	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			cells++
			c := Classify(
				s.At(int32(x), int32(y)) > threshold,
				s.At(int32(x+1), int32(y)) > threshold,
				s.At(int32(x), int32(y+1)) > threshold,
				s.At(int32(x+1), int32(y+1)) > threshold,
			)
			fx, fy := float32(x), float32(y)
			for _, tri := range Pattern(c) {
				for _, o := range tri {
					m.Positions = append(m.Positions, mgl32.Vec3{o[0] + fx, o[1] + fy, 0})
					m.Normals = append(m.Normals, upNormal)
					m.Indices = append(m.Indices, next)
					next++
				}
			}
		}
	}
	return m, cells
}
