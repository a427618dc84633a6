package meshing

import "github.com/go-gl/mathgl/mgl32"

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz)
const VertexStride = 6

// Mesh is an unshared triangle list. Positions, Normals and Indices are
// parallel; Indices holds one entry per vertex, grouped in triples.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0
}

// Interleaved packs the mesh as pos+normal per vertex, the layout the GL
// contour renderable uploads.
func (m *Mesh) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*VertexStride)
	for i, p := range m.Positions {
		n := m.Normals[i]
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	return out
}

// Bounds returns the 2D extent of all positions. ok is false for an empty mesh.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec2, ok bool) {
	if len(m.Positions) == 0 {
		return lo, hi, false
	}
	lo = m.Positions[0].Vec2()
	hi = lo
	for _, p := range m.Positions[1:] {
		for a := 0; a < 2; a++ {
			if p[a] < lo[a] {
				lo[a] = p[a]
			}
			if p[a] > hi[a] {
				hi[a] = p[a]
			}
		}
	}
	return lo, hi, true
}
