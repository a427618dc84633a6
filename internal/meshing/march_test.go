package meshing

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// gridSampler is a minimal Sampler over a map, with bounds unioned from the
// origin the way a field tracks them after its first write.
type gridSampler struct {
	vals                   map[[2]int32]float32
	minX, minY, maxX, maxY int32
}

func newGrid() *gridSampler {
	return &gridSampler{vals: map[[2]int32]float32{}}
}

func (g *gridSampler) set(x, y int32, v float32) {
	if len(g.vals) == 0 {
		g.minX, g.maxX, g.minY, g.maxY = x, x, y, y
	}
	g.minX, g.maxX = min(g.minX, x), max(g.maxX, x)
	g.minY, g.maxY = min(g.minY, y), max(g.maxY, y)
	g.vals[[2]int32{x, y}] = v
}

func (g *gridSampler) At(x, y int32) float32 { return g.vals[[2]int32{x, y}] }

func (g *gridSampler) Extent() (int32, int32, int32, int32) {
	return g.minX, g.minY, g.maxX, g.maxY
}

func checkIndices(t *testing.T, m *Mesh) {
	t.Helper()
	if len(m.Positions) != len(m.Normals) || len(m.Positions) != len(m.Indices) {
		t.Fatalf("lengths differ: %d positions, %d normals, %d indices",
			len(m.Positions), len(m.Normals), len(m.Indices))
	}
	if len(m.Indices)%3 != 0 {
		t.Fatalf("%d indices is not a whole number of triangles", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx != uint32(i) {
			t.Fatalf("index %d = %d, want %d", i, idx, i)
		}
	}
	for i, n := range m.Normals {
		if n != (mgl32.Vec3{0, 0, 1}) {
			t.Fatalf("normal %d = %v", i, n)
		}
		if m.Positions[i][2] != 0 {
			t.Fatalf("position %d has z = %v", i, m.Positions[i][2])
		}
	}
}

func TestMarchEmpty(t *testing.T) {
	for _, threshold := range []float32{-1, 0, 0.5, 3} {
		m := March(newGrid(), threshold)
		if threshold < 0 {
			// the default of zero is inside a negative threshold; the 3x3 domain is full
			if m.TriangleCount() == 0 {
				t.Fatalf("threshold %v: expected the margin cells to fill", threshold)
			}
			continue
		}
		if !m.IsEmpty() || len(m.Normals) != 0 || len(m.Indices) != 0 {
			t.Fatalf("threshold %v: empty sampler produced %d vertices", threshold, m.VertexCount())
		}
	}
}

func TestMarchAllBelowThreshold(t *testing.T) {
	g := newGrid()
	for x := int32(-3); x <= 3; x++ {
		for y := int32(-2); y <= 5; y++ {
			g.set(x, y, 0.5)
		}
	}
	if m := March(g, 0.5); !m.IsEmpty() {
		t.Fatalf("samples equal to the threshold produced %d triangles", m.TriangleCount())
	}
}

func TestMarchSingleBlock(t *testing.T) {
	g := newGrid()
	g.set(0, 0, 1)
	g.set(1, 0, 1)
	g.set(0, 1, 1)
	g.set(1, 1, 1)

	m := March(g, 0.5)
	checkIndices(t, m)
	// one full cell, four edge cells with two corners, four corner cells with one
	if got := m.TriangleCount(); got != 2+4*2+4*1 {
		t.Fatalf("got %d triangles, want 14", got)
	}

	// the full cell is anchored at (0,0) and spans [-0.5,0.5]^2 around it
	full := 0
	for i := 0; i < len(m.Positions); i += 3 {
		inCell := true
		for _, p := range m.Positions[i : i+3] {
			if p[0] < -0.5 || p[0] > 0.5 || p[1] < -0.5 || p[1] > 0.5 {
				inCell = false
			}
		}
		if inCell {
			full++
		}
	}
	if full != 2 {
		t.Fatalf("found %d triangles inside the full cell, want 2", full)
	}
}

func TestMarchIterationOrder(t *testing.T) {
	g := newGrid()
	g.set(0, 0, 1)

	m := March(g, 0.5)
	checkIndices(t, m)
	// x-major: cell (-1,-1) (BR inside), (-1,0) (TR), (0,-1) (BL), (0,0) (TL)
	want := []mgl32.Vec3{
		{-1, -0.5, 0}, {-0.5, -0.5, 0}, {-0.5, -1, 0},
		{-1 + 0, 0 - 0.5, 0}, {-1 + 0.5, 0 - 0.5, 0}, {-1 + 0.5, 0, 0},
		{-0.5, -0.5, 0}, {0, -0.5, 0}, {-0.5, -1, 0},
		{-0.5, -0.5, 0}, {-0.5, 0, 0}, {0, -0.5, 0},
	}
	if !reflect.DeepEqual(m.Positions, want) {
		t.Fatalf("positions = %v\nwant %v", m.Positions, want)
	}
}

func TestMarchDiagonalSaddle(t *testing.T) {
	tests := []struct {
		name   string
		inside [2][2]int32
	}{
		{"top-left/bottom-right", [2][2]int32{{0, 0}, {1, 1}}},
		{"top-right/bottom-left", [2][2]int32{{1, 0}, {0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGrid()
			for _, c := range tt.inside {
				g.set(c[0], c[1], 1)
			}
			m := March(g, 0.5)
			checkIndices(t, m)

			// the cell at (0,0) is the saddle; every other cell has one inside corner
			var saddle [][]mgl32.Vec3
			for i := 0; i < len(m.Positions); i += 3 {
				tri := m.Positions[i : i+3]
				cx, cy := (tri[0][0]+tri[1][0]+tri[2][0])/3, (tri[0][1]+tri[1][1]+tri[2][1])/3
				if cx > -0.5 && cx < 0.5 && cy > -0.5 && cy < 0.5 {
					saddle = append(saddle, tri)
				}
			}
			if len(saddle) != 2 {
				t.Fatalf("saddle cell emitted %d triangles, want 2", len(saddle))
			}
			if m.TriangleCount() != 2+6 {
				t.Fatalf("total triangles = %d, want 8", m.TriangleCount())
			}
		})
	}
}

func TestMarchDeterministic(t *testing.T) {
	g := newGrid()
	vals := []float32{0.1, 0.9, 0.6, 0.2, 1.4, 0.7, 0.3, 0.8}
	for i := int32(0); i < 40; i++ {
		g.set(i%7-3, i/7-2, vals[i%int32(len(vals))])
	}
	a := March(g, 0.5)
	b := March(g, 0.5)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("two marches of the same samples differ")
	}
}

func TestMarchMarginClosure(t *testing.T) {
	g := newGrid()
	g.set(5, -3, 2)
	g.set(2, 1, 0.1)

	m := March(g, 0.5)
	checkIndices(t, m)
	if m.TriangleCount() != 4 {
		t.Fatalf("isolated sample produced %d triangles, want 4", m.TriangleCount())
	}

	lo, hi, ok := m.Bounds()
	if !ok {
		t.Fatal("mesh has no bounds")
	}
	minX, minY, maxX, maxY := g.Extent()
	if lo[0] < float32(minX-1) || lo[1] < float32(minY-1) || hi[0] > float32(maxX+1) || hi[1] > float32(maxY+1) {
		t.Fatalf("mesh extent %v-%v escapes the iteration domain", lo, hi)
	}
	// the contour closes around the sample: every emitted vertex is within half a cell of it
	for _, p := range m.Positions {
		if p[0] < 4 || p[0] > 5 || p[1] < -4 || p[1] > -3 {
			t.Fatalf("vertex %v is not adjacent to the inside sample", p)
		}
	}
}

func TestInterleaved(t *testing.T) {
	g := newGrid()
	g.set(0, 0, 1)
	m := March(g, 0)

	buf := m.Interleaved()
	if len(buf) != m.VertexCount()*VertexStride {
		t.Fatalf("interleaved length = %d, want %d", len(buf), m.VertexCount()*VertexStride)
	}
	for i, p := range m.Positions {
		v := buf[i*VertexStride : (i+1)*VertexStride]
		if v[0] != p[0] || v[1] != p[1] || v[2] != p[2] || v[5] != 1 {
			t.Fatalf("vertex %d = %v, position %v", i, v, p)
		}
	}
}

func BenchmarkMarch(b *testing.B) {
	g := newGrid()
	for x := int32(-64); x < 64; x++ {
		for y := int32(-64); y < 64; y++ {
			if x*x+y*y < 48*48 {
				g.set(x, y, 1)
			}
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = March(g, 0.5)
	}
}
