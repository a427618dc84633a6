package meshing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var cornerOffsets = [4]struct {
	bit Config
	pos mgl32.Vec2
}{
	{CornerTopLeft, TopLeft},
	{CornerTopRight, TopRight},
	{CornerBottomLeft, BottomLeft},
	{CornerBottomRight, BottomRight},
}

func isCorner(v mgl32.Vec2) bool {
	return v[0] != 0 && v[1] != 0
}

func contains(tri Triangle, v mgl32.Vec2) bool {
	for _, p := range tri {
		if p == v {
			return true
		}
	}
	return false
}

func area(tri Triangle) float32 {
	a := tri[1].Sub(tri[0])
	b := tri[2].Sub(tri[0])
	s := a[0]*b[1] - a[1]*b[0]
	if s < 0 {
		s = -s
	}
	return s / 2
}

func adjacent(c Config) bool {
	switch c {
	case CornerTopLeft | CornerTopRight,
		CornerBottomLeft | CornerBottomRight,
		CornerTopLeft | CornerBottomLeft,
		CornerTopRight | CornerBottomRight:
		return true
	}
	return false
}

func TestClassifyBitWeights(t *testing.T) {
	if got := Classify(true, false, false, false); got != 1 {
		t.Errorf("top-left = %d, want 1", got)
	}
	if got := Classify(false, true, false, false); got != 2 {
		t.Errorf("top-right = %d, want 2", got)
	}
	if got := Classify(false, false, true, false); got != 4 {
		t.Errorf("bottom-left = %d, want 4", got)
	}
	if got := Classify(false, false, false, true); got != 8 {
		t.Errorf("bottom-right = %d, want 8", got)
	}
	if got := Classify(true, true, true, true); got != 15 {
		t.Errorf("all = %d, want 15", got)
	}
}

func TestPatternTableExhaustive(t *testing.T) {
	for c := Config(0); c < ConfigCount; c++ {
		tris := Pattern(c)

		var want int
		switch n := c.Inside(); {
		case n == 0:
			want = 0
		case n == 1:
			want = 1
		case n == 2:
			want = 2
		case n == 3:
			want = 3
		case n == 4:
			want = 2
		}
		if len(tris) != want {
			t.Errorf("config %d: %d triangles, want %d", c, len(tris), want)
			continue
		}

		var total float32
		for _, tri := range tris {
			total += area(tri)
			for _, v := range tri {
				if v[0] < -0.5 || v[0] > 0.5 || v[1] < -0.5 || v[1] > 0.5 {
					t.Errorf("config %d: offset %v outside the unit cell", c, v)
				}
			}
		}

		// every inside corner is used and no outside corner is
		for _, co := range cornerOffsets {
			used := false
			for _, tri := range tris {
				if contains(tri, co.pos) {
					used = true
				}
			}
			if inside := c&co.bit != 0; used != inside {
				t.Errorf("config %d: corner %v used=%v, inside=%v", c, co.pos, used, inside)
			}
		}

		wantArea := map[int]float32{0: 0, 1: 0.125, 2: 0.5, 3: 0.875, 4: 1}[c.Inside()]
		if c.Inside() == 2 && !adjacent(c) {
			wantArea = 0.25
		}
		if total != wantArea {
			t.Errorf("config %d: covered area %v, want %v", c, total, wantArea)
		}
	}
}

func TestSaddlesAreDisjointCornerTriangles(t *testing.T) {
	saddles := map[Config][2]mgl32.Vec2{
		CornerTopLeft | CornerBottomRight: {TopLeft, BottomRight},
		CornerTopRight | CornerBottomLeft: {TopRight, BottomLeft},
	}
	for c, corners := range saddles {
		tris := Pattern(c)
		if len(tris) != 2 {
			t.Fatalf("saddle %d: %d triangles, want 2", c, len(tris))
		}
		for _, tri := range tris {
			if contains(tri, corners[0]) && contains(tri, corners[1]) {
				t.Fatalf("saddle %d: triangle %v joins both inside corners", c, tri)
			}
			n := 0
			for _, v := range tri {
				if isCorner(v) {
					n++
				}
			}
			if n != 1 {
				t.Fatalf("saddle %d: triangle %v has %d corners, want 1", c, tri, n)
			}
		}
		for _, corner := range corners {
			found := false
			for _, tri := range tris {
				if !contains(tri, corner) {
					continue
				}
				found = true
				// the two other vertices are the midpoints of the edges at that corner
				if !contains(tri, mgl32.Vec2{corner[0], 0}) || !contains(tri, mgl32.Vec2{0, corner[1]}) {
					t.Fatalf("saddle %d: triangle %v does not clip corner %v to its midpoints", c, tri, corner)
				}
			}
			if !found {
				t.Fatalf("saddle %d: corner %v not emitted", c, corner)
			}
		}
	}
}

func TestPatternPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Pattern(16) did not panic")
		}
	}()
	Pattern(ConfigCount)
}
