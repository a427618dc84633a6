package fieldgen

import (
	"testing"

	"isoedit/internal/field"
)

func TestDisc(t *testing.T) {
	f := field.New()
	n := Disc(f, field.Coord{X: 10, Y: -4}, 3, 1)
	// lattice points with x^2+y^2 <= 9
	if n != 29 || f.Len() != 29 {
		t.Fatalf("wrote %d points, field has %d, want 29", n, f.Len())
	}
	want := field.Rect{Min: field.Coord{X: 7, Y: -7}, Max: field.Coord{X: 13, Y: -1}}
	if got := f.Bounds(); got != want {
		t.Fatalf("Bounds() = %+v, want %+v", got, want)
	}
	if f.Get(field.Coord{X: 12, Y: -2}) != 1 {
		t.Fatal("inside point not written")
	}
	if f.Get(field.Coord{X: 13, Y: -1}) != 0 {
		t.Fatal("corner outside the disc was written")
	}
}

func TestDiscNegativeRadius(t *testing.T) {
	f := field.New()
	if n := Disc(f, field.Coord{}, -1, 1); n != 0 || f.Len() != 0 {
		t.Fatalf("negative radius wrote %d points", n)
	}
}

func TestNoisyDiscFadesAtRim(t *testing.T) {
	f := field.New()
	const r = 12
	NoisyDisc(f, field.Coord{}, r, 1, DefaultNoise(3))

	// rim points keep at most 1/(r^2+1) of the noise
	limit := 1.001 / float32(r*r+1)
	for _, c := range []field.Coord{{X: r}, {X: -r}, {Y: r}, {Y: -r}} {
		if v := f.Get(c); v < 0 || v > limit {
			t.Fatalf("rim sample %v = %v, want within [0,%v]", c, v, limit)
		}
	}

	a := f.March(0.3)
	g := field.New()
	NoisyDisc(g, field.Coord{}, r, 1, DefaultNoise(3))
	b := g.March(0.3)
	if a.TriangleCount() != b.TriangleCount() {
		t.Fatalf("same seed gave %d and %d triangles", a.TriangleCount(), b.TriangleCount())
	}
}
