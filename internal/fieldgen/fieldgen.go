// Package fieldgen fills fields with generated shapes for snapshots, demos
// and benchmarks.
package fieldgen

import "isoedit/internal/field"

// Disc writes v at every lattice point within r of center and returns the
// number of points written.
func Disc(f *field.Field, center field.Coord, r int, v float32) int {
	n := 0
	eachInDisc(center, r, func(c field.Coord, _ int64) {
		f.Set(c, v)
		n++
	})
	return n
}

// NoisyDisc writes scale * noise over the disc, fading to zero at the rim so
// the contour stays closed inside the disc.
func NoisyDisc(f *field.Field, center field.Coord, r int, scale float32, n Noise) int {
	r2 := float64(r)*float64(r) + 1
	count := 0
	eachInDisc(center, r, func(c field.Coord, d2 int64) {
		falloff := 1 - float64(d2)/r2
		v := n.At(float64(c.X), float64(c.Y)) * falloff
		f.Set(c, scale*float32(v))
		count++
	})
	return count
}

// eachInDisc visits the disc in x-major order
func eachInDisc(center field.Coord, r int, visit func(c field.Coord, d2 int64)) {
	if r < 0 {
		return
	}
	rr := int64(r)
	for dx := -rr; dx <= rr; dx++ {
		for dy := -rr; dy <= rr; dy++ {
			d2 := dx*dx + dy*dy
			if d2 > rr*rr {
				continue
			}
			visit(field.Coord{X: center.X + int32(dx), Y: center.Y + int32(dy)}, d2)
		}
	}
}
