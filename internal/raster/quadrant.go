package raster

import "image"

// quadrantGlyphs maps a 4-bit coverage pattern to a block character.
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR.
var quadrantGlyphs = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// Quadrants folds each 2x2 block of a into one glyph. A pixel counts as
// covered when its alpha is at least cutoff. Odd trailing rows or columns
// read as uncovered.
func Quadrants(a *image.Alpha, cutoff uint8) [][]rune {
	b := a.Bounds()
	rows := (b.Dy() + 1) / 2
	cols := (b.Dx() + 1) / 2

	covered := func(x, y int) bool {
		if x >= b.Max.X || y >= b.Max.Y {
			return false
		}
		return a.AlphaAt(x, y).A >= cutoff
	}

	out := make([][]rune, rows)
	for r := range out {
		line := make([]rune, cols)
		y := b.Min.Y + r*2
		for c := range line {
			x := b.Min.X + c*2
			var bits int
			if covered(x, y) {
				bits |= 1
			}
			if covered(x+1, y) {
				bits |= 2
			}
			if covered(x, y+1) {
				bits |= 4
			}
			if covered(x+1, y+1) {
				bits |= 8
			}
			line[c] = quadrantGlyphs[bits]
		}
		out[r] = line
	}
	return out
}
