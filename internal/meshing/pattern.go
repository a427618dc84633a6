package meshing

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Cell-local offsets. A cell spans [-0.5, 0.5] on both axes around its anchor;
// "top" is towards -y.
var (
	Top         = mgl32.Vec2{0, -0.5}
	Right       = mgl32.Vec2{0.5, 0}
	Bottom      = mgl32.Vec2{0, 0.5}
	Left        = mgl32.Vec2{-0.5, 0}
	TopLeft     = mgl32.Vec2{-0.5, -0.5}
	TopRight    = mgl32.Vec2{0.5, -0.5}
	BottomLeft  = mgl32.Vec2{-0.5, 0.5}
	BottomRight = mgl32.Vec2{0.5, 0.5}
)

// Corner bits of a cell configuration.
const (
	CornerTopLeft Config = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// ConfigCount is the number of distinct cell configurations.
const ConfigCount = 16

// Config is the 4-bit inside/outside code of a cell.
type Config uint8

// Triangle is three cell-local offsets.
type Triangle [3]mgl32.Vec2

// Classify packs the four corner states into a configuration index.
func Classify(topLeft, topRight, bottomLeft, bottomRight bool) Config {
	var c Config
	if topLeft {
		c |= CornerTopLeft
	}
	if topRight {
		c |= CornerTopRight
	}
	if bottomLeft {
		c |= CornerBottomLeft
	}
	if bottomRight {
		c |= CornerBottomRight
	}
	return c
}

// Inside reports the number of inside corners.
func (c Config) Inside() int {
	n := 0
	for b := CornerTopLeft; b <= CornerBottomRight; b <<= 1 {
		if c&b != 0 {
			n++
		}
	}
	return n
}

// Saddles (6 and 9) are split into two corner triangles, not joined into a band.
var patterns = [ConfigCount][]Triangle{
	0: nil,
	// TL
	1: {
		{TopLeft, Left, Top},
	},
	// TR
	2: {
		{Top, TopRight, Right},
	},
	// TL TR
	3: {
		{TopLeft, Left, TopRight},
		{Left, TopRight, Right},
	},
	// BL
	4: {
		{BottomLeft, Bottom, Left},
	},
	// TL BL
	5: {
		{TopLeft, BottomLeft, Top},
		{BottomLeft, Bottom, Top},
	},
	// TR BL
	6: {
		{Left, BottomLeft, Bottom},
		{Top, TopRight, Right},
	},
	// TL TR BL
	7: {
		{TopLeft, BottomLeft, TopRight},
		{BottomLeft, Bottom, TopRight},
		{Bottom, Right, TopRight},
	},
	// BR
	8: {
		{Bottom, BottomRight, Right},
	},
	// TL BR
	9: {
		{Left, Top, TopLeft},
		{Bottom, BottomRight, Right},
	},
	// TR BR
	10: {
		{Bottom, TopRight, Top},
		{Bottom, BottomRight, TopRight},
	},
	// TL TR BR
	11: {
		{TopLeft, Left, TopRight},
		{Left, Bottom, TopRight},
		{Bottom, BottomRight, TopRight},
	},
	// BL BR
	12: {
		{BottomLeft, Right, Left},
		{BottomLeft, BottomRight, Right},
	},
	// TL BL BR
	13: {
		{TopLeft, BottomLeft, Top},
		{BottomLeft, BottomRight, Top},
		{BottomRight, Right, Top},
	},
	// TR BL BR
	14: {
		{Left, BottomLeft, Top},
		{BottomLeft, TopRight, Top},
		{BottomLeft, BottomRight, TopRight},
	},
	// all
	15: {
		{BottomLeft, TopRight, TopLeft},
		{BottomLeft, BottomRight, TopRight},
	},
}

// Pattern returns the triangles emitted for configuration c. The returned
// slice is shared and must not be modified. An index outside 0..15 means the
// classifier is broken, and Pattern panics.
func Pattern(c Config) []Triangle {
	if c >= ConfigCount {
		panic(fmt.Sprintf("meshing: invalid cell configuration %d", c))
	}
	return patterns[c]
}
