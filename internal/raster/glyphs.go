package raster

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Glyph describes one character's placement and metrics within an atlas.
type Glyph struct {
	// Pixel coordinates of the glyph in the atlas (top-left origin)
	AtlasX, AtlasY float32
	// Glyph bitmap size in pixels
	Width, Height float32
	// Offset from the pen position on the baseline
	BearingX, BearingY float32
	// Advance in whole pixels
	Advance int
}

// GlyphAtlas is a baked alpha atlas of printable ASCII.
type GlyphAtlas struct {
	Image      *image.Alpha
	Glyphs     map[rune]Glyph
	LineHeight int
}

const (
	atlasWidth   = 512
	glyphPadding = 1
)

// BakeGlyphs rasterises the printable ASCII range of a TrueType font at the
// given pixel size and packs it into rows.
func BakeGlyphs(ttf []byte, pixels int) (*GlyphAtlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: float64(pixels), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	type baked struct {
		r       rune
		dr      image.Rectangle
		advance fixed.Int26_6
	}
	var glyphs []baked
	for r := rune(32); r <= 126; r++ {
		dr, _, _, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		glyphs = append(glyphs, baked{r, dr, advance})
	}

	// First pass: pack rows to size the atlas
	place := make([]image.Point, len(glyphs))
	offsetX, offsetY, rowHeight := 0, 0, 0
	for i, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		if offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + glyphPadding
			rowHeight = 0
		}
		place[i] = image.Pt(offsetX, offsetY)
		offsetX += gw + glyphPadding
		rowHeight = max(rowHeight, gh)
	}
	atlasH := max(offsetY+rowHeight, 1)

	atlas := &GlyphAtlas{
		Image:      image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasH)),
		Glyphs:     make(map[rune]Glyph, len(glyphs)),
		LineHeight: face.Metrics().Height.Ceil(),
	}

	// Second pass: render each glyph again, since a face reuses its mask
	// buffer between calls, and record metrics
	for i, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		p := place[i]
		if gw > 0 && gh > 0 {
			_, mask, maskp, _, _ := face.Glyph(fixed.P(0, 0), g.r)
			if mask != nil {
				draw.Draw(atlas.Image, image.Rect(p.X, p.Y, p.X+gw, p.Y+gh), mask, maskp, draw.Src)
			}
		}
		atlas.Glyphs[g.r] = Glyph{
			AtlasX:   float32(p.X),
			AtlasY:   float32(p.Y),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  int(math.Round(float64(g.advance) / 64.0)),
		}
	}
	return atlas, nil
}

// Measure returns the width and tallest glyph height of text at scale.
// Missing glyphs advance like a space.
func (a *GlyphAtlas) Measure(text string, scale float32) (float32, float32) {
	var width, height float32
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			width += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		width += float32(g.Advance) * scale
		height = max(height, g.Height*scale)
	}
	return width, height
}

// Quads appends two triangles per glyph of text, with the pen starting at
// (x, y) on the baseline, y pointing down. Each vertex is x, y, u, v with
// normalised atlas coordinates.
func (a *GlyphAtlas) Quads(dst []float32, text string, x, y, scale float32) []float32 {
	aw := float32(a.Image.Bounds().Dx())
	ah := float32(a.Image.Bounds().Dy())
	for _, r := range text {
		g, ok := a.Glyphs[r]
		if !ok {
			x += float32(a.Glyphs[' '].Advance) * scale
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX*scale
			y0 := y - g.BearingY*scale
			x1 := x0 + g.Width*scale
			y1 := y0 + g.Height*scale
			u0, v0 := g.AtlasX/aw, g.AtlasY/ah
			u1, v1 := (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah
			dst = append(dst,
				x0, y1, u0, v1,
				x0, y0, u0, v0,
				x1, y0, u1, v0,
				x0, y1, u0, v1,
				x1, y0, u1, v0,
				x1, y1, u1, v1,
			)
		}
		x += float32(g.Advance) * scale
	}
	return dst
}
