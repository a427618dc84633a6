package raster

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

func bakeMono(t *testing.T) *GlyphAtlas {
	t.Helper()
	a, err := BakeGlyphs(gomono.TTF, 16)
	if err != nil {
		t.Fatalf("BakeGlyphs: %v", err)
	}
	return a
}

func TestBakeGlyphsCoversASCII(t *testing.T) {
	a := bakeMono(t)
	for r := rune(32); r <= 126; r++ {
		if _, ok := a.Glyphs[r]; !ok {
			t.Fatalf("glyph %q missing", r)
		}
	}
	if a.Image.Bounds().Dx() != atlasWidth {
		t.Fatalf("atlas width = %d", a.Image.Bounds().Dx())
	}
	if a.LineHeight <= 0 {
		t.Fatalf("line height = %d", a.LineHeight)
	}

	// every glyph fits inside the atlas
	b := a.Image.Bounds()
	for r, g := range a.Glyphs {
		if g.AtlasX+g.Width > float32(b.Dx()) || g.AtlasY+g.Height > float32(b.Dy()) {
			t.Fatalf("glyph %q at %v,%v size %vx%v overflows %v", r, g.AtlasX, g.AtlasY, g.Width, g.Height, b)
		}
	}

	// 'W' leaves ink in the atlas
	w := a.Glyphs['W']
	var ink int
	for y := int(w.AtlasY); y < int(w.AtlasY+w.Height); y++ {
		for x := int(w.AtlasX); x < int(w.AtlasX+w.Width); x++ {
			ink += int(a.Image.AlphaAt(x, y).A)
		}
	}
	if ink == 0 {
		t.Fatal("glyph W has no coverage")
	}
}

func TestMeasureMonospace(t *testing.T) {
	a := bakeMono(t)
	adv := float32(a.Glyphs['m'].Advance)
	if adv <= 0 {
		t.Fatal("zero advance")
	}
	w, _ := a.Measure("abcd", 1)
	if w != 4*adv {
		t.Fatalf("Measure(abcd) = %v, want %v", w, 4*adv)
	}
	w2, _ := a.Measure("abcd", 2)
	if w2 != 2*w {
		t.Fatalf("scale 2 width = %v, want %v", w2, 2*w)
	}
	// a glyph outside the baked range advances like a space
	wu, _ := a.Measure("é", 1)
	if wu != float32(a.Glyphs[' '].Advance) {
		t.Fatalf("missing glyph advance = %v", wu)
	}
}

func TestQuadsSkipBlanks(t *testing.T) {
	a := bakeMono(t)
	q := a.Quads(nil, "a b", 0, 20, 1)
	// two inked glyphs, six vertices of four floats each
	if len(q) != 2*6*4 {
		t.Fatalf("len = %d, want %d", len(q), 2*6*4)
	}
	for i := 2; i < len(q); i += 4 {
		if q[i] < 0 || q[i] > 1 || q[i+1] < 0 || q[i+1] > 1 {
			t.Fatalf("uv %v,%v out of range", q[i], q[i+1])
		}
	}
}
