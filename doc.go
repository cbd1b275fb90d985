// Package glyphmesh converts text into flattened 2D geometry for GPU
// rendering.
//
// # Overview
//
// A [Pipeline] lays out a string with a font, records every glyph outline
// as an abstract path and turns that path into one of two outputs:
//
//   - IntoPath: polylines, one per glyph contour, with curves flattened to
//     within the pipeline tolerance
//   - IntoFill: a triangle mesh of the filled glyphs under a nonzero or
//     even-odd winding rule
//
// Every output row carries the index of the glyph it came from (0, 1, 2, ...
// in layout order) and the id of its contour, so shaders can style glyphs
// and contours individually.
//
// # Quick Start
//
//	p := glyphmesh.New(0.5)
//	if err := p.Outline("Hello", "DejaVuSans.ttf"); err != nil {
//	    log.Fatal(err)
//	}
//	fill, err := p.IntoFill()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vertices := fill.Interleave() // upload with glyphmesh.VertexLayout()
//
// # Coordinate System
//
// Output coordinates are font units:
//   - Origin (0,0) at the first glyph's origin on the baseline
//   - X increases right
//   - Y increases up
//
// Scale by size/UnitsPerEm to get pixels.
//
// # Layout
//
// Glyphs are placed left to right. Before each glyph after the first, the
// pen moves by the pair's horizontal kerning; the first kerning subtable
// that defines the pair wins. After each glyph, the pen moves by the glyph's
// advance when the font has one. Shaping (ligatures, complex scripts) and
// vertical text are not supported.
//
// A character without a glyph aborts the whole call with
// [GlyphNotFoundError]; nothing of that string is added.
//
// # Fonts
//
// Fonts are loaded by package text. The default parser is
// github.com/go-text/typesetting; golang.org/x/image/font/sfnt is available
// with WithParser("ximage"). A [text.Cache] passed with WithFontCache shares
// parsed fonts between pipelines.
package glyphmesh
