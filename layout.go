package glyphmesh

import (
	"github.com/gogpu/glyphmesh/text"
)

// layout resolves every character of s to a glyph and draws the glyphs left
// to right into the collector, kerning each pair and advancing the pen by
// each glyph's horizontal advance.
//
// All characters are resolved before anything is drawn: a missing glyph
// returns *GlyphNotFoundError and leaves the path and the pen unchanged.
func (p *Pipeline) layout(s string, f text.Font) error {
	if p.cfg.normalize {
		s = p.cfg.form.String(s)
	}

	glyphs := make([]text.GlyphID, 0, len(s))
	for off, r := range s {
		gid, ok := f.GlyphIndex(r)
		if !ok {
			return &GlyphNotFoundError{Char: r, Offset: off}
		}
		glyphs = append(glyphs, gid)
	}

	kerns := f.KerningSubtables()
	c := &p.collector
	first := c.glyph
	for i, gid := range glyphs {
		if i > 0 {
			c.dx += float32(findKerning(kerns, glyphs[i-1], gid))
		}
		if _, ok := f.OutlineGlyph(gid, c); !ok {
			Logger().Debug("glyphmesh: glyph has no outline", "gid", gid, "index", c.glyph)
		}
		if adv, ok := f.GlyphHorAdvance(gid); ok {
			c.dx += adv
		}
		c.glyph++
	}

	Logger().Debug("glyphmesh: layout",
		"glyphs", len(glyphs),
		"first", first,
		"pen_x", c.dx,
		"events", p.builder.Len())
	return nil
}

// findKerning returns the horizontal kerning for the pair (left, right).
// Subtables are searched in order and the first horizontal one defining the
// pair wins.
func findKerning(subtables []text.KernSubtable, left, right text.GlyphID) int16 {
	for _, st := range subtables {
		if !st.IsHorizontal() {
			continue
		}
		if v, ok := st.GlyphsKerning(left, right); ok {
			return v
		}
	}
	return 0
}
