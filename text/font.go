package text

// GlyphID identifies a glyph within one font.
type GlyphID uint32

// Rect is an axis-aligned bounding box in font units.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// Empty reports whether r encloses no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// OutlineSink receives glyph outline drawing commands.
// Coordinates are in font units with Y pointing up.
//
// Fonts deliver outlines to an OutlineSink with explicit contour boundaries:
// every contour starts with MoveTo and ends with Close, and the point before
// Close equals the contour start.
type OutlineSink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(cx, cy, x, y float32)
	CubeTo(c1x, c1y, c2x, c2y, x, y float32)
	Close()
}

// KernSubtable is one subtable of a font's kerning table.
type KernSubtable interface {
	// IsHorizontal reports whether the subtable holds horizontal kerning.
	IsHorizontal() bool

	// GlyphsKerning returns the adjustment for the pair (left, right) in
	// font units, and whether the subtable defines a value for the pair.
	GlyphsKerning(left, right GlyphID) (int16, bool)
}

// Font is a parsed font program.
//
// Implementations must be safe for concurrent use: a Font may be shared
// between pipelines through a Cache.
type Font interface {
	// GlyphIndex maps r to a glyph through the font's character map.
	GlyphIndex(r rune) (GlyphID, bool)

	// OutlineGlyph sends the outline of gid to sink and returns its bounds.
	// It returns false if the glyph has no outline data.
	OutlineGlyph(gid GlyphID, sink OutlineSink) (Rect, bool)

	// GlyphHorAdvance returns the horizontal advance of gid in font units,
	// or false if the font has no advance metric for it.
	GlyphHorAdvance(gid GlyphID) (float32, bool)

	// KerningSubtables returns the kerning subtables in table order.
	KerningSubtables() []KernSubtable

	// UnitsPerEm returns the size of the em square in font units.
	UnitsPerEm() uint16
}
