package text

import (
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/sfnt.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (ximageParser) Parse(data []byte) (Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, &ParseError{Parser: ParserXImage, Err: err}
	}
	upem := f.UnitsPerEm()
	return &ximageFont{
		font: f,
		upem: uint16(upem),
		// sfnt scales by ppem/upem; a ppem of upem keeps raw font units.
		ppem: fixed.Int26_6(upem),
	}, nil
}

// ximageFont implements Font using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as each call gets its own
// Buffer, so every method allocates one.
type ximageFont struct {
	font *sfnt.Font
	upem uint16
	ppem fixed.Int26_6
}

// GlyphIndex implements Font.GlyphIndex.
func (f *ximageFont) GlyphIndex(r rune) (GlyphID, bool) {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// OutlineGlyph implements Font.OutlineGlyph.
// sfnt reports Y growing down; the outline is flipped back to Y up.
func (f *ximageFont) OutlineGlyph(gid GlyphID, sink OutlineSink) (Rect, bool) {
	if gid >= GlyphID(f.font.NumGlyphs()) {
		return Rect{}, false
	}
	var buf sfnt.Buffer
	segs, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), f.ppem, nil)
	if err != nil {
		logger().Debug("text: glyph has no vector outline", "gid", gid, "err", err)
		return Rect{}, false
	}

	outline := make([]ximageSegment, len(segs))
	for i, seg := range segs {
		outline[i].op = seg.Op
		for j, a := range seg.Args {
			outline[i].args[j] = point{units(a.X), units(-a.Y)}
		}
	}
	restoreMidpoints(outline)

	cs := NewContourSink(sink)
	for _, seg := range outline {
		a := seg.args
		switch seg.op {
		case sfnt.SegmentOpMoveTo:
			cs.MoveTo(a[0].x, a[0].y)
		case sfnt.SegmentOpLineTo:
			cs.LineTo(a[0].x, a[0].y)
		case sfnt.SegmentOpQuadTo:
			cs.QuadTo(a[0].x, a[0].y, a[1].x, a[1].y)
		case sfnt.SegmentOpCubeTo:
			cs.CubeTo(a[0].x, a[0].y, a[1].x, a[1].y, a[2].x, a[2].y)
		}
	}
	return cs.Finish()
}

// ximageSegment is an sfnt segment in Y-up font units.
type ximageSegment struct {
	op   sfnt.SegmentOp
	args [3]point
}

// restoreMidpoints recovers the on-curve points that TrueType leaves implied
// between two off-curve controls. sfnt computes them with integer division
// in font units, truncating toward zero, so a point that sits on the
// truncated midpoint of its neighbouring controls is moved to the exact one.
// A stored on-curve point at that position cannot be told apart and is
// moved as well.
func restoreMidpoints(segs []ximageSegment) {
	for start := 0; start < len(segs); {
		end := start + 1
		for end < len(segs) && segs[end].op != sfnt.SegmentOpMoveTo {
			end++
		}
		c := segs[start:end]
		start = end

		for i := 1; i+1 < len(c); i++ {
			if c[i].op == sfnt.SegmentOpQuadTo && c[i+1].op == sfnt.SegmentOpQuadTo {
				c[i].args[1], _ = impliedMidpoint(c[i].args[1], c[i].args[0], c[i+1].args[0])
			}
		}

		// A contour that starts between two off-curve points opens on their
		// midpoint and closes with a quadratic back onto it.
		n := len(c)
		if n < 3 || c[0].op != sfnt.SegmentOpMoveTo ||
			c[1].op != sfnt.SegmentOpQuadTo || c[n-1].op != sfnt.SegmentOpQuadTo ||
			c[n-1].args[1] != c[0].args[0] {
			continue
		}
		if m, ok := impliedMidpoint(c[0].args[0], c[n-1].args[0], c[1].args[0]); ok {
			c[0].args[0] = m
			c[n-1].args[1] = m
		}
	}
}

// impliedMidpoint returns the exact midpoint of c1 and c2 if p equals that
// midpoint truncated toward zero and the two differ.
func impliedMidpoint(p, c1, c2 point) (point, bool) {
	m := point{(c1.x + c2.x) / 2, (c1.y + c2.y) / 2}
	t := point{truncate(m.x), truncate(m.y)}
	if m == t || p != t {
		return p, false
	}
	return m, true
}

func truncate(v float32) float32 { return float32(math.Trunc(float64(v))) }

// GlyphHorAdvance implements Font.GlyphHorAdvance.
func (f *ximageFont) GlyphHorAdvance(gid GlyphID) (float32, bool) {
	if gid >= GlyphID(f.font.NumGlyphs()) {
		return 0, false
	}
	var buf sfnt.Buffer
	adv, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(gid), f.ppem, font.HintingNone)
	if err != nil {
		return 0, false
	}
	return units(adv), true
}

// KerningSubtables implements Font.KerningSubtables.
// sfnt exposes kerning as a single horizontal lookup (GPOS pair adjustment,
// or the first 'kern' subtable when there is no GPOS).
func (f *ximageFont) KerningSubtables() []KernSubtable {
	return []KernSubtable{ximageKern{f}}
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *ximageFont) UnitsPerEm() uint16 { return f.upem }

type ximageKern struct{ f *ximageFont }

// IsHorizontal implements KernSubtable.IsHorizontal.
func (ximageKern) IsHorizontal() bool { return true }

// GlyphsKerning implements KernSubtable.GlyphsKerning.
// sfnt does not distinguish a zero kern from a missing pair, so only
// nonzero values count as defined.
func (k ximageKern) GlyphsKerning(left, right GlyphID) (int16, bool) {
	if left > 0xFFFF || right > 0xFFFF {
		return 0, false
	}
	var buf sfnt.Buffer
	v, err := k.f.font.Kern(&buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), k.f.ppem, font.HintingNone)
	if err != nil || v == 0 {
		return 0, false
	}
	return int16(v), true
}

// units converts a value scaled with ppem == upem back to font units.
func units(v fixed.Int26_6) float32 { return float32(v) }
