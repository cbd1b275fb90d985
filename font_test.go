package glyphmesh

import (
	"math"

	"github.com/gogpu/glyphmesh/text"
)

// testGlyph is one glyph of a testFont.
type testGlyph struct {
	draw       func(s text.OutlineSink)
	advance    float32
	hasAdvance bool
}

// testFont is a synthetic text.Font. Like the real backends it draws
// through a text.ContourSink, so outlines need no explicit Close.
type testFont struct {
	cmap   map[rune]text.GlyphID
	glyphs map[text.GlyphID]testGlyph
	kerns  []text.KernSubtable
}

func newTestFont() *testFont {
	return &testFont{
		cmap:   make(map[rune]text.GlyphID),
		glyphs: make(map[text.GlyphID]testGlyph),
	}
}

// add maps r to a new glyph. An advance < 0 means the glyph has no advance.
func (f *testFont) add(r rune, advance float32, draw func(s text.OutlineSink)) *testFont {
	gid := text.GlyphID(len(f.glyphs) + 1)
	f.cmap[r] = gid
	f.glyphs[gid] = testGlyph{draw: draw, advance: advance, hasAdvance: advance >= 0}
	return f
}

func (f *testFont) gid(r rune) text.GlyphID { return f.cmap[r] }

func (f *testFont) GlyphIndex(r rune) (text.GlyphID, bool) {
	gid, ok := f.cmap[r]
	return gid, ok
}

func (f *testFont) OutlineGlyph(gid text.GlyphID, sink text.OutlineSink) (text.Rect, bool) {
	g, ok := f.glyphs[gid]
	if !ok || g.draw == nil {
		return text.Rect{}, false
	}
	cs := text.NewContourSink(sink)
	g.draw(cs)
	return cs.Finish()
}

func (f *testFont) GlyphHorAdvance(gid text.GlyphID) (float32, bool) {
	g := f.glyphs[gid]
	return g.advance, g.hasAdvance
}

func (f *testFont) KerningSubtables() []text.KernSubtable { return f.kerns }

func (f *testFont) UnitsPerEm() uint16 { return 1000 }

// testKern is a synthetic kerning subtable.
type testKern struct {
	horizontal bool
	pairs      map[[2]text.GlyphID]int16
}

func (k testKern) IsHorizontal() bool { return k.horizontal }

func (k testKern) GlyphsKerning(left, right text.GlyphID) (int16, bool) {
	v, ok := k.pairs[[2]text.GlyphID{left, right}]
	return v, ok
}

// rectOutline draws an axis-aligned rectangle, counter-clockwise, without
// repeating the start point.
func rectOutline(x0, y0, x1, y1 float32) func(s text.OutlineSink) {
	return func(s text.OutlineSink) {
		s.MoveTo(x0, y0)
		s.LineTo(x1, y0)
		s.LineTo(x1, y1)
		s.LineTo(x0, y1)
	}
}

// clockwiseRect draws a rectangle in the opposite direction to rectOutline.
func clockwiseRect(x0, y0, x1, y1 float32) func(s text.OutlineSink) {
	return func(s text.OutlineSink) {
		s.MoveTo(x0, y0)
		s.LineTo(x0, y1)
		s.LineTo(x1, y1)
		s.LineTo(x1, y0)
	}
}

// circle draws a circle of radius r around (cx, cy) from four cubics.
func circle(s text.OutlineSink, cx, cy, r float32, clockwise bool) {
	k := r * float32(4*(math.Sqrt2-1)/3)
	s.MoveTo(cx+r, cy)
	if clockwise {
		s.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		s.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		s.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		s.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
		return
	}
	s.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	s.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	s.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	s.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
}

func both(fs ...func(s text.OutlineSink)) func(s text.OutlineSink) {
	return func(s text.OutlineSink) {
		for _, f := range fs {
			f(s)
		}
	}
}

func fillArea(d *FillData) float64 {
	area := 0.0
	for i := 0; i+2 < d.Len(); i += 3 {
		ax, ay := float64(d.X[i]), float64(d.Y[i])
		bx, by := float64(d.X[i+1]), float64(d.Y[i+1])
		cx, cy := float64(d.X[i+2]), float64(d.Y[i+2])
		area += math.Abs((bx-ax)*(cy-ay)-(by-ay)*(cx-ax)) / 2
	}
	return area
}
