package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
)

// gotextParser implements FontParser using github.com/go-text/typesetting.
type gotextParser struct{}

// Parse implements FontParser.Parse.
func (gotextParser) Parse(data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Parser: ParserGoText, Err: err}
	}

	f := &gotextFont{face: face}
	for _, st := range face.Kern {
		f.kerns = append(f.kerns, newGotextKern(st))
	}
	return f, nil
}

// gotextFont implements Font on top of a go-text face.
type gotextFont struct {
	// face caches glyph lookups and is not safe for concurrent use.
	mu   sync.Mutex
	face *font.Face

	kerns []KernSubtable
}

// GlyphIndex implements Font.GlyphIndex.
func (f *gotextFont) GlyphIndex(r rune) (GlyphID, bool) {
	f.mu.Lock()
	gid, ok := f.face.NominalGlyph(r)
	f.mu.Unlock()
	return GlyphID(gid), ok
}

// OutlineGlyph implements Font.OutlineGlyph.
func (f *gotextFont) OutlineGlyph(gid GlyphID, sink OutlineSink) (Rect, bool) {
	if gid > 0xFFFF {
		return Rect{}, false
	}
	f.mu.Lock()
	outline, ok := f.face.GlyphDataOutline(uint16(gid))
	f.mu.Unlock()
	if !ok {
		return Rect{}, false
	}

	cs := NewContourSink(sink)
	for _, seg := range outline.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			cs.MoveTo(a[0].X, a[0].Y)
		case ot.SegmentOpLineTo:
			cs.LineTo(a[0].X, a[0].Y)
		case ot.SegmentOpQuadTo:
			cs.QuadTo(a[0].X, a[0].Y, a[1].X, a[1].Y)
		case ot.SegmentOpCubeTo:
			cs.CubeTo(a[0].X, a[0].Y, a[1].X, a[1].Y, a[2].X, a[2].Y)
		}
	}
	return cs.Finish()
}

// GlyphHorAdvance implements Font.GlyphHorAdvance.
// The hmtx table covers every glyph, so the advance is always present.
func (f *gotextFont) GlyphHorAdvance(gid GlyphID) (float32, bool) {
	f.mu.Lock()
	adv := f.face.HorizontalAdvance(font.GID(gid))
	f.mu.Unlock()
	return adv, true
}

// KerningSubtables implements Font.KerningSubtables.
func (f *gotextFont) KerningSubtables() []KernSubtable { return f.kerns }

// UnitsPerEm implements Font.UnitsPerEm.
func (f *gotextFont) UnitsPerEm() uint16 { return f.face.Upem() }

// gotextKern adapts one 'kern' subtable.
type gotextKern struct {
	horizontal bool
	pairs      font.Kern0       // format 0, searched directly so misses are distinguishable
	simple     font.SimpleKerns // formats 2 and 3
}

func newGotextKern(st font.KernSubtable) *gotextKern {
	k := &gotextKern{horizontal: st.IsHorizontal()}
	switch data := st.Data.(type) {
	case font.Kern0:
		k.pairs = data
	case font.SimpleKerns:
		k.simple = data
	}
	// Format 1 subtables are state machines and never match a plain pair.
	return k
}

// IsHorizontal implements KernSubtable.IsHorizontal.
func (k *gotextKern) IsHorizontal() bool { return k.horizontal }

// GlyphsKerning implements KernSubtable.GlyphsKerning.
func (k *gotextKern) GlyphsKerning(left, right GlyphID) (int16, bool) {
	switch {
	case k.pairs != nil:
		if left > 0xFFFF || right > 0xFFFF {
			return 0, false
		}
		key := uint32(left)<<16 | uint32(right)
		lo, hi := 0, len(k.pairs)
		for lo < hi {
			mid := lo + (hi-lo)/2
			p := k.pairs[mid]
			switch mk := uint32(p.Left)<<16 | uint32(p.Right); {
			case key < mk:
				hi = mid
			case key > mk:
				lo = mid + 1
			default:
				return p.Value, true
			}
		}
		return 0, false
	case k.simple != nil:
		v := k.simple.KernPair(font.GID(left), font.GID(right))
		return v, v != 0
	default:
		return 0, false
	}
}
