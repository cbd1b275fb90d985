package glyphmesh

import (
	"github.com/gogpu/glyphmesh/internal/path"
)

// flatten walks the events of p in order and reports every polyline point:
// each Begin and Line point, and the flattened points of each curve, which
// never repeat the curve's start. begin is true for the first point of a
// contour. End events report nothing.
func flatten(p *path.Path, tolerance float32, visit func(pt path.Point, glyph, pathID uint32, begin bool)) {
	var (
		cur     path.Point
		scratch []path.Point
	)
	for i := 0; i < p.Len(); i++ {
		glyph, pathID := p.GlyphID(i), p.PathID(i)
		switch e := p.Event(i).(type) {
		case path.Begin:
			visit(e.At, glyph, pathID, true)
			cur = e.At
		case path.Line:
			visit(e.To, glyph, pathID, false)
			cur = e.To
		case path.Quadratic:
			scratch = path.FlattenQuadratic(cur, e.Ctrl, e.To, tolerance, scratch[:0])
			for _, pt := range scratch {
				visit(pt, glyph, pathID, false)
			}
			cur = e.To
		case path.Cubic:
			scratch = path.FlattenCubic(cur, e.Ctrl1, e.Ctrl2, e.To, tolerance, scratch[:0])
			for _, pt := range scratch {
				visit(pt, glyph, pathID, false)
			}
			cur = e.To
		case path.End:
		}
	}
}

// assemble flattens p into outline rows.
func assemble(p *path.Path, tolerance float32) *PathData {
	out := &PathData{}
	flatten(p, tolerance, func(pt path.Point, glyph, pathID uint32, _ bool) {
		out.X = append(out.X, pt.X)
		out.Y = append(out.Y, pt.Y)
		out.GlyphIDs = append(out.GlyphIDs, glyph)
		out.PathIDs = append(out.PathIDs, pathID)
	})
	return out
}
