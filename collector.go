package glyphmesh

import (
	"github.com/gogpu/glyphmesh/internal/path"
	"github.com/gogpu/glyphmesh/text"
)

// outlineCollector receives glyph outlines from a font and records them as
// path events, translated by the pen offset and tagged with the index of the
// glyph being drawn.
//
// Fonts only draw into the collector through text.ContourSink, so every
// contour arrives as MoveTo ... Close. A drawing command before the first
// MoveTo violates that contract and panics.
type outlineCollector struct {
	b *path.Builder

	// dx, dy is the pen offset. Only the layout driver moves it, and never
	// while a glyph is being drawn.
	dx, dy float32
	glyph  uint32
}

var _ text.OutlineSink = (*outlineCollector)(nil)

func (c *outlineCollector) at(x, y float32) path.Point {
	return path.Point{X: x + c.dx, Y: y + c.dy}
}

// MoveTo implements text.OutlineSink.
func (c *outlineCollector) MoveTo(x, y float32) {
	c.b.Begin(c.at(x, y), c.glyph)
}

// LineTo implements text.OutlineSink.
func (c *outlineCollector) LineTo(x, y float32) {
	c.b.LineTo(c.at(x, y), c.glyph)
}

// QuadTo implements text.OutlineSink.
func (c *outlineCollector) QuadTo(cx, cy, x, y float32) {
	c.b.QuadTo(c.at(cx, cy), c.at(x, y), c.glyph)
}

// CubeTo implements text.OutlineSink.
func (c *outlineCollector) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	c.b.CubicTo(c.at(c1x, c1y), c.at(c2x, c2y), c.at(x, y), c.glyph)
}

// Close implements text.OutlineSink. The builder stamps the contour's path
// id on every event recorded since its MoveTo.
func (c *outlineCollector) Close() {
	c.b.End(true, c.glyph)
}
