// Package path holds the abstract glyph path: a flat sequence of drawing
// events with per-event glyph and sub-path tags, the builder that records it,
// and the curve flattener shared by the outline and fill passes.
package path

import (
	"fmt"
	"math"
)

// Point is a 2D point in font units.
type Point struct {
	X, Y float32
}

// Event is one element of an abstract path.
// The set of events is closed: Begin, Line, Quadratic, Cubic and End.
type Event interface {
	isEvent()
}

// Begin starts a new contour at At.
type Begin struct{ At Point }

// Line draws a straight segment to To.
type Line struct{ To Point }

// Quadratic draws a quadratic Bezier segment through Ctrl to To.
type Quadratic struct{ Ctrl, To Point }

// Cubic draws a cubic Bezier segment through Ctrl1 and Ctrl2 to To.
type Cubic struct{ Ctrl1, Ctrl2, To Point }

// End terminates the current contour.
type End struct{ Closed bool }

func (Begin) isEvent()     {}
func (Line) isEvent()      {}
func (Quadratic) isEvent() {}
func (Cubic) isEvent()     {}
func (End) isEvent()       {}

// Path is a finished abstract path. Events, glyph ids and sub-path ids are
// index-aligned: GlyphID(i) and PathID(i) describe Event(i).
//
// Every Begin is matched by exactly one End, and the sub-path id is shared by
// all events of one contour, Begin and End included.
type Path struct {
	events   []Event
	glyphIDs []uint32
	pathIDs  []uint32
	contours int
}

// Len returns the number of events.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.events)
}

// Event returns the i'th event.
func (p *Path) Event(i int) Event { return p.events[i] }

// GlyphID returns the glyph tag of the i'th event.
func (p *Path) GlyphID(i int) uint32 { return p.glyphIDs[i] }

// PathID returns the sub-path tag of the i'th event.
func (p *Path) PathID(i int) uint32 { return p.pathIDs[i] }

// Contours returns the number of contours (End events) in the path.
func (p *Path) Contours() int {
	if p == nil {
		return 0
	}
	return p.contours
}

// Finite reports whether every point of p, curve control points included,
// is finite.
func (p *Path) Finite() bool {
	if p == nil {
		return true
	}
	for _, e := range p.events {
		var ok bool
		switch e := e.(type) {
		case Begin:
			ok = e.At.finite()
		case Line:
			ok = e.To.finite()
		case Quadratic:
			ok = e.Ctrl.finite() && e.To.finite()
		case Cubic:
			ok = e.Ctrl1.finite() && e.Ctrl2.finite() && e.To.finite()
		default:
			ok = true
		}
		if !ok {
			return false
		}
	}
	return true
}

func (p Point) finite() bool {
	x, y := float64(p.X), float64(p.Y)
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

// noContour marks a builder with no open contour.
const noContour = -1

// Builder records path events with their glyph tags.
//
// Sub-path ids are not known per event while a contour is open; End flushes
// the id onto every event recorded since the contour's Begin and then
// advances the counter.
//
// The zero value is ready to use. A Builder is not safe for concurrent use.
type Builder struct {
	events   []Event
	glyphIDs []uint32
	pathIDs  []uint32

	open       bool
	start      int // index of the open contour's Begin event
	nextPathID uint32
	lastGlyph  uint32
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{start: noContour}
}

// Len returns the number of events recorded so far.
func (b *Builder) Len() int { return len(b.events) }

// Begin opens a new contour at p. An already open contour is ended
// (closed) first.
func (b *Builder) Begin(p Point, glyph uint32) {
	if b.open {
		b.End(true, b.lastGlyph)
	}
	b.open = true
	b.start = len(b.events)
	b.push(Begin{At: p}, glyph)
}

// LineTo appends a straight segment. It panics when no contour is open.
func (b *Builder) LineTo(p Point, glyph uint32) {
	b.mustBeOpen("LineTo")
	b.push(Line{To: p}, glyph)
}

// QuadTo appends a quadratic segment. It panics when no contour is open.
func (b *Builder) QuadTo(ctrl, p Point, glyph uint32) {
	b.mustBeOpen("QuadTo")
	b.push(Quadratic{Ctrl: ctrl, To: p}, glyph)
}

// CubicTo appends a cubic segment. It panics when no contour is open.
func (b *Builder) CubicTo(ctrl1, ctrl2, p Point, glyph uint32) {
	b.mustBeOpen("CubicTo")
	b.push(Cubic{Ctrl1: ctrl1, Ctrl2: ctrl2, To: p}, glyph)
}

// End terminates the open contour and assigns its sub-path id.
// It is a no-op when no contour is open.
func (b *Builder) End(closed bool, glyph uint32) {
	if !b.open {
		return
	}
	b.push(End{Closed: closed}, glyph)
	for i := b.start; i < len(b.pathIDs); i++ {
		b.pathIDs[i] = b.nextPathID
	}
	b.nextPathID++
	b.open = false
	b.start = noContour
}

// Build finishes the path. An open contour is implicitly closed.
// The builder is reset and can be reused afterwards.
func (b *Builder) Build() *Path {
	if b.open {
		b.End(true, b.lastGlyph)
	}
	p := &Path{
		events:   b.events,
		glyphIDs: b.glyphIDs,
		pathIDs:  b.pathIDs,
		contours: int(b.nextPathID),
	}
	*b = Builder{start: noContour}
	return p
}

func (b *Builder) push(e Event, glyph uint32) {
	b.events = append(b.events, e)
	b.glyphIDs = append(b.glyphIDs, glyph)
	b.pathIDs = append(b.pathIDs, 0)
	b.lastGlyph = glyph
}

func (b *Builder) mustBeOpen(op string) {
	if !b.open {
		panic(fmt.Sprintf("path: %s called with no open contour", op))
	}
}
