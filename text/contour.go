package text

// contourState is the state of a ContourSink.
type contourState uint8

const (
	noContour contourState = iota
	inContour
)

// ContourSink turns a MoveTo-delimited segment stream into one with explicit
// contour boundaries. Font backends emit outlines without close commands;
// ContourSink tracks the running contour and forwards Close to the wrapped
// sink whenever a contour ends.
//
// A contour ends when the next MoveTo arrives, on Close, or on Finish. If
// the last point of the contour differs from its start, a closing LineTo to
// the start is emitted first, so the event before Close always lands on the
// contour start.
//
// Drawing commands that arrive with no open contour start a new contour at
// the last known point, or at the origin if there is none.
type ContourSink struct {
	dst   OutlineSink
	state contourState
	start point
	last  point

	bounds  Rect
	touched bool
}

type point struct{ x, y float32 }

// NewContourSink returns a ContourSink forwarding to dst.
func NewContourSink(dst OutlineSink) *ContourSink {
	return &ContourSink{dst: dst}
}

// MoveTo ends the running contour, if any, and starts a new one at (x, y).
func (s *ContourSink) MoveTo(x, y float32) {
	s.Close()
	s.begin(point{x, y})
}

// LineTo implements OutlineSink.
func (s *ContourSink) LineTo(x, y float32) {
	s.ensure()
	s.include(x, y)
	s.dst.LineTo(x, y)
	s.last = point{x, y}
}

// QuadTo implements OutlineSink.
func (s *ContourSink) QuadTo(cx, cy, x, y float32) {
	s.ensure()
	s.include(cx, cy)
	s.include(x, y)
	s.dst.QuadTo(cx, cy, x, y)
	s.last = point{x, y}
}

// CubeTo implements OutlineSink.
func (s *ContourSink) CubeTo(c1x, c1y, c2x, c2y, x, y float32) {
	s.ensure()
	s.include(c1x, c1y)
	s.include(c2x, c2y)
	s.include(x, y)
	s.dst.CubeTo(c1x, c1y, c2x, c2y, x, y)
	s.last = point{x, y}
}

// Close ends the running contour. It is a no-op with no open contour.
func (s *ContourSink) Close() {
	if s.state != inContour {
		return
	}
	if s.last != s.start {
		s.dst.LineTo(s.start.x, s.start.y)
		s.last = s.start
	}
	s.dst.Close()
	s.state = noContour
}

// Finish ends the running contour and returns the control box of
// everything drawn. It reports false if nothing was drawn.
func (s *ContourSink) Finish() (Rect, bool) {
	s.Close()
	return s.bounds, s.touched
}

func (s *ContourSink) begin(p point) {
	s.include(p.x, p.y)
	s.dst.MoveTo(p.x, p.y)
	s.state = inContour
	s.start = p
	s.last = p
}

func (s *ContourSink) ensure() {
	if s.state == noContour {
		s.begin(s.last)
	}
}

func (s *ContourSink) include(x, y float32) {
	if !s.touched {
		s.bounds = Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
		s.touched = true
		return
	}
	s.bounds.MinX = min(s.bounds.MinX, x)
	s.bounds.MinY = min(s.bounds.MinY, y)
	s.bounds.MaxX = max(s.bounds.MaxX, x)
	s.bounds.MaxY = max(s.bounds.MaxY, y)
}
