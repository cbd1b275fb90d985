package path

import "math"

// MaxSegments bounds the number of line segments a single curve is split
// into, so that pathological control points still terminate.
const MaxSegments = 1 << 16

// FlattenQuadratic appends a polyline approximation of the quadratic Bezier
// (from, ctrl, to) to dst and returns the extended slice.
//
// The appended points start strictly after from and end exactly at to. The
// distance between the curve and the polyline is at most tolerance.
func FlattenQuadratic(from, ctrl, to Point, tolerance float32, dst []Point) []Point {
	p0, p1, p2 := vec(from), vec(ctrl), vec(to)

	// Deviation of a quadratic from its n-segment chord is bounded by
	// |P0 - 2P1 + P2| / (4n²).
	dd := p0.sub(p1.mul(2)).add(p2).length()
	n := segmentCount(dd/4, float64(tolerance))

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		pt := p0.mul(mt * mt).add(p1.mul(2 * mt * t)).add(p2.mul(t * t))
		dst = append(dst, pt.point())
	}
	return append(dst, to)
}

// FlattenCubic appends a polyline approximation of the cubic Bezier
// (from, ctrl1, ctrl2, to) to dst and returns the extended slice.
//
// The segment count follows Wang's formula, so the appended points end
// exactly at to and stay within tolerance of the curve.
func FlattenCubic(from, ctrl1, ctrl2, to Point, tolerance float32, dst []Point) []Point {
	p0, p1, p2, p3 := vec(from), vec(ctrl1), vec(ctrl2), vec(to)

	d1 := p0.sub(p1.mul(2)).add(p2).length()
	d2 := p1.sub(p2.mul(2)).add(p3).length()
	n := segmentCount(3*math.Max(d1, d2)/4, float64(tolerance))

	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		mt2 := mt * mt
		t2 := t * t
		pt := p0.mul(mt2 * mt).
			add(p1.mul(3 * mt2 * t)).
			add(p2.mul(3 * mt * t2)).
			add(p3.mul(t2 * t))
		dst = append(dst, pt.point())
	}
	return append(dst, to)
}

// segmentCount returns ceil(sqrt(m/tolerance)) clamped to [1, MaxSegments].
// It is non-increasing in tolerance.
func segmentCount(m, tolerance float64) int {
	if !(m > 0) || math.IsInf(m, 0) {
		// Flat, degenerate or non-finite: a single chord.
		return 1
	}
	n := math.Ceil(math.Sqrt(m / tolerance))
	if !(n >= 1) {
		return 1
	}
	if n > MaxSegments {
		return MaxSegments
	}
	return int(n)
}

// vec2 is the float64 working type of the flattener.
type vec2 struct{ x, y float64 }

func vec(p Point) vec2 { return vec2{float64(p.X), float64(p.Y)} }

func (v vec2) add(o vec2) vec2 { return vec2{v.x + o.x, v.y + o.y} }
func (v vec2) sub(o vec2) vec2 { return vec2{v.x - o.x, v.y - o.y} }
func (v vec2) mul(s float64) vec2 { return vec2{v.x * s, v.y * s} }
func (v vec2) length() float64 { return math.Hypot(v.x, v.y) }
func (v vec2) point() Point { return Point{X: float32(v.x), Y: float32(v.y)} }
