// Package tess triangulates planar multi-contour polygons under a winding
// rule. It wraps the SGI tessellator port in github.com/hajimehoshi/go-libtess2
// and turns its failure modes (error returns and assertion panics) into
// ordinary errors.
package tess

import (
	"errors"
	"fmt"
	"math"

	libtess2 "github.com/hajimehoshi/go-libtess2"
)

// Rule selects which regions of overlapping contours are filled.
type Rule int

const (
	// NonZero fills regions with a nonzero winding number.
	NonZero Rule = iota
	// EvenOdd fills regions with an odd winding number.
	EvenOdd
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return "Unknown"
	}
}

func (r Rule) winding() libtess2.WindingRule {
	if r == EvenOdd {
		return libtess2.WindingRuleOdd
	}
	return libtess2.WindingRuleNonzero
}

// Vertex is a mesh vertex.
type Vertex struct {
	X, Y float32
}

// Mesh is a triangle list over a deduplicated vertex buffer.
// Indices holds three entries per triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []int

	// Dropped counts input contours skipped for enclosing no area.
	Dropped int
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

var (
	// ErrNonFinite is returned when a contour contains NaN or infinite coordinates.
	ErrNonFinite = errors.New("tess: non-finite coordinate")

	// ErrSweep is returned when the sweep line reaches an inconsistent state.
	ErrSweep = errors.New("tess: inconsistent sweep state")
)

// Triangulate fills the region enclosed by contours under rule.
//
// Each contour is implicitly closed. A trailing vertex equal to the first one
// and consecutive duplicates are ignored; contours left with fewer than three
// vertices enclose no area and are skipped. Empty input yields an empty mesh.
func Triangulate(contours [][]Vertex, rule Rule) (mesh *Mesh, err error) {
	in := make([]libtess2.Contour, 0, len(contours))
	dropped := 0
	for i, c := range contours {
		lc, err := toContour(c)
		if err != nil {
			return nil, fmt.Errorf("contour %d: %w", i, err)
		}
		if len(lc) < 3 {
			dropped++
			continue
		}
		in = append(in, lc)
	}
	if len(in) == 0 {
		return &Mesh{Dropped: dropped}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			mesh = nil
			err = fmt.Errorf("%w: %v", ErrSweep, r)
		}
	}()

	elements, verts, err := libtess2.Tesselate(in, rule.winding())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSweep, err)
	}

	mesh = &Mesh{
		Vertices: make([]Vertex, len(verts)),
		Indices:  make([]int, 0, len(elements)),
		Dropped:  dropped,
	}
	for i, v := range verts {
		mesh.Vertices[i] = Vertex{X: v.X, Y: v.Y}
	}
	for i := 0; i+2 < len(elements); i += 3 {
		a, b, c := elements[i], elements[i+1], elements[i+2]
		if !valid(a, len(verts)) || !valid(b, len(verts)) || !valid(c, len(verts)) {
			return nil, fmt.Errorf("%w: triangle %d references missing vertex", ErrSweep, i/3)
		}
		mesh.Indices = append(mesh.Indices, a, b, c)
	}
	return mesh, nil
}

func toContour(c []Vertex) (libtess2.Contour, error) {
	out := make(libtess2.Contour, 0, len(c))
	for _, v := range c {
		if !finite(v.X) || !finite(v.Y) {
			return nil, ErrNonFinite
		}
		if n := len(out); n > 0 && out[n-1].X == v.X && out[n-1].Y == v.Y {
			continue
		}
		out = append(out, libtess2.Vertex{X: v.X, Y: v.Y})
	}
	if n := len(out); n > 1 && out[n-1] == out[0] {
		out = out[:n-1]
	}
	return out, nil
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

func valid(i, n int) bool { return i >= 0 && i < n }
