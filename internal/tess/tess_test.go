package tess

import (
	"errors"
	"math"
	"testing"
)

func rect(x0, y0, x1, y1 float32) []Vertex {
	return []Vertex{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
}

func reversed(c []Vertex) []Vertex {
	out := make([]Vertex, len(c))
	for i, v := range c {
		out[len(c)-1-i] = v
	}
	return out
}

func meshArea(m *Mesh) float64 {
	area := 0.0
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
		cross := float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
		area += math.Abs(cross) / 2
	}
	return area
}

func TestTriangulate_SquareWithHole(t *testing.T) {
	outer := rect(0, 0, 10, 10)
	hole := reversed(rect(3, 3, 7, 7))

	for _, rule := range []Rule{NonZero, EvenOdd} {
		t.Run(rule.String(), func(t *testing.T) {
			m, err := Triangulate([][]Vertex{outer, hole}, rule)
			if err != nil {
				t.Fatalf("Triangulate() error = %v", err)
			}
			if got := meshArea(m); math.Abs(got-84) > 1e-3 {
				t.Errorf("mesh area = %v, want 84", got)
			}
			for i := 0; i+2 < len(m.Indices); i += 3 {
				a, b, c := m.Vertices[m.Indices[i]], m.Vertices[m.Indices[i+1]], m.Vertices[m.Indices[i+2]]
				cx, cy := (a.X+b.X+c.X)/3, (a.Y+b.Y+c.Y)/3
				if cx > 3 && cx < 7 && cy > 3 && cy < 7 {
					t.Errorf("triangle %d has centroid (%v, %v) inside the hole", i/3, cx, cy)
				}
			}
		})
	}
}

func TestTriangulate_OverlapRules(t *testing.T) {
	a := rect(0, 0, 2, 2)
	b := rect(1, 1, 3, 3)

	tests := []struct {
		rule Rule
		want float64
	}{
		{NonZero, 7},
		{EvenOdd, 6},
	}
	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			m, err := Triangulate([][]Vertex{a, b}, tt.rule)
			if err != nil {
				t.Fatalf("Triangulate() error = %v", err)
			}
			if got := meshArea(m); math.Abs(got-tt.want) > 1e-3 {
				t.Errorf("mesh area = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTriangulate_Empty(t *testing.T) {
	m, err := Triangulate(nil, NonZero)
	if err != nil {
		t.Fatalf("Triangulate(nil) error = %v", err)
	}
	if m.TriangleCount() != 0 || len(m.Vertices) != 0 {
		t.Errorf("Triangulate(nil) = %d triangles, %d vertices, want empty", m.TriangleCount(), len(m.Vertices))
	}
}

func TestTriangulate_DropsDegenerateContours(t *testing.T) {
	line := []Vertex{{0, 0}, {5, 5}, {5, 5}, {0, 0}}
	m, err := Triangulate([][]Vertex{line, rect(0, 0, 1, 1)}, NonZero)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}
	if m.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", m.Dropped)
	}
	if got := meshArea(m); math.Abs(got-1) > 1e-4 {
		t.Errorf("mesh area = %v, want 1", got)
	}
}

func TestTriangulate_NonFinite(t *testing.T) {
	nan := float32(math.NaN())
	bad := []Vertex{{0, 0}, {nan, 1}, {1, 1}}
	_, err := Triangulate([][]Vertex{rect(0, 0, 1, 1), bad}, NonZero)
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("Triangulate() error = %v, want ErrNonFinite", err)
	}
}

func TestTriangulate_IndicesInRange(t *testing.T) {
	m, err := Triangulate([][]Vertex{{{0, 0}, {4, 0}, {4, 1}, {1, 1}, {1, 3}, {4, 3}, {4, 4}, {0, 4}}}, NonZero)
	if err != nil {
		t.Fatalf("Triangulate() error = %v", err)
	}
	if len(m.Indices)%3 != 0 {
		t.Fatalf("len(Indices) = %d, want a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if idx < 0 || idx >= len(m.Vertices) {
			t.Errorf("Indices[%d] = %d out of range [0, %d)", i, idx, len(m.Vertices))
		}
	}
	if got := meshArea(m); math.Abs(got-10) > 1e-3 {
		t.Errorf("C-shape area = %v, want 10", got)
	}
}

func TestRule_String(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{NonZero, "NonZero"},
		{EvenOdd, "EvenOdd"},
		{Rule(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.rule.String(); got != tt.want {
			t.Errorf("Rule(%d).String() = %q, want %q", int(tt.rule), got, tt.want)
		}
	}
}
