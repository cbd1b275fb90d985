package glyphmesh

import (
	"errors"

	"github.com/gogpu/glyphmesh/internal/path"
	"github.com/gogpu/glyphmesh/internal/tess"
)

// provenance is the glyph and sub-path a vertex came from.
type provenance struct {
	glyph, path uint32
}

// tessellate flattens every contour of p and triangulates the region they
// enclose under rule.
//
// Vertices that coincide with a flattened source point keep that point's
// glyph and path ids; when several source points share a position the first
// one wins. Each triangle takes the ids of its first traced corner, so its
// three rows agree. Triangles built only from vertices synthesized at
// contour intersections, and every row when coarse is set, get 0 and 0.
func tessellate(p *path.Path, tolerance float32, rule FillRule, coarse bool) (*FillData, error) {
	// A non-finite control point would flatten to a single chord.
	if !p.Finite() {
		return nil, &GeometryError{Reason: "non-finite coordinate", Err: tess.ErrNonFinite}
	}

	var contours [][]tess.Vertex
	traced := make(map[tess.Vertex]provenance)

	flatten(p, tolerance, func(pt path.Point, glyph, pathID uint32, begin bool) {
		v := tess.Vertex{X: pt.X, Y: pt.Y}
		if begin {
			contours = append(contours, nil)
		}
		last := len(contours) - 1
		contours[last] = append(contours[last], v)
		if _, ok := traced[v]; !ok {
			traced[v] = provenance{glyph: glyph, path: pathID}
		}
	})

	mesh, err := tess.Triangulate(contours, rule.tessRule())
	if err != nil {
		reason := "triangulation failed"
		if errors.Is(err, tess.ErrNonFinite) {
			reason = "non-finite coordinate"
		}
		return nil, &GeometryError{Reason: reason, Err: err}
	}
	if mesh.Dropped > 0 {
		Logger().Warn("glyphmesh: dropped contours enclosing no area", "count", mesh.Dropped)
	}

	n := len(mesh.Indices)
	out := &FillData{
		X:           make([]float32, 0, n),
		Y:           make([]float32, 0, n),
		GlyphIDs:    make([]uint32, 0, n),
		PathIDs:     make([]uint32, 0, n),
		TriangleIDs: make([]uint32, 0, n),
		vertices:    make([]float32, 0, 2*len(mesh.Vertices)),
		indices:     make([]uint32, 0, n),
	}
	for _, v := range mesh.Vertices {
		out.vertices = append(out.vertices, v.X, v.Y)
	}

	synthesized := 0
	for tri := 0; tri < mesh.TriangleCount(); tri++ {
		corners := mesh.Indices[3*tri : 3*tri+3]

		var prov provenance
		if !coarse {
			found := false
			for _, idx := range corners {
				if pv, ok := traced[mesh.Vertices[idx]]; ok {
					prov, found = pv, true
					break
				}
			}
			if !found {
				synthesized++
			}
		}

		for _, idx := range corners {
			v := mesh.Vertices[idx]
			out.X = append(out.X, v.X)
			out.Y = append(out.Y, v.Y)
			out.GlyphIDs = append(out.GlyphIDs, prov.glyph)
			out.PathIDs = append(out.PathIDs, prov.path)
			out.TriangleIDs = append(out.TriangleIDs, uint32(tri))
			out.indices = append(out.indices, uint32(idx))
		}
	}

	Logger().Debug("glyphmesh: fill tessellated",
		"rule", rule.String(),
		"contours", len(contours),
		"vertices", len(mesh.Vertices),
		"triangles", mesh.TriangleCount(),
		"untraced", synthesized)
	return out, nil
}
