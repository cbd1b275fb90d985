package glyphmesh

import (
	"math"

	"github.com/gogpu/gputypes"
)

// PathData is the outline output: one row per polyline point.
// All slices have the same length and row i describes one point.
type PathData struct {
	X, Y     []float32
	GlyphIDs []uint32
	PathIDs  []uint32
}

// Len returns the number of rows.
func (d *PathData) Len() int { return len(d.X) }

// Range is a run of consecutive rows.
type Range struct {
	First, Count int
}

// Contours returns the row range of each contour, in order. Each range is
// drawn as one line strip.
func (d *PathData) Contours() []Range {
	var out []Range
	for i := 0; i < len(d.PathIDs); {
		j := i + 1
		for j < len(d.PathIDs) && d.PathIDs[j] == d.PathIDs[i] {
			j++
		}
		out = append(out, Range{First: i, Count: j - i})
		i = j
	}
	return out
}

// Interleave packs the rows into a vertex buffer laid out as VertexLayout
// describes.
func (d *PathData) Interleave() []float32 {
	return interleave(d.X, d.Y, d.GlyphIDs, d.PathIDs)
}

// Topology returns the primitive topology for drawing each contour range.
func (d *PathData) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyLineStrip
}

// FillData is the fill output: three rows per triangle, row n belonging to
// triangle n/3. All slices have the same length.
type FillData struct {
	X, Y        []float32
	GlyphIDs    []uint32
	PathIDs     []uint32
	TriangleIDs []uint32

	// deduplicated positions and the row-aligned indices into them
	vertices []float32
	indices  []uint32
}

// Len returns the number of rows.
func (d *FillData) Len() int { return len(d.X) }

// Triangles returns the number of triangles.
func (d *FillData) Triangles() int { return len(d.X) / 3 }

// Interleave packs the rows into a vertex buffer laid out as VertexLayout
// describes, for non-indexed drawing.
func (d *FillData) Interleave() []float32 {
	return interleave(d.X, d.Y, d.GlyphIDs, d.PathIDs)
}

// Positions returns the deduplicated vertex positions as x, y pairs, laid
// out as PositionLayout describes.
func (d *FillData) Positions() []float32 { return d.vertices }

// Indices returns the index buffer into Positions: row i of d is vertex
// Indices()[i].
func (d *FillData) Indices() []uint32 { return d.indices }

// Topology returns the primitive topology of the mesh.
func (d *FillData) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}

// Attribute locations of the interleaved vertex format.
const (
	LocationPosition = 0
	LocationGlyph    = 1
	LocationPath     = 2
)

// vertexStride is the size of one interleaved vertex: x, y, glyph, path.
const vertexStride = 16

// VertexLayout describes the buffers produced by Interleave: a float32x2
// position followed by the glyph and path ids as uint32.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: LocationPosition},
			{Format: gputypes.VertexFormatUint32, Offset: 8, ShaderLocation: LocationGlyph},
			{Format: gputypes.VertexFormatUint32, Offset: 12, ShaderLocation: LocationPath},
		},
	}
}

// PositionLayout describes the buffer returned by FillData.Positions.
func PositionLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: 8,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: LocationPosition},
		},
	}
}

// IndexFormat returns the format of FillData.Indices.
func IndexFormat() gputypes.IndexFormat { return gputypes.IndexFormatUint32 }

// interleave stores ids as raw bits so the buffer can be uploaded as is.
func interleave(xs, ys []float32, glyphs, paths []uint32) []float32 {
	out := make([]float32, 0, 4*len(xs))
	for i := range xs {
		out = append(out, xs[i], ys[i], math.Float32frombits(glyphs[i]), math.Float32frombits(paths[i]))
	}
	return out
}
