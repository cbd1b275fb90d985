package glyphmesh

import (
	"fmt"
	"math"

	"github.com/gogpu/glyphmesh/internal/path"
	"github.com/gogpu/glyphmesh/text"
)

// Pipeline turns text into flattened geometry.
//
// Text is added with Outline or OutlineFont, possibly several times; glyphs
// continue where the previous call left the pen. The accumulated geometry is
// then taken exactly once with IntoPath or IntoFill, after which every method
// returns ErrPipelineConsumed.
//
// Coordinates are in font units with Y pointing up; the first glyph's origin
// is (0, 0).
//
// A Pipeline is not safe for concurrent use. Independent pipelines share no
// mutable state.
type Pipeline struct {
	tolerance float32
	cfg       config

	builder   *path.Builder
	collector outlineCollector
	consumed  bool
}

// New creates a pipeline that flattens curves to within tolerance font units.
// It panics if tolerance is not a positive finite number.
func New(tolerance float32, opts ...Option) *Pipeline {
	if !(tolerance > 0) || math.IsInf(float64(tolerance), 1) {
		panic(fmt.Sprintf("glyphmesh: tolerance must be positive and finite, got %v", tolerance))
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := path.NewBuilder()
	return &Pipeline{
		tolerance: tolerance,
		cfg:       cfg,
		builder:   b,
		collector: outlineCollector{b: b},
	}
}

// Tolerance returns the flattening tolerance.
func (p *Pipeline) Tolerance() float32 { return p.tolerance }

// Offset returns the pen position where the next glyph will be drawn.
func (p *Pipeline) Offset() (x, y float32) {
	return p.collector.dx, p.collector.dy
}

// Glyphs returns the number of glyphs laid out so far.
func (p *Pipeline) Glyphs() int { return int(p.collector.glyph) }

// Outline loads the font file at fontFile and lays out s with it.
//
// Font read and parse failures return *FontLoadingError. A character without
// a glyph returns *GlyphNotFoundError and adds nothing.
func (p *Pipeline) Outline(s, fontFile string) error {
	if p.consumed {
		return ErrPipelineConsumed
	}
	f, err := p.loadFont(fontFile)
	if err != nil {
		return &FontLoadingError{Path: fontFile, Err: err}
	}
	return p.layout(s, f)
}

// OutlineFont lays out s with an already loaded font.
func (p *Pipeline) OutlineFont(s string, f text.Font) error {
	if p.consumed {
		return ErrPipelineConsumed
	}
	return p.layout(s, f)
}

// IntoPath consumes the pipeline and returns one polyline point per row:
// contour start points, line end points and flattened curve points.
func (p *Pipeline) IntoPath() (*PathData, error) {
	pth, err := p.take()
	if err != nil {
		return nil, err
	}
	data := assemble(pth, p.tolerance)
	Logger().Debug("glyphmesh: path assembled",
		"contours", pth.Contours(),
		"points", data.Len())
	return data, nil
}

// IntoFill consumes the pipeline and returns a triangle mesh of the filled
// glyphs, three rows per triangle.
//
// Degenerate or non-finite geometry returns *GeometryError.
func (p *Pipeline) IntoFill() (*FillData, error) {
	pth, err := p.take()
	if err != nil {
		return nil, err
	}
	return tessellate(pth, p.tolerance, p.cfg.fillRule, p.cfg.coarse)
}

func (p *Pipeline) take() (*path.Path, error) {
	if p.consumed {
		return nil, ErrPipelineConsumed
	}
	p.consumed = true
	return p.builder.Build(), nil
}

func (p *Pipeline) loadFont(name string) (text.Font, error) {
	var opts []text.LoadOption
	if p.cfg.parser != "" {
		opts = append(opts, text.WithParser(p.cfg.parser))
	}
	if p.cfg.fonts != nil {
		return p.cfg.fonts.LoadFile(name, opts...)
	}
	return text.LoadFile(name, opts...)
}
