package glyphmesh

import (
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphmesh/internal/tess"
	"github.com/gogpu/glyphmesh/text"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the rule name.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

func (r FillRule) tessRule() tess.Rule {
	if r == FillRuleEvenOdd {
		return tess.EvenOdd
	}
	return tess.NonZero
}

// Option configures a Pipeline during creation.
//
// Example:
//
//	p := glyphmesh.New(0.5, glyphmesh.WithFillRule(glyphmesh.FillRuleEvenOdd))
type Option func(*config)

// config holds optional configuration for a Pipeline.
type config struct {
	fillRule  FillRule
	parser    string
	fonts     *text.Cache
	normalize bool
	form      norm.Form
	coarse    bool
}

// defaultConfig returns the default pipeline configuration.
func defaultConfig() config {
	return config{
		fillRule: FillRuleNonZero,
	}
}

// WithFillRule sets the winding rule used by IntoFill.
// The default is FillRuleNonZero.
func WithFillRule(r FillRule) Option {
	return func(c *config) {
		c.fillRule = r
	}
}

// WithParser selects the font parser backend used by Outline.
// See text.WithParser.
func WithParser(name string) Option {
	return func(c *config) {
		c.parser = name
	}
}

// WithFontCache makes Outline load fonts through a shared cache instead of
// parsing the file on every call.
func WithFontCache(fonts *text.Cache) Option {
	return func(c *config) {
		c.fonts = fonts
	}
}

// WithNormalization normalizes input text to the given Unicode form before
// layout, e.g. norm.NFC to compose "e" + U+0301 into "é".
func WithNormalization(form norm.Form) Option {
	return func(c *config) {
		c.normalize = true
		c.form = form
	}
}

// WithCoarseProvenance makes IntoFill tag every row with glyph 0 and path 0
// instead of tracing vertices back to their source glyph and contour.
func WithCoarseProvenance() Option {
	return func(c *config) {
		c.coarse = true
	}
}
