package glyphmesh

import (
	"errors"
	"fmt"
)

// ErrPipelineConsumed is returned by every Pipeline method once IntoPath or
// IntoFill has taken the geometry.
var ErrPipelineConsumed = errors.New("glyphmesh: pipeline already consumed")

// FontLoadingError is returned when a font file cannot be read or parsed.
type FontLoadingError struct {
	Path string
	Err  error
}

func (e *FontLoadingError) Error() string {
	return fmt.Sprintf("glyphmesh: load font %q: %v", e.Path, e.Err)
}

func (e *FontLoadingError) Unwrap() error { return e.Err }

// GlyphNotFoundError is returned when a character of the input has no glyph
// in the font. The whole call is aborted and nothing is added to the path.
type GlyphNotFoundError struct {
	// Char is the character without a glyph.
	Char rune
	// Offset is the byte offset of Char in the laid out string.
	Offset int
}

func (e *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("glyphmesh: no glyph for %q (U+%04X) at byte %d", e.Char, e.Char, e.Offset)
}

// GeometryError is returned when the fill mesh cannot be built.
type GeometryError struct {
	Reason string
	Err    error
}

func (e *GeometryError) Error() string {
	if e.Err == nil {
		return "glyphmesh: " + e.Reason
	}
	return fmt.Sprintf("glyphmesh: %s: %v", e.Reason, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }
