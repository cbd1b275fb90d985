package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrUnknownParser is returned when WithParser names an unregistered parser.
	ErrUnknownParser = errors.New("text: unknown font parser")

	// ErrFontNotFound is returned by Resolve when no font file matches a name.
	ErrFontNotFound = errors.New("text: font not found")
)

// ParseError is returned when a parser backend rejects font data.
type ParseError struct {
	Parser string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("text: %s parser: %v", e.Parser, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
