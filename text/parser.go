package text

import (
	"fmt"
	"sort"
	"sync"
)

// FontParser is an interface for font parsing backends.
// This abstraction allows swapping the font parsing library
// (github.com/go-text/typesetting or golang.org/x/image/font/sfnt).
//
// The default implementation uses github.com/go-text/typesetting.
type FontParser interface {
	// Parse parses font data (TTF or OTF) and returns a Font.
	// The parser may retain data.
	Parse(data []byte) (Font, error)
}

// Names of the built-in parsers.
const (
	ParserGoText = "gotext"
	ParserXImage = "ximage"
)

// defaultParserName is the name of the default parser.
const defaultParserName = ParserGoText

var (
	parsersMu sync.RWMutex
	parsers   = map[string]FontParser{
		ParserGoText: gotextParser{},
		ParserXImage: ximageParser{},
	}
)

// RegisterParser registers a font parser under name, replacing any parser
// previously registered with that name.
// This allows users to provide their own parsing implementation.
func RegisterParser(name string, parser FontParser) {
	parsersMu.Lock()
	defer parsersMu.Unlock()
	parsers[name] = parser
}

// Parsers returns the names of all registered parsers, sorted.
func Parsers() []string {
	parsersMu.RLock()
	defer parsersMu.RUnlock()

	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupParser returns the parser registered under name.
// An empty name selects the default parser.
func lookupParser(name string) (FontParser, error) {
	if name == "" {
		name = defaultParserName
	}
	parsersMu.RLock()
	p, ok := parsers[name]
	parsersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, name)
	}
	return p, nil
}
