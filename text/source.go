package text

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
)

// Load parses font data (TTF or OTF) with the configured parser backend.
// The data slice is copied internally and can be reused after this call.
func Load(data []byte, opts ...LoadOption) (Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultLoadConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parser, err := lookupParser(config.parserName)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := parser.Parse(dataCopy)
	if err != nil {
		return nil, err
	}
	logger().Debug("text: font loaded", "parser", config.parserName, "bytes", len(data), "upem", f.UnitsPerEm())
	return f, nil
}

// LoadFile reads and parses the font file at path.
func LoadFile(path string, opts ...LoadOption) (Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return Load(data, opts...)
}

// Resolve returns the path of a font file given either a path or a font file
// name such as "DejaVuSans.ttf" or "DejaVuSans". Names are searched in the
// current directory and in the platform's user and system font directories;
// an exact file name match wins over the closest partial match.
func Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrFontNotFound)
	}
	path, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrFontNotFound, name, err)
	}
	logger().Debug("text: font resolved", "name", name, "path", path)
	return path, nil
}

// SystemFonts lists the font files found in the platform font directories.
func SystemFonts() []string {
	return findfont.List()
}
