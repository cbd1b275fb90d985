package text

// LoadOption configures font loading.
type LoadOption func(*loadConfig)

// loadConfig holds configuration for Load and LoadFile.
type loadConfig struct {
	parserName string
}

// defaultLoadConfig returns the default load configuration.
func defaultLoadConfig() loadConfig {
	return loadConfig{
		parserName: defaultParserName,
	}
}

// WithParser specifies the font parser backend.
// The default is "gotext" which uses github.com/go-text/typesetting;
// "ximage" uses golang.org/x/image/font/sfnt.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) LoadOption {
	return func(c *loadConfig) {
		c.parserName = name
	}
}
