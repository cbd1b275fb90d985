// Package text loads fonts and exposes their glyph outlines, advances and
// kerning to the glyphmesh pipeline.
//
// A [Font] is the read-only view of a parsed font program:
//
//   - GlyphIndex maps a rune through the character map
//   - OutlineGlyph streams a glyph outline into an [OutlineSink]
//   - GlyphHorAdvance and KerningSubtables give horizontal metrics
//
// All values are in font units, with Y pointing up.
//
// # Example usage
//
//	f, err := text.LoadFile("DejaVuSans.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gid, ok := f.GlyphIndex('A')
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the [FontParser] interface.
// By default, github.com/go-text/typesetting is used; the "ximage" backend
// uses golang.org/x/image/font/sfnt instead:
//
//	f, err := text.LoadFile(path, text.WithParser(text.ParserXImage))
//
// Font backends report outlines as MoveTo-delimited segment streams.
// [ContourSink] turns them into contours with explicit Close commands, so
// every [OutlineSink] sees well-formed contours regardless of the backend.
//
// # Sharing fonts
//
// Fonts are safe for concurrent use. [Cache] parses each font file once and
// shares it between pipelines.
package text
