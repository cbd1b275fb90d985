// Command glyphmesh prints the outline or fill geometry of a string as CSV.
//
//	glyphmesh -font DejaVuSans.ttf -text "Hello" -mode fill > hello.csv
//
// Outline rows are x,y,glyph_id,path_id; fill rows add triangle_id.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/glyphmesh"
	"github.com/gogpu/glyphmesh/text"
)

func main() {
	var (
		fontName  = flag.String("font", "", "font file path or name (e.g. DejaVuSans)")
		input     = flag.String("text", "glyphmesh", "text to convert")
		mode      = flag.String("mode", "outline", "output mode: outline or fill")
		tolerance = flag.Float64("tolerance", 1, "flattening tolerance in font units")
		rule      = flag.String("rule", "nonzero", "fill rule: nonzero or evenodd")
		parser    = flag.String("parser", text.ParserGoText, "font parser backend")
		output    = flag.String("output", "", "output file (default stdout)")
		nfc       = flag.Bool("nfc", false, "normalize text to NFC before layout")
		coarse    = flag.Bool("coarse", false, "tag all fill rows with glyph 0 and path 0")
		list      = flag.Bool("list", false, "list system fonts and exit")
		verbose   = flag.Bool("v", false, "log diagnostics to stderr")
	)
	flag.Parse()

	if *verbose {
		glyphmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *list {
		for _, f := range text.SystemFonts() {
			fmt.Println(f)
		}
		return
	}

	if *fontName == "" {
		log.Fatal("-font is required")
	}
	fontFile, err := text.Resolve(*fontName)
	if err != nil {
		log.Fatalf("Failed to find font: %v", err)
	}

	opts := []glyphmesh.Option{glyphmesh.WithParser(*parser)}
	switch *rule {
	case "nonzero":
	case "evenodd":
		opts = append(opts, glyphmesh.WithFillRule(glyphmesh.FillRuleEvenOdd))
	default:
		log.Fatalf("Unknown fill rule %q", *rule)
	}
	if *nfc {
		opts = append(opts, glyphmesh.WithNormalization(norm.NFC))
	}
	if *coarse {
		opts = append(opts, glyphmesh.WithCoarseProvenance())
	}
	tol, err := checkTolerance(*tolerance)
	if err != nil {
		log.Fatal(err)
	}

	p := glyphmesh.New(tol, opts...)
	if err := p.Outline(*input, fontFile); err != nil {
		log.Fatalf("Failed to lay out text: %v", err)
	}

	out := os.Stdout
	if *output != "" {
		out, err = os.Create(*output)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
	}
	bw := bufio.NewWriter(out)

	var rows int
	switch *mode {
	case "outline":
		d, err := p.IntoPath()
		if err != nil {
			log.Fatalf("Failed to assemble outline: %v", err)
		}
		rows = d.Len()
		err = writeCSV(bw, []string{"x", "y", "glyph_id", "path_id"}, d.Len(), func(i int) []string {
			return []string{ftoa(d.X[i]), ftoa(d.Y[i]), utoa(d.GlyphIDs[i]), utoa(d.PathIDs[i])}
		})
		if err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	case "fill":
		d, err := p.IntoFill()
		if err != nil {
			log.Fatalf("Failed to tessellate: %v", err)
		}
		rows = d.Len()
		err = writeCSV(bw, []string{"x", "y", "glyph_id", "path_id", "triangle_id"}, d.Len(), func(i int) []string {
			return []string{ftoa(d.X[i]), ftoa(d.Y[i]), utoa(d.GlyphIDs[i]), utoa(d.PathIDs[i]), utoa(d.TriangleIDs[i])}
		})
		if err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
	default:
		log.Fatalf("Unknown mode %q", *mode)
	}

	if err := bw.Flush(); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	if *output != "" {
		if err := out.Close(); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		log.Printf("%d %s rows saved to %s\n", rows, *mode, *output)
	}
}

// checkTolerance converts v to the pipeline's float32 tolerance, rejecting
// values that are not positive and finite after the conversion.
func checkTolerance(v float64) (float32, error) {
	tol := float32(v)
	if !(tol > 0) || math.IsInf(float64(tol), 0) {
		return 0, fmt.Errorf("tolerance must be a positive finite float32, got %v", v)
	}
	return tol, nil
}

func writeCSV(w io.Writer, header []string, n int, row func(i int) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func ftoa(f float32) string { return strconv.FormatFloat(float64(f), 'g', -1, 32) }

func utoa(u uint32) string { return strconv.FormatUint(uint64(u), 10) }
