package glyphmesh

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/glyphmesh/text"
)

// captureLogs routes debug output into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return &buf
}

func TestLogger_SilentByDefault(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
		if Logger().Enabled(context.Background(), level) {
			t.Errorf("Logger().Enabled(%v) = true, want false", level)
		}
	}
}

func TestSetLogger_PropagatesToText(t *testing.T) {
	buf := captureLogs(t)

	if _, err := text.Load(goregular.TTF); err != nil {
		t.Fatalf("text.Load() error = %v", err)
	}
	if !strings.Contains(buf.String(), "font loaded") {
		t.Errorf("text package did not log through the configured logger, got: %s", buf.String())
	}
}

func TestSetLogger_NilSilencesBothPackages(t *testing.T) {
	buf := captureLogs(t)
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) left an enabled logger")
	}
	if _, err := text.Load(goregular.TTF); err != nil {
		t.Fatalf("text.Load() error = %v", err)
	}
	p := New(1)
	if err := p.OutlineFont("A", newTestFont().add('A', 10, rectOutline(0, 0, 1, 1))); err != nil {
		t.Fatalf("OutlineFont() error = %v", err)
	}
	if _, err := p.IntoFill(); err != nil {
		t.Fatalf("IntoFill() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output after SetLogger(nil): %s", buf.String())
	}
}

func TestPipelineLogsDiagnostics(t *testing.T) {
	buf := captureLogs(t)

	f := newTestFont().add('A', 10, rectOutline(0, 0, 1, 1))
	p := New(1)
	if err := p.OutlineFont("A", f); err != nil {
		t.Fatalf("OutlineFont() error = %v", err)
	}
	if _, err := p.IntoFill(); err != nil {
		t.Fatalf("IntoFill() error = %v", err)
	}
	for _, want := range []string{"glyphmesh: layout", "glyphmesh: fill tessellated", "triangles=2"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output missing %q, got: %s", want, buf.String())
		}
	}
}

func TestIntoFill_WarnsOnDroppedContours(t *testing.T) {
	buf := captureLogs(t)

	f := newTestFont().add('I', 10, func(s text.OutlineSink) {
		s.MoveTo(0, 0)
		s.LineTo(5, 5)
		rectOutline(0, 0, 1, 1)(s)
	})
	fillOf(t, "I", f, 0.1)

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "count=1") {
		t.Errorf("missing dropped-contour warning, got: %s", out)
	}
}

func TestSetLogger_DuringPipelines(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	verbose := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			f := newTestFont().add('A', 10, rectOutline(0, 0, 1, 1))
			p := New(1)
			if err := p.OutlineFont("AA", f); err != nil {
				t.Errorf("OutlineFont() error = %v", err)
				return
			}
			if _, err := p.IntoFill(); err != nil {
				t.Errorf("IntoFill() error = %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			SetLogger(verbose)
			SetLogger(nil)
		}()
	}
	wg.Wait()
}
