package glyphmesh

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/glyphmesh/text"
)

// nopHandler drops every record. Enabled reports false, so slog never
// builds the record in the first place.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var silent = slog.New(nopHandler{})

// current is read by every pipeline call and swapped by SetLogger.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the diagnostics of glyphmesh and package text to l.
// A nil l silences both again, which is also the initial state.
// It may be called while pipelines are running.
//
// Records emitted:
//   - [slog.LevelDebug]: font loads, layout summaries (glyphs, events),
//     assembled point counts and triangle counts
//   - [slog.LevelWarn]: contours dropped before triangulation
//
// For example, to trace a single run on stderr:
//
//	glyphmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
	text.SetLogger(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}
