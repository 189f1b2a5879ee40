package trirast

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while workers are logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for trirast and its sub-packages.
// By default trirast produces no log output. Pass nil to restore silence.
//
// Log levels used by trirast:
//   - [slog.LevelDebug]: per-triangle diagnostics (culled triangles, grid sizes)
//   - [slog.LevelInfo]: lifecycle events (worker pool started)
//   - [slog.LevelWarn]: skipped input (mesh triangles behind the camera)
//
// Example:
//
//	trirast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (framebuffer, mesh) call
// this to share one logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
