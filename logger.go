package shapes

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr holds the logger shared by shapes and its sub-packages.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger configures the logger for shapes and its sub-packages.
// By default, shapes produces no log output. Pass nil to go back to that
// silent default. SetLogger may be called while other goroutines log.
//
// Records use these levels:
//   - [slog.LevelDebug]: one record per drawn shape (index, kind, color) and
//     per placement decision
//   - [slog.LevelInfo]: images written by the surface package
//   - [slog.LevelWarn]: shapes skipped because their geometry is invalid
//
// Example:
//
//	shapes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by shapes. Sub-packages (surface,
// label, placement, integration/ebitenview) log through it so a single
// SetLogger call configures them all.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
