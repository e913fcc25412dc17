package plinth

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Its handler reports every level as
// disabled, so log calls in hot paths such as batch uploads cost one check.
var silent = slog.New(slog.DiscardHandler)

var active atomic.Pointer[slog.Logger]

func init() {
	active.Store(silent)
}

// SetLogger routes the log output of plinth, style, render and
// backend/native to l. Nothing is logged until it is called. Passing nil
// silences the module again. SetLogger may be called at any time, from any
// goroutine.
//
// Messages carry a "<package>: " prefix. Levels used:
//   - [slog.LevelDebug]: batch uploads, pipeline creation, style rescans
//   - [slog.LevelInfo]: watcher start and stop, adapter selection
//   - [slog.LevelWarn]: unparseable style values, failed subscriptions
//
// Example:
//
//	plinth.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	active.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return active.Load()
}
