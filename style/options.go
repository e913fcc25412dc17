package style

import "github.com/gogpu/plinth"

// DefaultProperty is the style property a Watcher reads unless configured
// otherwise.
const DefaultProperty = "--color"

// WatcherOption configures a Watcher during creation.
//
// Example:
//
//	w, err := style.NewWatcher(src, reg,
//	    style.WithProperty("--accent"),
//	    style.WithDiagnostics(func(err error) { log.Print(err) }),
//	)
type WatcherOption func(*watcherOptions)

type watcherOptions struct {
	property    string
	diagnostics func(error)
	parse       func(string) (plinth.Color, error)
}

func defaultWatcherOptions() watcherOptions {
	return watcherOptions{
		property: DefaultProperty,
		parse:    ParseColor,
	}
}

// WithProperty sets the style property read from each element.
func WithProperty(name string) WatcherOption {
	return func(o *watcherOptions) {
		if name != "" {
			o.property = name
		}
	}
}

// WithDiagnostics installs a sink for non-fatal problems found during a
// rescan: unparseable values and enumeration failures. The sink is called
// synchronously from the rescanning goroutine after the scan has finished,
// so it may call back into the watcher.
func WithDiagnostics(fn func(error)) WatcherOption {
	return func(o *watcherOptions) {
		o.diagnostics = fn
	}
}

// WithNamedColors makes the watcher accept CSS color keywords in addition
// to the forms ParseColor understands.
func WithNamedColors() WatcherOption {
	return func(o *watcherOptions) {
		o.parse = ParseColorNamed
	}
}
