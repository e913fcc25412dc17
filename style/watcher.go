package style

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/plinth"
)

// State is the lifecycle state of a Watcher.
type State uint8

const (
	Stopped State = iota
	Watching
)

func (s State) String() string {
	if s == Watching {
		return "watching"
	}
	return "stopped"
}

type cacheKey struct {
	class string
	id    StableElementID
}

// Watcher keeps a Registry in sync with the raw style values of a Source.
//
// Every rescan walks all watched classes, compares each element's raw value
// with the last value seen for that (class, element) pair and upserts the
// parsed color of every changed value. The listener, if any, is called once
// per rescan that changed something.
//
// Watcher is safe for concurrent use. Rescans are serialized.
type Watcher struct {
	source   Source
	registry *Registry
	opts     watcherOptions

	// scanMu serializes scans. It is never held while the listener or the
	// diagnostics sink runs.
	scanMu sync.Mutex

	mu       sync.Mutex
	state    State
	watched  []string
	cache    map[cacheKey]string
	listener func()
	subs     []Subscription
}

// NewWatcher creates a stopped watcher reading from src and writing to reg.
func NewWatcher(src Source, reg *Registry, opts ...WatcherOption) (*Watcher, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if reg == nil {
		return nil, ErrNilRegistry
	}
	o := defaultWatcherOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Watcher{
		source:   src,
		registry: reg,
		opts:     o,
		cache:    make(map[cacheKey]string),
	}, nil
}

// WatchClass adds name to the watched set. It may be called in either
// state; a running watcher picks the class up on its next rescan.
func (w *Watcher) WatchClass(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(w.watched, name) {
		w.watched = append(w.watched, name)
	}
}

// SetListener replaces the change listener. Only one listener is kept.
// Pass nil to remove it.
func (w *Watcher) SetListener(fn func()) {
	w.mu.Lock()
	w.listener = fn
	w.mu.Unlock()
}

// Start seeds the cache and registry with one synchronous scan and then
// subscribes to every trigger class of the source. The seed scan does not
// notify the listener; only changes observed after Start do.
//
// If the source cannot be enumerated or observed, Start undoes any
// subscriptions it made, leaves the watcher Stopped and returns an error
// wrapping ErrSourceUnavailable. Classes that were enumerated before the
// failure stay seeded in the registry and cache. Calling Start on a running
// watcher is a no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.state == Watching {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	res := w.scan()
	w.reportAll(res.problems)
	if err := errors.Join(res.failures...); err != nil {
		return fmt.Errorf("seed rescan: %w", err)
	}

	obs := ObserverFunc(func(Event) { w.Rescan() })
	subs := make([]Subscription, 0, len(Triggers()))
	for _, trig := range Triggers() {
		sub, err := w.source.Subscribe(trig, obs)
		if err != nil {
			for _, s := range subs {
				s.Unsubscribe()
			}
			plinth.Logger().Warn("style: subscribe failed", "trigger", trig.String(), "err", err)
			return fmt.Errorf("%w: subscribe %s: %w", ErrSourceUnavailable, trig, err)
		}
		subs = append(subs, sub)
	}

	w.mu.Lock()
	if w.state == Watching {
		// Lost a race with a concurrent Start.
		w.mu.Unlock()
		for _, s := range subs {
			s.Unsubscribe()
		}
		return nil
	}
	w.subs = subs
	w.state = Watching
	n := len(w.watched)
	w.mu.Unlock()

	plinth.Logger().Info("style: watcher started", "classes", n, "property", w.opts.property)
	return nil
}

// Stop unsubscribes from the source. The cache is kept, so values already
// seen are not reported again after a later Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.state == Stopped {
		w.mu.Unlock()
		return
	}
	subs := w.subs
	w.subs = nil
	w.state = Stopped
	w.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
	plinth.Logger().Info("style: watcher stopped")
}

// State returns the current lifecycle state.
func (w *Watcher) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Watched returns the watched class names in the order they were added.
func (w *Watcher) Watched() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.watched)
}

// CacheLen returns the number of (class, element) pairs seen so far.
func (w *Watcher) CacheLen() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.cache)
}

// Rescan walks every watched class and reports whether any value changed.
// A class whose elements cannot be enumerated is skipped and reported to
// the diagnostics sink. The listener runs after the scan if anything
// changed.
func (w *Watcher) Rescan() bool {
	res := w.scan()
	w.reportAll(res.failures)
	w.reportAll(res.problems)

	if res.changed {
		w.mu.Lock()
		fn := w.listener
		w.mu.Unlock()
		if fn != nil {
			fn()
		}
	}
	return res.changed
}

type scanResult struct {
	changed bool
	// failures are enumeration errors, each wrapping ErrSourceUnavailable.
	failures []error
	// problems are values that changed but did not parse.
	problems []error
}

// scan runs one pass under scanMu. It neither notifies nor reports, so
// callers may re-enter the watcher from the listener or diagnostics sink.
func (w *Watcher) scan() scanResult {
	w.scanMu.Lock()
	defer w.scanMu.Unlock()

	w.mu.Lock()
	classes := slices.Clone(w.watched)
	w.mu.Unlock()

	var res scanResult
	for _, class := range classes {
		elems, err := w.source.ElementsWithClass(class)
		if err != nil {
			res.failures = append(res.failures, fmt.Errorf("%w: enumerate %q: %w", ErrSourceUnavailable, class, err))
			continue
		}
		for _, el := range elems {
			changed, err := w.scanElement(class, el)
			if err != nil {
				res.problems = append(res.problems, err)
			}
			if changed {
				res.changed = true
			}
		}
	}

	plinth.Logger().Debug("style: rescan", "classes", len(classes), "changed", res.changed)
	return res
}

// scanElement handles one element of one class. It reports whether the
// registry was updated, or the parse error of a changed value.
func (w *Watcher) scanElement(class string, el Element) (bool, error) {
	id := w.source.StableID(el)
	raw, ok := w.source.StyleProperty(el, w.opts.property)
	if !ok || raw == "" {
		return false, nil
	}

	key := cacheKey{class: class, id: id}
	w.mu.Lock()
	prev, seen := w.cache[key]
	if seen && prev == raw {
		w.mu.Unlock()
		return false, nil
	}
	// The raw value is cached even if it does not parse, so an unchanged
	// bad value is not retried.
	w.cache[key] = raw
	w.mu.Unlock()

	col, err := w.opts.parse(raw)
	if err != nil {
		return false, fmt.Errorf("class %q element %s: %w", class, id, err)
	}
	w.registry.Upsert(Class{Name: class, Color: &col})
	return true, nil
}

func (w *Watcher) reportAll(errs []error) {
	for _, err := range errs {
		w.report(err)
	}
}

func (w *Watcher) report(err error) {
	plinth.Logger().Warn("style: rescan problem", "err", err)
	if w.opts.diagnostics != nil {
		w.opts.diagnostics(err)
	}
}
