// Package memsource provides an in-memory style.Source.
//
// It stands in for a document-backed source in tests and headless tools:
// elements are added with classes and property values, and triggers are
// fired explicitly with Fire.
package memsource

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/gogpu/plinth/style"
)

// Element is an element held by a Source.
type Element struct {
	src     *Source
	classes []string
	props   map[string]string
	id      style.StableElementID
}

// SetProperty sets a raw property value. An empty value reads as present
// but empty.
func (e *Element) SetProperty(name, value string) {
	e.src.mu.Lock()
	e.props[name] = value
	e.src.mu.Unlock()
}

// DeleteProperty removes a property so that it reads as absent.
func (e *Element) DeleteProperty(name string) {
	e.src.mu.Lock()
	delete(e.props, name)
	e.src.mu.Unlock()
}

// SetClasses replaces the element's class list.
func (e *Element) SetClasses(classes ...string) {
	e.src.mu.Lock()
	e.classes = slices.Clone(classes)
	e.src.mu.Unlock()
}

type subscription struct {
	src     *Source
	trigger style.Trigger
	id      uint64
}

func (s *subscription) Unsubscribe() {
	s.src.mu.Lock()
	delete(s.src.observers[s.trigger], s.id)
	s.src.mu.Unlock()
}

// Source is a mutex-guarded, in-memory style.Source.
type Source struct {
	mu          sync.Mutex
	elements    []*Element
	observers   map[style.Trigger]map[uint64]style.Observer
	nextSubID   uint64
	nextStable  uint64
	unavailable error
}

// New creates an empty source.
func New() *Source {
	return &Source{observers: make(map[style.Trigger]map[uint64]style.Observer)}
}

// Add appends a new element carrying the given classes.
func (s *Source) Add(classes ...string) *Element {
	e := &Element{src: s, classes: slices.Clone(classes), props: make(map[string]string)}
	s.mu.Lock()
	s.elements = append(s.elements, e)
	s.mu.Unlock()
	return e
}

// Remove detaches e from the source.
func (s *Source) Remove(e *Element) {
	s.mu.Lock()
	s.elements = slices.DeleteFunc(s.elements, func(x *Element) bool { return x == e })
	s.mu.Unlock()
}

// SetUnavailable makes enumeration and subscription fail with err until it
// is called again with nil.
func (s *Source) SetUnavailable(err error) {
	s.mu.Lock()
	s.unavailable = err
	s.mu.Unlock()
}

// Fire delivers an event to every observer of trigger. Observers run on the
// calling goroutine after the source lock is released.
func (s *Source) Fire(trigger style.Trigger) {
	s.mu.Lock()
	subs := s.observers[trigger]
	ids := slices.Sorted(maps.Keys(subs))
	obs := make([]style.Observer, 0, len(ids))
	for _, id := range ids {
		obs = append(obs, subs[id])
	}
	s.mu.Unlock()

	for _, o := range obs {
		o.OnEvent(style.Event{Trigger: trigger})
	}
}

// Observers returns the number of observers subscribed to trigger.
func (s *Source) Observers(trigger style.Trigger) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers[trigger])
}

// ElementsWithClass implements style.Source.
func (s *Source) ElementsWithClass(class string) ([]style.Element, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable != nil {
		return nil, s.unavailable
	}
	var out []style.Element
	for _, e := range s.elements {
		if slices.Contains(e.classes, class) {
			out = append(out, e)
		}
	}
	return out, nil
}

// StableID implements style.Source. Ids are assigned on first request and
// stay attached to the element.
func (s *Source) StableID(el style.Element) style.StableElementID {
	e, ok := el.(*Element)
	if !ok {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.id == "" {
		s.nextStable++
		e.id = style.StableElementID(fmt.Sprintf("pw-%d", s.nextStable))
	}
	return e.id
}

// StyleProperty implements style.Source.
func (s *Source) StyleProperty(el style.Element, property string) (string, bool) {
	e, ok := el.(*Element)
	if !ok {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := e.props[property]
	return v, ok
}

// Subscribe implements style.Source.
func (s *Source) Subscribe(trigger style.Trigger, obs style.Observer) (style.Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unavailable != nil {
		return nil, s.unavailable
	}
	s.nextSubID++
	if s.observers[trigger] == nil {
		s.observers[trigger] = make(map[uint64]style.Observer)
	}
	s.observers[trigger][s.nextSubID] = obs
	return &subscription{src: s, trigger: trigger, id: s.nextSubID}, nil
}

var _ style.Source = (*Source)(nil)
