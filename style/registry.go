package style

import (
	"slices"
	"sync"

	"github.com/gogpu/plinth"
)

// Registry maps class names to classes.
//
// Registry is safe for concurrent use, so a Watcher may update it from a
// notification goroutine while the render loop resolves overrides.
type Registry struct {
	mu      sync.RWMutex
	classes map[string]Class
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: make(map[string]Class)}
}

// Upsert inserts c or replaces the existing class with the same name.
// The replacement is total: slots absent from c become absent.
func (r *Registry) Upsert(c Class) {
	c = c.clone()
	r.mu.Lock()
	r.classes[c.Name] = c
	r.mu.Unlock()
}

// Class returns a copy of the named class.
func (r *Registry) Class(name string) (Class, bool) {
	r.mu.RLock()
	c, ok := r.classes[name]
	r.mu.RUnlock()
	if !ok {
		return Class{}, false
	}
	return c.clone(), true
}

// Resolve returns the color stored in the named class's slot. A missing
// class and a missing slot are both reported as absent.
func (r *Registry) Resolve(name string, slot Slot) (plinth.Color, bool) {
	r.mu.RLock()
	c, ok := r.classes[name]
	r.mu.RUnlock()
	if !ok {
		return plinth.Color{}, false
	}
	return c.Get(slot)
}

// Remove deletes the named class. Removing an unknown name is a no-op.
func (r *Registry) Remove(name string) {
	r.mu.Lock()
	delete(r.classes, name)
	r.mu.Unlock()
}

// Names returns the registered class names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Len returns the number of registered classes.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.classes)
}
