package typebuild

import (
	"errors"
	"fmt"
)

// ErrRegistryPanic is returned if a lookup panics internally (e.g. a nil
// receiver).
var ErrRegistryPanic = errors.New("typebuild: panic during registry lookup")

// Registry makes built classes discoverable by name.
//
// It is intentionally:
// - in-memory
// - side effect free beyond the map write in Add
// - not safe for concurrent mutation (the examples are single-threaded)
//
// Expected usage:
//
//	reg := typebuild.NewRegistry()
//	class, _ := typebuild.New("Person").Attr("age", 25).BuildInto(reg)
//	same := reg.MustGet("Person")
type Registry struct {
	classes map[string]*Class
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{classes: map[string]*Class{}}
}

// Add stores a class under its name and returns the registry for chaining.
// Re-adding a name replaces the previous class.
func (r *Registry) Add(c *Class) *Registry {
	if c != nil {
		r.classes[c.name] = c
	}
	return r
}

// Get returns the class if present (no panic).
func (r *Registry) Get(name string) (*Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Lookup is Get with panic recovery: internal panics are converted into
// errors so a broken registry never takes the caller down.
func (r *Registry) Lookup(name string) (c *Class, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			c = nil
			ok = false
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()

	c, ok = r.classes[name]
	return c, ok, nil
}

// MustGet returns the class or panics with a helpful message.
// Useful in examples/tests where a missing class should fail fast.
func (r *Registry) MustGet(name string) *Class {
	c, ok := r.classes[name]
	if !ok {
		panic(fmt.Errorf("typebuild: registry missing class %q", name))
	}
	return c
}

// Len reports how many classes are registered.
func (r *Registry) Len() int { return len(r.classes) }
