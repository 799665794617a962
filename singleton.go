// File: metaopt/singleton.go
package metaopt

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// singletonClass is one node in the registry's class tree.
type singletonClass struct {
	name      string
	parent    *singletonClass
	children  []*singletonClass // declaration order
	construct func() any

	designated *singletonClass // nil until explicitly designated
	instance   any
	created    bool
}

// Registry coordinates singleton instantiation across a class hierarchy.
// Each registered class gets at most one live instance for the whole process;
// designating a concrete class routes instantiation of every ancestor to it.
// All operations are guarded by a single mutex; construct functions must not
// call back into the registry.
type Registry struct {
	mu      sync.Mutex
	classes map[string]*singletonClass
	log     zerolog.Logger
}

// NewRegistry creates an empty singleton registry. Logging is disabled until
// WithLogger is called.
func NewRegistry() *Registry {
	return &Registry{
		classes: make(map[string]*singletonClass),
		log:     zerolog.Nop(),
	}
}

// WithLogger sets the logger used for registration events and reassignment
// warnings. Returns the registry for chaining.
func (r *Registry) WithLogger(log zerolog.Logger) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = log
	return r
}

// Register declares a singleton class with an optional parent and its
// constructor. Children are recorded in registration order, which determines
// the DerivedInstance walk.
func (r *Registry) Register(name, parent string, construct func() any) error {
	if name == "" {
		return fmt.Errorf("singleton class name cannot be empty")
	}
	if construct == nil {
		return fmt.Errorf("singleton class %s requires a constructor", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[name]; exists {
		return fmt.Errorf("singleton class already registered: %s", name)
	}

	c := &singletonClass{name: name, construct: construct}
	if parent != "" {
		p, exists := r.classes[parent]
		if !exists {
			return fmt.Errorf("%w: %s", ErrNotRegistered, parent)
		}
		c.parent = p
		p.children = append(p.children, c)
	}

	r.classes[name] = c
	r.log.Debug().Str("singleton", name).Str("parent", parent).Msg("registered singleton class")
	return nil
}

// SetSingletonClass designates concrete as the class to instantiate for name
// and for every ancestor of concrete. concrete must be name itself or one of
// its descendants. If an instance already exists for name, the request is
// dropped with a single warning and the existing instance stays in place.
func (r *Registry) SetSingletonClass(name, concrete string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	root, exists := r.classes[name]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	target, exists := r.classes[concrete]
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotRegistered, concrete)
	}

	descendant := false
	for c := target; c != nil; c = c.parent {
		if c == root {
			descendant = true
			break
		}
	}
	if !descendant {
		return fmt.Errorf("singleton class %s is not a subclass of %s", concrete, name)
	}

	if resolved := root.resolve(); resolved.created {
		r.log.Warn().
			Str("singleton", name).
			Str("requested", concrete).
			Msgf("an instance of the singleton %s has already been created, set %s earlier", name, concrete)
		return nil
	}

	for c := target; c != nil; c = c.parent {
		c.designated = target
	}
	r.log.Debug().Str("singleton", name).Str("designated", concrete).Msg("designated singleton class")
	return nil
}

// resolve returns the class whose instance serves this class: the designated
// class when set, else the class itself.
func (c *singletonClass) resolve() *singletonClass {
	if c.designated != nil {
		return c.designated
	}
	return c
}

// resolveDerived is the subclassable variant: without a designation, walk the
// first-registered subclass chain to the most derived class.
func (c *singletonClass) resolveDerived() *singletonClass {
	if c.designated != nil {
		return c.designated
	}
	for len(c.children) > 0 {
		c = c.children[0]
	}
	return c
}

// obtain returns the cached instance for the resolved class, constructing it
// exactly once.
func (r *Registry) obtain(c *singletonClass) any {
	if !c.created {
		c.instance = c.construct()
		c.created = true
		r.log.Debug().Str("singleton", c.name).Msg("created singleton instance")
	}
	return c.instance
}

// Instance returns the singleton instance for name, constructing it on first
// use. Without a designation the class itself is instantiated. Every call for
// name, or for any class designated to the same concrete class, returns the
// identical instance.
func (r *Registry) Instance(name string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.classes[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return r.obtain(c.resolve()), nil
}

// DerivedInstance is like Instance but, when name has no designation, it
// instantiates the most derived currently-registered subclass, chosen by
// repeatedly following the first-registered child.
func (r *Registry) DerivedInstance(name string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.classes[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return r.obtain(c.resolveDerived()), nil
}

// InstanceIfExists returns the already-created instance for name without
// constructing one.
func (r *Registry) InstanceIfExists(name string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, exists := r.classes[name]
	if !exists {
		return nil, false
	}
	resolved := c.resolve()
	if !resolved.created {
		return nil, false
	}
	return resolved.instance, true
}

// defaultRegistry backs the package-level singleton helpers.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the package-level
// helpers.
func DefaultRegistry() *Registry { return defaultRegistry }

// RegisterSingleton declares a singleton class on the default registry.
func RegisterSingleton(name, parent string, construct func() any) error {
	return defaultRegistry.Register(name, parent, construct)
}

// SetSingletonClass designates a concrete class on the default registry.
func SetSingletonClass(name, concrete string) error {
	return defaultRegistry.SetSingletonClass(name, concrete)
}

// Singleton returns the instance for name from the default registry.
func Singleton(name string) (any, error) {
	return defaultRegistry.Instance(name)
}

// DerivedSingleton returns the most-derived instance for name from the
// default registry.
func DerivedSingleton(name string) (any, error) {
	return defaultRegistry.DerivedInstance(name)
}
