// File: metaopt/descriptor.go
package metaopt

import "fmt"

const (
	// MetaKey is the namespace key holding the class's Meta block and, after
	// resolution, the resolved *Options.
	MetaKey = "Meta"

	// AbstractFlag is the namespace key mirroring the resolved abstract
	// option. Only an exact bool true marks a class abstract.
	AbstractFlag = "__abstract__"

	// FactoryAttr is the attribute designating the options factory for a
	// class and its subtree.
	FactoryAttr = "_meta_options_factory"

	moduleKey       = "__module__"
	privatePrefix   = "_"
	placeholderName = "_"
)

// missing is the not-found sentinel for deep lookup, distinct from nil and
// every legitimate attribute value.
type missing struct{}

func (missing) String() string { return "<missing>" }

// Missing is returned by lookups that distinguish "absent" from "stored nil".
var Missing any = missing{}

// Class is a finalized class produced by the builder. Attribute lookup on a
// Class searches its own attributes first, then its bases in resolution order.
type Class struct {
	Name   string
	Module string
	Bases  []*Class

	attrs *Namespace
	meta  *Options
}

// Attr looks up name on the class itself, then on each base, first match wins.
func (c *Class) Attr(name string) (any, bool) {
	if c.attrs != nil {
		if v, ok := c.attrs.Get(name); ok {
			return v, true
		}
	}
	for _, base := range c.Bases {
		if v, ok := base.Attr(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Meta returns the resolved options attached during construction, or nil for
// classes built without a factory applying any.
func (c *Class) Meta() *Options { return c.meta }

// QualifiedName returns "module.name", or just the name when no module was
// recorded.
func (c *Class) QualifiedName() string {
	if c.Module != "" {
		return c.Module + "." + c.Name
	}
	return c.Name
}

func (c *Class) String() string {
	return fmt.Sprintf("<Class %s>", c.QualifiedName())
}

// Descriptor represents a class mid-construction: its name, already-built
// base classes in resolution order, and its mutable namespace. It is created
// once per class declaration and discarded once the Class is produced.
type Descriptor struct {
	Name      string
	Bases     []*Class
	Namespace *Namespace
}

// NewDescriptor creates a descriptor. A nil namespace is replaced by an
// empty one.
func NewDescriptor(name string, bases []*Class, ns *Namespace) *Descriptor {
	if ns == nil {
		ns = NewNamespace()
	}
	return &Descriptor{Name: name, Bases: bases, Namespace: ns}
}

// Module returns the module recorded in the namespace, if any.
func (d *Descriptor) Module() string {
	if v, ok := d.Namespace.Get(moduleKey); ok {
		if s, isString := v.(string); isString {
			return s
		}
	}
	return ""
}

// QualifiedName returns "module.name" when a module is recorded, else the
// bare name.
func (d *Descriptor) QualifiedName() string {
	if module := d.Module(); module != "" {
		return module + "." + d.Name
	}
	return d.Name
}

// Attr performs deep lookup: the pending namespace first, then each base in
// resolution order. Returns an *AttributeError when the name is nowhere.
func (d *Descriptor) Attr(name string) (any, error) {
	if v, ok := DeepAttr(d.Namespace, d.Bases, name); ok {
		return v, nil
	}
	return nil, &AttributeError{Class: d.QualifiedName(), Name: name}
}

// AttrDefault is like Attr but returns def instead of failing.
func (d *Descriptor) AttrDefault(name string, def any) any {
	if v, ok := DeepAttr(d.Namespace, d.Bases, name); ok {
		return v
	}
	return def
}

// Meta returns the raw value stored under the Meta key in the namespace.
func (d *Descriptor) Meta() (any, bool) {
	return d.Namespace.Get(MetaKey)
}

// IsAbstract reports whether the class being built is abstract. The namespace
// flag wins when present; only an exact bool true counts. Without the flag,
// the Meta block's (or resolved options') abstract key is consulted with the
// same strict-bool rule.
func (d *Descriptor) IsAbstract() bool {
	if v, ok := d.Namespace.Get(AbstractFlag); ok {
		b, isBool := v.(bool)
		return isBool && b
	}
	raw, ok := d.Namespace.Get(MetaKey)
	if !ok {
		return false
	}
	var v any
	var found bool
	switch meta := raw.(type) {
	case *Block:
		v, found = meta.Get("abstract")
	case *Options:
		v, found = meta.Get("abstract")
	}
	if !found {
		return false
	}
	b, isBool := v.(bool)
	return isBool && b
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("<Descriptor class=%s>", d.QualifiedName())
}

// DeepAttr looks up name as if on a constructed class: first in the pending
// namespace, then in each base class in resolution order. The bool result
// distinguishes "found nil" from "absent".
func DeepAttr(ns *Namespace, bases []*Class, name string) (any, bool) {
	if ns != nil {
		if v, ok := ns.Get(name); ok {
			return v, true
		}
	}
	for _, base := range bases {
		if v, ok := base.Attr(name); ok {
			return v, true
		}
	}
	return nil, false
}
