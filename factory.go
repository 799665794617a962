// File: metaopt/factory.go
package metaopt

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// OptionsFactory produces a fresh, unresolved Options instance for one class
// being built. A class subtree can designate its own factory by storing one
// under the FactoryAttr attribute.
type OptionsFactory func() *Options

// Options is the ordered set of recognized meta options for one class plus,
// once resolved, the value of each. A fresh instance is created per class
// build; after ApplyTo it is attached to the namespace under the Meta key and
// must be treated as read-only.
type Options struct {
	specs  []Option
	keys   []string
	values map[string]any
	desc   *Descriptor
}

// NewOptions creates an unresolved options set from the given specs,
// processed in the given order during resolution.
func NewOptions(specs ...Option) *Options {
	return &Options{
		specs:  specs,
		values: make(map[string]any),
	}
}

// Get retrieves the resolved value for name. During resolution, hooks of
// later specs already see the values of earlier specs.
func (o *Options) Get(name string) (any, bool) {
	v, ok := o.values[name]
	return v, ok
}

// Names returns the resolved option names in spec order.
func (o *Options) Names() []string {
	names := make([]string, len(o.keys))
	copy(names, o.keys)
	return names
}

// Map returns a copy of the resolved name to value mapping.
func (o *Options) Map() map[string]any {
	m := make(map[string]any, len(o.values))
	for k, v := range o.values {
		m[k] = v
	}
	return m
}

// Descriptor returns the descriptor this options set was resolved for, nil
// before ApplyTo.
func (o *Options) Descriptor() *Descriptor { return o.desc }

// Debug returns a formatted representation of the resolved options.
func (o *Options) Debug() string {
	var b strings.Builder
	b.WriteString("<Options")
	for _, name := range o.keys {
		fmt.Fprintf(&b, " %s=%v", name, o.values[name])
	}
	b.WriteString(">")
	return b.String()
}

// fill resolves every spec in declared order against the class's own Meta
// block and the nearest ancestor's resolved options, then fails on any block
// key no spec claimed.
func (o *Options) fill(block *Block, parent *Options, d *Descriptor) error {
	// Working set of the block's claimable keys; private-prefixed names are
	// the block author's own business.
	unclaimed := make(map[string]struct{})
	if block != nil {
		for _, name := range block.Keys() {
			if strings.HasPrefix(name, privatePrefix) {
				continue
			}
			unclaimed[name] = struct{}{}
		}
	}

	for _, spec := range o.specs {
		if !isValidOptionName(spec.Name) {
			return fmt.Errorf("invalid meta option name %q for %s", spec.Name, d.QualifiedName())
		}
		if _, exists := o.values[spec.Name]; exists {
			return &DuplicateOptionError{Class: d.QualifiedName(), Option: spec.Name}
		}

		value := spec.resolve(block, parent, d)
		if spec.Check != nil {
			if err := spec.Check(value, d); err != nil {
				var invalid *InvalidOptionValueError
				if errors.As(err, &invalid) {
					return err
				}
				return &InvalidOptionValueError{
					Class:  d.QualifiedName(),
					Option: spec.Name,
					Value:  value,
					Err:    err,
				}
			}
		}

		delete(unclaimed, spec.Name)
		if spec.Name != placeholderName {
			o.keys = append(o.keys, spec.Name)
			o.values[spec.Name] = value
		}
	}

	if len(unclaimed) > 0 {
		unknown := make([]string, 0, len(unclaimed))
		for name := range unclaimed {
			unknown = append(unknown, name)
		}
		sort.Strings(unknown)
		return &UnknownOptionsError{Class: d.QualifiedName(), Options: unknown}
	}
	return nil
}

// ApplyTo resolves the options against d and contributes them back: the raw
// Meta block is popped from the namespace, every spec is resolved and
// validated, contribution hooks run, and the Meta key ends up holding the
// resolved options so later lookups transparently get this instance.
func (o *Options) ApplyTo(d *Descriptor) error {
	o.desc = d

	var block *Block
	if raw, ok := d.Namespace.Get(MetaKey); ok {
		d.Namespace.Delete(MetaKey)
		if raw != nil {
			b, isBlock := raw.(*Block)
			if !isBlock {
				return fmt.Errorf("Meta for %s must be a *metaopt.Block, got %T",
					d.QualifiedName(), raw)
			}
			block = b
		}
	}

	// The parent lookup runs after the pop, so it can only hit the bases.
	parent := parentOptions(d)

	d.Namespace.Set(MetaKey, o)

	if err := o.fill(block, parent, d); err != nil {
		return err
	}

	for _, spec := range o.specs {
		if spec.Contribute == nil {
			continue
		}
		value, _ := o.Get(spec.Name)
		spec.Contribute(d, value)
	}
	return nil
}

// parentOptions finds the nearest ancestor's resolved options via deep lookup
// of the Meta attribute over the descriptor's bases.
func parentOptions(d *Descriptor) *Options {
	if v, ok := DeepAttr(d.Namespace, d.Bases, MetaKey); ok {
		if opts, isOptions := v.(*Options); isOptions {
			return opts
		}
	}
	return nil
}

// Apply selects the options factory for d and applies it. The factory is
// deep-looked-up under attr (FactoryAttr when empty): the class's own
// namespace first, then its bases, falling back to def, falling back to an
// empty factory. This lets a subtree extend the recognized option set without
// the base declaring it.
func Apply(d *Descriptor, def OptionsFactory, attr string) (*Options, error) {
	if attr == "" {
		attr = FactoryAttr
	}

	factory := def
	if v, ok := DeepAttr(d.Namespace, d.Bases, attr); ok {
		switch f := v.(type) {
		case OptionsFactory:
			factory = f
		case func() *Options:
			factory = f
		default:
			return nil, fmt.Errorf("attribute %s of %s must be a metaopt.OptionsFactory, got %T",
				attr, d.QualifiedName(), v)
		}
	}
	if factory == nil {
		factory = func() *Options { return NewOptions() }
	}

	opts := factory()
	if opts == nil {
		return nil, fmt.Errorf("options factory for %s returned nil", d.QualifiedName())
	}
	if err := opts.ApplyTo(d); err != nil {
		return nil, err
	}
	return opts, nil
}
