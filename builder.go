// File: metaopt/builder.go
package metaopt

import (
	"fmt"
)

// ValidatorFunc defines the signature for a function that can validate a
// finalized Class. It receives the fully built *Class and should return an
// error if validation fails.
type ValidatorFunc func(c *Class) error

// ClassBuilder provides a fluent interface for building classes: assemble a
// descriptor, enforce the naming guard, resolve meta options, validate, and
// freeze the result into a Class.
type ClassBuilder struct {
	name        string
	module      string
	bases       []*Class
	ns          *Namespace
	meta        *Block
	factory     OptionsFactory
	factoryAttr string
	guard       bool
	allowed     []string
	validators  []ValidatorFunc
	err         error
}

// NewClassBuilder creates a builder for a class with the given name.
func NewClassBuilder(name string) *ClassBuilder {
	b := &ClassBuilder{
		name:       name,
		ns:         NewNamespace(),
		validators: make([]ValidatorFunc, 0),
	}
	if name == "" {
		b.err = fmt.Errorf("class name cannot be empty")
	}
	return b
}

// WithModule records the module the class belongs to.
func (b *ClassBuilder) WithModule(module string) *ClassBuilder {
	b.module = module
	return b
}

// WithBases sets the base classes in resolution order.
func (b *ClassBuilder) WithBases(bases ...*Class) *ClassBuilder {
	b.bases = append(b.bases, bases...)
	return b
}

// WithAttr declares one namespace attribute.
func (b *ClassBuilder) WithAttr(key string, value any) *ClassBuilder {
	b.ns.Set(key, value)
	return b
}

// WithMeta sets the class's Meta block.
func (b *ClassBuilder) WithMeta(block *Block) *ClassBuilder {
	b.meta = block
	return b
}

// WithAbstract marks the class abstract via the namespace flag, which wins
// over any Meta block declaration.
func (b *ClassBuilder) WithAbstract() *ClassBuilder {
	b.ns.Set(AbstractFlag, true)
	return b
}

// WithFactory sets the default options factory used when neither the class
// nor its bases designate one.
func (b *ClassBuilder) WithFactory(factory OptionsFactory) *ClassBuilder {
	b.factory = factory
	return b
}

// WithFactoryAttr overrides the attribute name the factory is looked up under.
func (b *ClassBuilder) WithFactoryAttr(attr string) *ClassBuilder {
	b.factoryAttr = attr
	return b
}

// WithProtectedMembers enables the naming guard: every declared attribute
// must start with "_", except reserved names and the given allowlist.
func (b *ClassBuilder) WithProtectedMembers(allowed ...string) *ClassBuilder {
	b.guard = true
	b.allowed = append(b.allowed, allowed...)
	return b
}

// WithValidator adds a validation function that runs on the finalized class.
// Multiple validators can be added and are executed in the order they are added.
func (b *ClassBuilder) WithValidator(fn ValidatorFunc) *ClassBuilder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build constructs the class: descriptor assembly, naming guard, meta option
// resolution and contribution, validators, then the frozen Class.
func (b *ClassBuilder) Build() (*Class, error) {
	if b.err != nil {
		return nil, b.err
	}

	ns := b.ns.Clone()
	if b.module != "" {
		ns.Set(moduleKey, b.module)
	}
	if b.meta != nil {
		ns.Set(MetaKey, b.meta)
	}

	d := NewDescriptor(b.name, b.bases, ns)

	if b.guard {
		if err := EnsureProtected(d, b.allowed...); err != nil {
			return nil, err
		}
	}

	opts, err := Apply(d, b.factory, b.factoryAttr)
	if err != nil {
		return nil, err
	}

	cls := &Class{
		Name:   d.Name,
		Module: d.Module(),
		Bases:  b.bases,
		attrs:  d.Namespace,
		meta:   opts,
	}

	for _, validator := range b.validators {
		if err := validator(cls); err != nil {
			return nil, fmt.Errorf("class validation failed: %w", err)
		}
	}

	return cls, nil
}

// MustBuild is like Build but panics on error.
func (b *ClassBuilder) MustBuild() *Class {
	cls, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("class build failed: %v", err))
	}
	return cls
}
